/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON contract of the payroll API and converts it to and from
  the payroll domain types. Boundary normalization lives here so the engine
  only ever sees real booleans, parsed dates and clock times.

NAMING CONVENTION:
  - *DTO: Shapes shared by requests and responses
  - *Request: Request body types from clients
  - *Response: Response wrappers

BOOLEANS:
  Policy and shift flags arrive from spreadsheets and legacy clients as
  true, "true", 1, "1", "Y" and so on. Flag accepts all of them. A missing
  or null policy flag means "not set at this layer". A value Flag does not
  recognize is treated as unset and reported as a warning; it never fails
  the request.

MONEY:
  Amounts are whole won (int64). The engine floors every amount before it
  reaches a DTO.

VALIDATION:
  Struct tags (go-playground/validator) check request shape only. Record
  level problems (negative wages, unknown employees) are reported as
  warnings by payroll.Validate and never reject a run.

SEE ALSO:
  - handlers.go: Uses these types
  - payroll/engine.go: Domain Input and Result
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/warp/shift-payroll/generic"
	"github.com/warp/shift-payroll/payroll"
)

// ErrInvalidFlag reports a boolean-ish JSON value that was not recognized.
var ErrInvalidFlag = errors.New("invalid boolean flag")

// =============================================================================
// FLAG - Lenient JSON boolean
// =============================================================================

// Flag is a boolean that also decodes "true", "Y", 1 and "1". Anything else
// decodes as unset and keeps the raw value for Err.
type Flag struct {
	on  bool
	raw string // unrecognized input
}

// NewFlag returns a set flag.
func NewFlag(v bool) Flag { return Flag{on: v} }

// On is the decoded value. Unrecognized input reads as false.
func (f Flag) On() bool { return f.on }

func (f Flag) MarshalJSON() ([]byte, error) { return json.Marshal(f.on) }

func (f *Flag) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" {
		return nil
	}
	switch strings.ToLower(strings.Trim(s, `"`)) {
	case "true", "1", "y", "yes", "t":
		*f = Flag{on: true}
	case "false", "0", "n", "no", "f", "":
		*f = Flag{}
	default:
		*f = Flag{raw: s}
	}
	return nil
}

// Err returns ErrInvalidFlag when the input was not recognized.
func (f *Flag) Err() error {
	if f == nil || f.raw == "" {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidFlag, f.raw)
}

// Bool returns nil for an unset or unrecognized flag.
func (f *Flag) Bool() *bool {
	if f == nil || f.raw != "" {
		return nil
	}
	b := f.on
	return &b
}

// =============================================================================
// REQUEST TYPES
// =============================================================================

// PolicyFlagsDTO are the nullable policy fields shared by settings and overrides.
type PolicyFlagsDTO struct {
	IsFivePlus      *Flag `json:"is_five_plus,omitempty"`
	PayWeekly       *Flag `json:"pay_weekly,omitempty"`
	PayNight        *Flag `json:"pay_night,omitempty"`
	PayOvertime     *Flag `json:"pay_overtime,omitempty"`
	PayHoliday      *Flag `json:"pay_holiday,omitempty"`
	AutoDeductBreak *Flag `json:"auto_deduct_break,omitempty"`
	NoTaxDeduction  *Flag `json:"no_tax_deduction,omitempty"`
}

// EmployeeDTO is one roster entry.
type EmployeeDTO struct {
	ID             string `json:"id" validate:"required"`
	Name           string `json:"name"`
	HourlyWage     int64  `json:"hourly_wage"`
	DailyWage      *int64 `json:"daily_wage,omitempty"`
	MonthlyWage    *int64 `json:"monthly_wage,omitempty"`
	PayType        string `json:"pay_type,omitempty"`
	EmploymentType string `json:"employment_type,omitempty"`
	HireDate       string `json:"hire_date,omitempty"`
	EndDate        string `json:"end_date,omitempty"`
}

// ShiftDTO is one scheduled shift. Times are "HH:MM".
type ShiftDTO struct {
	ID                   string `json:"id"`
	EmployeeID           string `json:"employee_id"`
	Date                 string `json:"date"`
	StartTime            string `json:"start_time"`
	EndTime              string `json:"end_time"`
	IsHolidayWork        Flag   `json:"is_holiday_work"`
	ExcludeFromWeeklyPay Flag   `json:"exclude_from_weekly_pay"`
	PayType              string `json:"pay_type,omitempty"`
	DailyPayAmount       *int64 `json:"daily_pay_amount,omitempty"`
}

// SettingsDTO is the store-wide policy.
type SettingsDTO struct {
	StoreID string `json:"store_id,omitempty"`
	PolicyFlagsDTO
}

// OverrideDTO is a per-employee exception.
type OverrideDTO struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	PolicyFlagsDTO
	MonthlyOverride *int64 `json:"monthly_override,omitempty"`
}

// ComputeRequest is the body of POST /api/payroll/compute.
type ComputeRequest struct {
	StartDate string        `json:"start_date" validate:"required"`
	EndDate   string        `json:"end_date" validate:"required"`
	Employees []EmployeeDTO `json:"employees" validate:"dive"`
	Shifts    []ShiftDTO    `json:"shifts"`
	Settings  *SettingsDTO  `json:"settings,omitempty"`
	Overrides []OverrideDTO `json:"overrides,omitempty" validate:"dive"`
	Holidays  []string      `json:"holidays,omitempty"`
}

// TogglesDTO selects preview categories. A missing category is included.
type TogglesDTO struct {
	Base     *Flag `json:"base,omitempty"`
	Night    *Flag `json:"night,omitempty"`
	Overtime *Flag `json:"overtime,omitempty"`
	Holiday  *Flag `json:"holiday,omitempty"`
	Weekly   *Flag `json:"weekly,omitempty"`
	ExactTax Flag  `json:"exact_tax"`
}

// PreviewRequest is the body of POST /api/payroll/preview.
type PreviewRequest struct {
	Result  ResultDTO  `json:"result"`
	Toggles TogglesDTO `json:"toggles"`
}

// SeveranceRequest is the body of POST /api/severance.
type SeveranceRequest struct {
	HireDate         string `json:"hire_date" validate:"required"`
	EndDate          string `json:"end_date" validate:"required"`
	WagesLast3Months int64  `json:"wages_last_3_months" validate:"gte=0"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// PolicyDTO is a resolved policy.
type PolicyDTO struct {
	IsFivePlus      bool `json:"is_five_plus"`
	PayWeekly       bool `json:"pay_weekly"`
	PayNight        bool `json:"pay_night"`
	PayOvertime     bool `json:"pay_overtime"`
	PayHoliday      bool `json:"pay_holiday"`
	AutoDeductBreak bool `json:"auto_deduct_break"`
	NoTaxDeduction  bool `json:"no_tax_deduction"`
}

// TotalsDTO are per-category sums.
type TotalsDTO struct {
	Base     int64 `json:"base"`
	Night    int64 `json:"night"`
	Overtime int64 `json:"overtime"`
	Holiday  int64 `json:"holiday"`
	Weekly   int64 `json:"weekly"`
}

// TaxDTO itemizes withholding.
type TaxDTO struct {
	Regime       string `json:"regime"`
	Pension      int64  `json:"pension"`
	Health       int64  `json:"health"`
	LongTermCare int64  `json:"long_term_care"`
	Employment   int64  `json:"employment"`
	IncomeTax    int64  `json:"income_tax"`
	LocalTax     int64  `json:"local_tax"`
	Total        int64  `json:"total"`
}

// LedgerEntryDTO is one ledger row.
type LedgerEntryDTO struct {
	Type       string `json:"type"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	ShiftID          string `json:"shift_id,omitempty"`
	StartTime        string `json:"start_time,omitempty"`
	EndTime          string `json:"end_time,omitempty"`
	PayType          string `json:"pay_type,omitempty"`
	RawMinutes       int    `json:"raw_minutes,omitempty"`
	BreakMinutes     int    `json:"break_minutes,omitempty"`
	EffectiveMinutes int    `json:"effective_minutes,omitempty"`
	NightMinutes     int    `json:"night_minutes,omitempty"`
	OvertimeMinutes  int    `json:"overtime_minutes,omitempty"`
	IsHolidayWork    bool   `json:"is_holiday_work,omitempty"`

	WeekStart   string `json:"week_start,omitempty"`
	WeekMinutes int    `json:"week_minutes,omitempty"`

	BasePay     int64 `json:"base_pay"`
	NightPay    int64 `json:"night_pay"`
	OvertimePay int64 `json:"overtime_pay"`
	HolidayPay  int64 `json:"holiday_pay"`
	WeeklyPay   int64 `json:"weekly_pay"`
	TotalPay    int64 `json:"total_pay"`

	PotentialNightPay    int64 `json:"potential_night_pay,omitempty"`
	PotentialOvertimePay int64 `json:"potential_overtime_pay,omitempty"`
	PotentialHolidayPay  int64 `json:"potential_holiday_pay,omitempty"`
	PotentialWeeklyPay   int64 `json:"potential_weekly_pay,omitempty"`
}

// WeekDTO explains one context week.
type WeekDTO struct {
	WeekStart    string `json:"week_start"`
	WeekEnd      string `json:"week_end"`
	Minutes      int    `json:"minutes"`
	Outcome      string `json:"outcome"`
	Pay          int64  `json:"pay"`
	PotentialPay int64  `json:"potential_pay"`
}

// ResultDTO is one employee's payroll.
type ResultDTO struct {
	EmployeeID      string    `json:"employee_id" validate:"required"`
	EmployeeName    string    `json:"employee_name"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	PayType         string    `json:"pay_type"`
	EmploymentType  string    `json:"employment_type"`
	OverrideApplied bool      `json:"override_applied"`
	Policy          PolicyDTO `json:"policy"`

	Totals          TotalsDTO `json:"totals"`
	PotentialTotals TotalsDTO `json:"potential_totals"`
	GrossPay        int64     `json:"gross_pay"`
	Tax             TaxDTO    `json:"tax"`
	NetPay          int64     `json:"net_pay"`

	WorkMinutes int `json:"work_minutes"`
	ShiftCount  int `json:"shift_count"`

	Ledger []LedgerEntryDTO `json:"ledger"`
	Weeks  []WeekDTO        `json:"weeks,omitempty"`
}

// ComputeResponse wraps a payroll run.
type ComputeResponse struct {
	RunID     string      `json:"run_id"`
	StartDate string      `json:"start_date"`
	EndDate   string      `json:"end_date"`
	Results   []ResultDTO `json:"results"`
	Warnings  []string    `json:"warnings"`
}

// PreviewResponse is a toggled recomputation.
type PreviewResponse struct {
	Totals  TotalsDTO `json:"totals"`
	Gross   int64     `json:"gross_pay"`
	Tax     int64     `json:"tax"`
	TaxRate string    `json:"tax_rate"`
	NetPay  int64     `json:"net_pay"`
	TaxInfo *TaxDTO   `json:"tax_breakdown,omitempty"`
}

// SeveranceResponse is a severance estimate.
type SeveranceResponse struct {
	Eligible         bool   `json:"eligible"`
	ServiceDays      int    `json:"service_days"`
	LookbackStart    string `json:"lookback_start"`
	LookbackEnd      string `json:"lookback_end"`
	LookbackDays     int    `json:"lookback_days"`
	AverageDailyWage int64  `json:"average_daily_wage"`
	Amount           int64  `json:"amount"`
}

// ValidateResponse lists record-level issues.
type ValidateResponse struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// REQUEST -> DOMAIN
// =============================================================================

// toInput converts a compute request. A bad range is an error; anything
// malformed below it is dropped or blanked and reported as a warning.
func toInput(req ComputeRequest) (payroll.Input, []string, error) {
	var warnings []string
	warn := func(format string, args ...any) {
		warnings = append(warnings, fmt.Sprintf(format, args...))
	}

	start, err := generic.ParseDate(req.StartDate)
	if err != nil {
		return payroll.Input{}, nil, fmt.Errorf("start_date: %w", err)
	}
	end, err := generic.ParseDate(req.EndDate)
	if err != nil {
		return payroll.Input{}, nil, fmt.Errorf("end_date: %w", err)
	}
	period, err := generic.NewPeriod(start, end)
	if err != nil {
		return payroll.Input{}, nil, err
	}

	in := payroll.Input{
		Period:    period,
		Employees: make([]payroll.Employee, 0, len(req.Employees)),
		Shifts:    make([]payroll.Shift, 0, len(req.Shifts)),
	}

	for _, e := range req.Employees {
		emp := payroll.Employee{
			ID:             e.ID,
			Name:           e.Name,
			HourlyWage:     e.HourlyWage,
			DailyWage:      e.DailyWage,
			MonthlyWage:    e.MonthlyWage,
			PayType:        payTypePtr(e.PayType),
			EmploymentType: payroll.EmploymentType(e.EmploymentType),
		}
		if d, ok := optionalDate(e.HireDate); ok {
			emp.HireDate = d
		} else {
			warn("employee %s: hire_date %q ignored", e.ID, e.HireDate)
		}
		if d, ok := optionalDate(e.EndDate); ok {
			emp.EndDate = d
		} else {
			warn("employee %s: end_date %q ignored", e.ID, e.EndDate)
		}
		in.Employees = append(in.Employees, emp)
	}

	for _, s := range req.Shifts {
		shift, err := toShift(s)
		if err != nil {
			warn("shift %s dropped: %v", s.ID, err)
			continue
		}
		for _, err := range s.flagErrors() {
			warn("shift %s: %v ignored", s.ID, err)
		}
		in.Shifts = append(in.Shifts, shift)
	}

	if req.Settings != nil {
		for _, err := range req.Settings.flagErrors() {
			warn("settings: %v ignored", err)
		}
		in.Settings = &payroll.StoreSettings{StoreID: req.Settings.StoreID, PolicyFields: req.Settings.fields()}
	}
	for _, o := range req.Overrides {
		for _, err := range o.flagErrors() {
			warn("override %s: %v ignored", o.EmployeeID, err)
		}
		in.Overrides = append(in.Overrides, payroll.Override{
			EmployeeID:      o.EmployeeID,
			PolicyFields:    o.fields(),
			MonthlyOverride: o.MonthlyOverride,
		})
	}

	if len(req.Holidays) > 0 {
		holidays := generic.NewStaticHolidays("holiday")
		for _, raw := range req.Holidays {
			d, err := generic.ParseDate(raw)
			if err != nil {
				warn("holiday %q ignored", raw)
				continue
			}
			holidays[d] = "holiday"
		}
		in.Holidays = holidays
	}

	return in, warnings, nil
}

func toShift(s ShiftDTO) (payroll.Shift, error) {
	date, err := generic.ParseDate(s.Date)
	if err != nil {
		return payroll.Shift{}, fmt.Errorf("date: %w", err)
	}
	start, err := generic.ParseClock(s.StartTime)
	if err != nil {
		return payroll.Shift{}, fmt.Errorf("start_time: %w", err)
	}
	end, err := generic.ParseClock(s.EndTime)
	if err != nil {
		return payroll.Shift{}, fmt.Errorf("end_time: %w", err)
	}
	return payroll.Shift{
		ID:                   s.ID,
		EmployeeID:           s.EmployeeID,
		Date:                 date,
		Start:                start,
		End:                  end,
		IsHolidayWork:        s.IsHolidayWork.On(),
		ExcludeFromWeeklyPay: s.ExcludeFromWeeklyPay.On(),
		PayType:              payTypePtr(s.PayType),
		DailyPayAmount:       s.DailyPayAmount,
	}, nil
}

func (p PolicyFlagsDTO) fields() payroll.PolicyFields {
	return payroll.PolicyFields{
		IsFivePlus:      p.IsFivePlus.Bool(),
		PayWeekly:       p.PayWeekly.Bool(),
		PayNight:        p.PayNight.Bool(),
		PayOvertime:     p.PayOvertime.Bool(),
		PayHoliday:      p.PayHoliday.Bool(),
		AutoDeductBreak: p.AutoDeductBreak.Bool(),
		NoTaxDeduction:  p.NoTaxDeduction.Bool(),
	}
}

func (p PolicyFlagsDTO) flagErrors() []error {
	return flagErrors(
		namedFlag{"is_five_plus", p.IsFivePlus},
		namedFlag{"pay_weekly", p.PayWeekly},
		namedFlag{"pay_night", p.PayNight},
		namedFlag{"pay_overtime", p.PayOvertime},
		namedFlag{"pay_holiday", p.PayHoliday},
		namedFlag{"auto_deduct_break", p.AutoDeductBreak},
		namedFlag{"no_tax_deduction", p.NoTaxDeduction},
	)
}

func (s ShiftDTO) flagErrors() []error {
	return flagErrors(
		namedFlag{"is_holiday_work", &s.IsHolidayWork},
		namedFlag{"exclude_from_weekly_pay", &s.ExcludeFromWeeklyPay},
	)
}

func (t TogglesDTO) flagErrors() []error {
	return flagErrors(
		namedFlag{"base", t.Base},
		namedFlag{"night", t.Night},
		namedFlag{"overtime", t.Overtime},
		namedFlag{"holiday", t.Holiday},
		namedFlag{"weekly", t.Weekly},
		namedFlag{"exact_tax", &t.ExactTax},
	)
}

// namedFlag pairs a flag with its JSON name.
type namedFlag struct {
	name string
	flag *Flag
}

// flagErrors collects the unrecognized flags, prefixed by name.
func flagErrors(flags ...namedFlag) []error {
	var errs []error
	for _, f := range flags {
		if err := f.flag.Err(); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", f.name, err))
		}
	}
	return errs
}

// optionalDate parses s; an empty string is a valid "unset".
func optionalDate(s string) (*generic.Date, bool) {
	if strings.TrimSpace(s) == "" {
		return nil, true
	}
	d, err := generic.ParseDate(s)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func payTypePtr(s string) *payroll.PayType {
	switch p := payroll.PayType(strings.ToLower(strings.TrimSpace(s))); p {
	case payroll.PayHourly, payroll.PayDaily, payroll.PayMonthly:
		return &p
	}
	return nil
}

func (t TogglesDTO) toggles() payroll.Toggles {
	included := func(f *Flag) bool {
		b := f.Bool()
		return b == nil || *b
	}
	return payroll.Toggles{
		Base:     included(t.Base),
		Night:    included(t.Night),
		Overtime: included(t.Overtime),
		Holiday:  included(t.Holiday),
		Weekly:   included(t.Weekly),
		ExactTax: t.ExactTax.On(),
	}
}

// =============================================================================
// DOMAIN -> RESPONSE
// =============================================================================

func toResultDTO(r payroll.Result) ResultDTO {
	ledger := make([]LedgerEntryDTO, len(r.Ledger))
	for i, e := range r.Ledger {
		ledger[i] = toLedgerEntryDTO(e)
	}
	weeks := make([]WeekDTO, len(r.Weeks))
	for i, w := range r.Weeks {
		weeks[i] = WeekDTO{
			WeekStart:    w.Week.Start.String(),
			WeekEnd:      w.Week.End.String(),
			Minutes:      w.Minutes,
			Outcome:      string(w.Outcome),
			Pay:          w.Pay.Int64(),
			PotentialPay: w.PotentialPay.Int64(),
		}
	}
	return ResultDTO{
		EmployeeID:      r.EmployeeID,
		EmployeeName:    r.EmployeeName,
		StartDate:       r.Period.Start.String(),
		EndDate:         r.Period.End.String(),
		PayType:         string(r.PayType),
		EmploymentType:  string(r.EmploymentType),
		OverrideApplied: r.OverrideApplied,
		Policy:          PolicyDTO(r.Policy),
		Totals:          toTotalsDTO(r.Totals),
		PotentialTotals: toTotalsDTO(r.PotentialTotals),
		GrossPay:        r.Gross.Int64(),
		Tax:             toTaxDTO(r.Tax),
		NetPay:          r.Net.Int64(),
		WorkMinutes:     r.WorkMinutes,
		ShiftCount:      r.ShiftCount,
		Ledger:          ledger,
		Weeks:           weeks,
	}
}

func toLedgerEntryDTO(e payroll.LedgerEntry) LedgerEntryDTO {
	dto := LedgerEntryDTO{
		Type:                 string(e.Kind),
		EmployeeID:           e.EmployeeID,
		Date:                 e.Date.String(),
		ShiftID:              e.ShiftID,
		PayType:              string(e.PayType),
		RawMinutes:           e.RawMinutes,
		BreakMinutes:         e.BreakMinutes,
		EffectiveMinutes:     e.EffectiveMinutes,
		NightMinutes:         e.NightMinutes,
		OvertimeMinutes:      e.OvertimeMinutes,
		IsHolidayWork:        e.HolidayWork,
		WeekMinutes:          e.WeekMinutes,
		BasePay:              e.BasePay.Int64(),
		NightPay:             e.NightPay.Int64(),
		OvertimePay:          e.OvertimePay.Int64(),
		HolidayPay:           e.HolidayPay.Int64(),
		WeeklyPay:            e.WeeklyPay.Int64(),
		TotalPay:             e.Total().Int64(),
		PotentialNightPay:    e.PotentialNightPay.Int64(),
		PotentialOvertimePay: e.PotentialOvertimePay.Int64(),
		PotentialHolidayPay:  e.PotentialHolidayPay.Int64(),
		PotentialWeeklyPay:   e.PotentialWeeklyPay.Int64(),
	}
	if e.Kind == payroll.EntryWork {
		dto.StartTime = e.Start.String()
		dto.EndTime = e.End.String()
	}
	if !e.WeekStart.IsZero() {
		dto.WeekStart = e.WeekStart.String()
	}
	return dto
}

func toTotalsDTO(t payroll.Totals) TotalsDTO {
	return TotalsDTO{
		Base:     t.Base.Int64(),
		Night:    t.Night.Int64(),
		Overtime: t.Overtime.Int64(),
		Holiday:  t.Holiday.Int64(),
		Weekly:   t.Weekly.Int64(),
	}
}

func toTaxDTO(t payroll.TaxBreakdown) TaxDTO {
	return TaxDTO{
		Regime:       string(t.Regime),
		Pension:      t.Pension.Int64(),
		Health:       t.Health.Int64(),
		LongTermCare: t.LongTermCare.Int64(),
		Employment:   t.Employment.Int64(),
		IncomeTax:    t.IncomeTax.Int64(),
		LocalTax:     t.LocalTax.Int64(),
		Total:        t.Total.Int64(),
	}
}

// =============================================================================
// RESPONSE -> DOMAIN (preview round-trip)
// =============================================================================

// fromResultDTO rebuilds the parts of a Result that a preview reads: the
// ledger amounts, the original gross and tax, and the tax regime.
func fromResultDTO(dto ResultDTO) payroll.Result {
	ledger := make([]payroll.LedgerEntry, len(dto.Ledger))
	for i, e := range dto.Ledger {
		ledger[i] = payroll.LedgerEntry{
			Kind:                 payroll.EntryKind(e.Type),
			EmployeeID:           e.EmployeeID,
			ShiftID:              e.ShiftID,
			BasePay:              generic.WonFromInt(e.BasePay),
			NightPay:             generic.WonFromInt(e.NightPay),
			OvertimePay:          generic.WonFromInt(e.OvertimePay),
			HolidayPay:           generic.WonFromInt(e.HolidayPay),
			WeeklyPay:            generic.WonFromInt(e.WeeklyPay),
			PotentialNightPay:    generic.WonFromInt(e.PotentialNightPay),
			PotentialOvertimePay: generic.WonFromInt(e.PotentialOvertimePay),
			PotentialHolidayPay:  generic.WonFromInt(e.PotentialHolidayPay),
			PotentialWeeklyPay:   generic.WonFromInt(e.PotentialWeeklyPay),
		}
		if d, err := generic.ParseDate(e.Date); err == nil {
			ledger[i].Date = d
		}
	}
	return payroll.Result{
		EmployeeID:     dto.EmployeeID,
		EmployeeName:   dto.EmployeeName,
		EmploymentType: payroll.Employee{EmploymentType: payroll.EmploymentType(dto.EmploymentType)}.ResolvedEmploymentType(),
		Policy:         payroll.Policy(dto.Policy),
		Gross:          generic.WonFromInt(dto.GrossPay),
		Tax:            payroll.TaxBreakdown{Total: generic.WonFromInt(dto.Tax.Total)},
		Net:            generic.WonFromInt(dto.NetPay),
		Ledger:         ledger,
	}
}

func toPreviewResponse(p payroll.Preview) PreviewResponse {
	resp := PreviewResponse{
		Totals:  toTotalsDTO(p.Totals),
		Gross:   p.Gross.Int64(),
		Tax:     p.Tax.Int64(),
		TaxRate: p.TaxRate.StringFixed(6),
		NetPay:  p.Net.Int64(),
	}
	if p.Breakdown != nil {
		t := toTaxDTO(*p.Breakdown)
		resp.TaxInfo = &t
	}
	return resp
}
