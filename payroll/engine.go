package payroll

import (
	"sort"

	"github.com/warp/shift-payroll/generic"
)

// =============================================================================
// INPUT / RESULT
// =============================================================================

// Input is everything one payroll run reads. Shifts need not be filtered to
// the range; anything outside the context window is ignored.
type Input struct {
	Period    generic.Period
	Employees []Employee
	Shifts    []Shift
	Settings  *StoreSettings
	Overrides []Override

	// Holidays marks additional holiday-work days. nil means only the
	// per-shift IsHolidayWork flag counts.
	Holidays generic.HolidayCalendar
}

// Totals are per-category sums over a ledger.
type Totals struct {
	Base     generic.Won
	Night    generic.Won
	Overtime generic.Won
	Holiday  generic.Won
	Weekly   generic.Won
}

func zeroTotals() Totals {
	z := generic.ZeroWon
	return Totals{Base: z, Night: z, Overtime: z, Holiday: z, Weekly: z}
}

// Gross is the sum of every category.
func (t Totals) Gross() generic.Won {
	return generic.SumWon(t.Base, t.Night, t.Overtime, t.Holiday, t.Weekly)
}

func (t Totals) plus(e LedgerEntry) Totals {
	return Totals{
		Base:     t.Base.Add(e.BasePay),
		Night:    t.Night.Add(e.NightPay),
		Overtime: t.Overtime.Add(e.OvertimePay),
		Holiday:  t.Holiday.Add(e.HolidayPay),
		Weekly:   t.Weekly.Add(e.WeeklyPay),
	}
}

func (t Totals) plusPotential(e LedgerEntry) Totals {
	return Totals{
		Base:     t.Base.Add(e.BasePay),
		Night:    t.Night.Add(e.PotentialNightPay),
		Overtime: t.Overtime.Add(e.PotentialOvertimePay),
		Holiday:  t.Holiday.Add(e.PotentialHolidayPay),
		Weekly:   t.Weekly.Add(e.PotentialWeeklyPay),
	}
}

// Result is one employee's payroll for the range.
type Result struct {
	EmployeeID      string
	EmployeeName    string
	Period          generic.Period
	PayType         PayType
	EmploymentType  EmploymentType
	Policy          Policy
	OverrideApplied bool

	Totals          Totals
	PotentialTotals Totals // as if every premium gate were open
	Gross           generic.Won
	Tax             TaxBreakdown
	Net             generic.Won

	WorkMinutes int // effective minutes of in-range shifts
	ShiftCount  int

	Ledger []LedgerEntry
	Weeks  []WeekSummary
}

// calendar is Holidays, or NoHolidays when none is set.
func (in Input) calendar() generic.HolidayCalendar {
	if in.Holidays == nil {
		return generic.NoHolidays{}
	}
	return in.Holidays
}

// =============================================================================
// ENGINE
// =============================================================================

// Compute runs payroll for every employee, in roster order. An invalid
// period yields no results.
func Compute(in Input) []Result {
	if in.Period.Validate() != nil {
		return []Result{}
	}
	byEmployee := groupShifts(in.Shifts, in.Period.ContextWindow())
	overrides := indexOverrides(in.Overrides)

	results := make([]Result, 0, len(in.Employees))
	for _, emp := range in.Employees {
		results = append(results, computeEmployee(in, emp, byEmployee[emp.ID], overrides[emp.ID]))
	}
	return results
}

// ComputeEmployee runs payroll for a single employee.
func ComputeEmployee(in Input, emp Employee) Result {
	if in.Period.Validate() != nil {
		return Result{EmployeeID: emp.ID, EmployeeName: emp.Name}
	}
	shifts := groupShifts(in.Shifts, in.Period.ContextWindow())[emp.ID]
	return computeEmployee(in, emp, shifts, indexOverrides(in.Overrides)[emp.ID])
}

func computeEmployee(in Input, emp Employee, shifts []Shift, override *Override) Result {
	rng := in.Period
	policy := ResolvePolicy(in.Settings, override)

	payType := emp.ResolvedPayType()
	monthly := valueOr(emp.MonthlyWage, 0)
	if override != nil && valueOr(override.MonthlyOverride, 0) > 0 {
		payType = PayMonthly
		monthly = *override.MonthlyOverride
	}

	ctx := shiftContext{employee: emp, payType: payType, policy: policy, holidays: in.calendar()}
	byWeek := bucketByWeek(shifts)

	var (
		ledger      []LedgerEntry
		weeks       []WeekSummary
		totals      = zeroTotals()
		potential   = zeroTotals()
		workMinutes int
		shiftCount  int
	)

	for _, week := range rng.Weeks() {
		weekMinutes := 0
		for _, s := range byWeek[week.Start] {
			sp := ctx.decompose(s)
			if rng.Contains(s.Date) {
				e := workEntry(s, sp)
				ledger = append(ledger, e)
				totals = totals.plus(e)
				potential = potential.plusPotential(e)
				workMinutes += sp.EffectiveMinutes
				shiftCount++
			}
			if !s.ExcludeFromWeeklyPay {
				weekMinutes += sp.EffectiveMinutes
			}
		}

		ws := summarizeWeek(week, weekMinutes, rng, emp, payType, policy)
		weeks = append(weeks, ws)
		if ws.PotentialPay.IsPositive() {
			e := weeklyEntry(emp.ID, ws)
			ledger = append(ledger, e)
			totals = totals.plus(e)
			potential = potential.plusPotential(e)
		}
	}

	if payType == PayMonthly {
		e := monthlyBaseEntry(emp.ID, rng.Start, max(monthly, 0))
		ledger = append(ledger, e)
		totals = totals.plus(e)
		potential = potential.plusPotential(e)
	}

	SortLedger(ledger)

	regime := emp.ResolvedEmploymentType()
	gross := totals.Gross()
	tax := ComputeTax(gross, regime, policy.NoTaxDeduction)

	return Result{
		EmployeeID:      emp.ID,
		EmployeeName:    emp.Name,
		Period:          rng,
		PayType:         payType,
		EmploymentType:  regime,
		Policy:          policy,
		OverrideApplied: override != nil && override.Applied(),
		Totals:          totals,
		PotentialTotals: potential,
		Gross:           gross,
		Tax:             tax,
		Net:             gross.Sub(tax.Total),
		WorkMinutes:     workMinutes,
		ShiftCount:      shiftCount,
		Ledger:          ledger,
		Weeks:           weeks,
	}
}

// groupShifts keeps shifts inside window, grouped by employee and ordered by
// date then start time.
func groupShifts(shifts []Shift, window generic.Period) map[string][]Shift {
	out := make(map[string][]Shift)
	for _, s := range shifts {
		if s.Date.IsZero() || !window.Contains(s.Date) {
			continue
		}
		out[s.EmployeeID] = append(out[s.EmployeeID], s)
	}
	for _, list := range out {
		sort.SliceStable(list, func(i, j int) bool {
			if !list[i].Date.Equal(list[j].Date) {
				return list[i].Date.Before(list[j].Date)
			}
			return list[i].Start < list[j].Start
		})
	}
	return out
}

func bucketByWeek(shifts []Shift) map[generic.Date][]Shift {
	out := make(map[generic.Date][]Shift)
	for _, s := range shifts {
		start := generic.WeekStart(s.Date)
		out[start] = append(out[start], s)
	}
	return out
}

// indexOverrides keeps the first override per employee.
func indexOverrides(overrides []Override) map[string]*Override {
	out := make(map[string]*Override, len(overrides))
	for i := range overrides {
		o := &overrides[i]
		if _, ok := out[o.EmployeeID]; !ok {
			out[o.EmployeeID] = o
		}
	}
	return out
}
