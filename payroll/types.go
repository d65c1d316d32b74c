/*
Package payroll computes itemized pay for hourly, daily and monthly shift
workers under Korean labor-law conventions.

PURPOSE:
  Given a date range, a roster, shift records, store pay policy and
  per-employee overrides, Compute produces one Result per employee: base pay,
  night/overtime/holiday-work premiums, weekly-holiday allowance (주휴수당),
  tax withholding and net pay, plus the ledger every total was summed from.

KEY CONCEPTS IN THIS FILE (types.go):
  - Employee / Shift: read-only input records
  - PolicyFields: nullable policy flags shared by StoreSettings and Override
  - PayType / EmploymentType: pay basis and tax regime

PURITY:
  Compute is a function of its inputs. It performs no I/O, keeps no state and
  never fails: missing numbers default to 0 and missing policy flags resolve
  through ResolvePolicy. Identical inputs give identical results, so the
  consumer can recompute previews freely.

CONTEXT WINDOW:
  Weekly-holiday eligibility needs whole Monday..Sunday weeks. Shifts before
  the requested start (back to that week's Monday) are read for weekly hours
  only; they never become WORK entries or add to pay totals.

SEE ALSO:
  - engine.go: the per-employee fold
  - shift.go: per-shift decomposition
  - weekly.go: weekly-holiday pay
  - tax.go: withholding
  - preview.go: toggled recomputation over a finished ledger
*/
package payroll

import "github.com/warp/shift-payroll/generic"

// =============================================================================
// PAY TYPE / EMPLOYMENT TYPE
// =============================================================================

// PayType is the basis for base pay.
type PayType string

const (
	PayHourly  PayType = "hourly"
	PayDaily   PayType = "daily"
	PayMonthly PayType = "monthly"
)

// Fixed reports whether the pay type ignores hours for base pay (no premiums).
func (p PayType) Fixed() bool { return p == PayDaily || p == PayMonthly }

// EmploymentType selects the withholding regime.
type EmploymentType string

const (
	EmploymentFreelance     EmploymentType = "freelance"      // 3.3% business-income withholding
	EmploymentFourInsurance EmploymentType = "four_insurance" // 4대보험 + income tax
)

// =============================================================================
// EMPLOYEE
// =============================================================================

// Employee is an identity plus its compensation policy.
type Employee struct {
	ID             string
	Name           string
	HourlyWage     int64
	DailyWage      *int64
	MonthlyWage    *int64
	PayType        *PayType // explicit flag; inferred from wages when nil
	EmploymentType EmploymentType
	HireDate       *generic.Date
	EndDate        *generic.Date // set => separated as of that day
}

// ResolvedPayType infers the pay basis: explicit flag, then a positive
// monthly wage, then a positive daily wage, else hourly.
func (e Employee) ResolvedPayType() PayType {
	if e.PayType != nil {
		switch *e.PayType {
		case PayHourly, PayDaily, PayMonthly:
			return *e.PayType
		}
	}
	if valueOr(e.MonthlyWage, 0) > 0 {
		return PayMonthly
	}
	if valueOr(e.DailyWage, 0) > 0 {
		return PayDaily
	}
	return PayHourly
}

// ResolvedEmploymentType defaults unknown values to freelance.
func (e Employee) ResolvedEmploymentType() EmploymentType {
	if e.EmploymentType == EmploymentFourInsurance {
		return EmploymentFourInsurance
	}
	return EmploymentFreelance
}

// Wage is the hourly wage, clamped to zero.
func (e Employee) Wage() int64 {
	if e.HourlyWage < 0 {
		return 0
	}
	return e.HourlyWage
}

// SeparatedBefore reports whether the employee's end date is before d.
func (e Employee) SeparatedBefore(d generic.Date) bool {
	return e.EndDate != nil && !e.EndDate.IsZero() && e.EndDate.Before(d)
}

// =============================================================================
// SHIFT
// =============================================================================

// Shift is one scheduled work interval. End earlier than Start means the
// shift ends the next day.
type Shift struct {
	ID                   string
	EmployeeID           string
	Date                 generic.Date
	Start                generic.ClockTime
	End                  generic.ClockTime
	IsHolidayWork        bool
	ExcludeFromWeeklyPay bool
	PayType              *PayType // shift-level override of the employee basis
	DailyPayAmount       *int64   // shift-level override of the daily wage
}

// RawMinutes is the scheduled length, wrapping past midnight.
func (s Shift) RawMinutes() int {
	return s.Start.MinutesUntil(s.End)
}

// =============================================================================
// POLICY FIELDS - StoreSettings and Override share them
// =============================================================================

// PolicyFields are nullable policy flags. nil means "not set at this layer".
type PolicyFields struct {
	IsFivePlus      *bool // 5+ employees: premiums legally required
	PayWeekly       *bool
	PayNight        *bool
	PayOvertime     *bool
	PayHoliday      *bool
	AutoDeductBreak *bool
	NoTaxDeduction  *bool
}

// any reports whether a field is set.
func (f PolicyFields) any() bool {
	return f.IsFivePlus != nil || f.PayWeekly != nil || f.PayNight != nil ||
		f.PayOvertime != nil || f.PayHoliday != nil || f.AutoDeductBreak != nil ||
		f.NoTaxDeduction != nil
}

// StoreSettings is the store-wide default policy.
type StoreSettings struct {
	StoreID string
	PolicyFields
}

// Override is a per-employee exception to StoreSettings.
type Override struct {
	EmployeeID string
	PolicyFields

	// MonthlyOverride is a confirmed fixed payout for the range. When positive
	// the employee is settled as monthly pay with this amount.
	MonthlyOverride *int64
}

// Applied reports whether any field of the override is set.
func (o Override) Applied() bool {
	return o.PolicyFields.any() || o.MonthlyOverride != nil
}

// =============================================================================
// HELPERS
// =============================================================================

func valueOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}

// Ptr returns a pointer to v, for building optional fields.
func Ptr[T any](v T) *T { return &v }
