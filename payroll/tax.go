package payroll

import "github.com/warp/shift-payroll/generic"

// =============================================================================
// TAX - Withholding for the two regimes
// =============================================================================
//
// FOUR-INSURANCE (4대보험):
//   pension        = floor10(gross * 4.5%)
//   health         = floor10(gross * 3.545%)
//   long-term care = floor10(health * 12.95%)
//   employment     = floor10(gross * 0.9%)
//   income tax     = floor10(bracket(gross))
//   local tax      = floor10(incomeTax * 10%)
//
// FREELANCE (3.3%):
//   income tax     = floor10(gross * 3%)
//   local tax      = floor10(incomeTax * 10%)

const (
	ratePension        = "0.045"
	rateHealth         = "0.03545"
	rateLongTermCare   = "0.1295"
	rateEmployment     = "0.009"
	rateFreelance      = "0.03"
	rateLocalSurcharge = "0.1"
)

// TaxBreakdown itemizes withholding. Unused lines stay zero.
type TaxBreakdown struct {
	Regime       EmploymentType
	Pension      generic.Won
	Health       generic.Won
	LongTermCare generic.Won
	Employment   generic.Won
	IncomeTax    generic.Won
	LocalTax     generic.Won
	Total        generic.Won
}

// bracket is one row of the monthly income-tax table: tax = Base + Rate*(gross-Over).
type bracket struct {
	Over int64
	Base int64
	Rate string
}

// incomeTaxBrackets is ordered from the top bracket down.
var incomeTaxBrackets = []bracket{
	{Over: 7_000_000, Base: 471_600, Rate: "0.15"},
	{Over: 5_000_000, Base: 231_600, Rate: "0.12"},
	{Over: 4_000_000, Base: 141_600, Rate: "0.09"},
	{Over: 3_000_000, Base: 71_600, Rate: "0.07"},
	{Over: 2_000_000, Base: 21_600, Rate: "0.05"},
	{Over: 1_500_000, Base: 6_600, Rate: "0.03"},
	{Over: 1_060_000, Base: 0, Rate: "0.015"},
}

// IncomeTaxFor is the progressive monthly income tax on gross, floored to 10 won.
func IncomeTaxFor(gross generic.Won) generic.Won {
	for _, b := range incomeTaxBrackets {
		over := generic.WonFromInt(b.Over)
		if gross.GreaterThan(over) {
			return generic.WonFromInt(b.Base).Add(gross.Sub(over).MulRate(b.Rate)).FloorTo10()
		}
	}
	return generic.ZeroWon
}

// ComputeTax withholds from gross under the given regime.
// Nothing is withheld when noTax is set or gross is not positive.
func ComputeTax(gross generic.Won, regime EmploymentType, noTax bool) TaxBreakdown {
	t := noTaxBreakdown(regime)
	if noTax || !gross.IsPositive() {
		return t
	}

	switch regime {
	case EmploymentFourInsurance:
		t.Pension = gross.MulRate(ratePension).FloorTo10()
		t.Health = gross.MulRate(rateHealth).FloorTo10()
		t.LongTermCare = t.Health.MulRate(rateLongTermCare).FloorTo10()
		t.Employment = gross.MulRate(rateEmployment).FloorTo10()
		t.IncomeTax = IncomeTaxFor(gross)
	default:
		t.Regime = EmploymentFreelance
		t.IncomeTax = gross.MulRate(rateFreelance).FloorTo10()
	}
	t.LocalTax = t.IncomeTax.MulRate(rateLocalSurcharge).FloorTo10()
	t.Total = generic.SumWon(t.Pension, t.Health, t.LongTermCare, t.Employment, t.IncomeTax, t.LocalTax)
	return t
}

func noTaxBreakdown(regime EmploymentType) TaxBreakdown {
	z := generic.ZeroWon
	return TaxBreakdown{Regime: regime, Pension: z, Health: z, LongTermCare: z, Employment: z, IncomeTax: z, LocalTax: z, Total: z}
}
