package payroll

import (
	"github.com/shopspring/decimal"
	"github.com/warp/shift-payroll/generic"
)

// =============================================================================
// PREVIEW - Toggle pay categories over a finished ledger
// =============================================================================
//
// The pay-stub preview lets a manager untick categories (e.g. night pay) and
// see the effect without re-running the range. Totals are re-summed from the
// ledger; tax keeps the effective rate of the original run:
//
//   tax = floor10(newGross * originalTax / originalGross)
//
// With ExactTax set, withholding is recomputed from the brackets instead.

// Toggles selects which categories are included. The zero value excludes
// everything; use AllIncluded for the starting state.
type Toggles struct {
	Base     bool
	Night    bool
	Overtime bool
	Holiday  bool
	Weekly   bool

	ExactTax bool
}

// AllIncluded is the toggle state matching the original run.
func AllIncluded() Toggles {
	return Toggles{Base: true, Night: true, Overtime: true, Holiday: true, Weekly: true}
}

// Preview is the recomputed stub.
type Preview struct {
	Totals  Totals
	Gross   generic.Won
	Tax     generic.Won
	TaxRate decimal.Decimal // originalTax / originalGross, 0 when gross was 0
	Net     generic.Won

	// Breakdown is set only for ExactTax.
	Breakdown *TaxBreakdown
}

// RecomputeWithToggles re-sums the selected ledger columns of r and reapplies tax.
func RecomputeWithToggles(r Result, t Toggles) Preview {
	totals := zeroTotals()
	for _, e := range r.Ledger {
		totals = totals.plus(e)
	}
	if !t.Base {
		totals.Base = generic.ZeroWon
	}
	if !t.Night {
		totals.Night = generic.ZeroWon
	}
	if !t.Overtime {
		totals.Overtime = generic.ZeroWon
	}
	if !t.Holiday {
		totals.Holiday = generic.ZeroWon
	}
	if !t.Weekly {
		totals.Weekly = generic.ZeroWon
	}
	gross := totals.Gross()

	p := Preview{Totals: totals, Gross: gross, TaxRate: decimal.Zero}

	originalGross := r.Gross
	if originalGross.IsPositive() {
		p.TaxRate = r.Tax.Total.Value.Div(originalGross.Value)
	}

	if t.ExactTax {
		b := ComputeTax(gross, r.EmploymentType, r.Policy.NoTaxDeduction)
		p.Breakdown = &b
		p.Tax = b.Total
	} else {
		p.Tax = effectiveRateTax(gross, r.Tax.Total, originalGross)
	}
	p.Net = gross.Sub(p.Tax)
	return p
}

func effectiveRateTax(gross, originalTax, originalGross generic.Won) generic.Won {
	if !originalGross.IsPositive() || !gross.IsPositive() {
		return generic.ZeroWon
	}
	return generic.Won{Value: gross.Value.Mul(originalTax.Value).Div(originalGross.Value)}.FloorTo10()
}
