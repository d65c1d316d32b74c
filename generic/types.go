/*
Package generic provides the calendar and money primitives the payroll engine
is built on.

KEY CONCEPTS:
  - Won: an integer currency amount carried as decimal.Decimal
  - Date / ClockTime: calendar day and time-of-day (ledger keys, shift bounds)
  - Period / Week: requested range and Monday..Sunday aggregation unit
  - HolidayCalendar: optional designated-holiday lookup

PRECISION:
  Every pay formula is "floor(minutes/60 * wage * rate)". Evaluating that in
  float64 can land a hair below an integer and floor one won short, so all
  products are taken in decimal, multiplying before dividing, and only the
  final value is floored.

USAGE:
  pay := generic.WonFromInt(10000).MulFrac(480, 60).Floor()  // 80000
  tax := generic.WonFromInt(1234567).MulRate("0.045").FloorTo10()

SEE ALSO:
  - period.go: Period, Week, context window
  - time.go: Date, ClockTime, HolidayCalendar
*/
package generic

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// WON - Integer currency amount
// =============================================================================

// Won is a currency amount. Results are floored to whole units by the caller.
type Won struct {
	Value decimal.Decimal
}

var ZeroWon = Won{Value: decimal.Zero}

func WonFromInt(v int64) Won { return Won{Value: decimal.NewFromInt(v)} }

// MustParseDecimal parses a literal rate such as "0.045".
func MustParseDecimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func (w Won) Add(o Won) Won             { return Won{Value: w.Value.Add(o.Value)} }
func (w Won) Sub(o Won) Won             { return Won{Value: w.Value.Sub(o.Value)} }
func (w Won) Mul(d decimal.Decimal) Won { return Won{Value: w.Value.Mul(d)} }
func (w Won) MulRate(rate string) Won   { return w.Mul(MustParseDecimal(rate)) }
func (w Won) IsZero() bool              { return w.Value.IsZero() }
func (w Won) IsPositive() bool          { return w.Value.IsPositive() }
func (w Won) GreaterThan(o Won) bool    { return w.Value.GreaterThan(o.Value) }
func (w Won) Int64() int64              { return w.Value.IntPart() }
func (w Won) String() string            { return w.Value.String() }

// MulFrac multiplies by num/den exactly. The division happens last, so
// fractions like 100/60 never round before the product is taken.
func (w Won) MulFrac(num, den int64) Won {
	if den == 0 {
		return ZeroWon
	}
	return Won{Value: w.Value.Mul(decimal.NewFromInt(num)).Div(decimal.NewFromInt(den))}
}

// Floor drops any fractional won.
func (w Won) Floor() Won { return Won{Value: w.Value.Floor()} }

// FloorTo10 floors to the nearest 10 won, the withholding unit.
func (w Won) FloorTo10() Won {
	ten := decimal.NewFromInt(10)
	return Won{Value: w.Value.Div(ten).Floor().Mul(ten)}
}

// SumWon adds amounts.
func SumWon(ws ...Won) Won {
	total := ZeroWon
	for _, w := range ws {
		total = total.Add(w)
	}
	return total
}
