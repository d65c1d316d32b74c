package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/shift-payroll/generic"
	"github.com/warp/shift-payroll/payroll"
)

func TestIncomeTaxFor_BracketsAreContinuous(t *testing.T) {
	cases := []struct{ gross, want int64 }{
		{500_000, 0},
		{1_060_000, 0},
		{1_060_010, 0}, // 0.15 floors away
		{1_500_000, 6_600},
		{2_000_000, 21_600},
		{3_000_000, 71_600},
		{4_000_000, 141_600},
		{5_000_000, 231_600},
		{7_000_000, 471_600},
		{8_000_000, 621_600},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, won(payroll.IncomeTaxFor(generic.WonFromInt(c.gross))), "gross=%d", c.gross)
	}
}

func TestComputeTax_FourInsurance(t *testing.T) {
	// GIVEN: 2,000,000 gross under four-insurance
	tax := payroll.ComputeTax(generic.WonFromInt(2_000_000), payroll.EmploymentFourInsurance, false)

	// THEN: every line is floored to 10 won
	assert.Equal(t, payroll.EmploymentFourInsurance, tax.Regime)
	assert.Equal(t, int64(90_000), won(tax.Pension))
	assert.Equal(t, int64(70_900), won(tax.Health))
	assert.Equal(t, int64(9_180), won(tax.LongTermCare), "9,181.55 floored")
	assert.Equal(t, int64(18_000), won(tax.Employment))
	assert.Equal(t, int64(21_600), won(tax.IncomeTax))
	assert.Equal(t, int64(2_160), won(tax.LocalTax))
	assert.Equal(t, int64(211_840), won(tax.Total))
}

func TestComputeTax_Freelance(t *testing.T) {
	tax := payroll.ComputeTax(generic.WonFromInt(1_000_000), payroll.EmploymentFreelance, false)

	assert.Equal(t, int64(30_000), won(tax.IncomeTax))
	assert.Equal(t, int64(3_000), won(tax.LocalTax))
	assert.Equal(t, int64(33_000), won(tax.Total))
	assert.True(t, tax.Pension.IsZero())
	assert.True(t, tax.Health.IsZero())
}

func TestComputeTax_UnknownRegimeIsFreelance(t *testing.T) {
	tax := payroll.ComputeTax(generic.WonFromInt(85_000), "", false)

	assert.Equal(t, payroll.EmploymentFreelance, tax.Regime)
	assert.Equal(t, int64(2_550), won(tax.IncomeTax))
	assert.Equal(t, int64(250), won(tax.LocalTax), "255 floors to 250")
	assert.Equal(t, int64(2_800), won(tax.Total))
}

func TestComputeTax_NothingWithheld(t *testing.T) {
	cases := []struct {
		name  string
		gross int64
		noTax bool
	}{
		{"no tax deduction", 2_000_000, true},
		{"zero gross", 0, false},
		{"negative gross", -1_000, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tax := payroll.ComputeTax(generic.WonFromInt(c.gross), payroll.EmploymentFourInsurance, c.noTax)
			assert.True(t, tax.Total.IsZero())
			assert.True(t, tax.Pension.IsZero())
			assert.True(t, tax.IncomeTax.IsZero())
		})
	}
}

func TestComputeTax_LinesSumToTotal(t *testing.T) {
	for _, gross := range []int64{123_456, 1_999_999, 3_210_987, 9_999_999} {
		tax := payroll.ComputeTax(generic.WonFromInt(gross), payroll.EmploymentFourInsurance, false)
		sum := generic.SumWon(tax.Pension, tax.Health, tax.LongTermCare, tax.Employment, tax.IncomeTax, tax.LocalTax)
		assert.Equal(t, won(sum), won(tax.Total), "gross=%d", gross)
		assert.Equal(t, int64(0), won(tax.Total)%10, "gross=%d", gross)
	}
}
