package generic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/shift-payroll/generic"
)

func TestWon_MulFracMultipliesBeforeDividing(t *testing.T) {
	// 10,030/h for 100 minutes = 16,716.66.. ; rounding the hour fraction
	// first (1.67h) would give 16,750.
	got := generic.WonFromInt(10030).MulFrac(100, 60).Floor()
	assert.Equal(t, int64(16716), got.Int64())

	assert.True(t, generic.WonFromInt(5).MulFrac(1, 0).IsZero())
}

func TestWon_Floors(t *testing.T) {
	cases := []struct {
		in      string
		floor   int64
		floor10 int64
	}{
		{"2635.29", 2635, 2630},
		{"255", 255, 250},
		{"9181.55", 9181, 9180},
		{"9", 9, 0},
		{"0", 0, 0},
	}
	for _, c := range cases {
		w := generic.Won{Value: generic.MustParseDecimal(c.in)}
		assert.Equal(t, c.floor, w.Floor().Int64(), c.in)
		assert.Equal(t, c.floor10, w.FloorTo10().Int64(), c.in)
	}
}

func TestWon_Arithmetic(t *testing.T) {
	a, b := generic.WonFromInt(1200), generic.WonFromInt(800)

	assert.Equal(t, int64(2000), a.Add(b).Int64())
	assert.Equal(t, int64(400), a.Sub(b).Int64())
	assert.Equal(t, int64(36), a.MulRate("0.03").Int64())
	assert.Equal(t, int64(2000), generic.SumWon(a, b).Int64())
	assert.True(t, generic.SumWon().IsZero())
	assert.True(t, a.GreaterThan(b))
	assert.False(t, b.Sub(a).IsPositive())
}
