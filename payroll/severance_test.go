package payroll_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/warp/shift-payroll/payroll"
)

func TestLookbackPeriod_ThreeCalendarMonths(t *testing.T) {
	cases := []struct {
		end   string
		start string
		last  string
		days  int
	}{
		{"2025-01-01", "2024-10-01", "2024-12-31", 92},
		{"2025-06-01", "2025-03-01", "2025-05-31", 92},
		// Month ends clamp to the shorter target month instead of rolling over
		{"2025-05-31", "2025-02-28", "2025-05-30", 92},
		{"2025-03-31", "2024-12-31", "2025-03-30", 90},
		{"2025-08-31", "2025-05-31", "2025-08-30", 92},
		{"2024-05-31", "2024-02-29", "2024-05-30", 92},
	}
	for _, c := range cases {
		t.Run(c.end, func(t *testing.T) {
			p := payroll.LookbackPeriod(d(c.end))

			assert.Equal(t, d(c.start), p.Start)
			assert.Equal(t, d(c.last), p.End)
			assert.Equal(t, c.days, p.Len())
		})
	}
}

func TestEstimateSeverance_MonthEndSeparation(t *testing.T) {
	// GIVEN: separation on May 31, lookback Feb 28 .. May 30 (92 days)
	s := payroll.EstimateSeverance(payroll.SeveranceInput{
		HireDate:         d("2023-05-31"),
		EndDate:          d("2025-05-31"),
		WagesLast3Months: 9_200_000,
	})

	// THEN: the average uses all 92 days; floor(9,200,000 * 30 * 731 / (92 * 365))
	assert.True(t, s.Eligible)
	assert.Equal(t, 731, s.ServiceDays)
	assert.Equal(t, 92, s.LookbackDays)
	assert.Equal(t, int64(100_000), won(s.AverageDailyWage))
	assert.Equal(t, int64(6_008_219), won(s.Amount))
}

func TestEstimateSeverance_Eligible(t *testing.T) {
	// GIVEN: 366 days of service and 9,200,000 over a 92 day lookback
	s := payroll.EstimateSeverance(payroll.SeveranceInput{
		HireDate:         d("2024-01-01"),
		EndDate:          d("2025-01-01"),
		WagesLast3Months: 9_200_000,
	})

	// THEN: 100,000/day; floor(100,000 * 30 * 366 / 365)
	assert.True(t, s.Eligible)
	assert.Equal(t, 366, s.ServiceDays)
	assert.Equal(t, 92, s.LookbackDays)
	assert.Equal(t, int64(100_000), won(s.AverageDailyWage))
	assert.Equal(t, int64(3_008_219), won(s.Amount))
}

func TestEstimateSeverance_OneYearBoundary(t *testing.T) {
	cases := []struct {
		hire     string
		days     int
		eligible bool
	}{
		{"2024-01-02", 365, true},
		{"2024-01-03", 364, false},
	}
	for _, c := range cases {
		s := payroll.EstimateSeverance(payroll.SeveranceInput{
			HireDate:         d(c.hire),
			EndDate:          d("2025-01-01"),
			WagesLast3Months: 9_200_000,
		})
		assert.Equal(t, c.days, s.ServiceDays, c.hire)
		assert.Equal(t, c.eligible, s.Eligible, c.hire)
		if !c.eligible {
			assert.True(t, s.Amount.IsZero(), c.hire)
		}
	}
}

func TestEstimateSeverance_NotOwed(t *testing.T) {
	cases := []struct {
		name string
		in   payroll.SeveranceInput
	}{
		{"no wages", payroll.SeveranceInput{HireDate: d("2020-01-01"), EndDate: d("2025-01-01")}},
		{"end before hire", payroll.SeveranceInput{HireDate: d("2025-01-01"), EndDate: d("2020-01-01"), WagesLast3Months: 1}},
		{"missing dates", payroll.SeveranceInput{WagesLast3Months: 9_000_000}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			s := payroll.EstimateSeverance(c.in)
			assert.False(t, s.Eligible)
			assert.True(t, s.Amount.IsZero())
		})
	}
}
