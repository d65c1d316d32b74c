package payroll

import "github.com/warp/shift-payroll/generic"

// =============================================================================
// WEEKLY-HOLIDAY PAY (주휴수당)
// =============================================================================
//
// An hourly worker with at least 15 hours in a Monday..Sunday week earns a paid
// weekly holiday: 8 hours' pay scaled by weekHours/40, with the week capped
// at 40 hours.
//
//   weeklyPay = floor(min(weekMinutes, 2400) / 40 / 60 * 8 * wage)
//
// Week minutes are effective (break-deducted) minutes, and include shifts
// from the days of the week that fall before the requested range.

const (
	WeeklyThresholdMinutes = 15 * 60 // 900
	WeeklyCapMinutes       = 40 * 60 // 2400
	weeklyPaidHours        = 8
)

// WeeklyOutcome explains why a week did or did not earn weekly-holiday pay.
type WeeklyOutcome string

const (
	WeeklyEligible       WeeklyOutcome = "eligible"
	WeeklyOutOfRange     WeeklyOutcome = "sunday_out_of_range"
	WeeklyFixedPay       WeeklyOutcome = "fixed_pay_type"
	WeeklyBelowThreshold WeeklyOutcome = "below_threshold"
	WeeklyNoWage         WeeklyOutcome = "no_wage"
	WeeklySeparated      WeeklyOutcome = "separated"
)

// WeekSummary records one context week's aggregation.
type WeekSummary struct {
	Week          generic.Week
	Minutes       int // counted toward the 15h test
	CappedMinutes int
	Outcome       WeeklyOutcome
	Pay           generic.Won // gated
	PotentialPay  generic.Won // ungated
}

// WeeklyHolidayPay is the ungated allowance for weekMinutes at wage.
func WeeklyHolidayPay(weekMinutes int, wage int64) generic.Won {
	if weekMinutes < WeeklyThresholdMinutes || wage <= 0 {
		return generic.ZeroWon
	}
	capped := min(weekMinutes, WeeklyCapMinutes)
	return generic.WonFromInt(wage).
		MulFrac(int64(capped)*weeklyPaidHours, WeeklyCapMinutes).
		Floor()
}

// summarizeWeek applies the eligibility rules in order.
func summarizeWeek(week generic.Week, minutes int, rng generic.Period, emp Employee, payType PayType, policy Policy) WeekSummary {
	ws := WeekSummary{Week: week, Minutes: minutes, CappedMinutes: min(minutes, WeeklyCapMinutes)}

	switch {
	case !rng.Contains(week.End):
		ws.Outcome = WeeklyOutOfRange
	case payType.Fixed():
		ws.Outcome = WeeklyFixedPay
	case minutes < WeeklyThresholdMinutes:
		ws.Outcome = WeeklyBelowThreshold
	case emp.Wage() <= 0:
		ws.Outcome = WeeklyNoWage
	case emp.SeparatedBefore(week.End):
		ws.Outcome = WeeklySeparated
	default:
		ws.Outcome = WeeklyEligible
		ws.PotentialPay = WeeklyHolidayPay(minutes, emp.Wage())
		ws.Pay = gate(policy.WeeklyEnabled(), ws.PotentialPay)
	}
	return ws
}
