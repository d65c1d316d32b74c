package payroll

import "github.com/warp/shift-payroll/generic"

// =============================================================================
// SHIFT DECOMPOSITION - base / night / overtime / holiday-work for one shift
// =============================================================================

const (
	// Night window is [22:00, 06:00) of the next day.
	NightStartMinute = 22 * 60
	NightEndMinute   = 6 * 60

	// Work beyond 8 effective hours in one shift is overtime.
	DailyOvertimeThreshold = 8 * 60

	// Premiums are 50% of the hourly wage: pay = minutes * wage / 120.
	premiumDivisor = 120
)

// BreakMinutes is the statutory unpaid break for a shift of raw minutes:
// none under 4h, 30 minutes from 4h, 60 minutes from 8h.
func BreakMinutes(raw int) int {
	switch {
	case raw >= 480:
		return 60
	case raw >= 240:
		return 30
	default:
		return 0
	}
}

// nightWindows are the night intervals in minutes from the shift day's
// midnight. A shift starts before 24:00 and lasts at most 24h, so it can
// touch this morning, tonight and tomorrow night.
var nightWindows = [...][2]int{
	{0, NightEndMinute},
	{NightStartMinute, generic.MinutesPerDay + NightEndMinute},
	{generic.MinutesPerDay + NightStartMinute, 2 * generic.MinutesPerDay},
}

// NightMinutes is the overlap of [start, start+duration) with the night window.
func NightMinutes(start generic.ClockTime, duration int) int {
	if duration <= 0 {
		return 0
	}
	from := start.Minutes()
	to := from + duration
	total := 0
	for _, w := range nightWindows {
		lo, hi := max(from, w[0]), min(to, w[1])
		if hi > lo {
			total += hi - lo
		}
	}
	return total
}

// ShiftPay is the decomposition of one shift. Potential* amounts ignore the
// policy gates; the plain amounts are what is actually paid.
type ShiftPay struct {
	PayType          PayType
	RawMinutes       int
	BreakMinutes     int // statutory break for the raw length
	BreakDeducted    bool
	EffectiveMinutes int
	NightMinutes     int // reported for every pay type, premiums are hourly only
	OvertimeMinutes  int
	HolidayWork      bool

	BasePay     generic.Won
	NightPay    generic.Won
	OvertimePay generic.Won
	HolidayPay  generic.Won

	PotentialNightPay    generic.Won
	PotentialOvertimePay generic.Won
	PotentialHolidayPay  generic.Won
}

// shiftContext carries what the decomposition needs beyond the shift itself.
type shiftContext struct {
	employee Employee
	payType  PayType // employee basis after overrides
	policy   Policy
	holidays generic.HolidayCalendar
}

// DecomposeShift splits a shift into base pay and premiums.
func DecomposeShift(s Shift, emp Employee, policy Policy) ShiftPay {
	c := shiftContext{employee: emp, payType: emp.ResolvedPayType(), policy: policy, holidays: generic.NoHolidays{}}
	return c.decompose(s)
}

func (c shiftContext) decompose(s Shift) ShiftPay {
	payType := c.payType
	if s.PayType != nil {
		switch *s.PayType {
		case PayHourly, PayDaily, PayMonthly:
			payType = *s.PayType
		}
	}
	wage := generic.WonFromInt(c.employee.Wage())
	raw := s.RawMinutes()

	sp := ShiftPay{
		PayType:      payType,
		RawMinutes:   raw,
		BreakMinutes: BreakMinutes(raw),
		NightMinutes: NightMinutes(s.Start, raw),
		HolidayWork:  s.IsHolidayWork || c.holidays.IsHoliday(s.Date),
	}

	sp.BreakDeducted = c.policy.AutoDeductBreak && !payType.Fixed()
	sp.EffectiveMinutes = raw
	if sp.BreakDeducted {
		sp.EffectiveMinutes = raw - sp.BreakMinutes
	}
	sp.OvertimeMinutes = max(0, sp.EffectiveMinutes-DailyOvertimeThreshold)

	switch payType {
	case PayMonthly:
		// Monthly base is added once per range, not per shift.
		sp.BasePay = generic.ZeroWon
	case PayDaily:
		amount := valueOr(s.DailyPayAmount, valueOr(c.employee.DailyWage, 0))
		if amount < 0 {
			amount = 0
		}
		sp.BasePay = generic.WonFromInt(amount)
	default:
		sp.BasePay = wage.MulFrac(int64(sp.EffectiveMinutes), 60).Floor()
	}

	if payType.Fixed() {
		return sp
	}

	sp.PotentialNightPay = premium(wage, sp.NightMinutes)
	sp.PotentialOvertimePay = premium(wage, sp.OvertimeMinutes)
	if sp.HolidayWork {
		sp.PotentialHolidayPay = premium(wage, sp.EffectiveMinutes)
	}

	sp.NightPay = gate(c.policy.NightEnabled(), sp.PotentialNightPay)
	sp.OvertimePay = gate(c.policy.OvertimeEnabled(), sp.PotentialOvertimePay)
	sp.HolidayPay = gate(c.policy.HolidayEnabled(), sp.PotentialHolidayPay)
	return sp
}

// premium is floor(minutes/60 * wage * 0.5).
func premium(wage generic.Won, minutes int) generic.Won {
	if minutes <= 0 {
		return generic.ZeroWon
	}
	return wage.MulFrac(int64(minutes), premiumDivisor).Floor()
}

func gate(enabled bool, w generic.Won) generic.Won {
	if !enabled {
		return generic.ZeroWon
	}
	return w
}
