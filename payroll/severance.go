package payroll

import "github.com/warp/shift-payroll/generic"

// =============================================================================
// SEVERANCE (퇴직금) - Statutory estimate at separation
// =============================================================================
//
//   averageDailyWage = wages of the 3 calendar months before EndDate / days in them
//   severance        = floor(averageDailyWage * 30 * serviceDays / 365)
//
// Owed only after at least one year (365 days) of service.

const (
	severanceMinServiceDays = 365
	severanceLookbackMonths = 3
)

// SeveranceInput is what the estimate reads. WagesLast3Months is the gross
// paid over the lookback window (e.g. the sum of Result.Gross).
type SeveranceInput struct {
	HireDate         generic.Date
	EndDate          generic.Date
	WagesLast3Months int64
}

// Severance is the estimate and how it was derived.
type Severance struct {
	Eligible         bool
	ServiceDays      int
	LookbackDays     int
	AverageDailyWage generic.Won // floored to whole won
	Amount           generic.Won
}

// LookbackPeriod is the 3 calendar months ending the day before separation.
func LookbackPeriod(endDate generic.Date) generic.Period {
	return generic.Period{Start: endDate.AddMonths(-severanceLookbackMonths), End: endDate.AddDays(-1)}
}

// EstimateSeverance computes the statutory severance estimate.
func EstimateSeverance(in SeveranceInput) Severance {
	s := Severance{AverageDailyWage: generic.ZeroWon, Amount: generic.ZeroWon}
	if in.HireDate.IsZero() || in.EndDate.IsZero() || in.EndDate.Before(in.HireDate) {
		return s
	}

	s.ServiceDays = generic.DaysBetween(in.HireDate, in.EndDate)
	s.LookbackDays = LookbackPeriod(in.EndDate).Len()
	if s.ServiceDays < severanceMinServiceDays || s.LookbackDays == 0 || in.WagesLast3Months <= 0 {
		return s
	}

	s.Eligible = true
	wages := generic.WonFromInt(in.WagesLast3Months)
	s.AverageDailyWage = wages.MulFrac(1, int64(s.LookbackDays)).Floor()
	s.Amount = wages.MulFrac(30*int64(s.ServiceDays), int64(s.LookbackDays)*365).Floor()
	return s
}
