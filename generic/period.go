package generic

import "time"

// =============================================================================
// PERIOD - Inclusive date range
// =============================================================================

// Period is the inclusive range [Start, End] a computation is requested for.
//
// Examples:
//   - A pay month: 2025-03-01 .. 2025-03-31
//   - A single week: 2025-03-03 .. 2025-03-09
type Period struct {
	Start Date
	End   Date
}

// NewPeriod builds a period and checks that End is not before Start.
func NewPeriod(start, end Date) (Period, error) {
	p := Period{Start: start, End: end}
	if err := p.Validate(); err != nil {
		return Period{}, err
	}
	return p, nil
}

// MonthPeriod is the full calendar month containing year/month.
func MonthPeriod(year int, month time.Month) Period {
	start := NewDate(year, month, 1)
	return Period{Start: start, End: start.AddMonths(1).AddDays(-1)}
}

// Validate returns ErrInvalidPeriod when End is before Start.
func (p Period) Validate() error {
	if p.Start.IsZero() || p.End.IsZero() || p.End.Before(p.Start) {
		return ErrInvalidPeriod
	}
	return nil
}

// Contains returns true if d is within [Start, End].
func (p Period) Contains(d Date) bool {
	return d.AfterOrEqual(p.Start) && d.BeforeOrEqual(p.End)
}

// Len is the number of days in the period.
func (p Period) Len() int {
	if p.End.Before(p.Start) {
		return 0
	}
	return DaysBetween(p.Start, p.End) + 1
}

func (p Period) String() string {
	return "[" + p.Start.String() + ", " + p.End.String() + "]"
}

// =============================================================================
// WEEK - Monday..Sunday, the unit of weekly-hour aggregation
// =============================================================================

// Week is a Monday-to-Sunday week.
type Week struct {
	Start Date // Monday
	End   Date // Sunday
}

// WeekStart returns the Monday on or before d.
func WeekStart(d Date) Date {
	offset := (int(d.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return d.AddDays(-offset)
}

// WeekEnd returns the Sunday on or after d.
func WeekEnd(d Date) Date {
	return WeekStart(d).AddDays(6)
}

// WeekOf returns the week containing d.
func WeekOf(d Date) Week {
	start := WeekStart(d)
	return Week{Start: start, End: start.AddDays(6)}
}

// ContextWindow widens the period to whole weeks: from the Monday of the week
// containing Start through the Sunday of the week containing End.
func (p Period) ContextWindow() Period {
	return Period{Start: WeekStart(p.Start), End: WeekEnd(p.End)}
}

// Weeks returns the distinct weeks covering the context window, in order.
func (p Period) Weeks() []Week {
	if p.End.Before(p.Start) {
		return nil
	}
	window := p.ContextWindow()
	seen := make(map[Date]bool)
	var weeks []Week
	for start := window.Start; start.BeforeOrEqual(window.End); start = start.AddDays(7) {
		w := WeekOf(start)
		if seen[w.Start] {
			continue
		}
		seen[w.Start] = true
		weeks = append(weeks, w)
	}
	return weeks
}
