package generic

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// =============================================================================
// DATE - Calendar day (shifts, ranges and week boundaries are keyed by day)
// =============================================================================

const dateLayout = "2006-01-02"

// Date is a calendar day normalized to UTC midnight.
type Date struct {
	Time time.Time
}

// NewDate builds a Date from its components.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates any time.Time to its calendar day (in its own location).
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseDate parses an ISO calendar day ("2006-01-02").
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return DateOf(t), nil
}

// MustParseDate is ParseDate for literals in tests and scenarios.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Comparison
func (d Date) Before(other Date) bool        { return d.Time.Before(other.Time) }
func (d Date) Equal(other Date) bool         { return d.Time.Equal(other.Time) }
func (d Date) After(other Date) bool         { return d.Time.After(other.Time) }
func (d Date) BeforeOrEqual(other Date) bool { return !d.After(other) }
func (d Date) AfterOrEqual(other Date) bool  { return !d.Before(other) }

// Arithmetic
func (d Date) AddDays(n int) Date { return Date{Time: d.Time.AddDate(0, 0, n)} }

// AddMonths moves n calendar months. A day the target month lacks clamps to
// its last day: 2025-05-31 minus 3 months is 2025-02-28, not 2025-03-03.
func (d Date) AddMonths(n int) Date {
	first := NewDate(d.Year(), d.Month()+time.Month(n), 1)
	return first.AddDays(min(d.Day(), daysIn(first.Year(), first.Month())) - 1)
}

// daysIn is the number of days in year/month.
func daysIn(year int, month time.Month) int {
	return NewDate(year, month+1, 0).Day()
}

// Properties
func (d Date) Year() int              { return d.Time.Year() }
func (d Date) Month() time.Month      { return d.Time.Month() }
func (d Date) Day() int               { return d.Time.Day() }
func (d Date) Weekday() time.Weekday  { return d.Time.Weekday() }
func (d Date) IsZero() bool           { return d.Time.IsZero() }
func (d Date) String() string         { return d.Time.Format(dateLayout) }

// DaysBetween counts calendar days from -> to (negative if to is earlier).
func DaysBetween(from, to Date) int {
	return int(to.Time.Sub(from.Time).Hours() / 24)
}

// =============================================================================
// CLOCK TIME - Time of day in minutes since midnight
// =============================================================================

// MinutesPerDay is the length of one calendar day in minutes.
const MinutesPerDay = 24 * 60

// ClockTime is a time of day, stored as minutes since midnight in [0, 1440).
type ClockTime int

// NewClock builds a ClockTime; hour 24 wraps to midnight.
func NewClock(hour, minute int) ClockTime {
	return ClockTime(((hour*60+minute)%MinutesPerDay + MinutesPerDay) % MinutesPerDay)
}

// ParseClock accepts "H:MM", "HH:MM" and "HH:MM:SS" (seconds are dropped).
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 24 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 || (hour == 24 && minute != 0) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return NewClock(hour, minute), nil
}

// MustParseClock is ParseClock for literals.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c ClockTime) Minutes() int { return int(c) }
func (c ClockTime) Hour() int    { return int(c) / 60 }
func (c ClockTime) Minute() int  { return int(c) % 60 }

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// MinutesUntil returns the length of [c, end). An end earlier than the start
// is read as the next day.
func (c ClockTime) MinutesUntil(end ClockTime) int {
	d := int(end) - int(c)
	if d < 0 {
		d += MinutesPerDay
	}
	return d
}

// =============================================================================
// HOLIDAY CALENDAR - Designated holidays
// =============================================================================

// HolidayCalendar answers whether a day is a designated holiday.
type HolidayCalendar interface {
	IsHoliday(date Date) bool
}

// NoHolidays is the calendar used when none is configured.
type NoHolidays struct{}

func (NoHolidays) IsHoliday(Date) bool { return false }

// StaticHolidays is a fixed set of holiday dates.
type StaticHolidays map[Date]string

// NewStaticHolidays builds a calendar from dates, all named name.
func NewStaticHolidays(name string, dates ...Date) StaticHolidays {
	h := make(StaticHolidays, len(dates))
	for _, d := range dates {
		h[d] = name
	}
	return h
}

func (h StaticHolidays) IsHoliday(date Date) bool {
	_, ok := h[date]
	return ok
}
