/*
errors.go - Sentinel errors for calendar and range parsing

USAGE:
  Callers at the input boundary wrap these with the offending value:

    if errors.Is(err, generic.ErrInvalidClock) {
        // drop the shift, keep computing
    }

  The payroll engine itself never returns them: it degrades malformed input
  to zero-valued contributions. Only boundary code (JSON decoding, strict
  validation) surfaces them.
*/
package generic

import "errors"

var (
	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrInvalidDate is returned when a calendar day cannot be parsed.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidClock is returned when a time of day cannot be parsed.
	ErrInvalidClock = errors.New("invalid time of day")
)

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidClock)
}
