package payroll

import (
	"fmt"
	"strings"

	"github.com/warp/shift-payroll/generic"
)

// =============================================================================
// VALIDATION - Optional strict check; Compute never requires it
// =============================================================================

// Issue is one malformed record.
type Issue struct {
	Record string // "period", "employee", "shift", "override"
	ID     string
	Field  string
	Reason string
}

func (i Issue) String() string {
	if i.ID == "" {
		return fmt.Sprintf("%s.%s: %s", i.Record, i.Field, i.Reason)
	}
	return fmt.Sprintf("%s[%s].%s: %s", i.Record, i.ID, i.Field, i.Reason)
}

// ValidationError enumerates every issue found in an Input.
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, is := range e.Issues {
		parts[i] = is.String()
	}
	return fmt.Sprintf("%d invalid payroll record(s): %s", len(e.Issues), strings.Join(parts, "; "))
}

// Unwrap lets errors.Is match ErrInvalidPeriod when the range is bad.
func (e *ValidationError) Unwrap() error {
	for _, is := range e.Issues {
		if is.Record == "period" {
			return generic.ErrInvalidPeriod
		}
	}
	return nil
}

// Validate reports malformed records. Issues only zero out the record's own
// contribution in Compute; the run itself still succeeds.
func Validate(in Input) error {
	var issues []Issue
	add := func(record, id, field, reason string) {
		issues = append(issues, Issue{Record: record, ID: id, Field: field, Reason: reason})
	}

	if err := in.Period.Validate(); err != nil {
		add("period", "", "end", "must not be before start")
	}

	known := make(map[string]bool, len(in.Employees))
	for _, e := range in.Employees {
		switch {
		case e.ID == "":
			add("employee", "", "id", "is required")
		case known[e.ID]:
			add("employee", e.ID, "id", "is duplicated")
		}
		known[e.ID] = true

		if e.HourlyWage < 0 {
			add("employee", e.ID, "hourly_wage", "must be non-negative")
		}
		if valueOr(e.DailyWage, 0) < 0 {
			add("employee", e.ID, "daily_wage", "must be non-negative")
		}
		if valueOr(e.MonthlyWage, 0) < 0 {
			add("employee", e.ID, "monthly_wage", "must be non-negative")
		}
		if e.HireDate != nil && e.EndDate != nil && e.EndDate.Before(*e.HireDate) {
			add("employee", e.ID, "end_date", "must not be before hire_date")
		}
	}

	for _, s := range in.Shifts {
		if !known[s.EmployeeID] {
			add("shift", s.ID, "employee_id", "references an unknown employee")
		}
		if s.Date.IsZero() {
			add("shift", s.ID, "date", "is required")
		}
		if valueOr(s.DailyPayAmount, 0) < 0 {
			add("shift", s.ID, "daily_pay_amount", "must be non-negative")
		}
	}

	seen := make(map[string]bool, len(in.Overrides))
	for _, o := range in.Overrides {
		if seen[o.EmployeeID] {
			add("override", o.EmployeeID, "employee_id", "has more than one override")
		}
		seen[o.EmployeeID] = true
		if valueOr(o.MonthlyOverride, 0) < 0 {
			add("override", o.EmployeeID, "monthly_override", "must be non-negative")
		}
	}

	if len(issues) > 0 {
		return &ValidationError{Issues: issues}
	}
	return nil
}
