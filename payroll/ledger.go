/*
ledger.go - Itemized payroll ledger

PURPOSE:
  Every total in a Result is the sum of its ledger. The ledger is computed
  fresh on each run and never mutated afterward; previews (preview.go) derive
  new totals from it instead of re-running the range.

ENTRY KINDS:
  WORK          one per shift dated inside the requested range
  WEEKLY        one per week whose Sunday is in range and whose ungated
                weekly-holiday pay is positive
  MONTHLY_BASE  one per range for monthly-pay employees, dated at range start

ORDERING:
  By date ascending. On the same date WEEKLY sorts after every other kind;
  otherwise input order is kept.
*/
package payroll

import (
	"sort"

	"github.com/warp/shift-payroll/generic"
)

// EntryKind tags a ledger row.
type EntryKind string

const (
	EntryWork        EntryKind = "WORK"
	EntryWeekly      EntryKind = "WEEKLY"
	EntryMonthlyBase EntryKind = "MONTHLY_BASE"
)

// LedgerEntry is one immutable ledger row.
type LedgerEntry struct {
	Kind       EntryKind
	EmployeeID string
	Date       generic.Date

	// WORK
	ShiftID          string
	Start            generic.ClockTime
	End              generic.ClockTime
	PayType          PayType
	RawMinutes       int
	BreakMinutes     int
	EffectiveMinutes int
	NightMinutes     int
	OvertimeMinutes  int
	HolidayWork      bool

	// WEEKLY
	WeekStart   generic.Date
	WeekMinutes int

	BasePay     generic.Won
	NightPay    generic.Won
	OvertimePay generic.Won
	HolidayPay  generic.Won
	WeeklyPay   generic.Won

	PotentialNightPay    generic.Won
	PotentialOvertimePay generic.Won
	PotentialHolidayPay  generic.Won
	PotentialWeeklyPay   generic.Won
}

// Total is the paid amount of the row.
func (e LedgerEntry) Total() generic.Won {
	return generic.SumWon(e.BasePay, e.NightPay, e.OvertimePay, e.HolidayPay, e.WeeklyPay)
}

func workEntry(s Shift, sp ShiftPay) LedgerEntry {
	return LedgerEntry{
		Kind:                 EntryWork,
		EmployeeID:           s.EmployeeID,
		Date:                 s.Date,
		ShiftID:              s.ID,
		Start:                s.Start,
		End:                  s.End,
		PayType:              sp.PayType,
		RawMinutes:           sp.RawMinutes,
		BreakMinutes:         deducted(sp),
		EffectiveMinutes:     sp.EffectiveMinutes,
		NightMinutes:         sp.NightMinutes,
		OvertimeMinutes:      sp.OvertimeMinutes,
		HolidayWork:          sp.HolidayWork,
		BasePay:              sp.BasePay,
		NightPay:             sp.NightPay,
		OvertimePay:          sp.OvertimePay,
		HolidayPay:           sp.HolidayPay,
		WeeklyPay:            generic.ZeroWon,
		PotentialNightPay:    sp.PotentialNightPay,
		PotentialOvertimePay: sp.PotentialOvertimePay,
		PotentialHolidayPay:  sp.PotentialHolidayPay,
		PotentialWeeklyPay:   generic.ZeroWon,
	}
}

func deducted(sp ShiftPay) int {
	if sp.BreakDeducted {
		return sp.BreakMinutes
	}
	return 0
}

func weeklyEntry(employeeID string, ws WeekSummary) LedgerEntry {
	z := generic.ZeroWon
	return LedgerEntry{
		Kind:                 EntryWeekly,
		EmployeeID:           employeeID,
		Date:                 ws.Week.End,
		WeekStart:            ws.Week.Start,
		WeekMinutes:          ws.Minutes,
		BasePay:              z,
		NightPay:             z,
		OvertimePay:          z,
		HolidayPay:           z,
		WeeklyPay:            ws.Pay,
		PotentialNightPay:    z,
		PotentialOvertimePay: z,
		PotentialHolidayPay:  z,
		PotentialWeeklyPay:   ws.PotentialPay,
	}
}

func monthlyBaseEntry(employeeID string, date generic.Date, amount int64) LedgerEntry {
	z := generic.ZeroWon
	return LedgerEntry{
		Kind:                 EntryMonthlyBase,
		EmployeeID:           employeeID,
		Date:                 date,
		PayType:              PayMonthly,
		BasePay:              generic.WonFromInt(amount),
		NightPay:             z,
		OvertimePay:          z,
		HolidayPay:           z,
		WeeklyPay:            z,
		PotentialNightPay:    z,
		PotentialOvertimePay: z,
		PotentialHolidayPay:  z,
		PotentialWeeklyPay:   z,
	}
}

// SortLedger orders entries by date, WEEKLY last within a date. Stable.
func SortLedger(entries []LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		a, b := entries[i], entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Kind != EntryWeekly && b.Kind == EntryWeekly
	})
}
