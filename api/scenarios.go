/*
scenarios.go - Built-in demo payroll inputs

PURPOSE:

	Provides ready-made compute requests that exercise specific payroll
	rules. Each scenario is a complete ComputeRequest body: it can be fetched,
	edited and posted to /api/payroll/compute, or run directly.

AVAILABLE SCENARIOS:

	part-timer:       Small store, 15h weeks, weekly-holiday pay only
	five-plus-night:  5+ store, late shifts with night and overtime premiums
	month-spillover:  Range starting mid-week; earlier days count toward the week
	mixed-roster:     Hourly, daily and monthly staff with an override
	separation:       Employee leaving mid-week forfeits that week's allowance

USAGE VIA API:

	GET  /api/scenarios
	GET  /api/scenarios/five-plus-night
	POST /api/scenarios/five-plus-night/run

ADDING NEW SCENARIOS:
 1. Add to 'scenarios' slice with ID, name, description
 2. Write a builder returning a ComputeRequest
 3. Register it in scenarioBuilders
*/
package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/warp/shift-payroll/generic"
)

// ScenarioDTO describes a demo scenario.
type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

// =============================================================================
// SCENARIO DEFINITIONS
// =============================================================================

var scenarios = []ScenarioDTO{
	{
		ID:          "part-timer",
		Name:        "Part-Timer",
		Description: "Under-5 store: 3h weekday shifts reach the 15h weekly threshold",
		Category:    "weekly",
	},
	{
		ID:          "five-plus-night",
		Name:        "Five-Plus Night Shifts",
		Description: "5+ store: overnight shifts earn night and overtime premiums",
		Category:    "premiums",
	},
	{
		ID:          "month-spillover",
		Name:        "Month Spillover",
		Description: "April range: March 31 work counts toward the first week but is not paid",
		Category:    "weekly",
	},
	{
		ID:          "mixed-roster",
		Name:        "Mixed Roster",
		Description: "Hourly, daily and monthly staff; one employee with a confirmed monthly override",
		Category:    "pay-types",
	},
	{
		ID:          "separation",
		Name:        "Mid-Week Separation",
		Description: "Employee leaving on a Wednesday gets no weekly-holiday pay for that week",
		Category:    "weekly",
	},
}

var scenarioBuilders = map[string]func() ComputeRequest{
	"part-timer":      partTimerScenario,
	"five-plus-night": fivePlusNightScenario,
	"month-spillover": monthSpilloverScenario,
	"mixed-roster":    mixedRosterScenario,
	"separation":      separationScenario,
}

// ListScenarios returns available scenarios.
func (h *Handler) ListScenarios(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, scenarios)
}

// GetScenario returns the compute request of one scenario.
func (h *Handler) GetScenario(w http.ResponseWriter, r *http.Request) {
	build, ok := scenarioBuilders[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	writeJSON(w, http.StatusOK, build())
}

// RunScenario computes one scenario.
func (h *Handler) RunScenario(w http.ResponseWriter, r *http.Request) {
	build, ok := scenarioBuilders[chi.URLParam(r, "id")]
	if !ok {
		writeError(w, http.StatusNotFound, "Scenario not found", nil)
		return
	}
	h.compute(w, r, build())
}

// =============================================================================
// SCENARIO BUILDERS
// =============================================================================

func flag(v bool) *Flag {
	f := NewFlag(v)
	return &f
}

func i64(v int64) *int64 { return &v }

// weekdays returns Monday..Friday shifts for each listed Monday.
func weekdays(prefix, employeeID string, mondays []string, start, end string) []ShiftDTO {
	var out []ShiftDTO
	for _, monday := range mondays {
		first := generic.MustParseDate(monday)
		for i := 0; i < 5; i++ {
			day := first.AddDays(i).String()
			out = append(out, ShiftDTO{
				ID:         prefix + "-" + day,
				EmployeeID: employeeID,
				Date:       day,
				StartTime:  start,
				EndTime:    end,
			})
		}
	}
	return out
}

var (
	march        = generic.MonthPeriod(2025, time.March)
	april        = generic.MonthPeriod(2025, time.April)
	marchMondays = []string{"2025-03-03", "2025-03-10", "2025-03-17", "2025-03-24"}
)

func partTimerScenario() ComputeRequest {
	return ComputeRequest{
		StartDate: march.Start.String(),
		EndDate:   march.End.String(),
		Employees: []EmployeeDTO{{ID: "emp-jiwoo", Name: "Kim Jiwoo", HourlyWage: 10030}},
		Shifts:    weekdays("pt", "emp-jiwoo", marchMondays, "18:00", "21:00"),
		Settings: &SettingsDTO{StoreID: "cafe-1", PolicyFlagsDTO: PolicyFlagsDTO{
			IsFivePlus: flag(false),
		}},
	}
}

func fivePlusNightScenario() ComputeRequest {
	return ComputeRequest{
		StartDate: "2025-03-03",
		EndDate:   "2025-03-09",
		Employees: []EmployeeDTO{
			{ID: "emp-minho", Name: "Lee Minho", HourlyWage: 11000, EmploymentType: "four_insurance"},
			{ID: "emp-seoyeon", Name: "Park Seoyeon", HourlyWage: 10030},
		},
		Shifts: append(
			weekdays("night", "emp-minho", marchMondays[:1], "22:00", "08:00"),
			weekdays("eve", "emp-seoyeon", marchMondays[:1], "14:00", "23:00")...,
		),
		Settings: &SettingsDTO{StoreID: "pub-1", PolicyFlagsDTO: PolicyFlagsDTO{
			IsFivePlus:      flag(true),
			AutoDeductBreak: flag(true),
		}},
	}
}

func monthSpilloverScenario() ComputeRequest {
	return ComputeRequest{
		StartDate: april.Start.String(),
		EndDate:   april.End.String(),
		Employees: []EmployeeDTO{{ID: "emp-hana", Name: "Choi Hana", HourlyWage: 10000}},
		Shifts: []ShiftDTO{
			{ID: "mar31", EmployeeID: "emp-hana", Date: "2025-03-31", StartTime: "09:00", EndTime: "19:00"},
			{ID: "apr1", EmployeeID: "emp-hana", Date: "2025-04-01", StartTime: "09:00", EndTime: "12:00"},
			{ID: "apr2", EmployeeID: "emp-hana", Date: "2025-04-02", StartTime: "09:00", EndTime: "12:00"},
		},
	}
}

func mixedRosterScenario() ComputeRequest {
	shifts := weekdays("h", "emp-hourly", marchMondays, "09:00", "15:00")
	shifts = append(shifts, weekdays("d", "emp-daily", marchMondays[:2], "10:00", "20:00")...)
	shifts = append(shifts, weekdays("m", "emp-monthly", marchMondays, "09:00", "18:00")...)
	shifts = append(shifts, weekdays("o", "emp-override", marchMondays, "09:00", "18:00")...)

	return ComputeRequest{
		StartDate: march.Start.String(),
		EndDate:   march.End.String(),
		Employees: []EmployeeDTO{
			{ID: "emp-hourly", Name: "Jung Yuna", HourlyWage: 10500},
			{ID: "emp-daily", Name: "Kang Dohyun", DailyWage: i64(110_000)},
			{ID: "emp-monthly", Name: "Yoon Jisoo", MonthlyWage: i64(2_300_000), EmploymentType: "four_insurance"},
			{ID: "emp-override", Name: "Han Sora", HourlyWage: 10030},
		},
		Shifts: shifts,
		Settings: &SettingsDTO{StoreID: "shop-1", PolicyFlagsDTO: PolicyFlagsDTO{
			IsFivePlus:      flag(true),
			AutoDeductBreak: flag(true),
		}},
		Overrides: []OverrideDTO{{EmployeeID: "emp-override", MonthlyOverride: i64(1_800_000)}},
	}
}

func separationScenario() ComputeRequest {
	return ComputeRequest{
		StartDate: "2025-03-03",
		EndDate:   "2025-03-16",
		Employees: []EmployeeDTO{{ID: "emp-leaver", Name: "Oh Taeyang", HourlyWage: 10000, EndDate: "2025-03-12"}},
		Shifts:    weekdays("s", "emp-leaver", marchMondays[:2], "09:00", "17:00"),
	}
}
