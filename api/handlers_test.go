/*
handlers_test.go - HTTP tests for the payroll API

Tests for:
- Compute (happy path, lenient and unreadable flags, dropped shifts, bad ranges)
- Preview round-trip of a computed result
- Severance, scenarios, health and metrics
*/
package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warp/shift-payroll/config"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{CORSOrigins: []string{"http://localhost:5173"}, MaxBodyBytes: 1 << 20}
	return NewRouter(NewHandler(nil, NewMetrics(), cfg.MaxBodyBytes), cfg)
}

func do(t *testing.T, srv http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

const singleDayBody = `{
	"start_date": "2025-03-03",
	"end_date": "2025-03-03",
	"employees": [{"id": "e1", "name": "Kim", "hourly_wage": 10000}],
	"shifts": [{"id": "s1", "employee_id": "e1", "date": "2025-03-03", "start_time": "09:00", "end_time": "18:00"}],
	"settings": {"is_five_plus": true, "auto_deduct_break": true}
}`

// =============================================================================
// COMPUTE
// =============================================================================

func TestComputePayroll_SingleDay(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/payroll/compute", singleDayBody)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decodeBody[ComputeResponse](t, rec)
	_, err := uuid.Parse(resp.RunID)
	assert.NoError(t, err)
	assert.Empty(t, resp.Warnings)
	require.Len(t, resp.Results, 1)

	r := resp.Results[0]
	assert.Equal(t, int64(80000), r.GrossPay)
	assert.Equal(t, int64(2640), r.Tax.Total)
	assert.Equal(t, int64(77360), r.NetPay)
	require.Len(t, r.Ledger, 1)
	assert.Equal(t, "WORK", r.Ledger[0].Type)
	assert.Equal(t, 60, r.Ledger[0].BreakMinutes)
	assert.Equal(t, "09:00", r.Ledger[0].StartTime)
}

func TestComputePayroll_LenientFlags(t *testing.T) {
	// GIVEN: spreadsheet-style booleans on the store settings
	body := `{
		"start_date": "2025-03-03", "end_date": "2025-03-03",
		"employees": [{"id": "e1", "hourly_wage": 10000}],
		"shifts": [{"id": "s1", "employee_id": "e1", "date": "2025-03-03", "start_time": "14:00", "end_time": "23:00"}],
		"settings": {"is_five_plus": "Y", "pay_night": 1, "auto_deduct_break": "true", "pay_overtime": null}
	}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	r := decodeBody[ComputeResponse](t, rec).Results[0]
	assert.True(t, r.Policy.IsFivePlus)
	assert.True(t, r.Policy.AutoDeductBreak)
	assert.True(t, r.Policy.PayOvertime, "null falls through to the default")
	assert.Equal(t, int64(5000), r.Totals.Night)
}

func TestComputePayroll_UnknownFlagIsUnsetWithWarning(t *testing.T) {
	// GIVEN: a settings flag nobody can read
	body := strings.Replace(singleDayBody, `"is_five_plus": true`, `"is_five_plus": "maybe"`, 1)

	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// THEN: the run goes ahead with the default and says why
	resp := decodeBody[ComputeResponse](t, rec)
	assert.Equal(t, []string{`settings: is_five_plus: invalid boolean flag: "maybe" ignored`}, resp.Warnings)
	r := resp.Results[0]
	assert.False(t, r.Policy.IsFivePlus)
	assert.True(t, r.Policy.AutoDeductBreak)
	assert.Equal(t, int64(80000), r.GrossPay)
}

func TestComputePayroll_UnknownShiftFlagKeepsRoster(t *testing.T) {
	// GIVEN: one shift of two carries an unreadable holiday flag
	body := `{
		"start_date": "2025-03-03", "end_date": "2025-03-04",
		"employees": [{"id": "e1", "hourly_wage": 10000}],
		"shifts": [
			{"id": "s1", "employee_id": "e1", "date": "2025-03-03", "start_time": "09:00", "end_time": "13:00", "is_holiday_work": "on"},
			{"id": "s2", "employee_id": "e1", "date": "2025-03-04", "start_time": "09:00", "end_time": "13:00"}
		],
		"settings": {"is_five_plus": true}
	}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// THEN: both shifts are paid, the flagged one as ordinary work
	resp := decodeBody[ComputeResponse](t, rec)
	assert.Equal(t, []string{`shift s1: is_holiday_work: invalid boolean flag: "on" ignored`}, resp.Warnings)
	r := resp.Results[0]
	assert.Equal(t, 2, r.ShiftCount)
	assert.Equal(t, int64(0), r.Totals.Holiday)
	assert.Equal(t, int64(80000), r.GrossPay)
}

func TestComputePayroll_MalformedShiftIsDroppedWithWarning(t *testing.T) {
	body := `{
		"start_date": "2025-03-03", "end_date": "2025-03-03",
		"employees": [{"id": "e1", "hourly_wage": 10000}],
		"shifts": [
			{"id": "good", "employee_id": "e1", "date": "2025-03-03", "start_time": "09:00", "end_time": "13:00"},
			{"id": "bad", "employee_id": "e1", "date": "2025-03-03", "start_time": "9am", "end_time": "13:00"}
		]
	}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ComputeResponse](t, rec)
	require.Len(t, resp.Warnings, 1)
	assert.Contains(t, resp.Warnings[0], "shift bad dropped")
	assert.Equal(t, 1, resp.Results[0].ShiftCount)
	assert.Equal(t, int64(40000), resp.Results[0].GrossPay)
}

func TestComputePayroll_RecordIssuesAreWarnings(t *testing.T) {
	body := `{
		"start_date": "2025-03-03", "end_date": "2025-03-03",
		"employees": [{"id": "e1", "hourly_wage": -5}],
		"shifts": [{"id": "s1", "employee_id": "ghost", "date": "2025-03-03", "start_time": "09:00", "end_time": "13:00"}]
	}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ComputeResponse](t, rec)
	assert.Len(t, resp.Warnings, 2)
	assert.Equal(t, int64(0), resp.Results[0].GrossPay)
}

func TestComputePayroll_BadRequests(t *testing.T) {
	cases := []struct {
		name string
		body string
		code int
	}{
		{"end before start", `{"start_date": "2025-03-31", "end_date": "2025-03-01"}`, http.StatusBadRequest},
		{"unparseable date", `{"start_date": "03/01/2025", "end_date": "2025-03-31"}`, http.StatusBadRequest},
		{"missing end", `{"start_date": "2025-03-01"}`, http.StatusBadRequest},
		{"employee without id", `{"start_date": "2025-03-01", "end_date": "2025-03-31", "employees": [{"name": "x"}]}`, http.StatusBadRequest},
		{"not json", `{`, http.StatusBadRequest},
	}
	srv := newTestServer(t)
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, "/api/payroll/compute", c.body)
			assert.Equal(t, c.code, rec.Code)
			errResp := decodeBody[ErrorResponse](t, rec)
			assert.NotEmpty(t, errResp.Error)
		})
	}
}

func TestComputePayroll_BodyTooLarge(t *testing.T) {
	cfg := config.Config{MaxBodyBytes: 64}
	srv := NewRouter(NewHandler(nil, NewMetrics(), cfg.MaxBodyBytes), cfg)

	rec := do(t, srv, http.MethodPost, "/api/payroll/compute", singleDayBody)
	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

// =============================================================================
// PREVIEW / VALIDATE
// =============================================================================

func TestPreviewPayroll_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	body := strings.Replace(singleDayBody, `"18:00"`, `"23:00"`, 1)

	rec := do(t, srv, http.MethodPost, "/api/payroll/compute", body)
	require.Equal(t, http.StatusOK, rec.Code)
	result := decodeBody[ComputeResponse](t, rec).Results[0]
	require.Equal(t, int64(85000), result.GrossPay)

	payload, err := json.Marshal(map[string]any{
		"result":  result,
		"toggles": map[string]any{"night": "0"},
	})
	require.NoError(t, err)

	rec = do(t, srv, http.MethodPost, "/api/payroll/preview", string(payload))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	p := decodeBody[PreviewResponse](t, rec)
	assert.Equal(t, int64(80000), p.Gross)
	assert.Equal(t, int64(2630), p.Tax)
	assert.Equal(t, int64(77370), p.NetPay)
	assert.Nil(t, p.TaxInfo)
}

func TestPreviewPayroll_RejectsUnknownToggle(t *testing.T) {
	body := `{"result": {"employee_id": "e1"}, "toggles": {"night": "maybe"}}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/preview", body)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	errResp := decodeBody[ErrorResponse](t, rec)
	assert.Equal(t, "Invalid toggles", errResp.Error)
	assert.Contains(t, errResp.Details, "night")
}

func TestValidatePayroll(t *testing.T) {
	body := `{"start_date": "2025-03-01", "end_date": "2025-03-31",
		"employees": [{"id": "e1"}, {"id": "e1"}]}`
	rec := do(t, newTestServer(t), http.MethodPost, "/api/payroll/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decodeBody[ValidateResponse](t, rec)
	assert.False(t, resp.Valid)
	assert.Equal(t, []string{"employee[e1].id: is duplicated"}, resp.Issues)
}

// =============================================================================
// SEVERANCE / SCENARIOS / OPS
// =============================================================================

func TestEstimateSeverance(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodPost, "/api/severance",
		`{"hire_date": "2024-01-01", "end_date": "2025-01-01", "wages_last_3_months": 9200000}`)
	require.Equal(t, http.StatusOK, rec.Code)
	s := decodeBody[SeveranceResponse](t, rec)
	assert.True(t, s.Eligible)
	assert.Equal(t, "2024-10-01", s.LookbackStart)
	assert.Equal(t, int64(3008219), s.Amount)

	rec = do(t, srv, http.MethodPost, "/api/severance",
		`{"hire_date": "2025-01-01", "end_date": "2024-01-01", "wages_last_3_months": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/severance",
		`{"hire_date": "2024-01-01", "end_date": "2025-01-01", "wages_last_3_months": -1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestScenarios(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/scenarios", "")
	require.Equal(t, http.StatusOK, rec.Code)
	list := decodeBody[[]ScenarioDTO](t, rec)
	assert.Len(t, list, len(scenarioBuilders))

	for _, s := range list {
		rec := do(t, srv, http.MethodPost, "/api/scenarios/"+s.ID+"/run", "")
		require.Equal(t, http.StatusOK, rec.Code, s.ID)
		resp := decodeBody[ComputeResponse](t, rec)
		assert.NotEmpty(t, resp.Results, s.ID)
		assert.Empty(t, resp.Warnings, s.ID)
	}

	rec = do(t, srv, http.MethodGet, "/api/scenarios/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestScenario_MonthSpillover(t *testing.T) {
	rec := do(t, newTestServer(t), http.MethodPost, "/api/scenarios/month-spillover/run", "")
	require.Equal(t, http.StatusOK, rec.Code)

	r := decodeBody[ComputeResponse](t, rec).Results[0]
	assert.Equal(t, int64(60000), r.Totals.Base)
	assert.Equal(t, int64(32000), r.Totals.Weekly)
}

func TestScenario_GetIsPostableToCompute(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/api/scenarios/mixed-roster", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/payroll/compute", rec.Body.String())
	require.Equal(t, http.StatusOK, rec.Code)
	results := decodeBody[ComputeResponse](t, rec).Results
	require.Len(t, results, 4)
	assert.Equal(t, int64(1_800_000), results[3].GrossPay)
	assert.True(t, results[3].OverrideApplied)
	assert.Equal(t, int64(2_300_000), results[2].Totals.Base)
}

func TestHealthAndMetrics(t *testing.T) {
	srv := newTestServer(t)

	rec := do(t, srv, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodPost, "/api/payroll/compute", singleDayBody)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, srv, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `payroll_runs_total{kind="compute"} 1`)
	assert.Contains(t, body, `payroll_http_requests_total{method="POST",route="/api/payroll/compute",status="200"} 1`)
	assert.Contains(t, body, "payroll_gross_pay_won_total 80000")
}

// =============================================================================
// FLAG
// =============================================================================

func TestFlag_UnmarshalJSON(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{`true`, true}, {`"true"`, true}, {`1`, true}, {`"1"`, true}, {`"Y"`, true}, {`"yes"`, true},
		{`false`, false}, {`"false"`, false}, {`0`, false}, {`"0"`, false}, {`"N"`, false}, {`""`, false},
	}
	for _, c := range cases {
		var f Flag
		require.NoError(t, json.Unmarshal([]byte(c.in), &f), c.in)
		assert.Equal(t, c.want, f.On(), c.in)
		assert.NoError(t, f.Err(), c.in)
	}

	var f Flag
	require.NoError(t, json.Unmarshal([]byte(`"maybe"`), &f))
	assert.ErrorIs(t, f.Err(), ErrInvalidFlag)
	assert.False(t, f.On())
	assert.Nil(t, f.Bool())

	out, err := json.Marshal(struct{ F *Flag }{flag(true)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"F": true}`, string(out))

	var dto PolicyFlagsDTO
	require.NoError(t, json.NewDecoder(bytes.NewBufferString(`{"pay_night": null}`)).Decode(&dto))
	assert.Nil(t, dto.PayNight.Bool())
}
