/*
handlers.go - HTTP API handlers for the payroll engine

PURPOSE:
  Exposes the payroll engine over REST. Handlers decode and normalize JSON,
  call the pure engine, and serialize the result. Nothing is stored: every
  request carries the whole roster, schedule and policy it needs.

ENDPOINTS:
  Payroll:
    POST   /api/payroll/compute    Compute a range for a roster
    POST   /api/payroll/preview    Recompute one result with categories toggled
    POST   /api/payroll/validate   Strict record check, no computation

  Severance:
    POST   /api/severance          Statutory severance estimate

  Scenarios:
    GET    /api/scenarios          List demo inputs
    GET    /api/scenarios/{id}     One demo input (a compute request body)
    POST   /api/scenarios/{id}/run Compute a demo input

  Operations:
    GET    /healthz                Liveness
    GET    /metrics                Prometheus

REQUEST FLOW:
  1. Decode JSON (body size capped)
  2. Validate shape (struct tags)
  3. Normalize to domain types, collecting warnings
  4. Call payroll.Compute / RecomputeWithToggles / EstimateSeverance
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Malformed JSON, missing fields, invalid range, unreadable
         preview toggle
  - 404: Unknown scenario
  - 413: Body too large
  Malformed shifts, records and flags never fail a compute; they come
  back as warnings.

SEE ALSO:
  - dto.go: Request/response data structures
  - scenarios.go: Demo inputs
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/warp/shift-payroll/generic"
	"github.com/warp/shift-payroll/payroll"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	logger   *zap.Logger
	validate *validator.Validate
	metrics  *Metrics
	maxBody  int64
}

// NewHandler creates a handler. A nil logger or metrics is replaced by a no-op
// logger or a private registry.
func NewHandler(logger *zap.Logger, metrics *Metrics, maxBody int64) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}
	if maxBody <= 0 {
		maxBody = 4 << 20
	}
	return &Handler{
		logger:   logger.Named("api.payroll"),
		validate: newValidator(),
		metrics:  metrics,
		maxBody:  maxBody,
	}
}

// newValidator reports fields by their JSON names.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// =============================================================================
// PAYROLL HANDLERS
// =============================================================================

// ComputePayroll runs payroll for every employee in the request.
func (h *Handler) ComputePayroll(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if !h.decode(w, r, &req) {
		return
	}
	h.compute(w, r, req)
}

func (h *Handler) compute(w http.ResponseWriter, r *http.Request, req ComputeRequest) {
	in, warnings, err := toInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payroll range", err)
		return
	}

	var verr *payroll.ValidationError
	if err := payroll.Validate(in); errors.As(err, &verr) {
		for _, is := range verr.Issues {
			warnings = append(warnings, is.String())
		}
	}

	runID := uuid.New().String()
	results := payroll.Compute(in)

	resp := ComputeResponse{
		RunID:     runID,
		StartDate: in.Period.Start.String(),
		EndDate:   in.Period.End.String(),
		Results:   make([]ResultDTO, len(results)),
		Warnings:  warnings,
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}
	var gross int64
	for i, res := range results {
		resp.Results[i] = toResultDTO(res)
		gross += res.Gross.Int64()
	}

	h.metrics.observeCompute(len(results), gross, len(warnings))
	h.logger.Info("payroll computed",
		zap.String("run_id", runID),
		zap.String("period", in.Period.String()),
		zap.Int("employees", len(results)),
		zap.Int("shifts", len(in.Shifts)),
		zap.Int("warnings", len(warnings)),
		zap.Int64("gross", gross),
	)
	writeJSON(w, http.StatusOK, resp)
}

// PreviewPayroll re-sums one result with categories toggled off.
func (h *Handler) PreviewPayroll(w http.ResponseWriter, r *http.Request) {
	var req PreviewRequest
	if !h.decode(w, r, &req) {
		return
	}

	// A preview has no warnings channel, so a toggle it cannot read is rejected.
	if errs := req.Toggles.flagErrors(); len(errs) > 0 {
		writeError(w, http.StatusBadRequest, "Invalid toggles", errors.Join(errs...))
		return
	}

	preview := payroll.RecomputeWithToggles(fromResultDTO(req.Result), req.Toggles.toggles())
	h.metrics.observe("preview")
	h.logger.Debug("payroll preview",
		zap.String("employee_id", req.Result.EmployeeID),
		zap.Int64("gross", preview.Gross.Int64()),
		zap.Bool("exact_tax", req.Toggles.ExactTax.On()),
	)
	writeJSON(w, http.StatusOK, toPreviewResponse(preview))
}

// ValidatePayroll reports record-level issues without computing.
func (h *Handler) ValidatePayroll(w http.ResponseWriter, r *http.Request) {
	var req ComputeRequest
	if !h.decode(w, r, &req) {
		return
	}

	in, warnings, err := toInput(req)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid payroll range", err)
		return
	}

	issues := append([]string{}, warnings...)
	var verr *payroll.ValidationError
	if err := payroll.Validate(in); errors.As(err, &verr) {
		for _, is := range verr.Issues {
			issues = append(issues, is.String())
		}
	}
	writeJSON(w, http.StatusOK, ValidateResponse{Valid: len(issues) == 0, Issues: issues})
}

// =============================================================================
// SEVERANCE HANDLER
// =============================================================================

// EstimateSeverance returns the statutory severance estimate.
func (h *Handler) EstimateSeverance(w http.ResponseWriter, r *http.Request) {
	var req SeveranceRequest
	if !h.decode(w, r, &req) {
		return
	}

	hire, err := generic.ParseDate(req.HireDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid hire_date", err)
		return
	}
	end, err := generic.ParseDate(req.EndDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid end_date", err)
		return
	}
	if end.Before(hire) {
		writeError(w, http.StatusBadRequest, "end_date must not be before hire_date", generic.ErrInvalidPeriod)
		return
	}

	s := payroll.EstimateSeverance(payroll.SeveranceInput{HireDate: hire, EndDate: end, WagesLast3Months: req.WagesLast3Months})
	lookback := payroll.LookbackPeriod(end)
	h.metrics.observe("severance")

	writeJSON(w, http.StatusOK, SeveranceResponse{
		Eligible:         s.Eligible,
		ServiceDays:      s.ServiceDays,
		LookbackStart:    lookback.Start.String(),
		LookbackEnd:      lookback.End.String(),
		LookbackDays:     lookback.Len(),
		AverageDailyWage: s.AverageDailyWage.Int64(),
		Amount:           s.Amount.Int64(),
	})
}

// =============================================================================
// OPERATIONS
// =============================================================================

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// =============================================================================
// HELPERS
// =============================================================================

// decode reads a JSON body into dst and validates it. On failure the error
// response has already been written.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "Request body too large", err)
			return false
		}
		writeError(w, http.StatusBadRequest, "Invalid JSON", err)
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", validationDetails(err))
		return false
	}
	return true
}

// validationDetails flattens validator errors to "field: rule" strings.
func validationDetails(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, len(verrs))
	for i, fe := range verrs {
		parts[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
	}
	return errors.New(strings.Join(parts, "; "))
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
