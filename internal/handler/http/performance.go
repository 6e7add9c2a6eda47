package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/patpaw111/web-absn/internal/domain/performance"
	"github.com/patpaw111/web-absn/internal/handler/http/response"
	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

type PerformanceHandler interface {
	Report(w http.ResponseWriter, r *http.Request)
	GenerateRecap(w http.ResponseWriter, r *http.Request)
	DailyRecap(w http.ResponseWriter, r *http.Request)
	Dashboard(w http.ResponseWriter, r *http.Request)
}

type PerformanceHandlerImpl struct {
	performanceService performance.PerformanceService
}

type generateRecapRequest struct {
	Month int `json:"bulan"`
	Year  int `json:"tahun"`
}

func NewPerformanceHandler(performanceService performance.PerformanceService) PerformanceHandler {
	return &PerformanceHandlerImpl{performanceService: performanceService}
}

// parsePeriod reads the bulan, tahun and optional minggu query parameters.
func parsePeriod(r *http.Request) (performance.Period, error) {
	var errs validator.ValidationErrors
	var period performance.Period

	q := r.URL.Query()

	month, err := strconv.Atoi(q.Get("bulan"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "bulan",
			Message: "bulan must be a number",
		})
	}
	period.Month = month

	year, err := strconv.Atoi(q.Get("tahun"))
	if err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "tahun",
			Message: "tahun must be a number",
		})
	}
	period.Year = year

	if raw := q.Get("minggu"); raw != "" {
		week, err := strconv.Atoi(raw)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "minggu",
				Message: "minggu must be a number",
			})
		} else {
			period.Week = &week
		}
	}

	if len(errs) > 0 {
		return performance.Period{}, errs
	}
	return period, nil
}

// Report implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Report(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	policy, err := performance.PolicyByName(r.URL.Query().Get("policy"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	report, err := h.performanceService.GetPerformanceReport(r.Context(), period, policy)
	if err != nil {
		slog.Error("GetPerformanceReport service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, report)
}

// GenerateRecap implements PerformanceHandler.
func (h *PerformanceHandlerImpl) GenerateRecap(w http.ResponseWriter, r *http.Request) {
	var req generateRecapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("GenerateRecap decode error", "error", err)
		response.BadRequest(w, "invalid request body", nil)
		return
	}

	period := performance.Period{Month: req.Month, Year: req.Year}

	result, err := h.performanceService.GenerateDailyRecap(r.Context(), period)
	if err != nil {
		slog.Error("GenerateDailyRecap service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, result)
}

// DailyRecap implements PerformanceHandler.
func (h *PerformanceHandlerImpl) DailyRecap(w http.ResponseWriter, r *http.Request) {
	period, err := parsePeriod(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	rows, err := h.performanceService.GetDailyRecap(r.Context(), period)
	if err != nil {
		slog.Error("GetDailyRecap service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, rows)
}

// Dashboard implements PerformanceHandler.
func (h *PerformanceHandlerImpl) Dashboard(w http.ResponseWriter, r *http.Request) {
	summary, err := h.performanceService.GetDashboardSummary(r.Context())
	if err != nil {
		slog.Error("GetDashboardSummary service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.JSON(w, summary)
}
