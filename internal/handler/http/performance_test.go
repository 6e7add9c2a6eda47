package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/domain/performance"
)

type stubPerformanceService struct {
	report     performance.PeriodReport
	lastPeriod performance.Period
	lastPolicy performance.Policy
}

func (s *stubPerformanceService) GetPerformanceReport(ctx context.Context, period performance.Period, policy performance.Policy) (performance.PeriodReport, error) {
	s.lastPeriod = period
	s.lastPolicy = policy
	return s.report, nil
}

func (s *stubPerformanceService) GenerateDailyRecap(ctx context.Context, period performance.Period) (performance.GenerateRecapResult, error) {
	s.lastPeriod = period
	return performance.GenerateRecapResult{Success: true, Total: 42}, nil
}

func (s *stubPerformanceService) GetDailyRecap(ctx context.Context, period performance.Period) ([]performance.DailyRecapRow, error) {
	s.lastPeriod = period
	return nil, nil
}

func (s *stubPerformanceService) GetDashboardSummary(ctx context.Context) (performance.DashboardSummary, error) {
	return performance.DashboardSummary{TotalEmployees: 7, PresentToday: 5, LateToday: 1, AbsentToday: 1}, nil
}

func TestReportParsesPeriodAndPolicy(t *testing.T) {
	score := 88.0
	svc := &stubPerformanceService{
		report: performance.PeriodReport{
			Data: []performance.EmployeePeriodSummary{
				{EmployeeID: "emp-1", FullName: "Budi", DaysAssigned: 10, PerformanceScore: &score},
			},
			TotalEmployees: 1,
			AverageScore:   88.0,
		},
	}
	handler := NewPerformanceHandler(svc)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/performance/report?bulan=3&tahun=2026&minggu=1&policy=saw", nil)
	rec := httptest.NewRecorder()
	handler.Report(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastPeriod.Month)
	assert.Equal(t, 2026, svc.lastPeriod.Year)
	require.NotNil(t, svc.lastPeriod.Week)
	assert.Equal(t, 1, *svc.lastPeriod.Week)
	assert.Equal(t, performance.VariantSAW, svc.lastPolicy.Variant)

	var report performance.PeriodReport
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &report))
	assert.Equal(t, 1, report.TotalEmployees)
	require.Len(t, report.Data, 1)
	require.NotNil(t, report.Data[0].PerformanceScore)
	assert.Equal(t, 88.0, *report.Data[0].PerformanceScore)
}

func TestReportRejectsNonNumericPeriod(t *testing.T) {
	handler := NewPerformanceHandler(&stubPerformanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/performance/report?bulan=abc&tahun=2026", nil)
	rec := httptest.NewRecorder()
	handler.Report(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body, "error")
}

func TestReportRejectsUnknownPolicy(t *testing.T) {
	handler := NewPerformanceHandler(&stubPerformanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/performance/report?bulan=3&tahun=2026&policy=bogus", nil)
	rec := httptest.NewRecorder()
	handler.Report(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateRecapReturnsTotal(t *testing.T) {
	svc := &stubPerformanceService{}
	handler := NewPerformanceHandler(svc)

	body := strings.NewReader(`{"bulan": 3, "tahun": 2026}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/performance/recap/generate", body)
	rec := httptest.NewRecorder()
	handler.GenerateRecap(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 3, svc.lastPeriod.Month)
	assert.Equal(t, 2026, svc.lastPeriod.Year)

	var result performance.GenerateRecapResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 42, result.Total)
}

func TestGenerateRecapRejectsMalformedBody(t *testing.T) {
	handler := NewPerformanceHandler(&stubPerformanceService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/performance/recap/generate", strings.NewReader("{"))
	rec := httptest.NewRecorder()
	handler.GenerateRecap(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardReturnsSummary(t *testing.T) {
	handler := NewPerformanceHandler(&stubPerformanceService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/dashboard/summary", nil)
	rec := httptest.NewRecorder()
	handler.Dashboard(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var summary performance.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 7, summary.TotalEmployees)
	assert.Equal(t, 5, summary.PresentToday)
}
