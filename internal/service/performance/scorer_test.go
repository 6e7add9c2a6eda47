package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/domain/performance"
)

func TestPointDeductionScore(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 20, Present: 15, Late: 3, Absent: 2},
	}

	report := BuildReport([]string{"emp-1"}, counters, map[string]string{"emp-1": "Ani"}, performance.DefaultPolicy())

	require.Len(t, report.Data, 1)
	s := report.Data[0]
	require.NotNil(t, s.PerformanceScore)
	assert.Equal(t, 65.0, *s.PerformanceScore)
	assert.Equal(t, 90.0, s.AttendanceRate)
	assert.Equal(t, "Ani", s.FullName)
}

func TestPointDeductionScoreClampsAtZero(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 20, Absent: 15},
	}

	report := BuildReport([]string{"emp-1"}, counters, nil, performance.DefaultPolicy())

	require.NotNil(t, report.Data[0].PerformanceScore)
	assert.Equal(t, 0.0, *report.Data[0].PerformanceScore)
}

func TestUnassignedEmployeeHasNilScore(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 0},
	}

	report := BuildReport([]string{"emp-1"}, counters, nil, performance.DefaultPolicy())

	assert.Nil(t, report.Data[0].PerformanceScore)
	assert.Equal(t, 0.0, report.Data[0].AttendanceRate)
	assert.Equal(t, 0, report.NeedsCoaching)
	assert.Equal(t, 0.0, report.AverageScore)
}

func TestRankingSortsDescWithNilLast(t *testing.T) {
	counters := map[string]*Counters{
		"low":  {DaysAssigned: 10, Late: 10},       // 50
		"none": {DaysAssigned: 0},                  // nil
		"high": {DaysAssigned: 10, Present: 10},    // 100
		"mid":  {DaysAssigned: 10, Late: 2},        // 90
	}

	report := BuildReport([]string{"low", "none", "high", "mid"}, counters, nil, performance.DefaultPolicy())

	ids := make([]string, 0, len(report.Data))
	for _, s := range report.Data {
		ids = append(ids, s.EmployeeID)
	}
	assert.Equal(t, []string{"high", "mid", "low", "none"}, ids)
}

func TestRankingTiesKeepInputOrder(t *testing.T) {
	counters := map[string]*Counters{
		"b": {DaysAssigned: 10, Present: 10},
		"a": {DaysAssigned: 12, Present: 12},
	}

	report := BuildReport([]string{"b", "a"}, counters, nil, performance.DefaultPolicy())

	assert.Equal(t, "b", report.Data[0].EmployeeID)
	assert.Equal(t, "a", report.Data[1].EmployeeID)
}

func TestAggregateCoachingAndAverage(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 20, Late: 3, Absent: 2}, // 65, needs coaching
		"emp-2": {DaysAssigned: 20, Late: 2},            // 90
		"emp-3": {DaysAssigned: 0},                      // nil, excluded
	}

	report := BuildReport([]string{"emp-1", "emp-2", "emp-3"}, counters, nil, performance.DefaultPolicy())

	assert.Equal(t, 3, report.TotalEmployees)
	assert.Equal(t, 1, report.NeedsCoaching)
	assert.Equal(t, 77.5, report.AverageScore)
}

func TestScoreExactlySeventyDoesNotNeedCoaching(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 20, Late: 6}, // 70
	}

	report := BuildReport([]string{"emp-1"}, counters, nil, performance.DefaultPolicy())

	require.NotNil(t, report.Data[0].PerformanceScore)
	assert.Equal(t, 70.0, *report.Data[0].PerformanceScore)
	assert.Equal(t, 0, report.NeedsCoaching)
}

func TestAttendanceRateRoundsToTwoDecimals(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 3, Present: 2, Absent: 1},
	}

	report := BuildReport([]string{"emp-1"}, counters, nil, performance.DefaultPolicy())

	assert.Equal(t, 66.67, report.Data[0].AttendanceRate)
}

func TestMissingNameDefaultsToDash(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 1, Present: 1},
	}

	report := BuildReport([]string{"emp-1"}, counters, nil, performance.DefaultPolicy())

	assert.Equal(t, "-", report.Data[0].FullName)
}

func TestSAWScoresNormalizeAgainstPeriodMaximum(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 10, Present: 10},
		"emp-2": {DaysAssigned: 8, Present: 5, Late: 2, Absent: 1},
	}

	report := BuildReport([]string{"emp-1", "emp-2"}, counters, nil, performance.SAWPolicy())

	require.Len(t, report.Data, 2)
	best := report.Data[0]
	worst := report.Data[1]

	assert.Equal(t, "emp-1", best.EmployeeID)
	require.NotNil(t, best.PerformanceScore)
	assert.Equal(t, 100.0, *best.PerformanceScore)

	// 0.5*(5/10) + 0.3*(1-2/2) + 0.2*(1-1/1) = 0.25 -> 25
	require.NotNil(t, worst.PerformanceScore)
	assert.Equal(t, 25.0, *worst.PerformanceScore)
}

func TestSAWZeroMaximumCostCriterionGivesFullWeight(t *testing.T) {
	counters := map[string]*Counters{
		"emp-1": {DaysAssigned: 10, Present: 10},
		"emp-2": {DaysAssigned: 10, Present: 8},
	}

	report := BuildReport([]string{"emp-1", "emp-2"}, counters, nil, performance.SAWPolicy())

	// Nobody late or absent: both keep the full cost weights.
	// emp-2: 0.5*(8/10) + 0.3 + 0.2 = 0.9 -> 90
	require.NotNil(t, report.Data[1].PerformanceScore)
	assert.Equal(t, 90.0, *report.Data[1].PerformanceScore)
}
