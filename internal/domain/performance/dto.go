package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

// DayStatus classifies one scheduled day for one employee.
type DayStatus string

const (
	StatusPresent DayStatus = "present"
	StatusLate    DayStatus = "late"
	StatusAbsent  DayStatus = "absent"
	StatusLeave   DayStatus = "leave"
	StatusSick    DayStatus = "sick"
)

// Period selects the scoring window. Week, when set, picks one of the
// Sunday-to-Saturday segments of the month (0-based, clipped to the month).
type Period struct {
	Month int
	Year  int
	Week  *int
}

func (p *Period) Validate() error {
	var errs validator.ValidationErrors

	if p.Month < 1 || p.Month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "bulan",
			Message: "bulan must be between 1 and 12",
		})
	}

	currentYear := time.Now().Year()
	if p.Year < 2020 || p.Year > currentYear+1 {
		errs = append(errs, validator.ValidationError{
			Field:   "tahun",
			Message: fmt.Sprintf("tahun must be between 2020 and %d", currentYear+1),
		})
	}

	if p.Week != nil && len(errs) == 0 {
		weeks := WeeksInMonth(p.Year, time.Month(p.Month))
		if *p.Week < 0 || *p.Week >= len(weeks) {
			errs = append(errs, validator.ValidationError{
				Field:   "minggu",
				Message: fmt.Sprintf("minggu must be between 0 and %d", len(weeks)-1),
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Range returns the inclusive [start, end] day window of the period in UTC.
func (p *Period) Range() (time.Time, time.Time) {
	if p.Week != nil {
		weeks := WeeksInMonth(p.Year, time.Month(p.Month))
		w := weeks[*p.Week]
		return w.Start, w.End
	}
	start := time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, -1)
	return start, end
}

type DateRange struct {
	Start time.Time
	End   time.Time
}

// WeeksInMonth splits a month into Sunday-to-Saturday segments. The first
// segment starts on day 1 and the last one is clipped to the month's last day.
func WeeksInMonth(year int, month time.Month) []DateRange {
	var weeks []DateRange

	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	lastDay := start.AddDate(0, 1, -1)

	for !start.After(lastDay) {
		end := start.AddDate(0, 0, 6-int(start.Weekday()))
		if end.After(lastDay) {
			end = lastDay
		}
		weeks = append(weeks, DateRange{Start: start, End: end})
		start = end.AddDate(0, 0, 1)
	}

	return weeks
}

// EmployeePeriodSummary is the per-employee aggregate for one period.
// PerformanceScore is nil when the employee had no scheduled days; such
// employees are never ranked or flagged for coaching.
type EmployeePeriodSummary struct {
	EmployeeID       string   `json:"employee_id"`
	FullName         string   `json:"full_name"`
	DaysAssigned     int      `json:"days_assigned"`
	Present          int      `json:"present"`
	Late             int      `json:"late"`
	Absent           int      `json:"absent"`
	Leave            int      `json:"leave"`
	Sick             int      `json:"sick"`
	AttendanceRate   float64  `json:"attendance_rate"`
	PerformanceScore *float64 `json:"performance_score"`
}

// PeriodReport is the scoring endpoint payload.
type PeriodReport struct {
	Data           []EmployeePeriodSummary `json:"data"`
	TotalEmployees int                     `json:"total_employees"`
	NeedsCoaching  int                     `json:"needs_coaching"`
	AverageScore   float64                 `json:"average_score"`
}

// GenerateRecapResult reports how many derived daily rows were upserted.
type GenerateRecapResult struct {
	Success bool `json:"success"`
	Total   int  `json:"total"`
}

// DashboardSummary is today's headline counters.
type DashboardSummary struct {
	TotalEmployees int  `json:"total_employees"`
	PresentToday   int  `json:"present_today"`
	LateToday      int  `json:"late_today"`
	AbsentToday    int  `json:"absent_today"`
	IsHoliday      bool `json:"is_holiday"`
}

type PerformanceService interface {
	GetPerformanceReport(ctx context.Context, period Period, policy Policy) (PeriodReport, error)
	GenerateDailyRecap(ctx context.Context, period Period) (GenerateRecapResult, error)
	GetDailyRecap(ctx context.Context, period Period) ([]DailyRecapRow, error)
	GetDashboardSummary(ctx context.Context) (DashboardSummary, error)
}

// DailyRecapRow mirrors a stored derived daily status row.
type DailyRecapRow struct {
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"full_name"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	LateMinutes  int     `json:"late_minutes"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
}
