package performance

import (
	"context"
	"fmt"
	"time"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/holiday"
	"github.com/patpaw111/web-absn/internal/domain/performance"
	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/domain/user"
)

type PerformanceServiceImpl struct {
	assignmentRepo shift.ShiftAssignmentRepository
	shiftRepo      shift.ShiftRepository
	attendanceRepo attendance.AttendanceRepository
	recapRepo      attendance.DailyRecapRepository
	holidayRepo    holiday.HolidayRepository
	userRepo       user.UserRepository
}

func NewPerformanceService(
	assignmentRepo shift.ShiftAssignmentRepository,
	shiftRepo shift.ShiftRepository,
	attendanceRepo attendance.AttendanceRepository,
	recapRepo attendance.DailyRecapRepository,
	holidayRepo holiday.HolidayRepository,
	userRepo user.UserRepository,
) *PerformanceServiceImpl {
	return &PerformanceServiceImpl{
		assignmentRepo: assignmentRepo,
		shiftRepo:      shiftRepo,
		attendanceRepo: attendanceRepo,
		recapRepo:      recapRepo,
		holidayRepo:    holidayRepo,
		userRepo:       userRepo,
	}
}

// periodInputs bundles everything one scoring window needs from storage.
type periodInputs struct {
	assignments []shift.ShiftAssignment
	startTimes  map[string]string
	events      map[string]map[string]attendance.Attendance
	holidays    map[string]bool
}

func (s *PerformanceServiceImpl) loadPeriodInputs(ctx context.Context, periodStart, periodEnd time.Time) (periodInputs, error) {
	var in periodInputs
	var err error

	in.assignments, err = s.assignmentRepo.GetOverlappingPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return in, fmt.Errorf("failed to get shift assignments: %w", err)
	}

	in.startTimes, err = s.shiftRepo.GetStartTimes(ctx)
	if err != nil {
		return in, fmt.Errorf("failed to get shift start times: %w", err)
	}

	events, err := s.attendanceRepo.GetByCheckInWindow(ctx, periodStart, periodEnd)
	if err != nil {
		return in, fmt.Errorf("failed to get attendance events: %w", err)
	}
	in.events = groupEventsByDay(events)

	in.holidays, err = s.holidayRepo.GetDatesInPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return in, fmt.Errorf("failed to get holidays: %w", err)
	}

	return in, nil
}

// groupEventsByDay indexes raw events by employee and check-in calendar day.
// When an employee has several events on one day the latest created wins,
// matching the overlap rule for assignments. Events with no check-in carry no
// date and are skipped.
func groupEventsByDay(events []attendance.Attendance) map[string]map[string]attendance.Attendance {
	grouped := make(map[string]map[string]attendance.Attendance)
	for _, e := range events {
		if e.CheckIn == nil {
			continue
		}
		date := e.CheckIn.UTC().Format("2006-01-02")

		days := grouped[e.EmployeeID]
		if days == nil {
			days = make(map[string]attendance.Attendance)
			grouped[e.EmployeeID] = days
		}
		if prev, ok := days[date]; ok && prev.CreatedAt.After(e.CreatedAt) {
			continue
		}
		days[date] = e
	}
	return grouped
}

func (s *PerformanceServiceImpl) employeeNames(ctx context.Context) (map[string]string, error) {
	role := user.RoleEmployee
	employees, err := s.userRepo.List(ctx, &role)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	names := make(map[string]string, len(employees))
	for _, e := range employees {
		names[e.ID] = e.FullName
	}
	return names, nil
}

func (s *PerformanceServiceImpl) GetPerformanceReport(ctx context.Context, period performance.Period, policy performance.Policy) (performance.PeriodReport, error) {
	if err := period.Validate(); err != nil {
		return performance.PeriodReport{}, err
	}

	periodStart, periodEnd := period.Range()
	in, err := s.loadPeriodInputs(ctx, periodStart, periodEnd)
	if err != nil {
		return performance.PeriodReport{}, err
	}

	names, err := s.employeeNames(ctx)
	if err != nil {
		return performance.PeriodReport{}, err
	}

	schedule := ResolveSchedule(in.assignments, in.startTimes, periodStart, periodEnd)
	_, counters, err := ClassifySchedule(schedule, in.events, in.holidays, policy)
	if err != nil {
		return performance.PeriodReport{}, err
	}

	order := scheduleOrder(in.assignments, schedule)
	return BuildReport(order, counters, names, policy), nil
}

func (s *PerformanceServiceImpl) GenerateDailyRecap(ctx context.Context, period performance.Period) (performance.GenerateRecapResult, error) {
	if err := period.Validate(); err != nil {
		return performance.GenerateRecapResult{}, err
	}

	periodStart, periodEnd := period.Range()
	in, err := s.loadPeriodInputs(ctx, periodStart, periodEnd)
	if err != nil {
		return performance.GenerateRecapResult{}, err
	}

	schedule := ResolveSchedule(in.assignments, in.startTimes, periodStart, periodEnd)
	records, _, err := ClassifySchedule(schedule, in.events, in.holidays, performance.DefaultPolicy())
	if err != nil {
		return performance.GenerateRecapResult{}, err
	}

	total := 0
	for _, rec := range records {
		date, err := time.Parse("2006-01-02", rec.Date)
		if err != nil {
			return performance.GenerateRecapResult{}, &performance.ComputationError{
				EmployeeID: rec.EmployeeID,
				Date:       rec.Date,
				Err:        performance.ErrInvalidDateFormat,
			}
		}

		err = s.recapRepo.Upsert(ctx, attendance.DailyRecap{
			EmployeeID:  rec.EmployeeID,
			Date:        date,
			Status:      string(rec.Status),
			LateMinutes: rec.LateMinutes,
			CheckIn:     rec.CheckIn,
			CheckOut:    rec.CheckOut,
		})
		if err != nil {
			return performance.GenerateRecapResult{}, fmt.Errorf("failed to upsert daily recap: %w", err)
		}
		total++
	}

	return performance.GenerateRecapResult{Success: true, Total: total}, nil
}

func (s *PerformanceServiceImpl) GetDailyRecap(ctx context.Context, period performance.Period) ([]performance.DailyRecapRow, error) {
	if err := period.Validate(); err != nil {
		return nil, err
	}

	periodStart, periodEnd := period.Range()
	recaps, err := s.recapRepo.ListPeriod(ctx, periodStart, periodEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to list daily recap: %w", err)
	}

	rows := make([]performance.DailyRecapRow, 0, len(recaps))
	for _, r := range recaps {
		row := performance.DailyRecapRow{
			EmployeeID:  r.EmployeeID,
			Date:        r.Date.Format("2006-01-02"),
			Status:      r.Status,
			LateMinutes: r.LateMinutes,
			CheckIn:     formatInstant(r.CheckIn),
			CheckOut:    formatInstant(r.CheckOut),
		}
		if r.EmployeeName != nil {
			row.EmployeeName = *r.EmployeeName
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// GetDashboardSummary classifies just today with the default policy. The counts
// reflect the current schedule and events, not the stored recap rows.
func (s *PerformanceServiceImpl) GetDashboardSummary(ctx context.Context) (performance.DashboardSummary, error) {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	in, err := s.loadPeriodInputs(ctx, today, today)
	if err != nil {
		return performance.DashboardSummary{}, err
	}

	role := user.RoleEmployee
	employees, err := s.userRepo.List(ctx, &role)
	if err != nil {
		return performance.DashboardSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	schedule := ResolveSchedule(in.assignments, in.startTimes, today, today)
	_, counters, err := ClassifySchedule(schedule, in.events, in.holidays, performance.DefaultPolicy())
	if err != nil {
		return performance.DashboardSummary{}, err
	}

	summary := performance.DashboardSummary{
		TotalEmployees: len(employees),
		IsHoliday:      in.holidays[today.Format("2006-01-02")],
	}
	for _, c := range counters {
		summary.PresentToday += c.Present
		summary.LateToday += c.Late
		summary.AbsentToday += c.Absent
	}
	return summary, nil
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339)
	return &s
}
