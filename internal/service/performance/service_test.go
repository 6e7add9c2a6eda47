package performance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/holiday"
	"github.com/patpaw111/web-absn/internal/domain/performance"
	"github.com/patpaw111/web-absn/internal/domain/shift"
	"github.com/patpaw111/web-absn/internal/domain/user"
)

// In-memory repositories; only the methods the service touches are implemented,
// the embedded interface panics on anything else.

type stubAssignmentRepo struct {
	shift.ShiftAssignmentRepository
	assignments []shift.ShiftAssignment
}

func (s *stubAssignmentRepo) GetOverlappingPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]shift.ShiftAssignment, error) {
	return s.assignments, nil
}

type stubShiftRepo struct {
	shift.ShiftRepository
	startTimes map[string]string
}

func (s *stubShiftRepo) GetStartTimes(ctx context.Context) (map[string]string, error) {
	return s.startTimes, nil
}

type stubAttendanceRepo struct {
	attendance.AttendanceRepository
	events []attendance.Attendance
}

func (s *stubAttendanceRepo) GetByCheckInWindow(ctx context.Context, periodStart, periodEnd time.Time) ([]attendance.Attendance, error) {
	return s.events, nil
}

type stubHolidayRepo struct {
	holiday.HolidayRepository
	dates map[string]bool
}

func (s *stubHolidayRepo) GetDatesInPeriod(ctx context.Context, periodStart, periodEnd time.Time) (map[string]bool, error) {
	return s.dates, nil
}

type stubUserRepo struct {
	user.UserRepository
	users []user.User
}

func (s *stubUserRepo) List(ctx context.Context, role *user.Role) ([]user.User, error) {
	return s.users, nil
}

type stubRecapRepo struct {
	attendance.DailyRecapRepository
	upserted []attendance.DailyRecap
}

func (s *stubRecapRepo) Upsert(ctx context.Context, recap attendance.DailyRecap) error {
	s.upserted = append(s.upserted, recap)
	return nil
}

func newTestService(
	assignments []shift.ShiftAssignment,
	startTimes map[string]string,
	events []attendance.Attendance,
	holidays map[string]bool,
	users []user.User,
	recapRepo *stubRecapRepo,
) *PerformanceServiceImpl {
	return NewPerformanceService(
		&stubAssignmentRepo{assignments: assignments},
		&stubShiftRepo{startTimes: startTimes},
		&stubAttendanceRepo{events: events},
		recapRepo,
		&stubHolidayRepo{dates: holidays},
		&stubUserRepo{users: users},
	)
}

func TestGetPerformanceReportEndToEnd(t *testing.T) {
	end := day(2026, time.March, 5)
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.March, 2),
			EndDate:    &end,
			CreatedAt:  day(2026, time.March, 1),
		},
	}
	events := []attendance.Attendance{
		{EmployeeID: "emp-1", CheckIn: instant(2026, time.March, 2, 7, 55, 0)},
		{EmployeeID: "emp-1", CheckIn: instant(2026, time.March, 3, 8, 12, 0)},
		// March 4 and 5 have no events: absent.
	}
	users := []user.User{{ID: "emp-1", FullName: "Budi", Role: user.RoleEmployee}}

	svc := newTestService(assignments, map[string]string{"morning": "08:00"}, events, nil, users, &stubRecapRepo{})

	report, err := svc.GetPerformanceReport(context.Background(), performance.Period{Month: 3, Year: 2026}, performance.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, report.Data, 1)

	s := report.Data[0]
	assert.Equal(t, "Budi", s.FullName)
	assert.Equal(t, 4, s.DaysAssigned)
	assert.Equal(t, 1, s.Present)
	assert.Equal(t, 1, s.Late)
	assert.Equal(t, 2, s.Absent)
	require.NotNil(t, s.PerformanceScore)
	assert.Equal(t, 75.0, *s.PerformanceScore) // 100 - 5*1 - 10*2
	assert.Equal(t, 50.0, s.AttendanceRate)
}

func TestGetPerformanceReportRejectsInvalidPeriod(t *testing.T) {
	svc := newTestService(nil, nil, nil, nil, nil, &stubRecapRepo{})

	_, err := svc.GetPerformanceReport(context.Background(), performance.Period{Month: 0, Year: 2026}, performance.DefaultPolicy())
	assert.Error(t, err)
}

func TestGenerateDailyRecapUpsertsEveryScheduledDay(t *testing.T) {
	end := day(2026, time.March, 3)
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.March, 2),
			EndDate:    &end,
			CreatedAt:  day(2026, time.March, 1),
		},
	}
	events := []attendance.Attendance{
		{EmployeeID: "emp-1", CheckIn: instant(2026, time.March, 2, 8, 30, 0)},
	}
	recapRepo := &stubRecapRepo{}

	svc := newTestService(assignments, map[string]string{"morning": "08:00"}, events, nil, nil, recapRepo)

	result, err := svc.GenerateDailyRecap(context.Background(), performance.Period{Month: 3, Year: 2026})
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.Total)
	require.Len(t, recapRepo.upserted, 2)
	assert.Equal(t, "late", recapRepo.upserted[0].Status)
	assert.Equal(t, 30, recapRepo.upserted[0].LateMinutes)
	assert.Equal(t, "absent", recapRepo.upserted[1].Status)
}

func TestGroupEventsByDayLatestCreatedWins(t *testing.T) {
	events := []attendance.Attendance{
		{ID: "e1", EmployeeID: "emp-1", CheckIn: instant(2026, time.March, 2, 8, 0, 0), CreatedAt: day(2026, time.March, 2)},
		{ID: "e2", EmployeeID: "emp-1", CheckIn: instant(2026, time.March, 2, 9, 0, 0), CreatedAt: day(2026, time.March, 3)},
		{ID: "skip", EmployeeID: "emp-1", CheckIn: nil},
	}

	grouped := groupEventsByDay(events)

	require.Contains(t, grouped, "emp-1")
	assert.Len(t, grouped["emp-1"], 1)
	assert.Equal(t, "e2", grouped["emp-1"]["2026-03-02"].ID)
}
