package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/domain/shift"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func ptrTime(t time.Time) *time.Time {
	return &t
}

func TestResolveScheduleClipsToPeriod(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.January, 15),
			EndDate:    ptrTime(day(2026, time.February, 10)),
			CreatedAt:  day(2026, time.January, 1),
		},
	}
	startTimes := map[string]string{"morning": "08:00"}

	schedule := ResolveSchedule(assignments, startTimes, day(2026, time.February, 1), day(2026, time.February, 28))

	require.Contains(t, schedule, "emp-1")
	days := schedule["emp-1"]
	assert.Len(t, days, 10)
	assert.Equal(t, "08:00", days["2026-02-01"])
	assert.Equal(t, "08:00", days["2026-02-10"])
	assert.NotContains(t, days, "2026-01-31")
	assert.NotContains(t, days, "2026-02-11")
}

func TestResolveScheduleOpenEndedAssignment(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.March, 10),
			EndDate:    nil,
			CreatedAt:  day(2026, time.March, 1),
		},
	}
	startTimes := map[string]string{"morning": "09:00"}

	schedule := ResolveSchedule(assignments, startTimes, day(2026, time.March, 1), day(2026, time.March, 31))

	days := schedule["emp-1"]
	assert.Len(t, days, 22)
	assert.Equal(t, "09:00", days["2026-03-10"])
	assert.Equal(t, "09:00", days["2026-03-31"])
	assert.NotContains(t, days, "2026-03-09")
}

func TestResolveScheduleLastCreatedWinsOverlap(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a2",
			EmployeeID: "emp-1",
			ShiftID:    "evening",
			StartDate:  day(2026, time.April, 10),
			EndDate:    ptrTime(day(2026, time.April, 20)),
			CreatedAt:  day(2026, time.April, 5),
		},
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.April, 1),
			EndDate:    ptrTime(day(2026, time.April, 30)),
			CreatedAt:  day(2026, time.April, 1),
		},
	}
	startTimes := map[string]string{"morning": "08:00", "evening": "16:00"}

	schedule := ResolveSchedule(assignments, startTimes, day(2026, time.April, 1), day(2026, time.April, 30))

	days := schedule["emp-1"]
	assert.Equal(t, "08:00", days["2026-04-09"])
	assert.Equal(t, "16:00", days["2026-04-10"])
	assert.Equal(t, "16:00", days["2026-04-20"])
	assert.Equal(t, "08:00", days["2026-04-21"])
}

func TestResolveScheduleExcludesOutOfPeriodEmployees(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "morning",
			StartDate:  day(2026, time.January, 1),
			EndDate:    ptrTime(day(2026, time.January, 31)),
			CreatedAt:  day(2026, time.January, 1),
		},
	}
	startTimes := map[string]string{"morning": "08:00"}

	schedule := ResolveSchedule(assignments, startTimes, day(2026, time.February, 1), day(2026, time.February, 28))

	assert.NotContains(t, schedule, "emp-1")
	assert.Empty(t, schedule)
}

func TestResolveScheduleUnknownShiftMapsToEmptyStart(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{
			ID:         "a1",
			EmployeeID: "emp-1",
			ShiftID:    "ghost",
			StartDate:  day(2026, time.May, 1),
			EndDate:    ptrTime(day(2026, time.May, 2)),
			CreatedAt:  day(2026, time.May, 1),
		},
	}

	schedule := ResolveSchedule(assignments, map[string]string{}, day(2026, time.May, 1), day(2026, time.May, 31))

	assert.Equal(t, "", schedule["emp-1"]["2026-05-01"])
	assert.Equal(t, "", schedule["emp-1"]["2026-05-02"])
}

func TestScheduleOrderFollowsFirstAppearance(t *testing.T) {
	assignments := []shift.ShiftAssignment{
		{EmployeeID: "emp-2", ShiftID: "s", StartDate: day(2026, time.June, 1), CreatedAt: day(2026, time.June, 2)},
		{EmployeeID: "emp-1", ShiftID: "s", StartDate: day(2026, time.June, 1), CreatedAt: day(2026, time.June, 1)},
		{EmployeeID: "emp-2", ShiftID: "s", StartDate: day(2026, time.June, 15), CreatedAt: day(2026, time.June, 3)},
	}
	startTimes := map[string]string{"s": "08:00"}

	schedule := ResolveSchedule(assignments, startTimes, day(2026, time.June, 1), day(2026, time.June, 30))
	order := scheduleOrder(assignments, schedule)

	assert.Equal(t, []string{"emp-1", "emp-2"}, order)
}
