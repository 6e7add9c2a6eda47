package performance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/performance"
)

func instant(y int, m time.Month, d, hh, mm, ss int) *time.Time {
	t := time.Date(y, m, d, hh, mm, ss, 0, time.UTC)
	return &t
}

func singleDaySchedule(employeeID, date, startClock string) map[string]map[string]string {
	return map[string]map[string]string{
		employeeID: {date: startClock},
	}
}

func TestClassifyCheckInAtShiftStartIsPresent(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "08:00")
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 0, 0)}},
	}

	records, counters, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.NoError(t, err)
	require.Len(t, records, 1)

	assert.Equal(t, performance.StatusPresent, records[0].Status)
	assert.Equal(t, 0, records[0].LateMinutes)
	assert.Equal(t, 1, counters["emp-1"].Present)
}

func TestClassifyLateMinutesAreFloored(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "08:00")
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 10, 45)}},
	}

	records, counters, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, performance.StatusLate, records[0].Status)
	assert.Equal(t, 10, records[0].LateMinutes)
	assert.Equal(t, 1, counters["emp-1"].Late)
}

func TestClassifyOneSecondLateCountsAsLate(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "08:00")
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 0, 1)}},
	}

	records, _, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, performance.StatusLate, records[0].Status)
	assert.Equal(t, 0, records[0].LateMinutes)
}

func TestClassifyNoCheckInIsAbsent(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "08:00")

	records, counters, err := ClassifySchedule(schedule, nil, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, performance.StatusAbsent, records[0].Status)
	assert.Equal(t, 1, counters["emp-1"].Absent)
	assert.Equal(t, 1, counters["emp-1"].DaysAssigned)
}

func TestClassifyHolidayIsPresentWithoutCheckIn(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "08:00")
	holidays := map[string]bool{"2026-03-02": true}

	records, counters, err := ClassifySchedule(schedule, nil, holidays, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, performance.StatusPresent, records[0].Status)
	assert.Equal(t, 0, records[0].LateMinutes)
	assert.Equal(t, 1, counters["emp-1"].Present)
}

func TestClassifyOverrideShortCircuitsLateness(t *testing.T) {
	leaveStatus := attendance.OverrideLeave
	sickStatus := attendance.OverrideSick
	schedule := map[string]map[string]string{
		"emp-1": {"2026-03-02": "08:00", "2026-03-03": "08:00"},
	}
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {
			"2026-03-02": {CheckIn: instant(2026, time.March, 2, 11, 0, 0), Status: &leaveStatus},
			"2026-03-03": {CheckIn: instant(2026, time.March, 3, 11, 0, 0), Status: &sickStatus},
		},
	}

	_, counters, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, 1, counters["emp-1"].Leave)
	assert.Equal(t, 1, counters["emp-1"].Sick)
	assert.Equal(t, 0, counters["emp-1"].Late)
}

func TestClassifyUnknownShiftStartIsAbsent(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "")
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 0, 0)}},
	}

	records, counters, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Equal(t, performance.StatusAbsent, records[0].Status)
	assert.Equal(t, 1, counters["emp-1"].DaysAssigned)
}

func TestClassifyGraceWindowCollapsesLateToAbsent(t *testing.T) {
	policy := performance.SAWPolicy()
	require.Equal(t, 30, policy.GraceMinutes)

	schedule := map[string]map[string]string{
		"emp-1": {"2026-03-02": "08:00", "2026-03-03": "08:00"},
	}
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {
			"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 45, 0)},
			"2026-03-03": {CheckIn: instant(2026, time.March, 3, 8, 20, 0)},
		},
	}

	_, counters, err := ClassifySchedule(schedule, events, nil, policy)
	require.NoError(t, err)

	assert.Equal(t, 1, counters["emp-1"].Absent)
	assert.Equal(t, 1, counters["emp-1"].Late)
}

func TestClassifyMalformedStartClockFailsWholeComputation(t *testing.T) {
	schedule := singleDaySchedule("emp-1", "2026-03-02", "8:00")
	events := map[string]map[string]attendance.Attendance{
		"emp-1": {"2026-03-02": {CheckIn: instant(2026, time.March, 2, 8, 0, 0)}},
	}

	records, counters, err := ClassifySchedule(schedule, events, nil, performance.DefaultPolicy())
	require.Error(t, err)
	assert.Nil(t, records)
	assert.Nil(t, counters)

	var compErr *performance.ComputationError
	require.ErrorAs(t, err, &compErr)
	assert.Equal(t, "emp-1", compErr.EmployeeID)
	assert.Equal(t, "2026-03-02", compErr.Date)
	assert.ErrorIs(t, err, performance.ErrInvalidClockTime)
}

func TestClassifyCountsDaysAssignedPerEmployee(t *testing.T) {
	schedule := map[string]map[string]string{
		"emp-1": {"2026-03-02": "08:00", "2026-03-03": "08:00", "2026-03-04": "08:00"},
		"emp-2": {"2026-03-02": "09:00"},
	}

	records, counters, err := ClassifySchedule(schedule, nil, nil, performance.DefaultPolicy())
	require.NoError(t, err)

	assert.Len(t, records, 4)
	assert.Equal(t, 3, counters["emp-1"].DaysAssigned)
	assert.Equal(t, 1, counters["emp-2"].DaysAssigned)
}
