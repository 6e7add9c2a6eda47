package performance

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/patpaw111/web-absn/internal/domain/attendance"
	"github.com/patpaw111/web-absn/internal/domain/performance"
	"github.com/patpaw111/web-absn/internal/pkg/validator"
)

// DayRecord is one classified (employee, date) pair.
type DayRecord struct {
	EmployeeID  string
	Date        string
	Status      performance.DayStatus
	LateMinutes int
	CheckIn     *time.Time
	CheckOut    *time.Time
}

// Counters accumulates per-employee day statuses over a period.
type Counters struct {
	DaysAssigned int
	Present      int
	Late         int
	Absent       int
	Leave        int
	Sick         int
}

// ClassifySchedule walks every (employee, date) pair in the resolved schedule
// and derives a day status per the classification rules:
//
//  1. holiday                      -> present (no lateness)
//  2. manual override              -> leave / sick
//  3. unknown shift start time     -> absent
//  4. no check-in                  -> absent
//  5. check-in <= shift start      -> present, else late with floored minutes
//
// With a grace window configured, lateness beyond the window counts as absent.
// Check-in and shift start are compared as UTC wall-clock times; no timezone
// conversion is applied to either side.
//
// A malformed date key or shift start time aborts the whole computation with a
// ComputationError naming the employee and date.
func ClassifySchedule(
	schedule map[string]map[string]string,
	events map[string]map[string]attendance.Attendance,
	holidays map[string]bool,
	policy performance.Policy,
) ([]DayRecord, map[string]*Counters, error) {
	records := make([]DayRecord, 0)
	counters := make(map[string]*Counters, len(schedule))

	for _, employeeID := range sortedKeys(schedule) {
		c := &Counters{}
		counters[employeeID] = c

		days := schedule[employeeID]
		for _, date := range sortedKeys(days) {
			rec, err := classifyDay(employeeID, date, days[date], events[employeeID][date], holidays[date], policy)
			if err != nil {
				return nil, nil, err
			}

			c.DaysAssigned++
			switch rec.Status {
			case performance.StatusPresent:
				c.Present++
			case performance.StatusLate:
				c.Late++
			case performance.StatusAbsent:
				c.Absent++
			case performance.StatusLeave:
				c.Leave++
			case performance.StatusSick:
				c.Sick++
			}

			records = append(records, rec)
		}
	}

	return records, counters, nil
}

func classifyDay(
	employeeID, date, startClock string,
	event attendance.Attendance,
	isHoliday bool,
	policy performance.Policy,
) (DayRecord, error) {
	rec := DayRecord{
		EmployeeID: employeeID,
		Date:       date,
		CheckIn:    event.CheckIn,
		CheckOut:   event.CheckOut,
	}

	if isHoliday {
		rec.Status = performance.StatusPresent
		return rec, nil
	}

	if event.Status != nil {
		switch *event.Status {
		case attendance.OverrideLeave:
			rec.Status = performance.StatusLeave
			return rec, nil
		case attendance.OverrideSick:
			rec.Status = performance.StatusSick
			return rec, nil
		}
	}

	// Misconfigured assignment: the shift has no known start time. The day
	// still counts against the employee's denominator as an absence.
	if startClock == "" {
		rec.Status = performance.StatusAbsent
		return rec, nil
	}

	if event.CheckIn == nil {
		rec.Status = performance.StatusAbsent
		return rec, nil
	}

	shiftStart, err := clockOnDate(date, startClock)
	if err != nil {
		return DayRecord{}, &performance.ComputationError{EmployeeID: employeeID, Date: date, Err: err}
	}

	checkIn := event.CheckIn.UTC()
	if !checkIn.After(shiftStart) {
		rec.Status = performance.StatusPresent
		return rec, nil
	}

	rec.Status = performance.StatusLate
	rec.LateMinutes = int(math.Floor(checkIn.Sub(shiftStart).Minutes()))

	if policy.GraceMinutes > 0 && rec.LateMinutes > policy.GraceMinutes {
		rec.Status = performance.StatusAbsent
	}

	return rec, nil
}

// clockOnDate combines a "YYYY-MM-DD" date with an "HH:MM" wall-clock time
// into a UTC instant.
func clockOnDate(date, clock string) (time.Time, error) {
	day, ok := validator.IsValidDate(date)
	if !ok {
		return time.Time{}, performance.ErrInvalidDateFormat
	}
	if !validator.IsValidClockTime(clock) {
		return time.Time{}, performance.ErrInvalidClockTime
	}

	parts := strings.SplitN(clock, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])

	return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, time.UTC), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
