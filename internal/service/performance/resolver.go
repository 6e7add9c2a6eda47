package performance

import (
	"sort"
	"time"

	"github.com/patpaw111/web-absn/internal/domain/shift"
)

// ResolveSchedule expands shift assignments into a per-employee, per-date map
// of assigned shift start times ("HH:MM") within [periodStart, periodEnd].
//
// Assignments are processed in created_at order, so when several assignments
// cover the same employee and date the most recently created one wins. An
// open-ended assignment (nil end date) covers through periodEnd, not forever.
// A shift id with no known start time is recorded as "" and classified as
// absent downstream; it is not an error here.
//
// Employees or dates absent from the result were simply not scheduled and are
// excluded from every denominator.
func ResolveSchedule(assignments []shift.ShiftAssignment, startTimes map[string]string, periodStart, periodEnd time.Time) map[string]map[string]string {
	sorted := make([]shift.ShiftAssignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	periodStart = dayUTC(periodStart)
	periodEnd = dayUTC(periodEnd)

	schedule := make(map[string]map[string]string)
	for _, a := range sorted {
		start := dayUTC(a.StartDate)
		end := periodEnd
		if a.EndDate != nil {
			end = dayUTC(*a.EndDate)
		}

		// Clip to the requested period.
		if start.Before(periodStart) {
			start = periodStart
		}
		if end.After(periodEnd) {
			end = periodEnd
		}
		if start.After(end) {
			continue
		}

		days := schedule[a.EmployeeID]
		if days == nil {
			days = make(map[string]string)
			schedule[a.EmployeeID] = days
		}
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			days[d.Format("2006-01-02")] = startTimes[a.ShiftID]
		}
	}

	return schedule
}

// scheduleOrder returns employee ids in their first-appearance order within
// the created_at-sorted assignment list. Ranking ties fall back to this order.
func scheduleOrder(assignments []shift.ShiftAssignment, schedule map[string]map[string]string) []string {
	sorted := make([]shift.ShiftAssignment, len(assignments))
	copy(sorted, assignments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
	})

	var order []string
	seen := make(map[string]bool)
	for _, a := range sorted {
		if seen[a.EmployeeID] {
			continue
		}
		if _, ok := schedule[a.EmployeeID]; !ok {
			continue
		}
		seen[a.EmployeeID] = true
		order = append(order, a.EmployeeID)
	}
	return order
}

func dayUTC(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
