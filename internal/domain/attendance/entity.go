package attendance

import "time"

// Manual status overrides an admin can place on a raw attendance event.
// An override short-circuits lateness classification for that day.
const (
	OverrideLeave = "leave"
	OverrideSick  = "sick"
)

var OverrideValues = []string{OverrideLeave, OverrideSick}

// Attendance is one raw check-in/check-out event. The calendar day it belongs
// to is derived from CheckIn.
type Attendance struct {
	ID         string
	EmployeeID string
	CheckIn    *time.Time
	CheckOut   *time.Time
	Status     *string
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
}

// DailyRecap is a derived per-employee-per-day status row, recomputed from raw
// events and upserted idempotently on (employee_id, date).
type DailyRecap struct {
	EmployeeID  string
	Date        time.Time
	Status      string
	LateMinutes int
	CheckIn     *time.Time
	CheckOut    *time.Time

	// DTO
	EmployeeName *string
}
