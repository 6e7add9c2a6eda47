package shift

import "time"

// Shift is a named work schedule. StartTime and EndTime are wall-clock
// "HH:MM" strings with no date component.
type Shift struct {
	ID        string
	Name      string
	StartTime string
	EndTime   string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ShiftAssignment binds an employee to a shift for an inclusive date range.
// EndDate == nil means open-ended; readers clip it to their query period.
type ShiftAssignment struct {
	ID         string
	EmployeeID string
	ShiftID    string
	StartDate  time.Time
	EndDate    *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// DTO
	EmployeeName *string
	ShiftName    *string
}
