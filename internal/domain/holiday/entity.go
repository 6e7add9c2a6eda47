package holiday

import "time"

// Holiday marks a calendar date as non-working. Every scheduled employee is
// treated as present on such a date.
type Holiday struct {
	ID          string
	Date        time.Time
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
