package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, attendance Attendance) (Attendance, error)
	GetByID(ctx context.Context, id string) (Attendance, error)
	List(ctx context.Context, filter AttendanceFilter) ([]Attendance, error)
	Update(ctx context.Context, attendance Attendance) error
	Delete(ctx context.Context, id string) error

	// GetByCheckInWindow returns every event whose check-in falls inside
	// [periodStart, periodEnd 23:59:59], for the classifier's lookup map.
	GetByCheckInWindow(ctx context.Context, periodStart, periodEnd time.Time) ([]Attendance, error)
}

type DailyRecapRepository interface {
	// Upsert overwrites the derived row keyed by (employee_id, date).
	Upsert(ctx context.Context, recap DailyRecap) error

	// ListPeriod returns stored recap rows inside [periodStart, periodEnd],
	// ordered by date then employee id.
	ListPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]DailyRecap, error)
}
