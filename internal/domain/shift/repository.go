package shift

import (
	"context"
	"time"
)

type ShiftRepository interface {
	Create(ctx context.Context, shift Shift) (Shift, error)
	GetByID(ctx context.Context, id string) (Shift, error)
	List(ctx context.Context) ([]Shift, error)
	Update(ctx context.Context, shift Shift) error
	Delete(ctx context.Context, id string) error

	// GetStartTimes returns shift id -> "HH:MM" start time for all shifts.
	GetStartTimes(ctx context.Context) (map[string]string, error)
}

type ShiftAssignmentRepository interface {
	Create(ctx context.Context, assignment ShiftAssignment) (ShiftAssignment, error)
	GetByID(ctx context.Context, id string) (ShiftAssignment, error)
	List(ctx context.Context) ([]ShiftAssignment, error)
	Update(ctx context.Context, assignment ShiftAssignment) error
	Delete(ctx context.Context, id string) error

	// GetOverlappingPeriod returns every assignment whose [start_date,
	// end_date-or-open] range intersects [periodStart, periodEnd], ordered by
	// created_at so later-created assignments win overlap resolution.
	GetOverlappingPeriod(ctx context.Context, periodStart, periodEnd time.Time) ([]ShiftAssignment, error)
}
