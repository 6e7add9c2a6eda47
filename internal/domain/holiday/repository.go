package holiday

import (
	"context"
	"time"
)

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	List(ctx context.Context) ([]Holiday, error)
	Delete(ctx context.Context, id string) error

	// GetDatesInPeriod returns the set of holiday dates, keyed by "YYYY-MM-DD",
	// falling inside [periodStart, periodEnd].
	GetDatesInPeriod(ctx context.Context, periodStart, periodEnd time.Time) (map[string]bool, error)
}
