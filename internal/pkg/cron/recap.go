package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/patpaw111/web-absn/internal/domain/performance"
)

// RecapJobs regenerates the derived daily recap rows in the background so the
// stored recap stays close to the raw events even when no admin triggers a
// regeneration by hand.
type RecapJobs struct {
	performanceService performance.PerformanceService
}

func NewRecapJobs(performanceService performance.PerformanceService) *RecapJobs {
	return &RecapJobs{performanceService: performanceService}
}

func (j *RecapJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("regenerate_daily_recap", 1*time.Hour, j.RegenerateCurrentMonth)
}

// RegenerateCurrentMonth recomputes the running month's recap. The hourly tick
// is gated to the midnight hour so the regeneration runs once per day.
func (j *RecapJobs) RegenerateCurrentMonth(ctx context.Context) error {
	now := time.Now().UTC()
	if now.Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting daily recap regeneration")

	period := performance.Period{
		Month: int(now.Month()),
		Year:  now.Year(),
	}
	result, err := j.performanceService.GenerateDailyRecap(ctx, period)
	if err != nil {
		return err
	}

	slog.Info("Cron: Daily recap regenerated", "rows", result.Total)
	return nil
}
