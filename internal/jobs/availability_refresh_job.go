package jobs

import (
	"context"
	"log/slog"

	"cleaning/internal/core/application/availability"

	"github.com/robfig/cron/v3"
)

// AvailabilityRefreshJob periodically rebuilds the cleaner availability index
// from the order store. The index is updated in place after every committed
// command, so the rebuild only reconciles drift, for example after a restart
// or a write that bypassed the application.
type AvailabilityRefreshJob struct {
	index    *availability.Index
	source   availability.ActiveOrdersSource
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewAvailabilityRefreshJob creates a job that rebuilds the given index on the
// given cron schedule. The schedule uses the six-field form with seconds.
func NewAvailabilityRefreshJob(
	index *availability.Index,
	source availability.ActiveOrdersSource,
	schedule string,
	logger *slog.Logger,
) *AvailabilityRefreshJob {
	return &AvailabilityRefreshJob{
		index:    index,
		source:   source,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "availability_refresh_job"),
	}
}

// Start schedules the periodic rebuild.
func (j *AvailabilityRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		if err := j.index.Rebuild(ctx, j.source); err != nil {
			j.logger.ErrorContext(ctx, "Availability index rebuild failed", "error", err)
			return
		}

		j.logger.DebugContext(ctx, "Availability index rebuilt", "busy_cleaners", j.index.Len())
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Availability refresh job started", "schedule", j.schedule)
	return nil
}

// Stop stops the periodic rebuild.
func (j *AvailabilityRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Availability refresh job stopped")
}
