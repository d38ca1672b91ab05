package jobs

import (
	"fmt"
	"log/slog"

	"cleaning/internal/core/application/availability"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	availabilityRefreshJob *AvailabilityRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	index *availability.Index,
	source availability.ActiveOrdersSource,
	refreshSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		availabilityRefreshJob: NewAvailabilityRefreshJob(index, source, refreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.availabilityRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start availability refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.availabilityRefreshJob.Stop()
}
