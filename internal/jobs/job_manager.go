package jobs

import (
	"fmt"
	"log/slog"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	routeProgressionJob *RouteProgressionJob
}

// NewJobManager creates a new job manager with all required jobs.
// An empty progressionSchedule leaves the route progression job out.
func NewJobManager(
	lister RouteLister,
	advancer RouteAdvancer,
	progressionSchedule string,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{}
	if progressionSchedule != "" {
		jm.routeProgressionJob = NewRouteProgressionJob(lister, advancer, progressionSchedule, logger)
	}
	return jm
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if jm.routeProgressionJob == nil {
		return nil
	}

	if err := jm.routeProgressionJob.Start(); err != nil {
		return fmt.Errorf("failed to start route progression job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	if jm.routeProgressionJob != nil {
		jm.routeProgressionJob.Stop()
	}
}
