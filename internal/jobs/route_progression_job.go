package jobs

import (
	"context"
	"errors"
	"log/slog"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/route"
	"logistics/internal/pkg/errs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/robfig/cron/v3"
)

var progressionAdvances = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "logistics_route_progression_advances_total",
	Help: "Stop advances attempted by the route progression job, by result.",
}, []string{"result"})

type (
	// RouteLister finds the routes the job should move.
	RouteLister interface {
		ListIDsByStatus(ctx context.Context, statuses ...route.Status) ([]kernel.UUID, error)
	}

	// RouteAdvancer moves one route to its next stop.
	RouteAdvancer interface {
		Handle(ctx context.Context, cmd commands.AdvanceRouteStopCommand) (route.Arrival, error)
	}
)

// RouteProgressionJob simulates transporters on the road: on every tick each
// in-transit route advances one stop, delivering the orders addressed there.
type RouteProgressionJob struct {
	lister   RouteLister
	advancer RouteAdvancer
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewRouteProgressionJob creates the job. schedule is a six-field cron
// expression (seconds first), e.g. "*/30 * * * * *".
func NewRouteProgressionJob(
	lister RouteLister,
	advancer RouteAdvancer,
	schedule string,
	logger *slog.Logger,
) *RouteProgressionJob {
	return &RouteProgressionJob{
		lister:   lister,
		advancer: advancer,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "route_progression_job"),
	}
}

// Start registers the job on its schedule and starts the scheduler.
func (j *RouteProgressionJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Route progression job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running tick to finish.
func (j *RouteProgressionJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Route progression job stopped")
}

// Run advances every in-transit route once. A failure on one route does not
// stop the others.
func (j *RouteProgressionJob) Run(ctx context.Context) {
	ids, err := j.lister.ListIDsByStatus(ctx, route.InTransit)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to list in-transit routes", "error", err)
		return
	}

	for _, id := range ids {
		j.advance(ctx, id)
	}
}

func (j *RouteProgressionJob) advance(ctx context.Context, routeID kernel.UUID) {
	cmd, err := commands.NewAdvanceRouteStopCommand(routeID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Invalid route id", "route_id", routeID.String(), "error", err)
		progressionAdvances.WithLabelValues("failed").Inc()
		return
	}

	arrival, err := j.advancer.Handle(ctx, cmd)
	switch {
	case err == nil:
	case errors.Is(err, errs.ErrVersionIsInvalid), errors.Is(err, route.ErrRouteIsTerminal):
		// another writer moved or closed the route since it was listed
		j.logger.DebugContext(ctx, "Route skipped", "route_id", routeID.String(), "error", err)
		progressionAdvances.WithLabelValues("skipped").Inc()
		return
	default:
		j.logger.ErrorContext(ctx, "Route progression failed", "route_id", routeID.String(), "error", err)
		progressionAdvances.WithLabelValues("failed").Inc()
		return
	}

	if arrival.ReachedEnd {
		progressionAdvances.WithLabelValues("completed").Inc()
		return
	}
	progressionAdvances.WithLabelValues("advanced").Inc()
}
