package jobs

import (
	"context"
	"time"

	"gateway/internal/backend"
	"gateway/internal/infra"
	"gateway/internal/metric"
	"gateway/internal/routing"
	"gateway/internal/transform"
)

// Outcome is the discriminated result of one job execution: exactly one
// of Result and Err is set.
type Outcome struct {
	Result map[string]any
	Err    error
}

// Executor runs the transform -> invoke -> reshape chain for one job and
// records the terminal state on the store. The same unit serves both
// synchronous (inline) and asynchronous (detached goroutine) execution.
type Executor struct {
	store       *Store
	client      *backend.Client
	gatewayBase string
	logger      infra.Logger
	metrics     *metric.Metrics
}

// NewExecutor wires an executor over the store and backend client.
func NewExecutor(store *Store, client *backend.Client, gatewayBase string, logger infra.Logger, metrics *metric.Metrics) *Executor {
	return &Executor{
		store:       store,
		client:      client,
		gatewayBase: gatewayBase,
		logger:      logger,
		metrics:     metrics,
	}
}

// Execute drives a job to its terminal state. Backend and transformation
// failures are captured on the job record rather than propagated; the
// returned Outcome carries the same result or error for synchronous
// callers. A job deleted before or during execution has its outcome
// discarded.
func (e *Executor) Execute(ctx context.Context, jobID string, route routing.RouteConfig, req transform.Request) Outcome {
	if !e.store.MarkProcessing(jobID) {
		e.logger.Debug().Str("job_id", jobID).Msg("job gone before execution, skipping")
		return Outcome{Err: context.Canceled}
	}

	category := string(route.Category)
	e.metrics.JobsStarted.WithLabelValues(category).Inc()

	payload := transform.BuildBackendRequest(route, req)
	url := route.TargetURL()
	e.logger.Info().Str("job_id", jobID).Str("url", url).Msg("calling backend")

	start := time.Now()
	resp, err := e.client.Invoke(ctx, url, payload, jobID)
	elapsed := time.Since(start)
	e.metrics.BackendDuration.WithLabelValues(category).Observe(elapsed.Seconds())

	if err != nil {
		e.metrics.JobsFailed.WithLabelValues(category).Inc()
		if !e.store.Fail(jobID, err.Error()) {
			e.logger.Debug().Str("job_id", jobID).Msg("discarding failure for deleted job")
		}
		e.logger.Error().Str("job_id", jobID).Err(err).Msg("job failed")
		return Outcome{Err: err}
	}

	result := transform.ReshapeBackendResponse(route, resp, jobID, e.gatewayBase)
	e.metrics.JobsCompleted.WithLabelValues(category).Inc()
	if !e.store.Complete(jobID, result) {
		e.logger.Debug().Str("job_id", jobID).Msg("discarding result for deleted job")
	}
	e.logger.Info().Str("job_id", jobID).Dur("elapsed", elapsed).Msg("job completed")
	return Outcome{Result: result}
}
