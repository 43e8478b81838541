package job

import (
	"context"
	"log"
	"time"

	"saham-radar/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type BroadcastRunner interface {
	RunBroadcastCycle(ctx context.Context) (domain.BroadcastRunResult, error)
}

// BroadcastJob drives the scheduled news push: one run shortly after
// startup, then one per poll interval. Runs are synchronous within the
// loop, so a slow cycle delays the next tick instead of overlapping it.
type BroadcastJob struct {
	tracer       trace.Tracer
	runner       BroadcastRunner
	pollInterval time.Duration
	firstDelay   time.Duration
}

func NewBroadcastJob(tracer trace.Tracer, runner BroadcastRunner, pollInterval, firstDelay time.Duration) *BroadcastJob {
	if pollInterval <= 0 {
		pollInterval = 5 * time.Minute
	}
	if firstDelay < 0 {
		firstDelay = 10 * time.Second
	}
	return &BroadcastJob{
		tracer:       tracer,
		runner:       runner,
		pollInterval: pollInterval,
		firstDelay:   firstDelay,
	}
}

// Start blocks until ctx is cancelled.
func (j *BroadcastJob) Start(ctx context.Context) {
	if j.runner == nil {
		log.Println("Broadcast job disabled: no runner")
		<-ctx.Done()
		return
	}

	select {
	case <-ctx.Done():
		return
	case <-time.After(j.firstDelay):
	}

	j.runOnce(ctx)

	ticker := time.NewTicker(j.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("Broadcast job stopped")
			return
		case <-ticker.C:
			j.runOnce(ctx)
		}
	}
}

func (j *BroadcastJob) runOnce(ctx context.Context) {
	_, span := j.tracer.Start(ctx, "broadcast-job.run-once")
	defer span.End()

	result, err := j.runner.RunBroadcastCycle(ctx)
	if err != nil {
		log.Printf("Broadcast cycle error: %v", err)
		return
	}
	if result.NewArticles > 0 || len(result.Errors) > 0 {
		log.Printf(
			"Broadcast cycle complete fetched=%d matched=%d new=%d sent=%d errors=%d",
			result.EntriesFetched,
			result.ArticlesMatched,
			result.NewArticles,
			result.MessagesSent,
			len(result.Errors),
		)
	}
}
