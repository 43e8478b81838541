package job

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"saham-radar/internal/domain"

	"go.opentelemetry.io/otel/trace"
)

type broadcastRunnerStub struct {
	calls *int32
}

func (s *broadcastRunnerStub) RunBroadcastCycle(ctx context.Context) (domain.BroadcastRunResult, error) {
	atomic.AddInt32(s.calls, 1)
	return domain.BroadcastRunResult{}, nil
}

func TestBroadcastJobRunsAfterFirstDelay(t *testing.T) {
	var calls int32
	j := NewBroadcastJob(trace.NewNoopTracerProvider().Tracer("test"), &broadcastRunnerStub{calls: &calls}, 50*time.Millisecond, time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	time.Sleep(30 * time.Millisecond)
	cancel()
	<-done

	if atomic.LoadInt32(&calls) == 0 {
		t.Fatal("expected at least one broadcast run")
	}
}

func TestBroadcastJobCancelledDuringFirstDelay(t *testing.T) {
	var calls int32
	j := NewBroadcastJob(trace.NewNoopTracerProvider().Tracer("test"), &broadcastRunnerStub{calls: &calls}, time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on cancellation")
	}

	if atomic.LoadInt32(&calls) != 0 {
		t.Fatalf("expected no runs, got %d", calls)
	}
}

func TestBroadcastJobWithoutRunnerWaitsForShutdown(t *testing.T) {
	j := NewBroadcastJob(trace.NewNoopTracerProvider().Tracer("test"), nil, time.Minute, 0)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		j.Start(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop on cancellation")
	}
}
