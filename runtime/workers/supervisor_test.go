package workers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storysplit/domain/event"
)

// flakyWorker panics on its first runs, then blocks until cancellation.
type flakyWorker struct {
	runs     atomic.Int32
	panicsAt int32
}

func (w *flakyWorker) Run(ctx context.Context) error {
	if w.runs.Add(1) <= w.panicsAt {
		panic("boom")
	}
	<-ctx.Done()
	return ctx.Err()
}

type finishingWorker struct {
	runs atomic.Int32
}

func (w *finishingWorker) Run(ctx context.Context) error {
	w.runs.Add(1)
	return nil
}

func TestSupervisor_Restarts_Panicking_Worker(t *testing.T) {
	req := require.New(t)
	supervisor := NewSupervisor(slog.Default(), 10*time.Millisecond)
	worker := &flakyWorker{panicsAt: 2}
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	// Given two panics, the worker should be running its third attempt
	req.Eventually(func() bool {
		return worker.runs.Load() == 3
	}, 2*time.Second, 10*time.Millisecond)

	supervisor.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}

func TestSupervisor_Reports_Restarts_To_Telemetry(t *testing.T) {
	req := require.New(t)
	supervisor := NewSupervisor(slog.Default(), 10*time.Millisecond)
	telemetry := make(chan any, 8)
	supervisor.ReportTo(telemetry)
	worker := &flakyWorker{panicsAt: 1}
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	// The single panic must surface as one restart report
	select {
	case evt := <-telemetry:
		restarted, ok := evt.(event.WorkerRestartedAfterPanic)
		req.True(ok)
		req.Equal("flakyWorker", restarted.WorkerName)
	case <-time.After(2 * time.Second):
		t.Fatal("no restart reported")
	}

	req.Eventually(func() bool {
		return worker.runs.Load() == 2
	}, 2*time.Second, 10*time.Millisecond)

	supervisor.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	req.Empty(telemetry)
}

func TestSupervisor_Never_Restarts_Finished_Worker(t *testing.T) {
	req := require.New(t)
	supervisor := NewSupervisor(slog.Default(), 10*time.Millisecond)
	worker := &finishingWorker{}
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	// A clean return means done, not crashed
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
	req.Equal(int32(1), worker.runs.Load())
}

func TestSupervisor_Stop_Cancels_Workers(t *testing.T) {
	req := require.New(t)
	supervisor := NewSupervisor(slog.Default(), time.Hour)
	worker := &flakyWorker{panicsAt: 0}
	supervisor.Add(worker)

	done := make(chan struct{})
	go func() {
		supervisor.Run(context.Background())
		close(done)
	}()

	req.Eventually(func() bool {
		return worker.runs.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)

	supervisor.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("supervisor did not stop")
	}
}
