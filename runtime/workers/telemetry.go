package workers

import (
	"context"
	"log/slog"

	"storysplit/observability"
)

// TelemetryWorker drains the technical event channel into the
// monitoring manager. Technical events never reach board channels.
type TelemetryWorker struct {
	log        *slog.Logger
	telemetry  chan any
	monitoring *observability.Manager
}

func NewTelemetryWorker(log *slog.Logger, telemetry chan any,
	monitoring *observability.Manager) *TelemetryWorker {
	return &TelemetryWorker{log: log, telemetry: telemetry, monitoring: monitoring}
}

func (w TelemetryWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case evt, ok := <-w.telemetry:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.monitoring.Record(evt)
		}
	}
}
