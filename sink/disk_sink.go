// Package sink holds the permanent event consumers of the fanout:
// feedback persistence and search indexing. Per-connection delivery
// sinks live next to their transport.
package sink

import (
	"context"
	"fmt"
	"log/slog"

	"storysplit/domain/event"
	"storysplit/repositories"
)

// DiskSink persists agent feedback as it comes off the pipeline, so
// feedback history survives restarts even though reviews run
// asynchronously.
type DiskSink struct {
	repository repositories.IFeedbackRepository
	log        *slog.Logger
}

func NewDiskSink(repository repositories.IFeedbackRepository, log *slog.Logger) DiskSink {
	return DiskSink{repository: repository, log: log}
}

func (d DiskSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.FeedbackReady:
		return d.repository.Store(evt.Feedback)
	default:
		d.log.Debug(fmt.Sprintf("Not implemented event : %v", evt))
		return nil
	}
}
