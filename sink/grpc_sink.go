package sink

import (
	"context"
	"log/slog"
	"time"

	"storysplit/domain/event"
)

// GrpcSink buffers events for one connected client. The Connect
// handler owns the channel and drains it into the stream.
type GrpcSink struct {
	ConnectedUserEvent chan event.DomainEvent
	log                *slog.Logger
	deliveryTimeout    time.Duration
}

func NewGrpcSink(log *slog.Logger, bufferSize int, deliveryTimeout time.Duration) *GrpcSink {
	return &GrpcSink{
		ConnectedUserEvent: make(chan event.DomainEvent, bufferSize),
		log:                log,
		deliveryTimeout:    deliveryTimeout,
	}
}

// Consume is called by fanout.
// Redirect the event through the concerned owner of the channel;
// the gRPC handler will take it from now. Delivery is best-effort: a
// client that cannot keep up within the timeout loses the event.
func (s *GrpcSink) Consume(ctx context.Context, e event.DomainEvent) error {
	select {
	case s.ConnectedUserEvent <- e:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(s.deliveryTimeout):
		s.log.Debug("Slow subscriber, event dropped", "board", e.BoardID())
		return context.DeadlineExceeded
	}
}
