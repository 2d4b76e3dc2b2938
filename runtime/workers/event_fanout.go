package workers

import (
	"context"
	"log/slog"
	"time"

	"storysplit/contract"
	"storysplit/domain/event"
)

// EventFanoutWorker broadcasts domain events to in-process consumers:
// the permanent sinks (persistence, search index, board projection)
// receive everything, the board channel subscribers only what belongs
// to their board.
//
// It provides best-effort fan-out with no guarantees regarding delivery,
// ordering, durability, or retries. EventFanoutWorker is not a message broker.
type EventFanoutWorker struct {
	log            *slog.Logger
	permanentSinks []contract.EventSink
	registry       contract.IRegistry
	domainEvents   chan event.DomainEvent
	telemetry      chan any
	sinkTimeout    time.Duration
}

func NewEventFanoutWorker(log *slog.Logger,
	permanentSinks []contract.EventSink,
	registry contract.IRegistry,
	domainEvents chan event.DomainEvent,
	telemetry chan any,
	sinkTimeout time.Duration) *EventFanoutWorker {
	return &EventFanoutWorker{
		log:            log,
		permanentSinks: permanentSinks,
		registry:       registry,
		domainEvents:   domainEvents,
		telemetry:      telemetry,
		sinkTimeout:    sinkTimeout,
	}
}

func (w *EventFanoutWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping fanout")
			return ctx.Err()
		case evt, ok := <-w.domainEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.Fanout(evt)
		}
	}
}

// Fanout delivers one event to every eligible sink. Each delivery runs
// in its own goroutine under the sink timeout: a slow subscriber can
// lose events, it can never stall the board.
func (w *EventFanoutWorker) Fanout(evt event.DomainEvent) {
	sinks := append([]contract.EventSink{}, w.permanentSinks...)
	sinks = append(sinks, w.registry.GetSinksForBoard(evt.BoardID())...)

	for _, sink := range sinks {
		go func(s contract.EventSink) {
			ctx, cancel := context.WithTimeout(context.Background(), w.sinkTimeout)
			defer cancel()
			if err := s.Consume(ctx, evt); err != nil {
				w.log.Warn("Sink dropped event",
					"board", evt.BoardID(),
					"error", err)
				w.report(event.SubscriberDropped{Board: string(evt.BoardID())})
			}
		}(sink)
	}
}

// report is non-blocking: telemetry is sampled, losing a data point is
// cheaper than blocking delivery.
func (w *EventFanoutWorker) report(evt any) {
	if w.telemetry == nil {
		return
	}
	select {
	case w.telemetry <- evt:
	default:
		w.log.Debug("Observability telemetry event lost")
	}
}
