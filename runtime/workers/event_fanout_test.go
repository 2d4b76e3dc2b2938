package workers

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
)

// recordingSink collects consumed events so assertions can wait on them.
type recordingSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
	fail   error
}

func (s *recordingSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.fail
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

// stubRegistry serves a fixed sink set per board.
type stubRegistry struct {
	sinks map[domain.BoardID][]contract.EventSink
}

func (r stubRegistry) GetSinksForBoard(board domain.BoardID) []contract.EventSink {
	return r.sinks[board]
}
func (r stubRegistry) Members(domain.BoardID) []domain.Presence { return nil }
func (r stubRegistry) Subscribe(domain.Presence, domain.BoardID, contract.EventSink) []domain.Presence {
	return nil
}
func (r stubRegistry) Unsubscribe(string, domain.BoardID) {}

func TestFanout_Reaches_Permanent_And_Board_Sinks(t *testing.T) {
	req := require.New(t)
	permanent := &recordingSink{}
	subscriber := &recordingSink{}
	otherBoard := &recordingSink{}
	registry := stubRegistry{sinks: map[domain.BoardID][]contract.EventSink{
		"epic-1": {subscriber},
		"epic-2": {otherBoard},
	}}
	fanout := NewEventFanoutWorker(slog.Default(),
		[]contract.EventSink{permanent}, registry, nil, nil, time.Second)

	evt := event.MemberJoined{Board: "epic-1", Member: domain.Presence{UserID: "u1", Name: "alice"}}
	fanout.Fanout(evt)

	// Permanent sinks and the board's subscribers get the event
	req.Eventually(func() bool { return permanent.count() == 1 }, 2*time.Second, 10*time.Millisecond)
	req.Eventually(func() bool { return subscriber.count() == 1 }, 2*time.Second, 10*time.Millisecond)

	// Subscribers of other boards never see it
	req.Zero(otherBoard.count())
}

func TestFanout_Failing_Sink_Reports_Telemetry(t *testing.T) {
	req := require.New(t)
	failing := &recordingSink{fail: context.DeadlineExceeded}
	telemetry := make(chan any, 8)
	fanout := NewEventFanoutWorker(slog.Default(),
		[]contract.EventSink{failing}, stubRegistry{}, nil, telemetry, time.Second)

	fanout.Fanout(event.MemberLeft{Board: "epic-1", Member: domain.Presence{UserID: "u1"}})

	select {
	case evt := <-telemetry:
		dropped, ok := evt.(event.SubscriberDropped)
		req.True(ok)
		req.Equal("epic-1", dropped.Board)
	case <-time.After(2 * time.Second):
		t.Fatal("no telemetry reported")
	}
}

func TestFanout_Run_Drains_Channel(t *testing.T) {
	req := require.New(t)
	permanent := &recordingSink{}
	domainEvents := make(chan event.DomainEvent, 8)
	fanout := NewEventFanoutWorker(slog.Default(),
		[]contract.EventSink{permanent}, stubRegistry{}, domainEvents, nil, time.Second)

	done := make(chan error, 1)
	go func() { done <- fanout.Run(context.Background()) }()

	domainEvents <- event.MemberJoined{Board: "epic-1"}
	domainEvents <- event.MemberLeft{Board: "epic-1"}
	req.Eventually(func() bool { return permanent.count() == 2 }, 2*time.Second, 10*time.Millisecond)

	close(domainEvents)
	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("fanout did not stop")
	}
}
