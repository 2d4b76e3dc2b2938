package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/agent"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/invest"
)

func newTestAgent(t *testing.T) *agent.Agent {
	t.Helper()
	data, err := invest.NewKeywordLoader(invest.KeywordFiles).LoadAll("keywords")
	require.NoError(t, err)
	splitter, err := invest.NewSplitter(data, slog.Default())
	require.NoError(t, err)
	return agent.New(invest.NewScorer(), splitter, slog.Default())
}

func TestAgentWorker_Reviews_Created_Story(t *testing.T) {
	req := require.New(t)
	rawEvents := make(chan event.DomainEvent, 8)
	events := make(chan event.DomainEvent, 8)
	worker := NewAgentWorker(newTestAgent(t), rawEvents, events, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	story := domain.Story{
		ID:          uuid.New(),
		EpicID:      "epic-1",
		Title:       "Checkout and refunds",
		Description: "As a shopper I want to pay with a saved card and I want to receive a refund confirmation by email afterwards.",
		Priority:    domain.PriorityHigh,
	}
	rawEvents <- event.StoryCreated{Story: story}

	// The raw event passes through first
	select {
	case evt := <-events:
		created, ok := evt.(event.StoryCreated)
		req.True(ok)
		req.Equal(story.ID, created.Story.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("raw event not forwarded")
	}

	// The review follows on the same channel
	select {
	case evt := <-events:
		ready, ok := evt.(event.FeedbackReady)
		req.True(ok)
		req.Equal(domain.BoardID("epic-1"), ready.BoardID())
		req.Equal(story.ID, ready.Feedback.StoryID)
		req.Len(ready.Feedback.Scores, 6)
		// The compound description also yields a split proposal
		req.GreaterOrEqual(len(ready.Feedback.Proposal), 2)
	case <-time.After(2 * time.Second):
		t.Fatal("no feedback emitted")
	}
}

func TestAgentWorker_Forwards_Other_Events_Untouched(t *testing.T) {
	req := require.New(t)
	rawEvents := make(chan event.DomainEvent, 8)
	events := make(chan event.DomainEvent, 8)
	worker := NewAgentWorker(newTestAgent(t), rawEvents, events, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = worker.Run(ctx) }()

	moved := event.StoryMoved{
		Board:   "epic-1",
		StoryID: uuid.New(),
		From:    domain.StatusBacklog,
		To:      domain.StatusDone,
	}
	rawEvents <- moved

	select {
	case evt := <-events:
		req.Equal(moved, evt)
	case <-time.After(2 * time.Second):
		t.Fatal("event not forwarded")
	}

	// A move triggers no review
	select {
	case evt := <-events:
		t.Fatalf("unexpected extra event: %#v", evt)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestAgentWorker_Stops_On_Closed_Channel(t *testing.T) {
	req := require.New(t)
	rawEvents := make(chan event.DomainEvent)
	events := make(chan event.DomainEvent, 8)
	worker := NewAgentWorker(newTestAgent(t), rawEvents, events, slog.Default())

	done := make(chan error, 1)
	go func() { done <- worker.Run(context.Background()) }()
	close(rawEvents)

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
