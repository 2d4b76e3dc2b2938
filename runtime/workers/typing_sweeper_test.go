package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/domain/event"
)

func TestTypingSweeper_Expires_Silent_Typist(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 8)
	sweeper := NewTypingSweeper(30*time.Millisecond, 10*time.Millisecond, events, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sweeper.Run(ctx) }()

	board := domain.BoardID("epic-1")
	storyID := uuid.New()
	member := domain.Presence{UserID: "u1", Name: "alice"}

	// Given a typing indicator that is never refreshed
	sweeper.Touch(board, storyID, member)

	// Then the sweeper clears it on the client's behalf
	select {
	case evt := <-events:
		stopped, ok := evt.(event.TypingStopped)
		req.True(ok)
		req.Equal(board, stopped.Board)
		req.Equal(storyID, stopped.StoryID)
		req.Equal(member, stopped.Member)
		req.True(stopped.Expired)
	case <-time.After(2 * time.Second):
		t.Fatal("no expiry emitted")
	}
}

func TestTypingSweeper_Touch_Keeps_Indicator_Alive(t *testing.T) {
	events := make(chan event.DomainEvent, 8)
	sweeper := NewTypingSweeper(100*time.Millisecond, 20*time.Millisecond, events, slog.Default())
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = sweeper.Run(ctx) }()

	board := domain.BoardID("epic-1")
	storyID := uuid.New()
	member := domain.Presence{UserID: "u1", Name: "alice"}

	// Refresh faster than the TTL for a while
	for i := 0; i < 5; i++ {
		sweeper.Touch(board, storyID, member)
		time.Sleep(30 * time.Millisecond)
	}

	select {
	case evt := <-events:
		t.Fatalf("unexpected expiry while typing was refreshed: %#v", evt)
	default:
	}
}

func TestTypingSweeper_Clear_Prevents_Expiry(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 8)
	sweeper := NewTypingSweeper(20*time.Millisecond, 10*time.Millisecond, events, slog.Default())

	board := domain.BoardID("epic-1")
	storyID := uuid.New()
	member := domain.Presence{UserID: "u1", Name: "alice"}

	// An explicit StopTyping removes the entry before any sweep
	sweeper.Touch(board, storyID, member)
	sweeper.Clear(board, storyID, member.UserID)

	time.Sleep(50 * time.Millisecond)
	req.Empty(sweeper.collectExpired())
}

func TestTypingSweeper_ClearUser_Drops_All_Indicators_On_Board(t *testing.T) {
	req := require.New(t)
	events := make(chan event.DomainEvent, 8)
	sweeper := NewTypingSweeper(time.Nanosecond, time.Hour, events, slog.Default())

	alice := domain.Presence{UserID: "u1", Name: "alice"}
	bob := domain.Presence{UserID: "u2", Name: "bob"}
	sweeper.Touch("epic-1", uuid.New(), alice)
	sweeper.Touch("epic-1", uuid.New(), alice)
	sweeper.Touch("epic-1", uuid.New(), bob)
	sweeper.Touch("epic-2", uuid.New(), alice)

	// When alice's connection to epic-1 goes away
	sweeper.ClearUser("epic-1", alice.UserID)

	// Then only bob's indicator and alice's other board survive
	expired := sweeper.collectExpired()
	req.Len(expired, 2)
	for _, evt := range expired {
		stopped := evt.(event.TypingStopped)
		if stopped.Board == "epic-1" {
			req.Equal(bob, stopped.Member)
		} else {
			req.Equal(alice, stopped.Member)
		}
	}
}
