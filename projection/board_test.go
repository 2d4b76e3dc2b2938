package projection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/domain/event"
)

func story(epic domain.BoardID, title string, priority domain.Priority, status domain.Status, updatedAt time.Time) domain.Story {
	return domain.Story{
		ID:        uuid.New(),
		EpicID:    epic,
		Title:     title,
		Priority:  priority,
		Status:    status,
		UpdatedAt: updatedAt,
	}
}

func TestBuildColumns_Grouping_And_Ordering(t *testing.T) {
	req := require.New(t)
	now := time.Now().UTC()

	lowOld := story("epic-1", "low old", domain.PriorityLow, domain.StatusBacklog, now.Add(-2*time.Hour))
	critical := story("epic-1", "critical", domain.PriorityCritical, domain.StatusBacklog, now.Add(-3*time.Hour))
	highFresh := story("epic-1", "high fresh", domain.PriorityHigh, domain.StatusBacklog, now)
	highStale := story("epic-1", "high stale", domain.PriorityHigh, domain.StatusBacklog, now.Add(-1*time.Hour))
	done := story("epic-1", "done", domain.PriorityMedium, domain.StatusDone, now)

	columns := BuildColumns([]domain.Story{lowOld, critical, highFresh, highStale, done})

	// Every column exists, even the empty ones
	req.Len(columns, len(domain.Columns))
	req.Empty(columns[domain.StatusReady])

	// Priority first, most recently updated second
	backlog := columns[domain.StatusBacklog]
	req.Len(backlog, 4)
	req.Equal("critical", backlog[0].Title)
	req.Equal("high fresh", backlog[1].Title)
	req.Equal("high stale", backlog[2].Title)
	req.Equal("low old", backlog[3].Title)

	req.Len(columns[domain.StatusDone], 1)
}

func TestBoard_Consume_Maintains_Live_View(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	board := NewBoard()
	epic := domain.BoardID("epic-1")
	s := story(epic, "pay with a saved card", domain.PriorityHigh, domain.StatusBacklog, time.Now().UTC())

	// Given a created story
	req.NoError(board.Consume(ctx, event.StoryCreated{Story: s}))
	req.Len(board.Columns(epic)[domain.StatusBacklog], 1)

	// When it is updated
	s.Title = "pay with any card"
	req.NoError(board.Consume(ctx, event.StoryUpdated{Story: s, ChangedBy: "alice"}))
	req.Equal("pay with any card", board.Columns(epic)[domain.StatusBacklog][0].Title)

	// When it moves columns
	req.NoError(board.Consume(ctx, event.StoryMoved{
		Board:   epic,
		StoryID: s.ID,
		From:    domain.StatusBacklog,
		To:      domain.StatusInProgress,
		At:      time.Now().UTC(),
	}))
	req.Empty(board.Columns(epic)[domain.StatusBacklog])
	req.Len(board.Columns(epic)[domain.StatusInProgress], 1)

	// When it is deleted the view is empty again
	req.NoError(board.Consume(ctx, event.StoryDeleted{Board: epic, StoryID: s.ID}))
	req.Empty(board.Columns(epic)[domain.StatusInProgress])
}

func TestBoard_Consume_Ignores_Unknown_Stories(t *testing.T) {
	req := require.New(t)
	board := NewBoard()

	err := board.Consume(context.Background(), event.StoryMoved{
		Board:   "epic-1",
		StoryID: uuid.New(),
		To:      domain.StatusDone,
	})

	req.NoError(err)
	req.Empty(board.Columns("epic-1")[domain.StatusDone])
}
