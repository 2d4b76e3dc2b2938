package workers

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/repositories"
)

type boardUnitFixture struct {
	worker   *BoardUnitWorker
	stories  repositories.StoryRepository
	epics    repositories.EpicRepository
	commands chan domain.Command
	events   chan event.DomainEvent
}

func newBoardUnitFixture(t *testing.T) boardUnitFixture {
	t.Helper()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	stories := repositories.NewStoryRepository(db, slog.Default())
	epics := repositories.NewEpicRepository(db)
	commands := make(chan domain.Command, 8)
	events := make(chan event.DomainEvent, 8)
	return boardUnitFixture{
		worker:   NewBoardUnitWorker(stories, epics, commands, events, slog.Default()),
		stories:  stories,
		epics:    epics,
		commands: commands,
		events:   events,
	}
}

func (f boardUnitFixture) waitEvent(t *testing.T) event.DomainEvent {
	t.Helper()
	select {
	case evt := <-f.events:
		return evt
	case <-time.After(2 * time.Second):
		t.Fatal("no event emitted")
		return nil
	}
}

func baseStory() domain.Story {
	now := time.Now().UTC()
	return domain.Story{
		ID:          uuid.New(),
		EpicID:      "epic-1",
		Title:       "Pay with a saved card",
		Description: "As a shopper I want to pay with a saved card so that checkout is faster.",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusBacklog,
		CreatedBy:   "alice",
		CreatedAt:   now,
		UpdatedAt:   now,
		Revision:    1,
	}
}

func TestBoardUnit_Create_Story(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	// When a creation command goes through the pool
	story := baseStory()
	f.commands <- domain.CreateStoryCommand{Story: story}

	// Then the story is persisted and the raw event emitted
	evt := f.waitEvent(t)
	created, ok := evt.(event.StoryCreated)
	req.True(ok)
	req.Equal(story, created.Story)

	stored, err := f.stories.Get(story.ID)
	req.NoError(err)
	req.Equal(story, stored)
}

func TestBoardUnit_Update_Merges_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	// Given a stored story
	story := baseStory()
	req.NoError(f.stories.Save(story))

	// When an update overlays new field values
	incoming := story
	incoming.Title = "Pay with any stored card"
	incoming.Effort = 5
	at := time.Now().UTC()
	f.commands <- domain.UpdateStoryCommand{Story: incoming, ChangedBy: "bob", At: at}

	// Then the merged story keeps creation metadata and bumps the revision
	evt := f.waitEvent(t)
	updated, ok := evt.(event.StoryUpdated)
	req.True(ok)
	req.Equal("bob", updated.ChangedBy)
	req.Equal("Pay with any stored card", updated.Story.Title)
	req.Equal(5, updated.Story.Effort)
	req.Equal(story.CreatedBy, updated.Story.CreatedBy)
	req.Equal(at, updated.Story.UpdatedAt)
	req.Equal(story.Revision+1, updated.Story.Revision)
}

func TestBoardUnit_Move_Story(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	story := baseStory()
	req.NoError(f.stories.Save(story))

	at := time.Now().UTC()
	f.commands <- domain.MoveStoryCommand{
		Board:   story.EpicID,
		StoryID: story.ID,
		To:      domain.StatusInProgress,
		MovedBy: "bob",
		At:      at,
	}

	evt := f.waitEvent(t)
	moved, ok := evt.(event.StoryMoved)
	req.True(ok)
	req.Equal(domain.StatusBacklog, moved.From)
	req.Equal(domain.StatusInProgress, moved.To)
	req.Equal("bob", moved.MovedBy)

	stored, err := f.stories.Get(story.ID)
	req.NoError(err)
	req.Equal(domain.StatusInProgress, stored.Status)
	req.Equal(story.Revision+1, stored.Revision)
}

func TestBoardUnit_Delete_Story(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	story := baseStory()
	req.NoError(f.stories.Save(story))

	f.commands <- domain.DeleteStoryCommand{Board: story.EpicID, StoryID: story.ID, DeletedBy: "alice"}

	evt := f.waitEvent(t)
	deleted, ok := evt.(event.StoryDeleted)
	req.True(ok)
	req.Equal(story.ID, deleted.StoryID)

	_, err := f.stories.Get(story.ID)
	req.Error(err)
}

func TestBoardUnit_Create_Epic(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	epic := domain.Epic{ID: "epic-1", Name: "Checkout revamp", CreatedAt: time.Now().UTC()}
	f.commands <- domain.CreateEpicCommand{Epic: epic}

	evt := f.waitEvent(t)
	created, ok := evt.(event.EpicCreated)
	req.True(ok)
	req.Equal(epic, created.Epic)
	// The announcement goes to the default channel, where people
	// already are; the new epic's channel is still empty.
	req.Equal(domain.DefaultBoard, created.BoardID())

	stored, err := f.epics.Get(epic.ID)
	req.NoError(err)
	req.Equal(epic, stored)
}

func TestBoardUnit_Rejected_Command_Emits_Nothing(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = f.worker.Run(ctx) }()

	// Moving an unknown story is rejected, the pool keeps going
	f.commands <- domain.MoveStoryCommand{Board: "epic-1", StoryID: uuid.New(), To: domain.StatusDone}
	story := baseStory()
	f.commands <- domain.CreateStoryCommand{Story: story}

	evt := f.waitEvent(t)
	created, ok := evt.(event.StoryCreated)
	req.True(ok)
	req.Equal(story.ID, created.Story.ID)
}

func TestBoardUnit_Stops_On_Closed_Channel(t *testing.T) {
	req := require.New(t)
	f := newBoardUnitFixture(t)

	done := make(chan error, 1)
	go func() { done <- f.worker.Run(context.Background()) }()
	close(f.commands)

	select {
	case err := <-done:
		req.NoError(err)
	case <-time.After(2 * time.Second):
		t.Fatal("worker did not stop")
	}
}
