package sink

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/mocks"

	"github.com/google/uuid"
)

func TestDiskSink_Persists_Feedback(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIFeedbackRepository(ctrl)
	sink := NewDiskSink(repository, slog.Default())

	fb := domain.Feedback{ID: uuid.New(), StoryID: uuid.New(), Agent: "coach"}
	repository.EXPECT().Store(fb).Return(nil).Times(1)

	err := sink.Consume(context.Background(), event.FeedbackReady{Board: "epic-1", Feedback: fb})
	req.NoError(err)
}

func TestDiskSink_Ignores_Other_Events(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	repository := mocks.NewMockIFeedbackRepository(ctrl)
	sink := NewDiskSink(repository, slog.Default())

	// No Store expectation: any call would fail the test
	err := sink.Consume(context.Background(), event.MemberJoined{Board: "epic-1"})
	req.NoError(err)
}

func TestSearchSink_Indexes_Created_And_Updated(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)
	stories := mocks.NewMockIStoryRepository(ctrl)
	sink := NewSearchSink(index, stories, slog.Default())

	story := domain.Story{ID: uuid.New(), EpicID: "epic-1", Title: "Pay with a saved card"}
	index.EXPECT().Index(story).Return(nil).Times(2)

	req.NoError(sink.Consume(context.Background(), event.StoryCreated{Story: story}))
	req.NoError(sink.Consume(context.Background(), event.StoryUpdated{Story: story}))
}

func TestSearchSink_Rebuilds_Document_On_Move(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)
	stories := mocks.NewMockIStoryRepository(ctrl)
	sink := NewSearchSink(index, stories, slog.Default())

	story := domain.Story{ID: uuid.New(), EpicID: "epic-1", Status: domain.StatusInProgress}
	stories.EXPECT().Get(story.ID).Return(story, nil).Times(1)
	index.EXPECT().Index(story).Return(nil).Times(1)

	req.NoError(sink.Consume(context.Background(), event.StoryMoved{
		Board:   "epic-1",
		StoryID: story.ID,
		To:      domain.StatusInProgress,
	}))
}

func TestSearchSink_Removes_Deleted_Story(t *testing.T) {
	req := require.New(t)
	ctrl := gomock.NewController(t)
	index := mocks.NewMockISearchIndex(ctrl)
	stories := mocks.NewMockIStoryRepository(ctrl)
	sink := NewSearchSink(index, stories, slog.Default())

	storyID := uuid.New()
	index.EXPECT().Remove(storyID.String()).Return(nil).Times(1)

	req.NoError(sink.Consume(context.Background(), event.StoryDeleted{Board: "epic-1", StoryID: storyID}))
}

func TestGrpcSink_Buffers_Events(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(slog.Default(), 2, time.Second)

	evt := event.MemberJoined{Board: "epic-1", Member: domain.Presence{UserID: "u1"}}
	req.NoError(sink.Consume(context.Background(), evt))

	select {
	case got := <-sink.ConnectedUserEvent:
		req.Equal(evt, got)
	default:
		t.Fatal("event not buffered")
	}
}

func TestGrpcSink_Drops_Event_For_Slow_Subscriber(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(slog.Default(), 1, 20*time.Millisecond)

	// Fill the buffer; nobody drains it
	req.NoError(sink.Consume(context.Background(), event.MemberJoined{Board: "epic-1"}))

	err := sink.Consume(context.Background(), event.MemberLeft{Board: "epic-1"})
	req.ErrorIs(err, context.DeadlineExceeded)
}

func TestGrpcSink_Honours_Context_Cancellation(t *testing.T) {
	req := require.New(t)
	sink := NewGrpcSink(slog.Default(), 1, time.Hour)
	req.NoError(sink.Consume(context.Background(), event.MemberJoined{Board: "epic-1"}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sink.Consume(ctx, event.MemberLeft{Board: "epic-1"})
	req.ErrorIs(err, context.Canceled)
}
