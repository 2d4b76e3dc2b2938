package services_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storysplit/agent"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/errors"
	"storysplit/invest"
	"storysplit/mocks"
	"storysplit/services"
)

type storyServiceFixture struct {
	service      *services.StoryService
	orchestrator *mocks.MockIOrchestrator
	stories      *mocks.MockIStoryRepository
	epics        *mocks.MockIEpicRepository
	feedback     *mocks.MockIFeedbackRepository
	searchIndex  *mocks.MockISearchIndex
}

func newStoryServiceFixture(t *testing.T) storyServiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := slog.Default()

	data, err := invest.NewKeywordLoader(invest.KeywordFiles).LoadAll("keywords")
	require.NoError(t, err)
	splitter, err := invest.NewSplitter(data, log)
	require.NoError(t, err)

	f := storyServiceFixture{
		orchestrator: mocks.NewMockIOrchestrator(ctrl),
		stories:      mocks.NewMockIStoryRepository(ctrl),
		epics:        mocks.NewMockIEpicRepository(ctrl),
		feedback:     mocks.NewMockIFeedbackRepository(ctrl),
		searchIndex:  mocks.NewMockISearchIndex(ctrl),
	}
	f.service = services.NewStoryService(f.orchestrator, f.stories, f.epics, f.feedback, f.searchIndex,
		agent.New(invest.NewScorer(), splitter, log))
	return f
}

var alice = domain.Presence{UserID: "u1", Name: "alice"}

func TestStoryService_CreateStory(t *testing.T) {
	ctx := context.Background()

	t.Run("should dispatch a creation and default the board and priority", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		var dispatched domain.Command
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).
			Do(func(cmd domain.Command) { dispatched = cmd }).
			Times(1)

		story, err := f.service.CreateStory(ctx, alice, services.StoryPayload{
			Title:       "Pay with a saved card",
			Description: "As a shopper I want to pay with a saved card so that checkout is faster.",
		})

		req.NoError(err)
		req.Equal(domain.DefaultBoard, story.EpicID)
		req.Equal(domain.PriorityMedium, story.Priority)
		req.Equal(domain.StatusBacklog, story.Status)
		req.Equal(alice.UserID, story.CreatedBy)
		req.Equal(uint64(1), story.Revision)

		create, ok := dispatched.(domain.CreateStoryCommand)
		req.True(ok)
		req.Equal(story, create.Story)
	})

	t.Run("should reject an invalid payload before dispatching", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		f.orchestrator.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := f.service.CreateStory(ctx, alice, services.StoryPayload{Title: "no"})

		req.ErrorIs(err, errors.ErrInvalidStory)
	})

	t.Run("should refuse an unknown epic", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		f.epics.EXPECT().Get(domain.BoardID("ghost")).
			Return(domain.Epic{}, errors.ErrEpicNotFound).Times(1)
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).Times(0)

		_, err := f.service.CreateStory(ctx, alice, services.StoryPayload{
			EpicID: "ghost",
			Title:  "Pay with a saved card",
		})

		req.ErrorIs(err, errors.ErrEpicNotFound)
	})

	t.Run("should sniff attachments and reject forbidden types", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		f.orchestrator.EXPECT().Dispatch(gomock.Any()).Times(0)

		zip := []byte{'P', 'K', 0x03, 0x04, 0, 0, 0, 0}
		_, err := f.service.CreateStory(ctx, alice, services.StoryPayload{
			Title:       "Pay with a saved card",
			Attachments: []services.AttachmentUpload{{Name: "notes.txt", Content: zip}},
		})

		req.ErrorIs(err, errors.ErrAttachmentRejected)
	})

	t.Run("should store attachment metadata from the sniffed bytes", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		f.orchestrator.EXPECT().Dispatch(gomock.Any()).Times(1)

		content := []byte("sprint planning notes, nothing fancy")
		story, err := f.service.CreateStory(ctx, alice, services.StoryPayload{
			Title:       "Pay with a saved card",
			Attachments: []services.AttachmentUpload{{Name: "notes.bin", Content: content}},
		})

		req.NoError(err)
		req.Len(story.Attachments, 1)
		req.Equal("notes.bin", story.Attachments[0].Name)
		req.Contains(story.Attachments[0].MimeType, "text/plain")
		req.Equal(int64(len(content)), story.Attachments[0].Size)
	})
}

func TestStoryService_UpdateStory_Preserves_Creation_Metadata(t *testing.T) {
	req := require.New(t)
	f := newStoryServiceFixture(t)
	storyID := uuid.New()
	createdAt := time.Now().Add(-time.Hour).UTC()
	current := domain.Story{
		ID:        storyID,
		EpicID:    domain.DefaultBoard,
		Title:     "Old title",
		Status:    domain.StatusReview,
		CreatedBy: "bob",
		CreatedAt: createdAt,
		Revision:  4,
	}

	f.stories.EXPECT().Get(storyID).Return(current, nil).Times(1)
	var dispatched domain.Command
	f.orchestrator.EXPECT().Dispatch(gomock.Any()).
		Do(func(cmd domain.Command) { dispatched = cmd }).
		Times(1)

	story, err := f.service.UpdateStory(context.Background(), alice, storyID, services.StoryPayload{
		Title: "New title",
	})

	req.NoError(err)
	req.Equal(storyID, story.ID)
	req.Equal("bob", story.CreatedBy)
	req.Equal(createdAt, story.CreatedAt)
	// Editing content must not claim the story moved back to backlog
	req.Equal(domain.StatusReview, story.Status)
	req.Equal(uint64(4), story.Revision)

	update, ok := dispatched.(domain.UpdateStoryCommand)
	req.True(ok)
	req.Equal(alice.UserID, update.ChangedBy)
	req.Equal("New title", update.Story.Title)
}

func TestStoryService_MoveStory(t *testing.T) {
	t.Run("should refuse an unknown column", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		_, err := f.service.MoveStory(context.Background(), alice, uuid.New(), "parking_lot")

		req.ErrorIs(err, errors.ErrInvalidStatus)
	})

	t.Run("should dispatch the move and return the optimistic story", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)
		storyID := uuid.New()
		current := domain.Story{ID: storyID, EpicID: "epic-1", Status: domain.StatusBacklog}

		f.stories.EXPECT().Get(storyID).Return(current, nil).Times(1)
		var dispatched domain.Command
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).
			Do(func(cmd domain.Command) { dispatched = cmd }).
			Times(1)

		story, err := f.service.MoveStory(context.Background(), alice, storyID, "in_progress")

		req.NoError(err)
		req.Equal(domain.StatusInProgress, story.Status)

		move, ok := dispatched.(domain.MoveStoryCommand)
		req.True(ok)
		req.Equal(domain.StatusInProgress, move.To)
		req.Equal(alice.UserID, move.MovedBy)
	})
}

func TestStoryService_DeleteEpic(t *testing.T) {
	t.Run("should refuse to delete the default board", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		_, err := f.service.DeleteEpic(domain.DefaultBoard)

		req.Error(err)
	})

	t.Run("should reparent orphans onto the default board", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)
		board := domain.BoardID("epic-1")
		orphans := []domain.Story{
			{ID: uuid.New(), EpicID: board, Title: "first"},
			{ID: uuid.New(), EpicID: board, Title: "second"},
		}

		f.epics.EXPECT().Get(board).Return(domain.Epic{ID: board}, nil).Times(1)
		f.stories.EXPECT().ListByEpic(board).Return(orphans, nil).Times(1)
		var dispatched []domain.Command
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).
			Do(func(cmd domain.Command) { dispatched = append(dispatched, cmd) }).
			Times(2)
		f.epics.EXPECT().Delete(board).Return(nil).Times(1)

		moved, err := f.service.DeleteEpic(board)

		req.NoError(err)
		req.Equal(2, moved)
		for _, cmd := range dispatched {
			update, ok := cmd.(domain.UpdateStoryCommand)
			req.True(ok)
			req.Equal(domain.DefaultBoard, update.Story.EpicID)
			req.Equal("system", update.ChangedBy)
		}
	})
}

func TestStoryService_SearchStories_Skips_Vanished_Hits(t *testing.T) {
	req := require.New(t)
	f := newStoryServiceFixture(t)
	alive := domain.Story{ID: uuid.New(), Title: "still here"}
	vanishedID := uuid.New()

	f.searchIndex.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return([]string{alive.ID.String(), vanishedID.String()}, nil).Times(1)
	f.stories.EXPECT().Get(alive.ID).Return(alive, nil).Times(1)
	f.stories.EXPECT().Get(vanishedID).Return(domain.Story{}, errors.ErrStoryNotFound).Times(1)

	stories, err := f.service.SearchStories(context.Background(), "here")

	req.NoError(err)
	req.Equal([]domain.Story{alive}, stories)
}

func TestStoryService_AnalyzeStory(t *testing.T) {
	t.Run("should default to the coach and publish the feedback", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)
		story := domain.Story{
			ID:          uuid.New(),
			EpicID:      "epic-1",
			Title:       "Pay with a saved card",
			Description: "As a shopper I want to pay with a saved card so that checkout is faster.",
		}

		f.stories.EXPECT().Get(story.ID).Return(story, nil).Times(1)
		var published event.DomainEvent
		f.orchestrator.EXPECT().Publish(gomock.Any()).
			Do(func(e event.DomainEvent) { published = e }).
			Times(1)

		fb, err := f.service.AnalyzeStory(story.ID, "")

		req.NoError(err)
		req.Equal("coach", fb.Agent)
		req.Len(fb.Scores, 6)

		ready, ok := published.(event.FeedbackReady)
		req.True(ok)
		req.Equal(domain.BoardID("epic-1"), ready.Board)
	})

	t.Run("should reject an unknown persona", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)
		story := domain.Story{ID: uuid.New(), Title: "whatever"}

		f.stories.EXPECT().Get(story.ID).Return(story, nil).Times(1)

		_, err := f.service.AnalyzeStory(story.ID, "oracle")

		req.ErrorIs(err, errors.ErrUnknownAgent)
	})
}

func TestStoryService_ApplySplit(t *testing.T) {
	t.Run("should require at least one draft", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)

		_, err := f.service.ApplySplit(context.Background(), alice, uuid.New(), nil)

		req.ErrorIs(err, errors.ErrInvalidStory)
	})

	t.Run("should create children and delete the parent", func(t *testing.T) {
		req := require.New(t)
		f := newStoryServiceFixture(t)
		parent := domain.Story{
			ID:       uuid.New(),
			EpicID:   "epic-1",
			Priority: domain.PriorityHigh,
		}
		drafts := []domain.StoryDraft{
			{Title: "Pay with a saved card", Description: "pay", Priority: domain.PriorityCritical},
			{Title: "Refund by email", Description: "refund"}, // inherits the parent priority
		}

		f.stories.EXPECT().Get(parent.ID).Return(parent, nil).Times(1)
		var dispatched []domain.Command
		f.orchestrator.EXPECT().Dispatch(gomock.Any()).
			Do(func(cmd domain.Command) { dispatched = append(dispatched, cmd) }).
			Times(3)

		created, err := f.service.ApplySplit(context.Background(), alice, parent.ID, drafts)

		req.NoError(err)
		req.Len(created, 2)
		req.Len(dispatched, 3)

		first := dispatched[0].(domain.CreateStoryCommand)
		req.Equal(parent.EpicID, first.Story.EpicID)
		req.Equal(domain.PriorityCritical, first.Story.Priority)
		req.Equal(alice.UserID, first.Story.CreatedBy)

		second := dispatched[1].(domain.CreateStoryCommand)
		req.Equal(domain.PriorityHigh, second.Story.Priority)

		deletion := dispatched[2].(domain.DeleteStoryCommand)
		req.Equal(parent.ID, deletion.StoryID)
		req.Equal(parent.EpicID, deletion.Board)
	})
}

func TestStoryService_JoinBoard_Defaults_To_Backlog(t *testing.T) {
	req := require.New(t)
	f := newStoryServiceFixture(t)
	sink := mocks.NewMockEventSink(gomock.NewController(t))

	f.orchestrator.EXPECT().
		RegisterParticipant(alice, domain.DefaultBoard, sink).
		Times(1)

	board := f.service.JoinBoard(alice, "", sink)

	req.Equal(domain.DefaultBoard, board)
}
