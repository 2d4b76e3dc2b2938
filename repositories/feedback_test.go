package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
)

func newTestFeedback(storyID uuid.UUID, at time.Time) domain.Feedback {
	return domain.Feedback{
		ID:      uuid.New(),
		StoryID: storyID,
		Agent:   "coach",
		Model:   "invest-1",
		Message: "INVEST review",
		Scores: map[string]float64{
			"small":    0.4,
			"testable": 0.8,
		},
		Overall: 0.6,
		Proposal: []domain.StoryDraft{
			{Title: "Pay with a saved card", Description: "pay with a saved card", Priority: domain.PriorityHigh},
		},
		PromptWords:     42,
		CompletionWords: 17,
		At:              at.UTC(),
	}
}

func Test_Feedback_History_Newest_First(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewFeedbackRepository(db, slog.Default(), nil)
	storyID := uuid.New()
	at := time.Now().UTC()
	oldest := newTestFeedback(storyID, at)
	middle := newTestFeedback(storyID, at.Add(1*time.Minute))
	newest := newTestFeedback(storyID, at.Add(2*time.Minute))

	for _, fb := range []domain.Feedback{oldest, middle, newest} {
		req.NoError(repository.Store(fb))
	}

	history, _, err := repository.GetByStory(storyID, nil)
	req.NoError(err)
	req.Len(history, 3)
	req.Equal(newest, history[0])
	req.Equal(middle, history[1])
	req.Equal(oldest, history[2])
}

func Test_Feedback_History_Isolated_Per_Story(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewFeedbackRepository(db, slog.Default(), nil)
	storyID := uuid.New()
	otherID := uuid.New()
	at := time.Now().UTC()
	req.NoError(repository.Store(newTestFeedback(storyID, at)))
	req.NoError(repository.Store(newTestFeedback(otherID, at)))

	history, _, err := repository.GetByStory(storyID, nil)
	req.NoError(err)
	req.Len(history, 1)
	req.Equal(storyID, history[0].StoryID)
}

func Test_Feedback_History_With_Limit_And_Cursor(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	limit := 2
	repository := NewFeedbackRepository(db, slog.Default(), &limit)
	storyID := uuid.New()
	at := time.Now().UTC()
	runs := []domain.Feedback{
		newTestFeedback(storyID, at),
		newTestFeedback(storyID, at.Add(1*time.Minute)),
		newTestFeedback(storyID, at.Add(2*time.Minute)),
	}
	for _, fb := range runs {
		req.NoError(repository.Store(fb))
	}

	// First page holds the two newest runs
	page, cursor, err := repository.GetByStory(storyID, nil)
	req.NoError(err)
	req.Len(page, limit)
	req.Equal(runs[2], page[0])
	req.Equal(runs[1], page[1])
	req.NotNil(cursor)

	// Second page resumes after the cursor
	page, cursor, err = repository.GetByStory(storyID, cursor)
	req.NoError(err)
	req.Len(page, 1)
	req.Equal(runs[0], page[0])
	req.NotNil(cursor)

	// Past the last entry the page is empty and the cursor is gone
	page, cursor, err = repository.GetByStory(storyID, cursor)
	req.NoError(err)
	req.Empty(page)
	req.Nil(cursor)
}
