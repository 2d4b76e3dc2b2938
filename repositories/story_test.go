package repositories

import (
	"log/slog"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/errors"
)

func newTestStory(epic domain.BoardID) domain.Story {
	now := time.Now().Truncate(time.Nanosecond).UTC()
	return domain.Story{
		ID:                 uuid.New(),
		EpicID:             epic,
		Title:              "Pay with a saved card",
		Description:        "As a shopper I want to pay with a saved card so that checkout is faster.",
		AcceptanceCriteria: []string{"card list loads within 2 seconds"},
		Priority:           domain.PriorityHigh,
		Effort:             5,
		Status:             domain.StatusBacklog,
		Attachments:        []domain.Attachment{{Name: "mockup.png", MimeType: "image/png", Size: 2048}},
		CreatedBy:          "alice",
		CreatedAt:          now,
		UpdatedAt:          now,
		Revision:           1,
	}
}

func Test_Story_Save_And_Get(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewStoryRepository(db, slog.Default())
	story := newTestStory("epic-1")

	req.NoError(repository.Save(story))

	fetched, err := repository.Get(story.ID)
	req.NoError(err)
	req.Equal(story, fetched)
}

func Test_Story_Get_Unknown(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewStoryRepository(db, slog.Default())

	_, err = repository.Get(uuid.New())
	req.ErrorIs(err, errors.ErrStoryNotFound)
}

func Test_Story_Delete(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewStoryRepository(db, slog.Default())
	story := newTestStory("epic-1")
	req.NoError(repository.Save(story))

	req.NoError(repository.Delete(story.ID))

	_, err = repository.Get(story.ID)
	req.ErrorIs(err, errors.ErrStoryNotFound)
}

func Test_Story_ListByEpic_Filters_Other_Epics(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewStoryRepository(db, slog.Default())
	req.NoError(repository.Save(newTestStory("epic-1")))
	req.NoError(repository.Save(newTestStory("epic-1")))
	req.NoError(repository.Save(newTestStory("epic-2")))

	stories, err := repository.ListByEpic("epic-1")
	req.NoError(err)
	req.Len(stories, 2)
	for _, s := range stories {
		req.Equal(domain.BoardID("epic-1"), s.EpicID)
	}

	all, err := repository.ListAll()
	req.NoError(err)
	req.Len(all, 3)
}

func Test_Story_Save_Overwrites_Last_Write_Wins(t *testing.T) {
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	repository := NewStoryRepository(db, slog.Default())
	story := newTestStory("epic-1")
	req.NoError(repository.Save(story))

	story.Title = "Pay with any stored payment method"
	story.Revision = 2
	req.NoError(repository.Save(story))

	fetched, err := repository.Get(story.ID)
	req.NoError(err)
	req.Equal("Pay with any stored payment method", fetched.Title)
	req.Equal(uint64(2), fetched.Revision)
}
