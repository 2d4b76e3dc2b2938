package repositories

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blugelabs/bluge"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/domain/search"
)

func newTestIndex(t *testing.T) SearchIndex {
	t.Helper()
	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })
	return NewSearchIndex(writer, slog.Default())
}

func Test_Search_By_Text(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	login := newTestStory("epic-1")
	login.Title = "Login with magic link"
	login.Description = "As a user I want a passwordless login so that I never forget credentials."
	checkout := newTestStory("epic-1")
	checkout.Title = "Pay with a saved card"

	req.NoError(index.Index(login))
	req.NoError(index.Index(checkout))

	ids, err := index.Search(context.Background(), search.Parse("passwordless login"))
	req.NoError(err)
	req.Equal([]string{login.ID.String()}, ids)
}

func Test_Search_With_Epic_And_Status_Filters(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	inEpic := newTestStory("epic-1")
	inEpic.Status = domain.StatusReady
	otherEpic := newTestStory("epic-2")
	otherStatus := newTestStory("epic-1")
	otherStatus.Status = domain.StatusDone

	req.NoError(index.Index(inEpic))
	req.NoError(index.Index(otherEpic))
	req.NoError(index.Index(otherStatus))

	ids, err := index.Search(context.Background(), search.Parse("--epic epic-1 --status ready"))
	req.NoError(err)
	req.Equal([]string{inEpic.ID.String()}, ids)
}

func Test_Search_After_Remove(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	story := newTestStory("epic-1")
	req.NoError(index.Index(story))

	req.NoError(index.Remove(story.ID.String()))

	ids, err := index.Search(context.Background(), search.Parse("saved card"))
	req.NoError(err)
	req.Empty(ids)
}

func Test_Search_Reindex_Replaces_Document(t *testing.T) {
	req := require.New(t)
	index := newTestIndex(t)

	story := newTestStory("epic-1")
	req.NoError(index.Index(story))

	story.Status = domain.StatusDone
	req.NoError(index.Index(story))

	// The old status no longer matches, only the new one does.
	ids, err := index.Search(context.Background(), search.Parse("--status backlog"))
	req.NoError(err)
	req.Empty(ids)

	ids, err = index.Search(context.Background(), search.Parse("--status done"))
	req.NoError(err)
	req.Equal([]string{story.ID.String()}, ids)
}
