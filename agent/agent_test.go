package agent

import (
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/errors"
	"storysplit/invest"
)

func newTestAgent(t *testing.T) *Agent {
	t.Helper()
	data, err := invest.NewKeywordLoader(invest.KeywordFiles).LoadAll("keywords")
	require.NoError(t, err)
	splitter, err := invest.NewSplitter(data, slog.Default())
	require.NoError(t, err)
	return New(invest.NewScorer(), splitter, slog.Default())
}

func compoundStory() domain.Story {
	return domain.Story{
		ID:          uuid.New(),
		EpicID:      "epic-1",
		Title:       "Checkout and refunds",
		Description: "As a shopper I want to pay with a saved card and I want to receive a refund confirmation by email afterwards.",
		Priority:    domain.PriorityHigh,
	}
}

func TestAgent_Coach_Review(t *testing.T) {
	req := require.New(t)
	a := newTestAgent(t)
	story := compoundStory()

	fb, err := a.Review(PersonaCoach, story)

	req.NoError(err)
	req.Equal(string(PersonaCoach), fb.Agent)
	req.Equal(ModelName, fb.Model)
	req.Equal(story.ID, fb.StoryID)
	req.NotEqual(uuid.Nil, fb.ID)
	req.Len(fb.Scores, 6)
	req.Contains(fb.Message, "INVEST review")
	req.Positive(fb.PromptWords)
	req.Positive(fb.CompletionWords)
	req.False(fb.At.IsZero())
}

func TestAgent_Split_Review_Carries_Proposal(t *testing.T) {
	req := require.New(t)
	a := newTestAgent(t)

	fb, err := a.Review(PersonaSplitter, compoundStory())

	req.NoError(err)
	req.Equal(string(PersonaSplitter), fb.Agent)
	req.GreaterOrEqual(len(fb.Proposal), 2)
	req.Contains(fb.Message, "could be split into")
}

func TestAgent_Split_Review_Atomic_Story(t *testing.T) {
	req := require.New(t)
	a := newTestAgent(t)
	story := domain.Story{
		ID:          uuid.New(),
		Title:       "Saved card payment",
		Description: "As a shopper I want to pay with a saved card so that checkout is faster.",
	}

	fb, err := a.Review(PersonaSplitter, story)

	req.NoError(err)
	req.Empty(fb.Proposal)
	req.Contains(fb.Message, "no split needed")
}

func TestAgent_Unknown_Persona(t *testing.T) {
	req := require.New(t)
	a := newTestAgent(t)

	_, err := a.Review("oracle", compoundStory())

	req.ErrorIs(err, errors.ErrUnknownAgent)
}

func TestAgent_Review_Is_Deterministic(t *testing.T) {
	req := require.New(t)
	a := newTestAgent(t)
	story := compoundStory()

	first, err := a.Review(PersonaCoach, story)
	req.NoError(err)
	second, err := a.Review(PersonaCoach, story)
	req.NoError(err)

	req.Equal(first.Scores, second.Scores)
	req.Equal(first.Message, second.Message)
	req.Equal(first.Overall, second.Overall)
}
