package invest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"storysplit/domain"
)

func wellFormedStory() domain.Story {
	return domain.Story{
		Title:       "Pay with a saved card",
		Description: "As a shopper I want to pay with a previously saved card so that checkout takes me seconds instead of minutes.",
		AcceptanceCriteria: []string{
			"The saved card list loads within 2 seconds",
			"A declined card shows an error within 500 ms",
		},
		Priority: domain.PriorityHigh,
		Effort:   3,
	}
}

func TestScorer_Well_Formed_Story(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()

	result := scorer.Score(wellFormedStory())

	req.Len(result.Scores, 6)
	req.Equal("en", result.Language)
	for criterion, score := range result.Scores {
		req.GreaterOrEqual(score, 0.0, criterion)
		req.LessOrEqual(score, 1.0, criterion)
	}
	// The narrative and benefit clauses are both present
	req.InDelta(1.0, result.Scores[CriterionValuable], 0.001)
	// No dependency or solution wording
	req.InDelta(1.0, result.Scores[CriterionIndependent], 0.001)
	req.InDelta(1.0, result.Scores[CriterionNegotiable], 0.001)
	req.Greater(result.Overall(), 0.8)
}

func TestScorer_Dependency_Wording_Hurts_Independent(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()
	story := wellFormedStory()
	story.Description += " This is blocked by the payments migration and depends on the vault rollout."

	result := scorer.Score(story)

	req.Less(result.Scores[CriterionIndependent], 0.5)
	req.NotEmpty(result.Notes)
}

func TestScorer_Prescribed_Solution_Hurts_Negotiable(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()
	story := wellFormedStory()
	story.Description += " Must use Stripe Elements, implemented with React."

	result := scorer.Score(story)

	req.Less(result.Scores[CriterionNegotiable], 1.0)
}

func TestScorer_Missing_Narrative_Hurts_Valuable(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()
	story := wellFormedStory()
	story.Description = "Add a button on the payment page."

	result := scorer.Score(story)

	req.Less(result.Scores[CriterionValuable], 0.5)
	req.Contains(strings.Join(result.Notes, "\n"), "narrative")
}

func TestScorer_No_Criteria_Hurts_Estimable_And_Testable(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()
	story := wellFormedStory()
	story.AcceptanceCriteria = nil

	result := scorer.Score(story)

	withCriteria := scorer.Score(wellFormedStory())
	req.Less(result.Scores[CriterionEstimable], withCriteria.Scores[CriterionEstimable])
	req.Less(result.Scores[CriterionTestable], withCriteria.Scores[CriterionTestable])
}

func TestScorer_Oversized_Story_Hurts_Small(t *testing.T) {
	req := require.New(t)
	scorer := NewScorer()
	story := wellFormedStory()
	story.Effort = 21
	story.Description = strings.Repeat(story.Description+" ", 12)

	result := scorer.Score(story)

	req.Less(result.Scores[CriterionSmall], 0.5)
}

func TestResult_Overall_Empty(t *testing.T) {
	req := require.New(t)
	req.Zero(Result{}.Overall())
}
