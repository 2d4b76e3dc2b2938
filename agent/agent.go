// Package agent wraps the invest heuristics in personas whose output
// mimics an LLM chat-completion payload. There is no inference here:
// the "model" is a set of deterministic scorers, and the usage counts
// are plain word counts.
package agent

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"storysplit/domain"
	"storysplit/errors"
	"storysplit/invest"
)

// ModelName is reported in every feedback payload.
const ModelName = "invest-1"

type Persona string

const (
	// PersonaCoach scores the story against INVEST and explains the
	// weak criteria.
	PersonaCoach Persona = "coach"
	// PersonaSplitter proposes child stories cut at conjunctions.
	PersonaSplitter Persona = "splitter"
)

type Agent struct {
	scorer   *invest.Scorer
	splitter invest.Splitter
	log      *slog.Logger
}

func New(scorer *invest.Scorer, splitter invest.Splitter, log *slog.Logger) *Agent {
	return &Agent{scorer: scorer, splitter: splitter, log: log}
}

// Review runs the persona's analysis and shapes the feedback.
func (a *Agent) Review(persona Persona, story domain.Story) (domain.Feedback, error) {
	switch persona {
	case PersonaCoach:
		return a.coach(story), nil
	case PersonaSplitter:
		return a.split(story), nil
	default:
		return domain.Feedback{}, fmt.Errorf("%w: %q", errors.ErrUnknownAgent, persona)
	}
}

// Propose exposes the raw split proposal for the synchronous RPC.
func (a *Agent) Propose(story domain.Story) []domain.StoryDraft {
	return a.splitter.Propose(story)
}

func (a *Agent) coach(story domain.Story) domain.Feedback {
	result := a.scorer.Score(story)
	message := renderCoachMessage(story, result)
	return a.shape(story, result.Language, message, domain.Feedback{
		Agent:   string(PersonaCoach),
		Scores:  result.Scores,
		Overall: result.Overall(),
	})
}

func (a *Agent) split(story domain.Story) domain.Feedback {
	drafts := a.splitter.Propose(story)
	result := a.scorer.Score(story)
	message := renderSplitMessage(story, drafts)
	return a.shape(story, result.Language, message, domain.Feedback{
		Agent:    string(PersonaSplitter),
		Scores:   result.Scores,
		Overall:  result.Overall(),
		Proposal: drafts,
	})
}

// shape fills the LLM-looking envelope around the structured result.
func (a *Agent) shape(story domain.Story, lang, message string, fb domain.Feedback) domain.Feedback {
	fb.ID = uuid.New()
	fb.StoryID = story.ID
	fb.Model = ModelName
	fb.Language = lang
	fb.Message = message
	fb.PromptWords = len(strings.Fields(story.Text()))
	fb.CompletionWords = len(strings.Fields(message))
	fb.At = time.Now().UTC()
	return fb
}

func renderCoachMessage(story domain.Story, result invest.Result) string {
	var b strings.Builder
	fmt.Fprintf(&b, "INVEST review of %q\n\n", story.Title)

	keys := make([]string, 0, len(result.Scores))
	for k := range result.Scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "- %s: %.2f\n", k, result.Scores[k])
	}

	if len(result.Notes) > 0 {
		b.WriteString("\nSuggestions:\n")
		for _, note := range result.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}
	return b.String()
}

func renderSplitMessage(story domain.Story, drafts []domain.StoryDraft) string {
	if len(drafts) == 0 {
		return fmt.Sprintf("%q reads as a single unit of work, no split needed.", story.Title)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%q could be split into %d stories:\n\n", story.Title, len(drafts))
	for i, d := range drafts {
		fmt.Fprintf(&b, "%d. %s\n", i+1, d.Title)
	}
	return b.String()
}
