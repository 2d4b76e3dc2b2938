package domain

import (
	"time"

	"github.com/google/uuid"
)

// Feedback is one agent run over a story, shaped like a chat-completion
// payload: a model name, a rendered message, usage counters, plus the
// structured scores and split proposal the heuristics actually produced.
type Feedback struct {
	ID              uuid.UUID
	StoryID         uuid.UUID
	Agent           string
	Model           string
	Language        string
	Message         string
	Scores          map[string]float64
	Overall         float64
	Proposal        []StoryDraft
	PromptWords     int
	CompletionWords int
	At              time.Time
}
