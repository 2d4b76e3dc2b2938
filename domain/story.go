// Package domain contains core concepts of the story splitting system.
// This file defines Story entities and the board vocabulary.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BoardID identifies a board channel. Each epic owns exactly one board.
type BoardID string

// DefaultBoard receives stories orphaned by an epic deletion.
const DefaultBoard BoardID = "backlog"

type Priority string

const (
	PriorityLow      Priority = "low"
	PriorityMedium   Priority = "medium"
	PriorityHigh     Priority = "high"
	PriorityCritical Priority = "critical"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// Rank orders priorities for board columns, highest first.
func (p Priority) Rank() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	default:
		return 3
	}
}

type Status string

const (
	StatusBacklog    Status = "backlog"
	StatusReady      Status = "ready"
	StatusInProgress Status = "in_progress"
	StatusReview     Status = "review"
	StatusDone       Status = "done"
)

// Columns lists board columns in display order.
var Columns = []Status{StatusBacklog, StatusReady, StatusInProgress, StatusReview, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusBacklog, StatusReady, StatusInProgress, StatusReview, StatusDone:
		return true
	}
	return false
}

// Story is a unit of product requirement text with metadata.
// Updates are last-write-wins; Revision is informational only.
type Story struct {
	ID                 uuid.UUID
	EpicID             BoardID
	Title              string
	Description        string
	AcceptanceCriteria []string
	Priority           Priority
	Effort             int
	Status             Status
	Attachments        []Attachment
	CreatedBy          string
	CreatedAt          time.Time
	UpdatedAt          time.Time
	Revision           uint64
}

// Text concatenates the narrative parts fed to heuristics and search.
func (s Story) Text() string {
	parts := append([]string{s.Title, s.Description}, s.AcceptanceCriteria...)
	return strings.Join(parts, "\n")
}

// Attachment keeps only metadata. Content bytes are sniffed for the
// MIME allow-list at the edge and never enter the domain.
type Attachment struct {
	Name     string
	MimeType string
	Size     int64
}

// StoryDraft is a proposed child story produced by the split agent.
type StoryDraft struct {
	Title       string
	Description string
	Priority    Priority
}
