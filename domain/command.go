package domain

import (
	"time"

	"github.com/google/uuid"
)

// Command is a board mutation intent routed through the worker pool.
type Command interface {
	BoardID() BoardID
}

// CreateStoryCommand carries a fully prepared story (ID and timestamps
// assigned by the service layer).
type CreateStoryCommand struct {
	Story Story
}

func (c CreateStoryCommand) BoardID() BoardID {
	return c.Story.EpicID
}

// UpdateStoryCommand carries the incoming field values. The worker
// merges them over the stored story, last write wins.
type UpdateStoryCommand struct {
	Story     Story
	ChangedBy string
	At        time.Time
}

func (c UpdateStoryCommand) BoardID() BoardID {
	return c.Story.EpicID
}

type MoveStoryCommand struct {
	Board   BoardID
	StoryID uuid.UUID
	To      Status
	MovedBy string
	At      time.Time
}

func (c MoveStoryCommand) BoardID() BoardID {
	return c.Board
}

type DeleteStoryCommand struct {
	Board     BoardID
	StoryID   uuid.UUID
	DeletedBy string
}

func (c DeleteStoryCommand) BoardID() BoardID {
	return c.Board
}

type CreateEpicCommand struct {
	Epic Epic
}

func (c CreateEpicCommand) BoardID() BoardID {
	return c.Epic.ID
}
