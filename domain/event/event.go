package event

import (
	"time"

	"github.com/google/uuid"

	"storysplit/domain"
)

// DomainEvent is anything fanned out to board channel subscribers.
type DomainEvent interface {
	BoardID() domain.BoardID
}

type StoryCreated struct {
	Story domain.Story
}

func (e StoryCreated) BoardID() domain.BoardID {
	return e.Story.EpicID
}

type StoryUpdated struct {
	Story     domain.Story
	ChangedBy string
}

func (e StoryUpdated) BoardID() domain.BoardID {
	return e.Story.EpicID
}

type StoryMoved struct {
	Board   domain.BoardID
	StoryID uuid.UUID
	From    domain.Status
	To      domain.Status
	MovedBy string
	At      time.Time
}

func (e StoryMoved) BoardID() domain.BoardID {
	return e.Board
}

type StoryDeleted struct {
	Board     domain.BoardID
	StoryID   uuid.UUID
	DeletedBy string
	At        time.Time
}

func (e StoryDeleted) BoardID() domain.BoardID {
	return e.Board
}

type EpicCreated struct {
	Epic domain.Epic
}

// BoardID routes epic creations to the default channel: the new epic's
// own channel cannot have subscribers yet.
func (e EpicCreated) BoardID() domain.BoardID {
	return domain.DefaultBoard
}

// MemberJoined carries a membership snapshot taken under the registry
// lock, so the joiner sees a consistent presence list.
type MemberJoined struct {
	Board   domain.BoardID
	Member  domain.Presence
	Members []domain.Presence
	At      time.Time
}

func (e MemberJoined) BoardID() domain.BoardID {
	return e.Board
}

type MemberLeft struct {
	Board  domain.BoardID
	Member domain.Presence
	At     time.Time
}

func (e MemberLeft) BoardID() domain.BoardID {
	return e.Board
}

type TypingStarted struct {
	Board   domain.BoardID
	StoryID uuid.UUID
	Member  domain.Presence
	At      time.Time
}

func (e TypingStarted) BoardID() domain.BoardID {
	return e.Board
}

// TypingStopped is emitted by the client or, with Expired set, by the
// sweeper on behalf of a client that went silent.
type TypingStopped struct {
	Board   domain.BoardID
	StoryID uuid.UUID
	Member  domain.Presence
	Expired bool
	At      time.Time
}

func (e TypingStopped) BoardID() domain.BoardID {
	return e.Board
}

type FeedbackReady struct {
	Board    domain.BoardID
	Feedback domain.Feedback
}

func (e FeedbackReady) BoardID() domain.BoardID {
	return e.Board
}
