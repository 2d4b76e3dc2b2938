package workers

import (
	"context"
	"log/slog"
	"time"

	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/repositories"
)

// Ensure *BoardUnitWorker implements the contract.Worker interface at compile time.
// This prevents "type mismatch" errors from appearing late in other packages
// and acts as a static assertion of our architectural rules.
var _ contract.Worker = (*BoardUnitWorker)(nil)

// BoardUnitWorker is one unit of the command pool. It applies board
// mutations to storage and emits the resulting raw events. Several
// units run concurrently; stories are last-write-wins so concurrent
// updates to the same story need no coordination.
type BoardUnitWorker struct {
	stories  repositories.IStoryRepository
	epics    repositories.IEpicRepository
	commands chan domain.Command
	events   chan event.DomainEvent
	log      *slog.Logger
}

func NewBoardUnitWorker(
	stories repositories.IStoryRepository,
	epics repositories.IEpicRepository,
	commands chan domain.Command,
	events chan event.DomainEvent,
	log *slog.Logger) *BoardUnitWorker {
	return &BoardUnitWorker{
		stories:  stories,
		epics:    epics,
		commands: commands,
		events:   events,
		log:      log,
	}
}

func (w *BoardUnitWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case cmd, ok := <-w.commands:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			evt, err := w.apply(cmd)
			if err != nil {
				w.log.Warn("Command rejected",
					"board", cmd.BoardID(),
					"error", err)
				continue
			}
			if evt == nil {
				continue
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case w.events <- evt:
			}
		}
	}
}

func (w *BoardUnitWorker) apply(cmd domain.Command) (event.DomainEvent, error) {
	switch c := cmd.(type) {
	case domain.CreateStoryCommand:
		if err := w.stories.Save(c.Story); err != nil {
			return nil, err
		}
		return event.StoryCreated{Story: c.Story}, nil

	case domain.UpdateStoryCommand:
		current, err := w.stories.Get(c.Story.ID)
		if err != nil {
			return nil, err
		}
		merged := merge(current, c.Story, c.At)
		if err := w.stories.Save(merged); err != nil {
			return nil, err
		}
		return event.StoryUpdated{Story: merged, ChangedBy: c.ChangedBy}, nil

	case domain.MoveStoryCommand:
		current, err := w.stories.Get(c.StoryID)
		if err != nil {
			return nil, err
		}
		from := current.Status
		current.Status = c.To
		current.UpdatedAt = c.At
		current.Revision++
		if err := w.stories.Save(current); err != nil {
			return nil, err
		}
		return event.StoryMoved{
			Board:   current.EpicID,
			StoryID: current.ID,
			From:    from,
			To:      c.To,
			MovedBy: c.MovedBy,
			At:      c.At,
		}, nil

	case domain.DeleteStoryCommand:
		if _, err := w.stories.Get(c.StoryID); err != nil {
			return nil, err
		}
		if err := w.stories.Delete(c.StoryID); err != nil {
			return nil, err
		}
		return event.StoryDeleted{
			Board:     c.Board,
			StoryID:   c.StoryID,
			DeletedBy: c.DeletedBy,
			At:        time.Now().UTC(),
		}, nil

	case domain.CreateEpicCommand:
		if err := w.epics.Save(c.Epic); err != nil {
			return nil, err
		}
		return event.EpicCreated{Epic: c.Epic}, nil

	default:
		w.log.Debug("Unknown command type dropped", "board", cmd.BoardID())
		return nil, nil
	}
}

// merge overlays the incoming field values on the stored story.
// Last write wins, the Revision bump is informational only.
func merge(current, incoming domain.Story, at time.Time) domain.Story {
	current.EpicID = incoming.EpicID
	current.Title = incoming.Title
	current.Description = incoming.Description
	current.AcceptanceCriteria = incoming.AcceptanceCriteria
	current.Priority = incoming.Priority
	current.Effort = incoming.Effort
	if len(incoming.Attachments) > 0 {
		current.Attachments = incoming.Attachments
	}
	current.UpdatedAt = at
	current.Revision++
	return current
}
