package workers

import (
	"context"
	"log/slog"

	"storysplit/agent"
	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
)

var _ contract.Worker = (*AgentWorker)(nil)

// AgentWorker sits between the board units and the fanout. Every raw
// event passes through unchanged; story creations and edits trigger an
// asynchronous agent review whose FeedbackReady lands on the same
// board channel afterwards.
type AgentWorker struct {
	agent     *agent.Agent
	rawEvents chan event.DomainEvent
	events    chan event.DomainEvent
	log       *slog.Logger
}

func NewAgentWorker(a *agent.Agent, rawEvents, events chan event.DomainEvent, log *slog.Logger) *AgentWorker {
	return &AgentWorker{agent: a, rawEvents: rawEvents, events: events, log: log}
}

func (w *AgentWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case e, ok := <-w.rawEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			if err := w.forward(ctx, e); err != nil {
				return err
			}
			switch evt := e.(type) {
			case event.StoryCreated:
				if err := w.review(ctx, evt.Story); err != nil {
					return err
				}
			case event.StoryUpdated:
				if err := w.review(ctx, evt.Story); err != nil {
					return err
				}
			}
		}
	}
}

func (w *AgentWorker) forward(ctx context.Context, e event.DomainEvent) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case w.events <- e:
		return nil
	}
}

// review runs the coach over the story and attaches a split proposal
// when the splitter finds one. The review is deterministic, so a
// re-run after a worker restart just produces the same feedback again.
func (w *AgentWorker) review(ctx context.Context, story domain.Story) error {
	fb, err := w.agent.Review(agent.PersonaCoach, story)
	if err != nil {
		w.log.Error("Agent review failed", "story_id", story.ID, "error", err)
		return nil
	}
	if drafts := w.agent.Propose(story); len(drafts) > 0 {
		fb.Proposal = drafts
	}

	w.log.Debug("Agent feedback ready",
		"story_id", story.ID,
		"overall", fb.Overall,
		"proposals", len(fb.Proposal))

	return w.forward(ctx, event.FeedbackReady{Board: story.EpicID, Feedback: fb})
}
