package sink

import (
	"context"
	"log/slog"

	"storysplit/domain/event"
	"storysplit/repositories"
)

// SearchSink keeps the full-text index in step with the board. The
// index is derived state: a missed update only degrades search results
// until the story is touched again.
type SearchSink struct {
	index   repositories.ISearchIndex
	stories repositories.IStoryRepository
	log     *slog.Logger
}

func NewSearchSink(index repositories.ISearchIndex, stories repositories.IStoryRepository, log *slog.Logger) SearchSink {
	return SearchSink{index: index, stories: stories, log: log}
}

func (s SearchSink) Consume(_ context.Context, e event.DomainEvent) error {
	switch evt := e.(type) {
	case event.StoryCreated:
		return s.index.Index(evt.Story)
	case event.StoryUpdated:
		return s.index.Index(evt.Story)
	case event.StoryMoved:
		// The move event carries the new status but not the full
		// story, so the document is rebuilt from storage.
		story, err := s.stories.Get(evt.StoryID)
		if err != nil {
			s.log.Warn("Search reindex failed", "story_id", evt.StoryID, "error", err)
			return err
		}
		return s.index.Index(story)
	case event.StoryDeleted:
		return s.index.Remove(evt.StoryID.String())
	}
	return nil
}
