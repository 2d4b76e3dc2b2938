// Package projection builds local board views from observed events.
// Handles grouping and ordering only. Does not emit events or touch
// storage.
package projection

import (
	"context"
	"sort"
	"sync"

	"storysplit/domain"
	"storysplit/domain/event"
)

// Board keeps an in-memory picture of the stories seen since startup,
// grouped per epic. It backs the debug inspector; the authoritative
// board always comes from storage.
type Board struct {
	mu      sync.RWMutex
	stories map[domain.BoardID]map[string]domain.Story
}

func NewBoard() *Board {
	return &Board{stories: make(map[domain.BoardID]map[string]domain.Story)}
}

func (b *Board) Consume(_ context.Context, e event.DomainEvent) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch evt := e.(type) {
	case event.StoryCreated:
		b.put(evt.Story)
	case event.StoryUpdated:
		b.put(evt.Story)
	case event.StoryMoved:
		if s, ok := b.stories[evt.Board][evt.StoryID.String()]; ok {
			s.Status = evt.To
			s.UpdatedAt = evt.At
			b.stories[evt.Board][evt.StoryID.String()] = s
		}
	case event.StoryDeleted:
		delete(b.stories[evt.Board], evt.StoryID.String())
	}
	return nil
}

func (b *Board) put(s domain.Story) {
	if b.stories[s.EpicID] == nil {
		b.stories[s.EpicID] = make(map[string]domain.Story)
	}
	b.stories[s.EpicID][s.ID.String()] = s
}

// Columns returns the live view of one epic, grouped by status.
func (b *Board) Columns(board domain.BoardID) map[domain.Status][]domain.Story {
	b.mu.RLock()
	stories := make([]domain.Story, 0, len(b.stories[board]))
	for _, s := range b.stories[board] {
		stories = append(stories, s)
	}
	b.mu.RUnlock()
	return BuildColumns(stories)
}

// BuildColumns groups stories into Kanban columns. Within a column the
// order is priority first, most recently updated second, so the top of
// each column is what the team should look at next.
func BuildColumns(stories []domain.Story) map[domain.Status][]domain.Story {
	columns := make(map[domain.Status][]domain.Story, len(domain.Columns))
	for _, status := range domain.Columns {
		columns[status] = nil
	}
	for _, s := range stories {
		columns[s.Status] = append(columns[s.Status], s)
	}
	for status, col := range columns {
		sort.SliceStable(col, func(i, j int) bool {
			if col[i].Priority.Rank() != col[j].Priority.Rank() {
				return col[i].Priority.Rank() < col[j].Priority.Rank()
			}
			return col[i].UpdatedAt.After(col[j].UpdatedAt)
		})
		columns[status] = col
	}
	return columns
}
