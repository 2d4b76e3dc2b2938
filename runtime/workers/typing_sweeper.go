package workers

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
)

var _ contract.Worker = (*TypingSweeper)(nil)

type typingKey struct {
	Board   domain.BoardID
	StoryID uuid.UUID
	UserID  string
}

type typingEntry struct {
	member   domain.Presence
	lastSeen time.Time
}

// TypingSweeper tracks live typing indicators and expires the ones no
// longer refreshed. Clients are expected to re-send StartTyping while
// editing; a client that goes silent (crash, tab close) gets its
// indicator cleared on its behalf after the TTL.
type TypingSweeper struct {
	mu      sync.Mutex
	entries map[typingKey]typingEntry
	ttl     time.Duration
	sweep   time.Duration
	events  chan event.DomainEvent
	log     *slog.Logger
}

func NewTypingSweeper(ttl, sweep time.Duration, events chan event.DomainEvent, log *slog.Logger) *TypingSweeper {
	return &TypingSweeper{
		entries: make(map[typingKey]typingEntry),
		ttl:     ttl,
		sweep:   sweep,
		events:  events,
		log:     log,
	}
}

// Touch refreshes (or creates) a typing indicator.
func (w *TypingSweeper) Touch(board domain.BoardID, storyID uuid.UUID, p domain.Presence) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.entries[typingKey{Board: board, StoryID: storyID, UserID: p.UserID}] = typingEntry{
		member:   p,
		lastSeen: time.Now(),
	}
}

// Clear drops an indicator after an explicit StopTyping.
func (w *TypingSweeper) Clear(board domain.BoardID, storyID uuid.UUID, userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.entries, typingKey{Board: board, StoryID: storyID, UserID: userID})
}

// ClearUser drops all indicators of a user on a board, used when the
// connection goes away.
func (w *TypingSweeper) ClearUser(board domain.BoardID, userID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for key := range w.entries {
		if key.Board == board && key.UserID == userID {
			delete(w.entries, key)
		}
	}
}

func (w *TypingSweeper) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.sweep)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case <-ticker.C:
			for _, expired := range w.collectExpired() {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case w.events <- expired:
				}
			}
		}
	}
}

func (w *TypingSweeper) collectExpired() []event.DomainEvent {
	w.mu.Lock()
	defer w.mu.Unlock()

	now := time.Now()
	var expired []event.DomainEvent
	for key, entry := range w.entries {
		if now.Sub(entry.lastSeen) < w.ttl {
			continue
		}
		delete(w.entries, key)
		expired = append(expired, event.TypingStopped{
			Board:   key.Board,
			StoryID: key.StoryID,
			Member:  entry.member,
			Expired: true,
			At:      now.UTC(),
		})
	}
	return expired
}
