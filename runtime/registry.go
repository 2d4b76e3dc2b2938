package runtime

import (
	"sort"
	"sync"

	"storysplit/contract"
	"storysplit/domain"
)

// Registry is the presence side of a board channel: who is connected,
// and through which sink events reach them.
type Registry struct {
	mu           sync.RWMutex
	Sessions     map[string]contract.EventSink          // user -> sink
	BoardMembers map[domain.BoardID]map[string]domain.Presence // board -> members
}

func NewRegistry() *Registry {
	return &Registry{
		Sessions:     make(map[string]contract.EventSink),
		BoardMembers: make(map[domain.BoardID]map[string]domain.Presence),
	}
}

// GetSinksForBoard retrieves all active communication channels for a board.
// It performs a two-step lookup:
// 1. Identifies member IDs via BoardMembers.
// 2. Resolves those IDs into actual EventSinks using the Sessions map.
//
// This decoupled approach ensures that even if a user is on multiple boards,
// their connection (Sink) is managed in a single place.
// Returns nil if the board doesn't exist or has no members.
func (r *Registry) GetSinksForBoard(board domain.BoardID) []contract.EventSink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.BoardMembers[board]
	if !ok {
		return nil
	}
	var activeSinks []contract.EventSink
	for userID := range members {
		if sink, exists := r.Sessions[userID]; exists {
			activeSinks = append(activeSinks, sink)
		}
	}
	return activeSinks
}

// Members returns the current presence list of a board, sorted by name
// for stable snapshots.
func (r *Registry) Members(board domain.BoardID) []domain.Presence {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.membersLocked(board)
}

func (r *Registry) membersLocked(board domain.BoardID) []domain.Presence {
	members, ok := r.BoardMembers[board]
	if !ok {
		return nil
	}
	presences := make([]domain.Presence, 0, len(members))
	for _, p := range members {
		presences = append(presences, p)
	}
	sort.Slice(presences, func(i, j int) bool {
		if presences[i].Name != presences[j].Name {
			return presences[i].Name < presences[j].Name
		}
		return presences[i].UserID < presences[j].UserID
	})
	return presences
}

// Subscribe registers a member's active connection and assigns them to a
// board channel. The returned snapshot includes the joiner and is taken
// under the same lock, so no concurrent join or leave can slip between
// registration and the snapshot.
func (r *Registry) Subscribe(p domain.Presence, board domain.BoardID, sink contract.EventSink) []domain.Presence {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Sessions[p.UserID] = sink

	if _, ok := r.BoardMembers[board]; !ok {
		r.BoardMembers[board] = make(map[string]domain.Presence)
	}
	r.BoardMembers[board][p.UserID] = p

	return r.membersLocked(board)
}

// Unsubscribe removes a member from the registry and their board.
// It cleans up the session and ensures no empty sets are left in the
// board map to prevent memory leaks over time.
func (r *Registry) Unsubscribe(userID string, board domain.BoardID) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.Sessions, userID)

	if members, ok := r.BoardMembers[board]; ok {
		delete(members, userID)

		// If no one is left on the board, remove the entry entirely
		if len(members) == 0 {
			delete(r.BoardMembers, board)
		}
	}
}
