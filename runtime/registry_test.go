package runtime

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/domain"
	"storysplit/domain/event"
)

type Sink struct {
	name string
}

func (s Sink) Consume(ctx context.Context, e event.DomainEvent) error {
	return nil
}

func TestRegistry_Subscribe_One_Board_One_Member(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	member := domain.Presence{UserID: uuid.NewString(), Name: "alice"}
	board := domain.BoardID("epic-1")
	sink := Sink{name: "alice"}

	// Given no user is connected
	// And no board exists
	req.Empty(registry.Sessions)
	req.Empty(registry.BoardMembers)

	// When a member subscribes a board
	snapshot := registry.Subscribe(member, board, sink)

	// Then
	req.Len(registry.Sessions, 1)
	req.Equal(sink, registry.Sessions[member.UserID])

	req.Len(registry.BoardMembers, 1)
	req.Contains(registry.BoardMembers[board], member.UserID)

	req.Len(registry.GetSinksForBoard(board), 1)
	req.Contains(registry.GetSinksForBoard(board), sink)

	// And the snapshot includes the joiner
	req.Equal([]domain.Presence{member}, snapshot)
}

func TestRegistry_Subscribe_One_Board_Multiple_Members(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	member1 := domain.Presence{UserID: uuid.NewString(), Name: "alice"}
	member2 := domain.Presence{UserID: uuid.NewString(), Name: "bob"}
	board := domain.BoardID("epic-1")
	sink1 := Sink{name: "alice"}
	sink2 := Sink{name: "bob"}

	// When members subscribe a board
	registry.Subscribe(member1, board, sink1)
	snapshot := registry.Subscribe(member2, board, sink2)

	// Then
	req.Len(registry.Sessions, 2)
	req.Len(registry.BoardMembers[board], 2)

	req.Len(registry.GetSinksForBoard(board), 2)
	req.Contains(registry.GetSinksForBoard(board), sink1)

	// And the second snapshot holds both, sorted by name
	req.Equal([]domain.Presence{member1, member2}, snapshot)
}

func TestRegistry_Members_Sorted_By_Name(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	board := domain.BoardID("epic-1")
	carol := domain.Presence{UserID: "3", Name: "carol"}
	alice := domain.Presence{UserID: "1", Name: "alice"}
	bob := domain.Presence{UserID: "2", Name: "bob"}

	registry.Subscribe(carol, board, Sink{})
	registry.Subscribe(alice, board, Sink{})
	registry.Subscribe(bob, board, Sink{})

	req.Equal([]domain.Presence{alice, bob, carol}, registry.Members(board))
}

func TestRegistry_UnSubscribe_One_Board_One_Member(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	member := domain.Presence{UserID: uuid.NewString(), Name: "alice"}
	board := domain.BoardID("epic-1")
	sink := Sink{name: "alice"}

	// Given a member subscribes a board
	registry.Subscribe(member, board, sink)

	// When the member unsubscribes
	registry.Unsubscribe(member.UserID, board)

	// Then no member left
	// And the board doesn't exist anymore
	req.Empty(registry.Sessions)
	req.Empty(registry.BoardMembers)

	// And no connected member left on the board
	req.Nil(registry.GetSinksForBoard(board))
}

func TestRegistry_UnSubscribe_One_Board_Multiple_Members(t *testing.T) {
	req := require.New(t)
	registry := NewRegistry()
	member1 := domain.Presence{UserID: uuid.NewString(), Name: "alice"}
	member2 := domain.Presence{UserID: uuid.NewString(), Name: "bob"}
	board := domain.BoardID("epic-1")
	sink1 := Sink{name: "alice"}
	sink2 := Sink{name: "bob"}

	// When members subscribe a board
	registry.Subscribe(member1, board, sink1)
	registry.Subscribe(member2, board, sink2)

	// When one member unsubscribes
	registry.Unsubscribe(member1.UserID, board)

	// Then only one member left
	req.Len(registry.Sessions, 1)
	req.Len(registry.BoardMembers[board], 1)

	req.Len(registry.GetSinksForBoard(board), 1)
	req.Contains(registry.GetSinksForBoard(board), sink2)
}
