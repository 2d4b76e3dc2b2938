//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"

	"github.com/google/uuid"

	"storysplit/domain"
	"storysplit/domain/event"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

type IRegistry interface {
	GetSinksForBoard(board domain.BoardID) []EventSink
	Members(board domain.BoardID) []domain.Presence
	// Subscribe returns the membership snapshot taken under the same
	// lock, so the joiner's presence list is consistent at join time.
	Subscribe(p domain.Presence, board domain.BoardID, sink EventSink) []domain.Presence
	Unsubscribe(userID string, board domain.BoardID)
}

type IOrchestrator interface {
	Dispatch(cmd domain.Command)
	Publish(e event.DomainEvent)
	RegisterSinks(sink ...EventSink)
	RegisterParticipant(p domain.Presence, board domain.BoardID, sink EventSink)
	UnregisterParticipant(p domain.Presence, board domain.BoardID)
	Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool)
	Start(ctx context.Context) error
	Stop()
}
