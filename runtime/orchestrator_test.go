package runtime

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"storysplit/agent"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/invest"
	"storysplit/observability"
	"storysplit/repositories"
	"storysplit/runtime/workers"
)

// collectSink records everything a board subscriber would receive.
type collectSink struct {
	mu     sync.Mutex
	events []event.DomainEvent
}

func (s *collectSink) Consume(_ context.Context, e event.DomainEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *collectSink) find(pred func(event.DomainEvent) bool) event.DomainEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.events {
		if pred(e) {
			return e
		}
	}
	return nil
}

type orchestratorFixture struct {
	orchestrator *Orchestrator
	feedback     repositories.FeedbackRepository
	stories      repositories.StoryRepository
}

func newOrchestratorFixture(t *testing.T) orchestratorFixture {
	t.Helper()
	req := require.New(t)
	log := slog.Default()

	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	writer, err := bluge.OpenWriter(bluge.DefaultConfig(t.TempDir()))
	req.NoError(err)
	t.Cleanup(func() { _ = writer.Close() })

	data, err := invest.NewKeywordLoader(invest.KeywordFiles).LoadAll("keywords")
	req.NoError(err)
	splitter, err := invest.NewSplitter(data, log)
	req.NoError(err)

	stories := repositories.NewStoryRepository(db, log)
	epics := repositories.NewEpicRepository(db)
	feedback := repositories.NewFeedbackRepository(db, log, nil)
	searchIndex := repositories.NewSearchIndex(writer, log)

	orchestrator := NewOrchestrator(log,
		workers.NewSupervisor(log, 10*time.Millisecond),
		NewRegistry(),
		stories, epics, feedback, searchIndex,
		agent.New(invest.NewScorer(), splitter, log),
		observability.NewManager(log),
		Config{
			NumWorkers:        2,
			BufferSize:        32,
			SinkTimeout:       time.Second,
			TypingTTL:         80 * time.Millisecond,
			TypingSweep:       20 * time.Millisecond,
			HeartbeatInterval: time.Hour,
		})
	return orchestratorFixture{orchestrator: orchestrator, feedback: feedback, stories: stories}
}

func TestOrchestrator_Create_Story_Reaches_Subscriber_And_Disk(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(f.orchestrator.Start(ctx))
	defer f.orchestrator.Stop()

	// Given a subscriber on the epic's board
	subscriber := &collectSink{}
	alice := domain.Presence{UserID: "u1", Name: "alice"}
	board := domain.BoardID("epic-1")
	f.orchestrator.RegisterParticipant(alice, board, subscriber)

	req.Eventually(func() bool {
		return subscriber.find(func(e event.DomainEvent) bool {
			joined, ok := e.(event.MemberJoined)
			return ok && joined.Member == alice && len(joined.Members) == 1
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "MemberJoined not delivered")

	// When a compound story is created
	story := domain.Story{
		ID:          uuid.New(),
		EpicID:      board,
		Title:       "Checkout and refunds",
		Description: "As a shopper I want to pay with a saved card and I want to receive a refund confirmation by email afterwards.",
		Priority:    domain.PriorityHigh,
		Status:      domain.StatusBacklog,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
		Revision:    1,
	}
	f.orchestrator.Dispatch(domain.CreateStoryCommand{Story: story})

	// Then the subscriber sees the creation and the agent's review
	req.Eventually(func() bool {
		return subscriber.find(func(e event.DomainEvent) bool {
			created, ok := e.(event.StoryCreated)
			return ok && created.Story.ID == story.ID
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "StoryCreated not delivered")

	req.Eventually(func() bool {
		return subscriber.find(func(e event.DomainEvent) bool {
			ready, ok := e.(event.FeedbackReady)
			return ok && ready.Feedback.StoryID == story.ID
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "FeedbackReady not delivered")

	// And the story and its feedback are persisted
	stored, err := f.stories.Get(story.ID)
	req.NoError(err)
	req.Equal(story.Title, stored.Title)

	req.Eventually(func() bool {
		history, _, err := f.feedback.GetByStory(story.ID, nil)
		return err == nil && len(history) > 0
	}, 3*time.Second, 20*time.Millisecond, "Feedback not persisted")
}

func TestOrchestrator_Typing_Lifecycle_With_Expiry(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(f.orchestrator.Start(ctx))
	defer f.orchestrator.Stop()

	subscriber := &collectSink{}
	alice := domain.Presence{UserID: "u1", Name: "alice"}
	board := domain.BoardID("epic-1")
	storyID := uuid.New()
	f.orchestrator.RegisterParticipant(alice, board, subscriber)

	// When alice starts typing and then goes silent
	f.orchestrator.Typing(board, storyID, alice, false)

	req.Eventually(func() bool {
		return subscriber.find(func(e event.DomainEvent) bool {
			started, ok := e.(event.TypingStarted)
			return ok && started.Member == alice
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "TypingStarted not delivered")

	// Then the sweeper expires the indicator on her behalf
	req.Eventually(func() bool {
		return subscriber.find(func(e event.DomainEvent) bool {
			stopped, ok := e.(event.TypingStopped)
			return ok && stopped.Expired && stopped.Member == alice
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "Expired TypingStopped not delivered")
}

func TestOrchestrator_Typing_From_Non_Member_Is_Ignored(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(f.orchestrator.Start(ctx))
	defer f.orchestrator.Stop()

	// Given bob watching a board that alice never joined
	watcher := &collectSink{}
	bob := domain.Presence{UserID: "u2", Name: "bob"}
	intruder := domain.Presence{UserID: "u1", Name: "alice"}
	board := domain.BoardID("epic-1")
	f.orchestrator.RegisterParticipant(bob, board, watcher)

	req.Eventually(func() bool {
		return watcher.find(func(e event.DomainEvent) bool {
			_, ok := e.(event.MemberJoined)
			return ok
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "MemberJoined not delivered")

	// When alice types without being a member
	f.orchestrator.Typing(board, uuid.New(), intruder, false)
	f.orchestrator.Typing(board, uuid.New(), intruder, true)

	// Then no typing event reaches the board
	time.Sleep(200 * time.Millisecond)
	req.Nil(watcher.find(func(e event.DomainEvent) bool {
		switch e.(type) {
		case event.TypingStarted, event.TypingStopped:
			return true
		}
		return false
	}))
}

func TestOrchestrator_Unregister_Publishes_MemberLeft(t *testing.T) {
	req := require.New(t)
	f := newOrchestratorFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	req.NoError(f.orchestrator.Start(ctx))
	defer f.orchestrator.Stop()

	watcher := &collectSink{}
	alice := domain.Presence{UserID: "u1", Name: "alice"}
	bob := domain.Presence{UserID: "u2", Name: "bob"}
	board := domain.BoardID("epic-1")
	f.orchestrator.RegisterParticipant(bob, board, watcher)
	f.orchestrator.RegisterParticipant(alice, board, &collectSink{})

	f.orchestrator.UnregisterParticipant(alice, board)

	req.Eventually(func() bool {
		return watcher.find(func(e event.DomainEvent) bool {
			left, ok := e.(event.MemberLeft)
			return ok && left.Member == alice
		}) != nil
	}, 3*time.Second, 20*time.Millisecond, "MemberLeft not delivered")
}
