// Package runtime handles command intake, event propagation, presence
// and typing state. It orchestrates the system without containing
// business logic or domain rules.
package runtime

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"storysplit/agent"
	"storysplit/contract"
	"storysplit/domain"
	"storysplit/domain/event"
	"storysplit/observability"
	"storysplit/repositories"
	"storysplit/runtime/workers"
	"storysplit/sink"
)

// Config groups the runtime tunables read from the environment.
type Config struct {
	NumWorkers        int
	BufferSize        int
	SinkTimeout       time.Duration
	TypingTTL         time.Duration
	TypingSweep       time.Duration
	HeartbeatInterval time.Duration
}

type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	cfg            Config
	permanentSinks []contract.EventSink
	supervisor     contract.ISupervisor
	registry       contract.IRegistry
	commands       chan domain.Command
	rawEvents      chan event.DomainEvent
	domainEvents   chan event.DomainEvent
	telemetry      chan any
	stories        repositories.IStoryRepository
	epics          repositories.IEpicRepository
	feedback       repositories.IFeedbackRepository
	searchIndex    repositories.ISearchIndex
	agent          *agent.Agent
	monitoring     *observability.Manager
	sweeper        *workers.TypingSweeper
}

func NewOrchestrator(log *slog.Logger, supervisor *workers.Supervisor,
	registry *Registry,
	stories repositories.IStoryRepository,
	epics repositories.IEpicRepository,
	feedback repositories.IFeedbackRepository,
	searchIndex repositories.ISearchIndex,
	a *agent.Agent,
	monitoring *observability.Manager,
	cfg Config) *Orchestrator {
	o := &Orchestrator{
		log:          log,
		cfg:          cfg,
		supervisor:   supervisor,
		registry:     registry,
		commands:     make(chan domain.Command, cfg.BufferSize),
		rawEvents:    make(chan event.DomainEvent, cfg.BufferSize),
		domainEvents: make(chan event.DomainEvent, cfg.BufferSize),
		telemetry:    make(chan any, cfg.BufferSize),
		stories:      stories,
		epics:        epics,
		feedback:     feedback,
		searchIndex:  searchIndex,
		agent:        a,
		monitoring:   monitoring,
	}
	// The sweeper publishes expiries on the same channel as explicit
	// stops, so they take the same fanout path. The supervisor reports
	// worker restarts on the telemetry channel it shares with the rest
	// of the pipeline.
	o.sweeper = workers.NewTypingSweeper(cfg.TypingTTL, cfg.TypingSweep, o.domainEvents, log)
	supervisor.ReportTo(o.telemetry)
	return o
}

// RegisterSinks adds permanent sinks that receive every domain event.
// Must be called before Start.
func (o *Orchestrator) RegisterSinks(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

// Dispatch hands a command to the worker pool. It never blocks the
// caller: when the channel is full the command is dropped and the drop
// is counted, the client retries.
func (o *Orchestrator) Dispatch(cmd domain.Command) {
	select {
	case o.commands <- cmd:
		o.monitoring.IncrCommandsDispatched()
		o.report(event.ChannelCapacity{
			ChannelName: "commands",
			Capacity:    cap(o.commands),
			Length:      len(o.commands),
		})
	default:
		o.log.Warn("Command channel full, dropping command", "board", cmd.BoardID())
		o.monitoring.IncrCommandsDropped()
	}
}

// Publish injects an already-formed domain event into the pipeline,
// downstream of the agent stage. Presence and typing events take this
// path, they never need a review.
func (o *Orchestrator) Publish(e event.DomainEvent) {
	select {
	case o.domainEvents <- e:
		o.monitoring.IncrEventsDispatched()
	default:
		o.log.Warn("Event channel full, dropping event", "board", e.BoardID())
	}
}

// RegisterParticipant subscribes a connection to a board. The joiner's
// membership snapshot travels inside the MemberJoined event so every
// subscriber, the joiner included, sees the same roster.
func (o *Orchestrator) RegisterParticipant(p domain.Presence, board domain.BoardID, s contract.EventSink) {
	members := o.registry.Subscribe(p, board, s)
	o.Publish(event.MemberJoined{
		Board:   board,
		Member:  p,
		Members: members,
		At:      time.Now().UTC(),
	})
}

// UnregisterParticipant disconnects a user from a board and clears any
// typing indicator left behind.
func (o *Orchestrator) UnregisterParticipant(p domain.Presence, board domain.BoardID) {
	o.registry.Unsubscribe(p.UserID, board)
	o.sweeper.ClearUser(board, p.UserID)
	o.Publish(event.MemberLeft{
		Board:  board,
		Member: p,
		At:     time.Now().UTC(),
	})
}

// Typing relays a typing indicator. Start refreshes the TTL entry so
// the sweeper won't expire an indicator the user keeps alive.
// Indicators from users who never joined the board are dropped: only
// members may broadcast on a channel.
func (o *Orchestrator) Typing(board domain.BoardID, storyID uuid.UUID, p domain.Presence, stopped bool) {
	if !o.isMember(board, p.UserID) {
		o.log.Debug("Typing indicator from non-member ignored",
			"board", board,
			"user", p.UserID)
		return
	}
	now := time.Now().UTC()
	if stopped {
		o.sweeper.Clear(board, storyID, p.UserID)
		o.Publish(event.TypingStopped{Board: board, StoryID: storyID, Member: p, At: now})
		return
	}
	o.sweeper.Touch(board, storyID, p)
	o.Publish(event.TypingStarted{Board: board, StoryID: storyID, Member: p, At: now})
}

func (o *Orchestrator) isMember(board domain.BoardID, userID string) bool {
	for _, member := range o.registry.Members(board) {
		if member.UserID == userID {
			return true
		}
	}
	return false
}

// Start initiates the orchestrator by preparing all components (workers, pipeline)
// and then starting the supervisor. It uses a preparation pattern to minimize
// mutex locking time.
func (o *Orchestrator) Start(ctx context.Context) error {
	// 1. Preparation phase (No Lock)
	poolWorkers := o.preparePoolWorkers()
	agentWorker := workers.NewAgentWorker(o.agent, o.rawEvents, o.domainEvents, o.log)
	fanoutWorker, newSinks := o.preparePipeline()
	telemetryWorker := workers.NewTelemetryWorker(o.log, o.telemetry, o.monitoring)
	heartbeatWorker := workers.NewHeartbeatWorker(o.log, o.cfg.HeartbeatInterval, o.monitoring)

	// 2. Critical Section (Short Lock)
	// We only lock to update the internal state and the supervisor.
	o.mu.Lock()
	o.permanentSinks = append(o.permanentSinks, newSinks...)

	o.supervisor.Add(agentWorker)
	o.supervisor.Add(fanoutWorker)
	o.supervisor.Add(o.sweeper)
	o.supervisor.Add(telemetryWorker)
	o.supervisor.Add(heartbeatWorker)
	for _, w := range poolWorkers {
		o.supervisor.Add(w)
	}
	o.mu.Unlock()

	// 3. Execution phase (No Lock)
	// Run blocks until every worker stops, so it gets its own goroutine
	// and Start returns once the pipeline is live.
	o.log.Info("Starting orchestrator and all supervised workers")
	go o.supervisor.Run(ctx)
	return nil
}

// preparePoolWorkers creates the worker pool for command processing.
func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	var res []contract.Worker
	for i := 0; i < o.cfg.NumWorkers; i++ {
		res = append(res, workers.NewBoardUnitWorker(o.stories, o.epics, o.commands, o.rawEvents, o.log))
	}
	return res
}

// preparePipeline initializes the permanent sinks and the fanout worker.
func (o *Orchestrator) preparePipeline() (contract.Worker, []contract.EventSink) {
	newSinks := []contract.EventSink{
		sink.NewDiskSink(o.feedback, o.log),
		sink.NewSearchSink(o.searchIndex, o.stories, o.log),
	}

	allSinks := append(o.permanentSinks, newSinks...)

	fanoutWorker := workers.NewEventFanoutWorker(
		o.log,
		allSinks,
		o.registry,
		o.domainEvents,
		o.telemetry,
		o.cfg.SinkTimeout,
	)

	return fanoutWorker, newSinks
}

// report is non-blocking: telemetry is sampled, losing a data point is
// cheaper than blocking dispatch.
func (o *Orchestrator) report(evt any) {
	select {
	case o.telemetry <- evt:
	default:
	}
}

// Stop initiates a graceful shutdown of the orchestrator.
// It cancels the supervision context to signal workers to stop.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
