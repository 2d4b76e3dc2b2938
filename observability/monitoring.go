package observability

import (
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"

	"storysplit/domain/event"
)

// Stats aggregates the runtime counters exposed by the debug inspector.
type Stats struct {
	EventsDispatched   uint64  `json:"events_dispatched"`
	CommandsDispatched uint64  `json:"commands_dispatched"`
	CommandsDropped    uint64  `json:"commands_dropped"`
	SubscribersDropped uint64  `json:"subscribers_dropped"`
	WorkerRestarts     uint64  `json:"worker_restarts"`
	ChannelSaturation  float64 `json:"channel_saturation"`

	ProcessRSSMb  uint64  `json:"process_rss_mb"`
	ProcessCPU    float64 `json:"process_cpu"`
	ProcessStatus string  `json:"process_status"`
	AllocMemMb    uint64  `json:"alloc_mem_mb"`
	NumGC         uint32  `json:"num_gc"`
	NumGoroutine  int     `json:"num_goroutine"`
}

// Manager keeps live telemetry counters. Hot-path increments are
// atomic, the composite snapshot is guarded by the mutex.
type Manager struct {
	log    *slog.Logger
	mu     sync.RWMutex
	latest Stats

	eventsDispatched   uint64
	commandsDispatched uint64
	commandsDropped    uint64
	subscribersDropped uint64
	workerRestarts     uint64
}

func NewManager(log *slog.Logger) *Manager {
	return &Manager{log: log}
}

func (m *Manager) IncrEventsDispatched() {
	atomic.AddUint64(&m.eventsDispatched, 1)
}

func (m *Manager) IncrCommandsDispatched() {
	atomic.AddUint64(&m.commandsDispatched, 1)
}

func (m *Manager) IncrCommandsDropped() {
	atomic.AddUint64(&m.commandsDropped, 1)
}

// Record folds one technical event into the counters. Unknown event
// types are counted nowhere but still logged at debug level so a new
// event added upstream is noticed.
func (m *Manager) Record(evt any) {
	switch e := evt.(type) {
	case event.ChannelCapacity:
		m.mu.Lock()
		m.latest.ChannelSaturation = SaturationOf(e.Length, e.Capacity)
		m.mu.Unlock()
	case event.WorkerRestartedAfterPanic:
		atomic.AddUint64(&m.workerRestarts, 1)
		m.log.Warn("Worker restarted after panic", "worker", e.WorkerName)
	case event.SubscriberDropped:
		atomic.AddUint64(&m.subscribersDropped, 1)
	default:
		m.log.Debug("Unhandled telemetry event", "event", evt)
	}
}

// SetProcessStats updates the OS-level figures sampled by the
// heartbeat worker.
func (m *Manager) SetProcessStats(rss uint64, cpu float64, status string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.latest.ProcessRSSMb = rss / 1024 / 1024
	m.latest.ProcessCPU = cpu
	m.latest.ProcessStatus = status
}

// GetLatest returns a snapshot combining the stored figures with the
// current counter values and Go runtime metrics.
func (m *Manager) GetLatest() Stats {
	m.mu.RLock()
	stats := m.latest
	m.mu.RUnlock()

	stats.EventsDispatched = atomic.LoadUint64(&m.eventsDispatched)
	stats.CommandsDispatched = atomic.LoadUint64(&m.commandsDispatched)
	stats.CommandsDropped = atomic.LoadUint64(&m.commandsDropped)
	stats.SubscribersDropped = atomic.LoadUint64(&m.subscribersDropped)
	stats.WorkerRestarts = atomic.LoadUint64(&m.workerRestarts)

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	stats.AllocMemMb = ms.Alloc / 1024 / 1024
	stats.NumGC = ms.NumGC
	stats.NumGoroutine = runtime.NumGoroutine()
	return stats
}

// SaturationOf expresses channel occupancy as a ratio, usable directly
// in dashboards.
func SaturationOf(length, capacity int) float64 {
	if capacity == 0 {
		return 0
	}
	return float64(length) / float64(capacity)
}
