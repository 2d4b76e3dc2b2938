package observability

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"storysplit/domain/event"
)

func TestManager_Counters(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	m.IncrEventsDispatched()
	m.IncrEventsDispatched()
	m.IncrCommandsDispatched()
	m.IncrCommandsDropped()

	stats := m.GetLatest()
	req.Equal(uint64(2), stats.EventsDispatched)
	req.Equal(uint64(1), stats.CommandsDispatched)
	req.Equal(uint64(1), stats.CommandsDropped)
	req.Positive(stats.NumGoroutine)
}

func TestManager_Record_Technical_Events(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	m.Record(event.ChannelCapacity{ChannelName: "commands", Capacity: 100, Length: 25})
	m.Record(event.WorkerRestartedAfterPanic{WorkerName: "BoardUnitWorker"})
	m.Record(event.SubscriberDropped{Board: "epic-1"})
	m.Record("not a telemetry event") // ignored

	stats := m.GetLatest()
	req.InDelta(0.25, stats.ChannelSaturation, 0.001)
	req.Equal(uint64(1), stats.WorkerRestarts)
	req.Equal(uint64(1), stats.SubscribersDropped)
}

func TestManager_SetProcessStats(t *testing.T) {
	req := require.New(t)
	m := NewManager(slog.Default())

	m.SetProcessStats(512*1024*1024, 12.5, "S")

	stats := m.GetLatest()
	req.Equal(uint64(512), stats.ProcessRSSMb)
	req.InDelta(12.5, stats.ProcessCPU, 0.001)
	req.Equal("S", stats.ProcessStatus)
}

func TestSaturationOf(t *testing.T) {
	req := require.New(t)
	req.Zero(SaturationOf(10, 0))
	req.InDelta(0.5, SaturationOf(50, 100), 0.001)
	req.InDelta(1.0, SaturationOf(100, 100), 0.001)
}
