package event

// Technical events never leave the process. They feed the monitoring
// snapshot, not the board channels.

type WorkerRestartedAfterPanic struct {
	WorkerName string
}

type ChannelCapacity struct {
	ChannelName string
	Capacity    int
	Length      int
}

// SubscriberDropped carries the board only: the fanout sees sinks, not
// the users behind them.
type SubscriberDropped struct {
	Board string
}
