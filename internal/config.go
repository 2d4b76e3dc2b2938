package internal

import "time"

type Config struct {
	Host     string `env:"HOST,required=true"`
	Port     int    `env:"PORT,required=true"`
	LogLevel string `env:"LOG_LEVEL,required=true"`

	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
	BlugeFilepath  string `env:"BLUGE_FILEPATH,required=true"`

	BufferSize           int           `env:"BUFFER_SIZE,required=true"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,required=true"`
	NumberOfWorkers      int           `env:"NUMBER_OF_WORKERS,required=true"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,required=true"`
	DeliveryTimeout      time.Duration `env:"DELIVERY_TIMEOUT,required=true"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,required=true"`

	TypingTTL           time.Duration `env:"TYPING_TTL,required=true"`
	TypingSweepInterval time.Duration `env:"TYPING_SWEEP_INTERVAL,required=true"`
	HeartbeatInterval   time.Duration `env:"HEARTBEAT_INTERVAL,required=true"`

	AuthTokenDuration time.Duration `env:"AUTH_TOKEN_DURATION,required=true"`

	// Optional: page size of feedback history reads.
	LimitFeedback *int `env:"LIMIT_FEEDBACK"`

	DebugPort *int `env:"DEBUG_PORT"`
}
