package config

import (
	"fmt"
)

const (
	MinQueueSize = 1
	MaxQueueSize = 1 << 20

	MinChunkBits = 1
)

const (
	DefaultQueueSize = 1 << 10 // bytes

	DefaultWriteChunk = 16 // bits per write call
	DefaultReadChunk  = 5  // bits per read call

	DefaultRounds = 1 << 12
)

// Config carries the driver parameters: the queue geometry and the chunk
// sizes the demo/bench commands use when exercising it.
type Config struct {
	QueueSize  uint `mapstructure:"queue-size"`
	WriteChunk uint `mapstructure:"write-chunk"`
	ReadChunk  uint `mapstructure:"read-chunk"`
	Rounds     uint `mapstructure:"rounds"`
}

func DefaultConfig() *Config {
	return &Config{
		QueueSize:  DefaultQueueSize,
		WriteChunk: DefaultWriteChunk,
		ReadChunk:  DefaultReadChunk,
		Rounds:     DefaultRounds,
	}
}

func (cfg *Config) Validate() error {
	if cfg.QueueSize < MinQueueSize {
		return fmt.Errorf("invalid `QueueSize`; expected: >= %d, given: %d", MinQueueSize, cfg.QueueSize)
	}

	if cfg.QueueSize > MaxQueueSize {
		return fmt.Errorf("invalid `QueueSize`; expected: <= %d, given: %d", MaxQueueSize, cfg.QueueSize)
	}

	capacityBits := cfg.QueueSize * 8

	if cfg.WriteChunk < MinChunkBits {
		return fmt.Errorf("invalid `WriteChunk`; expected: >= %d, given: %d", MinChunkBits, cfg.WriteChunk)
	}

	if cfg.WriteChunk > capacityBits {
		return fmt.Errorf("invalid `WriteChunk`; expected: <= queue capacity (%d bits), given: %d", capacityBits, cfg.WriteChunk)
	}

	if cfg.ReadChunk < MinChunkBits {
		return fmt.Errorf("invalid `ReadChunk`; expected: >= %d, given: %d", MinChunkBits, cfg.ReadChunk)
	}

	if cfg.ReadChunk > capacityBits {
		return fmt.Errorf("invalid `ReadChunk`; expected: <= queue capacity (%d bits), given: %d", capacityBits, cfg.ReadChunk)
	}

	if cfg.Rounds == 0 {
		return fmt.Errorf("invalid `Rounds`; expected: > 0, given: %d", cfg.Rounds)
	}

	return nil
}
