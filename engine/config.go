package engine

import (
	"github.com/karatoken/karafx/dsp/backend"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/pion/logging"
)

// Config defines the engine settings fixed at construction.
type Config struct {
	// SampleRate is the nominal rate. Processing uses the rate reported by
	// each buffer.
	SampleRate int
	// BufferSize is the default chunk size in samples.
	BufferSize int
	// NumChannels is the nominal channel count. Buffers with a different
	// count are processed as they are.
	NumChannels int
	// UseGPU selects the accelerated numeric backend.
	UseGPU bool
	// ParallelChannels processes the channels of a buffer concurrently.
	ParallelChannels bool
}

// DefaultConfig returns 44.1 kHz mono with 4096-sample chunks on the
// reference backend.
func DefaultConfig() Config {
	return Config{
		SampleRate:  44100,
		BufferSize:  4096,
		NumChannels: 1,
	}
}

// Validate reports an ErrInvalidConfiguration for non-positive sizes.
func (c Config) Validate() error {
	switch {
	case c.SampleRate <= 0:
		return core.ErrInvalidConfiguration.New("engine: sample rate must be positive: %d", c.SampleRate)
	case c.BufferSize <= 0:
		return core.ErrInvalidConfiguration.New("engine: buffer size must be positive: %d", c.BufferSize)
	case c.NumChannels <= 0:
		return core.ErrInvalidConfiguration.New("engine: channel count must be positive: %d", c.NumChannels)
	}

	return nil
}

type settings struct {
	cfg     Config
	backend backend.Backend
	log     logging.LeveledLogger
}

// Option mutates the engine settings.
type Option func(*settings)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(s *settings) {
		s.cfg = cfg
	}
}

// WithSampleRate sets the nominal sample rate.
func WithSampleRate(sampleRate int) Option {
	return func(s *settings) {
		s.cfg.SampleRate = sampleRate
	}
}

// WithBufferSize sets the default chunk size.
func WithBufferSize(size int) Option {
	return func(s *settings) {
		s.cfg.BufferSize = size
	}
}

// WithNumChannels sets the nominal channel count.
func WithNumChannels(n int) Option {
	return func(s *settings) {
		s.cfg.NumChannels = n
	}
}

// WithGPU requests the accelerated numeric backend.
func WithGPU(enabled bool) Option {
	return func(s *settings) {
		s.cfg.UseGPU = enabled
	}
}

// WithParallelChannels enables concurrent channel processing.
func WithParallelChannels(enabled bool) Option {
	return func(s *settings) {
		s.cfg.ParallelChannels = enabled
	}
}

// WithBackend injects a numeric backend, bypassing UseGPU selection.
func WithBackend(be backend.Backend) Option {
	return func(s *settings) {
		s.backend = be
	}
}

// WithLogger sets the engine logger.
func WithLogger(log logging.LeveledLogger) Option {
	return func(s *settings) {
		s.log = log
	}
}

func applyOptions(opts []Option) settings {
	s := settings{cfg: DefaultConfig()}
	for _, opt := range opts {
		if opt != nil {
			opt(&s)
		}
	}

	if s.log == nil {
		s.log = logging.NewDefaultLoggerFactory().NewLogger("karafx")
	}

	return s
}
