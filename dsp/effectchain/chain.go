package effectchain

import (
	"fmt"

	"github.com/karatoken/karafx/dsp/backend"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/effects"
)

// Chain owns the runtimes of one ordered effect chain for one channel.
type Chain struct {
	ctx      Context
	runtimes []Runtime
	skipped  []error
}

// New compiles effects into runtimes. Unknown or nil entries become
// pass-throughs and are reported by Skipped; they do not fail the build.
// An invalid context is an ErrInvalidConfiguration.
func New(ctx Context, fx []Effect) (*Chain, error) {
	if ctx.SampleRate <= 0 || !core.IsFinite(ctx.SampleRate) {
		return nil, core.ErrInvalidConfiguration.New("effectchain: sample rate must be positive and finite: %f", ctx.SampleRate)
	}
	if ctx.Backend == nil {
		ctx.Backend = backend.Reference{}
	}

	c := &Chain{
		ctx:      ctx,
		runtimes: make([]Runtime, 0, len(fx)),
	}

	for i, e := range fx {
		rt, err := c.newRuntime(e)
		if err != nil {
			return nil, core.ErrInvalidConfiguration.Wrap(err, "effectchain: effect %d", i)
		}
		if rt == nil {
			c.skipped = append(c.skipped, core.ErrUnsupportedEffect.New(
				"effectchain: effect %d: unsupported effect type %s", i, describeUnsupported(e)))
			rt = passthrough{}
		}
		c.runtimes = append(c.runtimes, rt)
	}

	return c, nil
}

// newRuntime returns nil, nil for effects it does not support.
func (c *Chain) newRuntime(e Effect) (Runtime, error) {
	switch fx := e.(type) {
	case PitchShift:
		return effects.NewPitchShifter(fx.Semitones), nil
	case Reverb:
		return effects.NewReverb(c.ctx.SampleRate, fx.Decay, fx.Seconds, fx.Reverse, c.ctx.Backend)
	case EQ:
		return effects.NewEQ(fx.Frequency, c.ctx.Backend), nil
	case Compressor:
		return effects.NewCompressor(c.ctx.SampleRate, fx.ThresholdDB, fx.Ratio, fx.AttackSeconds, fx.ReleaseSeconds)
	default:
		return nil, nil
	}
}

func describeUnsupported(e Effect) string {
	switch fx := e.(type) {
	case nil:
		return "<nil>"
	case Unknown:
		return fmt.Sprintf("%q", fx.Type)
	default:
		return fmt.Sprintf("%T", e)
	}
}

// Context returns the chain context.
func (c *Chain) Context() Context {
	return c.ctx
}

// Len returns the number of entries, pass-throughs included.
func (c *Chain) Len() int {
	return len(c.runtimes)
}

// Skipped returns one ErrUnsupportedEffect per entry that degraded to a
// pass-through.
func (c *Chain) Skipped() []error {
	return c.skipped
}

// Runtime returns the runtime at position i, or nil when out of range.
func (c *Chain) Runtime(i int) Runtime {
	if i < 0 || i >= len(c.runtimes) {
		return nil
	}

	return c.runtimes[i]
}

// Process applies every runtime to block in chain order.
func (c *Chain) Process(block []float64) {
	if len(block) == 0 {
		return
	}

	for _, rt := range c.runtimes {
		rt.Process(block)
	}
}

// Reset clears the carried state of every runtime.
func (c *Chain) Reset() {
	for _, rt := range c.runtimes {
		rt.Reset()
	}
}
