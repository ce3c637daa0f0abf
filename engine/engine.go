package engine

import (
	"context"

	"github.com/karatoken/karafx/dsp/backend"
	"github.com/karatoken/karafx/dsp/buffer"
	"github.com/karatoken/karafx/dsp/core"
	"github.com/karatoken/karafx/dsp/effectchain"
	"github.com/pion/logging"
	"golang.org/x/sync/errgroup"
)

var blocks = buffer.NewPool()

// Engine applies effect chains to audio buffers. It keeps no state between
// Process calls and is safe for concurrent use.
type Engine struct {
	cfg     Config
	backend backend.Backend
	log     logging.LeveledLogger
}

// New validates the configuration and selects the numeric backend. A
// requested accelerated backend that cannot be initialised is an
// ErrNumericBackend; callers may retry with WithGPU(false).
func New(opts ...Option) (*Engine, error) {
	s := applyOptions(opts)

	err := s.cfg.Validate()
	if err != nil {
		return nil, err
	}

	be := s.backend
	if be == nil {
		be, err = backend.Select(s.cfg.UseGPU)
		if err != nil {
			return nil, err
		}
	}

	s.log.Debugf("engine: backend %s, %d Hz, %d channel(s), chunk %d",
		be.Name(), s.cfg.SampleRate, s.cfg.NumChannels, s.cfg.BufferSize)

	return &Engine{cfg: s.cfg, backend: be, log: s.log}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Backend returns the numeric backend in use.
func (e *Engine) Backend() backend.Backend {
	return e.backend
}

// Process runs the effect chain over every channel of buf and returns new
// channel slices; buf is not modified. Invalid arguments are an
// ErrInvalidConfiguration returned before any chunk is processed. Effects
// the engine does not know pass audio through unchanged and are logged.
// A cancelled ctx stops processing at the next chunk boundary and no result
// is returned.
func (e *Engine) Process(ctx context.Context, buf AudioBuffer, opts ...ProcessOption) (Result, error) {
	po := processOptions{chunkSize: e.cfg.BufferSize}
	for _, opt := range opts {
		if opt != nil {
			opt(&po)
		}
	}

	err := validateCall(buf, po)
	if err != nil {
		return Result{}, err
	}

	sampleRate := buf.SampleRate()
	channels := buf.NumberOfChannels()
	length := buf.Length()

	if sampleRate != e.cfg.SampleRate || channels != e.cfg.NumChannels {
		e.log.Debugf("engine: buffer is %d Hz, %d channel(s); configured for %d Hz, %d channel(s)",
			sampleRate, channels, e.cfg.SampleRate, e.cfg.NumChannels)
	}

	chainCtx := effectchain.Context{SampleRate: float64(sampleRate), Backend: e.backend}

	chains := make([]*effectchain.Chain, channels)
	for ch := range chains {
		chains[ch], err = effectchain.New(chainCtx, po.effects)
		if err != nil {
			return Result{}, err
		}
	}

	if channels > 0 {
		for _, skipped := range chains[0].Skipped() {
			e.log.Warnf("engine: %v; passing audio through", skipped)
		}
	}

	prog := newProgress(po.progress, channels*length)
	out := make([][]float32, channels)

	run := func(ctx context.Context, ch int) error {
		dst, err := e.processChannel(ctx, chains[ch], buf.ChannelData(ch), po, prog)
		if err != nil {
			return err
		}
		out[ch] = dst

		return nil
	}

	if e.cfg.ParallelChannels && channels > 1 {
		g, gctx := errgroup.WithContext(ctx)
		for ch := 0; ch < channels; ch++ {
			g.Go(func() error { return run(gctx, ch) })
		}

		err = g.Wait()
	} else {
		for ch := 0; ch < channels && err == nil; ch++ {
			err = run(ctx, ch)
		}
	}

	if err != nil {
		return Result{}, err
	}

	return Result{Channels: out}, nil
}

// processChannel runs chain over src chunk by chunk into a new slice.
func (e *Engine) processChannel(ctx context.Context, chain *effectchain.Chain, src []float32, po processOptions, prog *progress) ([]float32, error) {
	dst := make([]float32, len(src))
	if len(src) == 0 {
		return dst, nil
	}

	scratch := blocks.Get(min(po.chunkSize, len(src)))
	defer blocks.Put(scratch)
	block := scratch.Samples()

	for start := 0; start < len(src); start += po.chunkSize {
		err := ctx.Err()
		if err != nil {
			return nil, err
		}

		end := min(start+po.chunkSize, len(src))
		chunk := block[:end-start]

		if !po.carryState {
			chain.Reset()
		}

		e.backend.Widen(chunk, src[start:end])
		chain.Process(chunk)
		e.backend.Narrow(dst[start:end], chunk)

		prog.advance(end - start)
	}

	return dst, nil
}

func validateCall(buf AudioBuffer, po processOptions) error {
	if buf == nil {
		return core.ErrInvalidConfiguration.New("engine: nil audio buffer")
	}

	if po.chunkSize <= 0 {
		return core.ErrInvalidConfiguration.New("engine: chunk size must be positive: %d", po.chunkSize)
	}

	if buf.SampleRate() <= 0 {
		return core.ErrInvalidConfiguration.New("engine: sample rate must be positive: %d", buf.SampleRate())
	}

	channels := buf.NumberOfChannels()
	if channels < 0 {
		return core.ErrInvalidConfiguration.New("engine: negative channel count: %d", channels)
	}

	length := buf.Length()
	if length < 0 {
		return core.ErrInvalidConfiguration.New("engine: negative length: %d", length)
	}

	for ch := 0; ch < channels; ch++ {
		if n := len(buf.ChannelData(ch)); n != length {
			return core.ErrInvalidConfiguration.New("engine: channel %d has %d samples, buffer length is %d", ch, n, length)
		}
	}

	return nil
}
