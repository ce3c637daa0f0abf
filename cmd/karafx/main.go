// Command karafx applies an effect chain to a WAV file.
//
// Usage:
//
//	karafx -in input.wav -out output.wav [flags]
//
// The chain is a JSON array of {"type": ..., "value": ...} entries, given
// inline with -chain or read from -chain-file. Chunk size and backend can
// also be set through KARAFX_CHUNK_SIZE and KARAFX_GPU.
//
// Examples:
//
//	karafx -in vocal.wav -out up.wav -chain '[{"type":"pitchShift","value":2}]'
//	karafx -in mix.wav -out wet.wav -chain-file chain.json -carry-state -report
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/karatoken/karafx/dsp/effectchain"
	"github.com/karatoken/karafx/engine"
	"github.com/karatoken/karafx/internal/wavio"
	"github.com/pion/logging"
)

func main() {
	cfg, err := parseConfig(os.Args[1:], os.Getenv, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = run(ctx, cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level logging.LogLevel, w io.Writer) logging.LeveledLogger {
	factory := logging.NewDefaultLoggerFactory()
	factory.Writer = w
	factory.DefaultLogLevel = level

	return factory.NewLogger("karafx")
}

func run(ctx context.Context, cfg config, stdout, stderr io.Writer) error {
	log := newLogger(cfg.logLevel, stderr)

	fx, err := effectchain.ParseChain([]byte(cfg.chain))
	if err != nil {
		return err
	}

	in, info, err := wavio.ReadFile(cfg.input)
	if err != nil {
		return err
	}
	log.Infof("read %s: %d Hz, %d channel(s), %d bit, %d samples",
		cfg.input, info.SampleRate, info.NumChannels, info.BitDepth, in.Length())

	e, err := engine.New(
		engine.WithSampleRate(info.SampleRate),
		engine.WithNumChannels(info.NumChannels),
		engine.WithBufferSize(cfg.chunkSize),
		engine.WithGPU(cfg.gpu),
		engine.WithParallelChannels(cfg.parallel),
		engine.WithLogger(log),
	)
	if err != nil {
		return err
	}

	res, err := e.Process(ctx, in,
		engine.WithEffects(fx...),
		engine.WithCarryState(cfg.carry),
		engine.WithProgress(progressLogger(log)))
	if err != nil {
		return err
	}

	out := res.Buffer(info.SampleRate)

	bits := cfg.bitDepth
	if bits == 0 {
		bits = info.BitDepth
	}

	err = wavio.WriteFile(cfg.output, out, bits)
	if err != nil {
		return err
	}
	log.Infof("wrote %s (%d bit)", cfg.output, bits)

	if cfg.report {
		return writeReport(stdout, in, out)
	}

	return nil
}

// progressLogger logs progress at every 10% step.
func progressLogger(log logging.LeveledLogger) engine.ProgressFunc {
	next := 0.1

	return func(p float64) {
		if p < next && p < 1 {
			return
		}
		for next <= p {
			next += 0.1
		}
		log.Infof("progress %3.0f%%", p*100)
	}
}
