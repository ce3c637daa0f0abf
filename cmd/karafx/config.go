package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/karatoken/karafx/dsp/core"
	"github.com/pion/logging"
)

// Environment variables consulted when the matching flag is not given.
const (
	envChunkSize = "KARAFX_CHUNK_SIZE"
	envGPU       = "KARAFX_GPU"
	envLogLevel  = "KARAFX_LOG_LEVEL"
)

type config struct {
	input     string
	output    string
	chain     string
	chainFile string
	chunkSize int
	bitDepth  int
	gpu       bool
	parallel  bool
	carry     bool
	report    bool
	logLevel  logging.LogLevel
}

func parseConfig(args []string, getenv func(string) string, stderr io.Writer) (config, error) {
	var (
		cfg      config
		logLevel string
	)

	fs := flag.NewFlagSet("karafx", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.input, "in", "", "input WAV file (required)")
	fs.StringVar(&cfg.output, "out", "", "output WAV file (required)")
	fs.StringVar(&cfg.chain, "chain", "[]", `effect chain as JSON, e.g. '[{"type":"reverb","value":0.4}]'`)
	fs.StringVar(&cfg.chainFile, "chain-file", "", "read the effect chain JSON from a file")
	fs.IntVar(&cfg.chunkSize, "chunk", envInt(getenv, envChunkSize, 4096), "chunk size in samples ($"+envChunkSize+")")
	fs.IntVar(&cfg.bitDepth, "bits", 0, "output bit depth: 16, 24 or 32 (default: input depth)")
	fs.BoolVar(&cfg.gpu, "gpu", envBool(getenv, envGPU), "use the SIMD numeric backend ($"+envGPU+")")
	fs.BoolVar(&cfg.parallel, "parallel", false, "process channels concurrently")
	fs.BoolVar(&cfg.carry, "carry-state", false, "keep effect state across chunk boundaries")
	fs.BoolVar(&cfg.report, "report", false, "print level and pitch statistics before and after")
	fs.StringVar(&logLevel, "log-level", envString(getenv, envLogLevel, "info"), "error, warn, info, debug or trace ($"+envLogLevel+")")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: karafx -in input.wav -out output.wav [flags]\n\n")
		fmt.Fprintf(stderr, "Applies an effect chain to a WAV file in fixed-size chunks.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  karafx -in vocal.wav -out up.wav -chain '[{\"type\":\"pitchShift\",\"value\":2}]'\n")
		fmt.Fprintf(stderr, "  karafx -in mix.wav -out wet.wav -chain-file chain.json -carry-state -report\n")
	}

	err := fs.Parse(args)
	if err != nil {
		return config{}, err
	}

	if cfg.input == "" || cfg.output == "" {
		return config{}, core.ErrInvalidConfiguration.New("both -in and -out are required")
	}

	if cfg.chainFile != "" {
		data, err := os.ReadFile(cfg.chainFile)
		if err != nil {
			return config{}, core.ErrInvalidConfiguration.Wrap(err, "read chain file")
		}
		cfg.chain = string(data)
	}

	cfg.logLevel, err = parseLogLevel(logLevel)
	if err != nil {
		return config{}, err
	}

	return cfg, nil
}

func parseLogLevel(s string) (logging.LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "disabled", "off":
		return logging.LogLevelDisabled, nil
	case "error":
		return logging.LogLevelError, nil
	case "warn", "warning":
		return logging.LogLevelWarn, nil
	case "info", "":
		return logging.LogLevelInfo, nil
	case "debug":
		return logging.LogLevelDebug, nil
	case "trace":
		return logging.LogLevelTrace, nil
	default:
		return logging.LogLevelDisabled, core.ErrInvalidConfiguration.New("unknown log level %q", s)
	}
}

func envString(getenv func(string) string, key, def string) string {
	if v := strings.TrimSpace(getenv(key)); v != "" {
		return v
	}

	return def
}

func envInt(getenv func(string) string, key string, def int) int {
	v, err := strconv.Atoi(strings.TrimSpace(getenv(key)))
	if err != nil {
		return def
	}

	return v
}

func envBool(getenv func(string) string, key string) bool {
	v, err := strconv.ParseBool(strings.TrimSpace(getenv(key)))
	return err == nil && v
}
