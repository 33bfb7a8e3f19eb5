package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gitlab.com/efronlicht/enve"
	"go.uber.org/zap/zapcore"
)

const (
	ModeRun         = "run"
	ModeInteractive = "interactive"
	ModeChain       = "chain"
	ModeRing        = "ring"
)

var ErrUsage = errors.New("usage error")

var errUnset = errors.New("unset")

// Config is everything needed to load and drive one program.
//
// Sources are applied in order, each overriding the last: built-in defaults,
// the TOML file named by -config, INTCODE_* environment variables, and
// finally any flags given explicitly on the command line.
type Config struct {
	Mode     string  `toml:"mode"`
	Program  string  `toml:"program"`
	Inputs   []int64 `toml:"inputs"`
	Phases   []int64 `toml:"phases"`
	Signal   int64   `toml:"signal"`
	ASCII    bool    `toml:"ascii"`
	Dump     bool    `toml:"dump"`
	LogLevel string  `toml:"log_level"`
}

func defaultConfig() Config {
	return Config{
		Mode:     ModeRun,
		LogLevel: "info",
	}
}

// loadConfig parses args (without the program name) into a Config.
func loadConfig(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("intcode", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: intcode [options] [program.txt]\n\n")
		fmt.Fprintf(stderr, "Runs an Intcode program and prints each output word on its own line.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nModes:\n")
		fmt.Fprintf(stderr, "  run          feed -input up front, fail if the program wants more\n")
		fmt.Fprintf(stderr, "  interactive  read more input from stdin whenever the program waits\n")
		fmt.Fprintf(stderr, "  chain        one run per -phases entry, each fed the previous output\n")
		fmt.Fprintf(stderr, "  ring         like chain, but the last stage feeds the first\n")
	}

	configPath := fs.String("config", "", "TOML file with default settings")
	mode := fs.String("mode", "", "run, interactive, chain, or ring")
	inputs := fs.String("input", "", "comma-separated input words")
	phases := fs.String("phases", "", "comma-separated phase settings for chain and ring")
	signal := fs.Int64("signal", 0, "initial signal for chain and ring")
	ascii := fs.Bool("ascii", false, "print output words in 0..127 as characters")
	dump := fs.Bool("dump", false, "after run or interactive, print the final memory")
	logLevel := fs.String("log-level", "", "debug, info, warn, or error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := defaultConfig()
	if *configPath != "" {
		data, err := os.ReadFile(*configPath)
		if err != nil {
			return Config{}, err
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("%s: %w", *configPath, err)
		}
	}

	err := errors.Join(
		fromEnv(&cfg.Mode, identity, "INTCODE_MODE"),
		fromEnv(&cfg.Program, identity, "INTCODE_PROGRAM"),
		fromEnv(&cfg.LogLevel, identity, "INTCODE_LOG_LEVEL"),
		fromEnv(&cfg.Phases, parseWords, "INTCODE_PHASES"),
		fromEnv(&cfg.ASCII, strconv.ParseBool, "INTCODE_ASCII"),
		fromEnv(&cfg.Dump, strconv.ParseBool, "INTCODE_DUMP"),
	)
	if err != nil {
		return Config{}, err
	}

	fs.Visit(func(f *flag.Flag) {
		if err != nil {
			return
		}
		switch f.Name {
		case "mode":
			cfg.Mode = *mode
		case "input":
			cfg.Inputs, err = parseWords(*inputs)
		case "phases":
			cfg.Phases, err = parseWords(*phases)
		case "signal":
			cfg.Signal = *signal
		case "ascii":
			cfg.ASCII = *ascii
		case "dump":
			cfg.Dump = *dump
		case "log-level":
			cfg.LogLevel = *logLevel
		}
		if err != nil {
			err = fmt.Errorf("-%s: %w", f.Name, err)
		}
	})
	if err != nil {
		return Config{}, err
	}

	switch fs.NArg() {
	case 0:
	case 1:
		cfg.Program = fs.Arg(0)
	default:
		return Config{}, fmt.Errorf("%w: expected at most one program, got %d", ErrUsage, fs.NArg())
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (cfg Config) validate() error {
	switch cfg.Mode {
	case ModeRun, ModeInteractive:
	case ModeChain, ModeRing:
		if len(cfg.Phases) == 0 {
			return fmt.Errorf("%w: mode %q needs -phases", ErrUsage, cfg.Mode)
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrUsage, cfg.Mode)
	}
	if cfg.Program == "" {
		return fmt.Errorf("%w: no program given", ErrUsage)
	}
	if _, err := cfg.level(); err != nil {
		return err
	}
	return nil
}

func (cfg Config) level() (zapcore.Level, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		return level, fmt.Errorf("%w: log level: %v", ErrUsage, err)
	}
	return level, nil
}

// fromEnv overwrites *dst with the parsed value of the environment variable
// key. An unset or empty variable leaves *dst alone; a malformed one is a
// usage error.
func fromEnv[T any](dst *T, parse func(string) (T, error), key string) error {
	var parseErr error
	v, err := enve.Lookup(func(s string) (T, error) {
		if s == "" {
			return *new(T), errUnset
		}
		t, err := parse(s)
		parseErr = err
		return t, err
	}, key)
	switch {
	case parseErr != nil:
		return fmt.Errorf("%w: $%s: %v", ErrUsage, key, parseErr)
	case err != nil:
		return nil
	}
	*dst = v
	return nil
}

func identity(s string) (string, error) { return s, nil }

// parseWords parses a list of integers separated by commas and/or
// whitespace. An empty string is an empty list.
func parseWords(s string) ([]int64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	words := make([]int64, 0, len(fields))
	for _, field := range fields {
		v, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, err
		}
		words = append(words, v)
	}
	return words, nil
}
