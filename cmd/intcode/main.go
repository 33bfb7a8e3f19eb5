// Command intcode loads an Intcode program from a text file and runs it.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/chronos-tachyon/go-intcode/intcodevm"
	"github.com/chronos-tachyon/go-intcode/pipeline"
	"github.com/chronos-tachyon/go-intcode/program"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	cancel()
	switch {
	case err == nil:
	case errors.Is(err, flag.ErrHelp):
	case errors.Is(err, ErrUsage):
		fmt.Fprintf(os.Stderr, "intcode: %v\n", err)
		os.Exit(2)
	default:
		fmt.Fprintf(os.Stderr, "intcode: %v\n", err)
		os.Exit(1)
	}
}

func setupLogger(stderr io.Writer, level zap.AtomicLevel) *zap.Logger {
	cfg := zap.NewProductionEncoderConfig()
	cfg.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.EncodeDuration = zapcore.StringDurationEncoder
	return zap.New(zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg),
		zapcore.AddSync(stderr),
		level,
	))
}

// Run is the whole command, minus process exit codes.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	logger := setupLogger(stderr, level)
	defer logger.Sync()
	defer zap.RedirectStdLog(logger)()

	cfg, err := loadConfig(args, stderr)
	if err != nil {
		return err
	}
	lvl, _ := cfg.level()
	level.SetLevel(lvl)

	words, err := program.ReadFile(cfg.Program)
	if err != nil {
		return err
	}
	logger.Debug("loaded program",
		zap.String("path", cfg.Program),
		zap.Int("words", len(words)),
		zap.String("mode", cfg.Mode))

	start := time.Now()
	defer func() {
		logger.Debug("finished", zap.Duration("elapsed", time.Since(start)), zap.Error(err))
	}()

	out := newPrinter(stdout, cfg.ASCII)
	switch cfg.Mode {
	case ModeRun:
		m := intcodevm.NewWithSeed(words, cfg.Inputs...)
		r, err := m.Run()
		if err != nil {
			return err
		}
		if !r.Completed() {
			return intcodevm.ErrInsufficientInput
		}
		out.print(r.Outputs...)
		if cfg.Dump {
			out.dump(m.Memory())
		}

	case ModeInteractive:
		m := intcodevm.NewWithSeed(words, cfg.Inputs...)
		if err := interact(ctx, logger, m, stdin, stderr, out); err != nil {
			return err
		}
		if cfg.Dump {
			out.dump(m.Memory())
		}

	case ModeChain:
		v, err := pipeline.Chain(words, cfg.Phases, cfg.Signal)
		if err != nil {
			return err
		}
		out.print(v)

	case ModeRing:
		ring := &pipeline.Ring{Program: words, Logger: logger}
		v, err := ring.Run(cfg.Phases, cfg.Signal)
		if err != nil {
			return err
		}
		out.print(v)
	}
	return out.flush()
}

// interact runs m, reading another line of input words from stdin each time
// it waits for input. It returns ctx.Err() as soon as ctx is done, even while
// blocked on stdin.
func interact(ctx context.Context, logger *zap.Logger, m *intcodevm.Machine, stdin io.Reader, prompt io.Writer, out *printer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	lines, scanErr := readLines(ctx, stdin)
	for {
		r, err := m.Run()
		if err != nil {
			return err
		}
		out.print(r.Outputs...)
		if r.Completed() {
			return nil
		}
		if err := out.flush(); err != nil {
			return err
		}
		logger.Debug("waiting for input", zap.Uint64("ip", m.IP()), zap.Int64("rb", m.RB()))

		var more []int64
		for len(more) == 0 {
			fmt.Fprint(prompt, "? ")
			var line string
			var ok bool
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok = <-lines:
			}
			if !ok {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := *scanErr; err != nil {
					return err
				}
				return intcodevm.ErrInsufficientInput
			}
			more, err = parseWords(line)
			if err != nil {
				fmt.Fprintf(prompt, "not a list of integers: %v\n", err)
			}
		}
		m.AddInputs(more...)
	}
}

// readLines scans r on its own goroutine, so that the caller can stop
// waiting when ctx is done. The channel is closed at EOF or on a read
// error; *err is valid once it is closed.
func readLines(ctx context.Context, r io.Reader) (<-chan string, *error) {
	lines := make(chan string)
	var err error
	go func() {
		defer close(lines)
		sc := bufio.NewScanner(r)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		err = sc.Err()
	}()
	return lines, &err
}
