package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/renameio/v2"
	"github.com/joeycumines/go-utilpkg/jsonenc"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"go.uber.org/automaxprocs/maxprocs"
	"golang.org/x/sync/errgroup"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitConfig = 2
)

type (
	// record is the outcome of converting a single input value.
	record struct {
		input  string
		value  float64
		result string
		err    error
	}

	logger = logiface.Logger[*stumpy.Event]

	// syncWriter serializes writes from concurrent conversions.
	syncWriter struct {
		mu sync.Mutex
		w  io.Writer
	}
)

func newLogger(w io.Writer, level logiface.Level) *logger {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(&syncWriter{w: w})),
		stumpy.L.WithLevel(level),
	)
}

func (x *syncWriter) Write(p []byte) (int, error) {
	x.mu.Lock()
	defer x.mu.Unlock()
	return x.w.Write(p)
}

// run is the testable entry point, returning the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		_, _ = fmt.Fprintf(stderr, "floatradix: %v\n", err)
		return exitConfig
	}

	log := newLogger(stderr, cfg.level)

	undo, err := maxprocs.Set(maxprocs.Logger(func(format string, args ...any) {
		log.Debug().Logf(format, args...)
	}))
	if err != nil {
		log.Warning().Err(err).Log(`failed to set GOMAXPROCS`)
	}
	defer undo()

	if err := execute(ctx, cfg, log, stdin, stdout); err != nil {
		log.Err().Err(err).Log(`conversion failed`)
		return exitFailed
	}

	return exitOK
}

func execute(ctx context.Context, cfg *settings, log *logger, stdin io.Reader, stdout io.Writer) error {
	start := time.Now()

	inputs := cfg.values
	if len(inputs) == 0 {
		var err error
		if inputs, err = readInputs(stdin); err != nil {
			return fmt.Errorf(`read input: %w`, err)
		}
	}

	records, err := convertAll(ctx, cfg, log, inputs)
	if err != nil {
		return err
	}

	var failed int
	buf := make([]byte, 0, len(records)*32)
	for i := range records {
		if records[i].err != nil {
			failed++
		}
		buf = cfg.appendRecord(buf, &records[i])
	}

	if cfg.output != `` {
		if err := renameio.WriteFile(cfg.output, buf, 0o644); err != nil {
			return fmt.Errorf(`write output: %w`, err)
		}
	} else if _, err := stdout.Write(buf); err != nil {
		return fmt.Errorf(`write output: %w`, err)
	}

	log.Info().
		Int(`values`, len(records)).
		Int(`failed`, failed).
		Dur(`elapsed`, time.Since(start)).
		Log(`conversion complete`)

	if failed != 0 {
		return fmt.Errorf(`%d of %d values failed to convert`, failed, len(records))
	}

	return nil
}

// readInputs reads one value per line, skipping blank lines and comments.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == `` || strings.HasPrefix(line, `#`) {
			continue
		}
		inputs = append(inputs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return inputs, nil
}

// convertAll converts every input, concurrently, preserving input order. If
// fail fast is enabled, the first failure is returned, otherwise failures
// are recorded per value.
func convertAll(ctx context.Context, cfg *settings, log *logger, inputs []string) ([]record, error) {
	records := make([]record, len(inputs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.limit())

	for i, input := range inputs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rec := &records[i]
			cfg.convert(rec, input)
			if rec.err != nil {
				log.Warning().
					Str(`input`, input).
					Err(rec.err).
					Log(`invalid value`)
				if cfg.failFast {
					return fmt.Errorf(`value %d: %w`, i+1, rec.err)
				}
			} else {
				log.Trace().
					Str(`input`, input).
					Str(`result`, rec.result).
					Log(`converted`)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	// the loop may exit early, without error, if ctx was already done
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

func (x *settings) convert(rec *record, input string) {
	rec.input = input
	rec.value, rec.err = strconv.ParseFloat(input, x.bits)
	if rec.err != nil {
		return
	}
	rec.result, rec.err = x.converter.FormatFloat(rec.value, x.base, x.bits)
}

// appendRecord appends a single line of output.
func (x *settings) appendRecord(dst []byte, rec *record) []byte {
	switch x.format {
	case formatJSON:
		dst = append(dst, `{"input":`...)
		dst = jsonenc.AppendString(dst, rec.input)
		if rec.err != nil {
			dst = append(dst, `,"error":`...)
			dst = jsonenc.AppendString(dst, rec.err.Error())
		} else {
			dst = append(dst, `,"value":`...)
			if x.bits == 32 {
				dst = jsonenc.AppendFloat32(dst, float32(rec.value))
			} else {
				dst = jsonenc.AppendFloat64(dst, rec.value)
			}
			dst = append(dst, `,"base":`...)
			dst = strconv.AppendInt(dst, int64(x.base), 10)
			dst = append(dst, `,"result":`...)
			dst = jsonenc.AppendString(dst, rec.result)
		}
		dst = append(dst, '}')

	default:
		if rec.err != nil {
			dst = append(dst, `error: `...)
			dst = append(dst, rec.err.Error()...)
		} else {
			dst = append(dst, rec.result...)
		}
	}

	return append(dst, '\n')
}
