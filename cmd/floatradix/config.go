package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joeycumines/floatradix"
	"github.com/joeycumines/logiface"
	"gopkg.in/yaml.v3"
)

type (
	// config models the file and flag configuration, prior to validation.
	config struct {
		Base        int    `toml:"base" yaml:"base"`
		Bits        int    `toml:"bits" yaml:"bits"`
		Mode        string `toml:"mode" yaml:"mode"`
		Format      string `toml:"format" yaml:"format"`
		Concurrency int    `toml:"concurrency" yaml:"concurrency"`
		LogLevel    string `toml:"log_level" yaml:"log_level"`
		Output      string `toml:"output" yaml:"output"`
		FailFast    bool   `toml:"fail_fast" yaml:"fail_fast"`
	}

	// settings is the validated form of config.
	settings struct {
		converter   floatradix.Converter
		base        int
		bits        int
		format      outputFormat
		concurrency int
		level       logiface.Level
		output      string
		failFast    bool
		values      []string
	}

	outputFormat int
)

const (
	formatText outputFormat = iota
	formatJSON
)

var (
	errConfig = errors.New(`invalid configuration`)
)

func defaultConfig() config {
	return config{
		Base:     16,
		Bits:     64,
		Mode:     floatradix.ModeExact.String(),
		Format:   `text`,
		LogLevel: logiface.LevelWarning.String(),
	}
}

// parseArgs parses the command line, merging it over the (optional) config
// file. Flags that were explicitly set take precedence.
func parseArgs(args []string, stderr io.Writer) (*settings, error) {
	fs := flag.NewFlagSet(`floatradix`, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		_, _ = fmt.Fprintf(fs.Output(), "Usage: floatradix [flags] [value ...]\n\nFlags:\n")
		fs.PrintDefaults()
	}

	flags := defaultConfig()
	configPath := fs.String(`config`, ``, `path to a TOML or YAML config file`)
	fs.IntVar(&flags.Base, `base`, flags.Base, `output radix, 2 to 36`)
	fs.IntVar(&flags.Bits, `bits`, flags.Bits, `precision of the input values, 32 or 64`)
	fs.StringVar(&flags.Mode, `mode`, flags.Mode, `digit generation: exact or v8`)
	fs.StringVar(&flags.Format, `format`, flags.Format, `output format: text or json`)
	fs.IntVar(&flags.Concurrency, `concurrency`, flags.Concurrency, `max parallel conversions, defaults to GOMAXPROCS`)
	fs.StringVar(&flags.LogLevel, `log-level`, flags.LogLevel, `log level, emerg to trace, or disabled`)
	fs.StringVar(&flags.Output, `output`, flags.Output, `write results to this file (atomically) instead of stdout`)
	fs.BoolVar(&flags.FailFast, `fail-fast`, flags.FailFast, `stop at the first value that fails to convert`)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	if *configPath != `` {
		if err := loadConfigFile(*configPath, &cfg); err != nil {
			return nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case `base`:
			cfg.Base = flags.Base
		case `bits`:
			cfg.Bits = flags.Bits
		case `mode`:
			cfg.Mode = flags.Mode
		case `format`:
			cfg.Format = flags.Format
		case `concurrency`:
			cfg.Concurrency = flags.Concurrency
		case `log-level`:
			cfg.LogLevel = flags.LogLevel
		case `output`:
			cfg.Output = flags.Output
		case `fail-fast`:
			cfg.FailFast = flags.FailFast
		}
	})

	s, err := cfg.settings()
	if err != nil {
		return nil, err
	}
	s.values = fs.Args()
	return s, nil
}

// loadConfigFile decodes the file at path into cfg, using YAML for the .yaml
// and .yml extensions, and TOML otherwise. Keys absent from the file keep
// their existing values.
func loadConfigFile(path string, cfg *config) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf(`read config: %w`, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case `.yaml`, `.yml`:
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf(`%w: %s: %w`, errConfig, path, err)
		}

	default:
		md, err := toml.Decode(string(b), cfg)
		if err != nil {
			return fmt.Errorf(`%w: %s: %w`, errConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) != 0 {
			return fmt.Errorf(`%w: %s: unknown keys: %v`, errConfig, path, undecoded)
		}
	}

	return nil
}

func (x config) settings() (*settings, error) {
	if err := floatradix.ValidateBase(x.Base); err != nil {
		return nil, fmt.Errorf(`%w: %w`, errConfig, err)
	}

	s := settings{
		base:        x.Base,
		bits:        x.Bits,
		concurrency: x.Concurrency,
		output:      x.Output,
		failFast:    x.FailFast,
	}

	if s.bits != 32 && s.bits != 64 {
		return nil, fmt.Errorf(`%w: bits must be 32 or 64: %d`, errConfig, s.bits)
	}

	switch x.Mode {
	case floatradix.ModeExact.String():
		s.converter.Mode = floatradix.ModeExact
	case floatradix.ModeV8.String():
		s.converter.Mode = floatradix.ModeV8
	default:
		return nil, fmt.Errorf(`%w: unknown mode: %q`, errConfig, x.Mode)
	}

	switch x.Format {
	case `text`:
		s.format = formatText
	case `json`:
		s.format = formatJSON
	default:
		return nil, fmt.Errorf(`%w: unknown format: %q`, errConfig, x.Format)
	}

	if s.concurrency < 0 {
		return nil, fmt.Errorf(`%w: negative concurrency: %d`, errConfig, s.concurrency)
	}

	level, ok := parseLevel(x.LogLevel)
	if !ok {
		return nil, fmt.Errorf(`%w: unknown log level: %q`, errConfig, x.LogLevel)
	}
	s.level = level

	return &s, nil
}

// limit returns the effective concurrency, which must be resolved after any
// GOMAXPROCS adjustment.
func (x *settings) limit() int {
	if x.concurrency > 0 {
		return x.concurrency
	}
	return runtime.GOMAXPROCS(0)
}

// parseLevel accepts the logiface.Level keywords, e.g. "warning" or "info".
func parseLevel(s string) (logiface.Level, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if level.String() == s {
			return level, true
		}
	}
	return 0, false
}
