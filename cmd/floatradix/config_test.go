package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/joeycumines/floatradix"
	"github.com/joeycumines/logiface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseArgs_defaults(t *testing.T) {
	s, err := parseArgs(nil, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 16, s.base)
	assert.Equal(t, 64, s.bits)
	assert.Equal(t, floatradix.ModeExact, s.converter.Mode)
	assert.Equal(t, formatText, s.format)
	assert.Equal(t, logiface.LevelWarning, s.level)
	assert.Zero(t, s.concurrency)
	assert.Positive(t, s.limit())
	assert.Empty(t, s.output)
	assert.False(t, s.failFast)
	assert.Empty(t, s.values)
}

func TestParseArgs_toml(t *testing.T) {
	path := writeFile(t, `floatradix.toml`, `
base = 36
bits = 32
mode = "v8"
format = "json"
concurrency = 3
log_level = "debug"
output = "out.jsonl"
fail_fast = true
`)
	s, err := parseArgs([]string{`-config`, path, `1.5`, `2`}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 36, s.base)
	assert.Equal(t, 32, s.bits)
	assert.Equal(t, floatradix.ModeV8, s.converter.Mode)
	assert.Equal(t, formatJSON, s.format)
	assert.Equal(t, 3, s.limit())
	assert.Equal(t, logiface.LevelDebug, s.level)
	assert.Equal(t, `out.jsonl`, s.output)
	assert.True(t, s.failFast)
	assert.Equal(t, []string{`1.5`, `2`}, s.values)
}

func TestParseArgs_yaml(t *testing.T) {
	for _, name := range [...]string{`floatradix.yaml`, `floatradix.YML`} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "base: 2\nmode: v8\nlog_level: info\n")
			s, err := parseArgs([]string{`-config`, path}, io.Discard)
			require.NoError(t, err)
			assert.Equal(t, 2, s.base)
			assert.Equal(t, 64, s.bits)
			assert.Equal(t, floatradix.ModeV8, s.converter.Mode)
			assert.Equal(t, logiface.LevelInformational, s.level)
		})
	}
}

func TestParseArgs_emptyYAML(t *testing.T) {
	path := writeFile(t, `empty.yaml`, ``)
	s, err := parseArgs([]string{`-config`, path}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 16, s.base)
}

func TestParseArgs_flagsOverrideConfig(t *testing.T) {
	path := writeFile(t, `floatradix.toml`, "base = 36\nmode = \"v8\"\nfail_fast = true\n")
	s, err := parseArgs([]string{`-config`, path, `-base`, `8`, `-fail-fast=false`}, io.Discard)
	require.NoError(t, err)
	assert.Equal(t, 8, s.base)
	assert.Equal(t, floatradix.ModeV8, s.converter.Mode)
	assert.False(t, s.failFast)
}

func TestParseArgs_configErrors(t *testing.T) {
	for _, tt := range [...]struct {
		name    string
		file    string
		content string
		want    string
	}{
		{"toml unknown key", `c.toml`, "radix = 10\n", `unknown keys`},
		{"toml syntax", `c.toml`, "base = \n", `c.toml`},
		{"toml invalid base", `c.toml`, "base = 99\n", `invalid base: 99`},
		{"yaml unknown key", `c.yaml`, "radix: 10\n", `radix`},
		{"yaml invalid mode", `c.yaml`, "mode: fast\n", `unknown mode`},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, tt.file, tt.content)
			_, err := parseArgs([]string{`-config`, path}, io.Discard)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errConfig), err.Error())
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestParseArgs_invalidBaseError(t *testing.T) {
	_, err := parseArgs([]string{`-base`, `0`}, io.Discard)
	var target *floatradix.InvalidBaseError
	require.ErrorAs(t, err, &target)
	assert.Equal(t, 0, target.Base)
}

func TestParseLevel(t *testing.T) {
	for _, tt := range [...]struct {
		input string
		want  logiface.Level
		ok    bool
	}{
		{`disabled`, logiface.LevelDisabled, true},
		{`emerg`, logiface.LevelEmergency, true},
		{`err`, logiface.LevelError, true},
		{` Warning `, logiface.LevelWarning, true},
		{`info`, logiface.LevelInformational, true},
		{`trace`, logiface.LevelTrace, true},
		{`verbose`, 0, false},
		{``, 0, false},
	} {
		got, ok := parseLevel(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}
