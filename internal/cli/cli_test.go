package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse(nil, out)

	require.NoError(t, err)
	require.False(t, shouldExit)
	assert.Equal(t, "days", cfg.PuzzlesPath)
	assert.Empty(t, cfg.Puzzles)
	assert.Equal(t, 4, cfg.WorkerCount)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.SamplesOnly)
}

func TestParse_DaySelection(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		want []string
	}{
		{name: "positional", args: []string{"1", "16"}, want: []string{"day01", "day16"}},
		{name: "day flag", args: []string{"-day", "5,9"}, want: []string{"day05", "day09"}},
		{name: "flag and positional", args: []string{"-day", "3", "day11"}, want: []string{"day03", "day11"}},
		{name: "duplicates dropped", args: []string{"-day", "01,1", "day1"}, want: []string{"day01"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg, _, err := Parse(tc.args, &bytes.Buffer{})
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Puzzles)
		})
	}
}

func TestParse_InvalidInput(t *testing.T) {
	testCases := []struct {
		name    string
		args    []string
		wantMsg string
	}{
		{name: "unknown flag", args: []string{"--nope"}, wantMsg: "flag provided but not defined"},
		{name: "bad day", args: []string{"-day", "x"}, wantMsg: "invalid day"},
		{name: "day out of range", args: []string{"26"}, wantMsg: "invalid day"},
		{name: "bad log format", args: []string{"-log-format", "xml"}, wantMsg: "invalid log-format"},
		{name: "bad log level", args: []string{"-log-level", "loud"}, wantMsg: "invalid log-level"},
		{name: "zero workers", args: []string{"-workers", "0"}, wantMsg: "WorkerCount"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, shouldExit, err := Parse(tc.args, &bytes.Buffer{})

			require.Error(t, err)
			assert.False(t, shouldExit)
			var exitErr *ExitError
			require.ErrorAs(t, err, &exitErr)
			assert.Equal(t, 2, exitErr.Code)
			assert.Contains(t, exitErr.Message, tc.wantMsg)
		})
	}
}

func TestParse_Help(t *testing.T) {
	out := &bytes.Buffer{}

	cfg, shouldExit, err := Parse([]string{"-h"}, out)

	require.NoError(t, err)
	assert.True(t, shouldExit)
	assert.Nil(t, cfg)
	assert.Contains(t, out.String(), "Usage:")
}

func TestParse_EnvironmentDefaults(t *testing.T) {
	t.Setenv(envPuzzlesPath, "/tmp/manifests")
	t.Setenv(envWorkers, "8")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")

	cfg, _, err := Parse(nil, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, "/tmp/manifests", cfg.PuzzlesPath)
	assert.Equal(t, 8, cfg.WorkerCount)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)

	// Flags still win over the environment.
	cfg, _, err = Parse([]string{"-workers", "2", "-log-level", "error"}, &bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.WorkerCount)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParse_InvalidWorkersEnv(t *testing.T) {
	t.Setenv(envWorkers, "many")

	_, _, err := Parse(nil, &bytes.Buffer{})
	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Contains(t, exitErr.Message, envWorkers)
}
