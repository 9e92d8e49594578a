package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/specialistvlad/aoc2023/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Environment variables that provide flag defaults. A .env file in the
// working directory is loaded into the environment by main.
const (
	envPuzzlesPath = "AOC_PUZZLES_PATH"
	envWorkers     = "AOC_WORKERS"
	envLogLevel    = "AOC_LOG_LEVEL"
	envLogFormat   = "AOC_LOG_FORMAT"
)

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("aoc2023", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
aoc2023 - Advent of Code 2023 puzzle solutions.

Usage:
  aoc2023 [options] [DAY...]

Arguments:
  DAY
    Day numbers to solve (e.g. 1 5 16). Defaults to every day with a manifest.

Options:
`)
		flagSet.PrintDefaults()
	}

	defaultWorkers := 4
	if v := os.Getenv(envWorkers); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid %s %q: must be a number", envWorkers, v)}
		}
		defaultWorkers = n
	}

	dayFlag := flagSet.String("day", "", "Comma separated day numbers to solve, e.g. '1,5,16'.")
	puzzlesFlag := flagSet.String("puzzles", envOr(envPuzzlesPath, "days"), "Path to a puzzle manifest or a directory of manifests.")
	workersFlag := flagSet.Int("workers", defaultWorkers, "Number of puzzles solved concurrently.")
	samplesOnlyFlag := flagSet.Bool("samples-only", false, "Skip runs marked optional, i.e. personal puzzle inputs.")
	logFormatFlag := flagSet.String("log-format", envOr(envLogFormat, "text"), "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", envOr(envLogLevel, "warn"), "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	days := flagSet.Args()
	if *dayFlag != "" {
		days = append(strings.Split(*dayFlag, ","), days...)
	}
	puzzles, err := puzzleNames(days)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PuzzlesPath: *puzzlesFlag,
		Puzzles:     puzzles,
		SamplesOnly: *samplesOnlyFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
		WorkerCount: *workersFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// puzzleNames turns day arguments such as "1", "05" or "day16" into
// manifest puzzle names ("day01", "day05", "day16"), dropping duplicates.
func puzzleNames(days []string) ([]string, error) {
	var names []string
	seen := make(map[string]struct{})
	for _, d := range days {
		d = strings.TrimPrefix(strings.TrimSpace(strings.ToLower(d)), "day")
		if d == "" {
			continue
		}
		n, err := strconv.Atoi(d)
		if err != nil || n < 1 || n > 25 {
			return nil, fmt.Errorf("invalid day %q: must be a number from 1 to 25", d)
		}
		name := fmt.Sprintf("day%02d", n)
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	return names, nil
}

func envOr(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
