package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/aoc2023/internal/ctxlog"
	"github.com/specialistvlad/aoc2023/internal/executor"
)

// Run solves the configured puzzles and writes their answers.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	entries, err := a.registry.Select(a.cfg.Puzzles...)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		a.logger.Warn("No puzzles selected, nothing to run.")
		return nil
	}

	a.logger.Info("🚀 Solving puzzles.", "count", len(entries), "workers", a.cfg.WorkerCount)
	exec := executor.New(a.converter, executor.Options{
		Workers:     a.cfg.WorkerCount,
		SamplesOnly: a.cfg.SamplesOnly,
	})
	if err := exec.Run(ctx, entries, a.outW); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.logger.Info("🏁 Execution finished.")
	return nil
}
