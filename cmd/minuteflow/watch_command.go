package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/quangdnh/minuteflow/internal/gemini"
	"github.com/quangdnh/minuteflow/internal/logger"
	"github.com/quangdnh/minuteflow/internal/pipeline"
	"github.com/quangdnh/minuteflow/internal/watcher"
	"github.com/quangdnh/minuteflow/pkg/executor"
)

func newWatchCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and process recordings as they arrive",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			log := logger.New(cfg.Logging.Level)

			if err := ensureDirectories(cfg); err != nil {
				return err
			}

			contextText := loadContextText(ctx, cfg.Context.File, log)

			gen, err := gemini.New(cfg.Gemini, log)
			if err != nil {
				return err
			}
			p := pipeline.New(cfg, gen, executor.New(), log, contextText)

			w, err := watcher.New(cfg.Paths.Input, p.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return err
			}
			defer w.Stop()

			log.Info(ctx, "minuteflow is ready, press Ctrl+C to stop")

			if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
}
