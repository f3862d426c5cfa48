package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quangdnh/minuteflow/internal/gemini"
	"github.com/quangdnh/minuteflow/internal/logger"
	"github.com/quangdnh/minuteflow/internal/pipeline"
	"github.com/quangdnh/minuteflow/pkg/executor"
)

func newRunCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Process every recording in the input directory",
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

			files, err := pipeline.DiscoverMedia(cfg.Paths.Input)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No media files found in %s/\n", cfg.Paths.Input)
				fmt.Fprintf(cmd.OutOrStdout(), "Supported formats: %s\n", strings.Join(pipeline.SupportedExtensions, ", "))
				return nil
			}

			log.Info(ctx, "Found %d file(s) to process", len(files))

			// One recording's failure never aborts the rest of the batch.
			failed := 0
			for _, file := range files {
				if err := p.Process(ctx, file); err != nil {
					log.Error(ctx, "Failed to process %s: %v", file, err)
					failed++
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d recordings failed", failed, len(files))
			}
			log.Info(ctx, "All done!")
			return nil
		},
	}
}
