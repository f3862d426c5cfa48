package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/quangdnh/minuteflow/internal/roster"
	"github.com/quangdnh/minuteflow/internal/validate"
)

func newValidateCommand(configPath *string) *cobra.Command {
	var contextPath string
	var transcriptsDir string

	cmd := &cobra.Command{
		Use:   "validate [files...]",
		Short: "Cross-check generated summaries against filename, roster and transcript",
		Long: `Validate runs consistency checks over generated meeting summaries:
the date asserted in the summary against the date in the filename, the
participant names against the team roster, the required section structure,
and inaudible markers in the transcript that the summary may have silently
resolved. Exits non-zero when any finding is reported.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, *configPath)
			if err != nil {
				return err
			}
			if contextPath == "" {
				contextPath = cfg.Context.File
			}
			if transcriptsDir == "" {
				transcriptsDir = cfg.Paths.Transcripts
			}

			files := args
			if len(files) == 0 {
				files, err = filepath.Glob(filepath.Join(cfg.Paths.Output, "*.md"))
				if err != nil {
					return fmt.Errorf("list summaries: %w", err)
				}
			}
			if len(files) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No summary files found to validate.")
				return nil
			}

			// Roster is built once and shared across the whole batch.
			contextText := ""
			if data, err := os.ReadFile(contextPath); err == nil {
				contextText = string(data)
			}

			v := validate.New(roster.Parse(contextText))
			batch := v.ValidateBatch(files, transcriptsDir)

			renderBatch(cmd.OutOrStdout(), batch)

			if batch.Failed() {
				return errValidationFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&contextPath, "context", "c", "", "Path to the roster/context document (default from config)")
	cmd.Flags().StringVarP(&transcriptsDir, "transcripts", "t", "", "Path to the transcripts directory (default from config)")

	return cmd
}
