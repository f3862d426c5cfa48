package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/quangdnh/minuteflow/internal/config"
	"github.com/quangdnh/minuteflow/internal/logger"
)

// errValidationFailed signals a non-zero exit without an extra error line;
// the validation report is the output.
var errValidationFailed = errors.New("validation failed")

// loadConfig reads the config file, falling back to built-in defaults when
// the default path does not exist. An explicitly passed --config that is
// missing is still an error.
func loadConfig(cmd *cobra.Command, path string) (*config.Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return config.Load(path)
}

func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Paths.Input,
		cfg.Paths.Output,
		cfg.Paths.Transcripts,
		cfg.Paths.Processed,
		cfg.Paths.Temp,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}

// loadContextText reads the roster/context document. Absence is normal:
// generation runs without context and name checking is disabled.
func loadContextText(ctx context.Context, path string, log logger.Logger) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Info(ctx, "No context file at %s (optional)", path)
		return ""
	}
	log.Info(ctx, "Loaded context from: %s", path)
	return string(data)
}
