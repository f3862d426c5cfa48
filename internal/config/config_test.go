package config

import (
	"os"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name:    "zero config gets defaults",
			config:  Config{},
			wantErr: false,
		},
		{
			name: "input and processed collide",
			config: Config{
				Paths: PathsConfig{
					Input:     "data",
					Processed: "data",
				},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDefaults(t *testing.T) {
	var cfg Config
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}

	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Errorf("Model = %v, want gemini-2.5-flash", cfg.Gemini.Model)
	}
	if cfg.Gemini.Temperature != 0.2 {
		t.Errorf("Temperature = %v, want 0.2", cfg.Gemini.Temperature)
	}
	if cfg.Paths.Output != "output" {
		t.Errorf("Output = %v, want output", cfg.Paths.Output)
	}
	if cfg.Context.File != "amaze_projects.md" {
		t.Errorf("Context.File = %v, want amaze_projects.md", cfg.Context.File)
	}
	if cfg.Performance.MaxConcurrent != 2 {
		t.Errorf("MaxConcurrent = %v, want 2", cfg.Performance.MaxConcurrent)
	}
}

func TestLoad(t *testing.T) {
	tmpfile, err := os.CreateTemp("", "config-*.yaml")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(tmpfile.Name())

	content := `
gemini:
  api_keys:
    - "test-key"
  model: "gemini-2.5-flash"
  temperature: 0.2

paths:
  input: "data/input"
  output: "data/output"
  transcripts: "data/transcripts"

context:
  file: "team.md"

logging:
  level: "debug"
`

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(tmpfile.Name())
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Paths.Input != "data/input" {
		t.Errorf("Input = %v, want %v", cfg.Paths.Input, "data/input")
	}
	if cfg.Context.File != "team.md" {
		t.Errorf("Context.File = %v, want %v", cfg.Context.File, "team.md")
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %v, want debug", cfg.Logging.Level)
	}
	// Unset sections still get defaults.
	if cfg.Paths.Processed != "processed" {
		t.Errorf("Processed = %v, want processed", cfg.Paths.Processed)
	}
}

func TestLoadInvalidFile(t *testing.T) {
	_, err := Load("nonexistent.yaml")
	if err == nil {
		t.Error("Load() should return error for nonexistent file")
	}
}
