package config

import "fmt"

type Config struct {
	Gemini      GeminiConfig      `yaml:"gemini"`
	Paths       PathsConfig       `yaml:"paths"`
	Context     ContextConfig     `yaml:"context"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Audio       AudioConfig       `yaml:"audio"`
	Export      ExportConfig      `yaml:"export"`
	Validation  ValidationConfig  `yaml:"validation"`
}

type GeminiConfig struct {
	APIKeys        []string `yaml:"api_keys"`
	Model          string   `yaml:"model"`
	Temperature    float32  `yaml:"temperature"`
	TimeoutSeconds int      `yaml:"timeout_seconds"`
}

type PathsConfig struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Transcripts string `yaml:"transcripts"`
	Processed   string `yaml:"processed"`
	Temp        string `yaml:"temp"`
}

type ContextConfig struct {
	File string `yaml:"file"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type AudioConfig struct {
	Extract      bool   `yaml:"extract"`
	FFmpegBinary string `yaml:"ffmpeg_binary"`
}

type ExportConfig struct {
	Docx bool `yaml:"docx"`
}

type ValidationConfig struct {
	AfterGenerate bool `yaml:"after_generate"`
}

func (c *Config) Validate() error {
	if c.Gemini.Model == "" {
		c.Gemini.Model = "gemini-2.5-flash"
	}
	if c.Gemini.Temperature == 0 {
		c.Gemini.Temperature = 0.2
	}
	if c.Gemini.TimeoutSeconds == 0 {
		c.Gemini.TimeoutSeconds = 600
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "input"
	}
	if c.Paths.Output == "" {
		c.Paths.Output = "output"
	}
	if c.Paths.Transcripts == "" {
		c.Paths.Transcripts = "transcripts"
	}
	if c.Paths.Processed == "" {
		c.Paths.Processed = "processed"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "temp"
	}
	if c.Context.File == "" {
		c.Context.File = "amaze_projects.md"
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Audio.FFmpegBinary == "" {
		c.Audio.FFmpegBinary = "ffmpeg"
	}
	if c.Paths.Input == c.Paths.Processed {
		return fmt.Errorf("paths.input and paths.processed must differ")
	}
	return nil
}
