package gemini

import (
	"fmt"
	"time"

	"github.com/quangdnh/minuteflow/internal/config"
	"github.com/quangdnh/minuteflow/internal/logger"
)

type implService struct {
	apiKeys     []string
	currentKey  int
	model       string
	temperature float32
	timeout     time.Duration
	logger      logger.Logger
}

// New creates a Service from an explicit configuration object. The service
// rotates through the supplied API keys when one is rate limited.
func New(cfg config.GeminiConfig, log logger.Logger) (Service, error) {
	if len(cfg.APIKeys) == 0 {
		return nil, fmt.Errorf("no Gemini API keys configured (set gemini.api_keys or GEMINI_API_KEY)")
	}

	return &implService{
		apiKeys:     cfg.APIKeys,
		model:       cfg.Model,
		temperature: cfg.Temperature,
		timeout:     time.Duration(cfg.TimeoutSeconds) * time.Second,
		logger:      log,
	}, nil
}
