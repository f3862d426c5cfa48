package pipeline

import (
	"github.com/quangdnh/minuteflow/internal/config"
	"github.com/quangdnh/minuteflow/internal/gemini"
	"github.com/quangdnh/minuteflow/internal/logger"
	"github.com/quangdnh/minuteflow/internal/roster"
	"github.com/quangdnh/minuteflow/internal/validate"
	"github.com/quangdnh/minuteflow/pkg/executor"
)

type implPipeline struct {
	cfg         *config.Config
	gen         gemini.Service
	executor    executor.Executor
	logger      logger.Logger
	contextText string
	validator   *validate.Validator
}

// New creates a Pipeline. contextText is the roster/context document text,
// empty when none exists; it feeds both the generation prompts and the
// post-generation validation.
func New(cfg *config.Config, gen gemini.Service, exec executor.Executor, log logger.Logger, contextText string) Pipeline {
	return &implPipeline{
		cfg:         cfg,
		gen:         gen,
		executor:    exec,
		logger:      log,
		contextText: contextText,
		validator:   validate.New(roster.Parse(contextText)),
	}
}
