package llm

import (
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/nguyentantai21042004/srt-summarizer/internal/config"
	"github.com/nguyentantai21042004/srt-summarizer/internal/logger"
)

type implGenerator struct {
	client     *openai.Client
	model      string
	timeout    time.Duration
	maxRetries int
	logger     logger.Logger
}

// New creates a Generator backed by an OpenAI-compatible endpoint.
// Local servers such as Ollama accept any API key, so an empty key is
// allowed and replaced with a placeholder.
func New(cfg config.LLMConfig, log logger.Logger) Generator {
	apiKey := cfg.APIKey
	if apiKey == "" {
		apiKey = "none"
	}

	client := openai.NewClient(
		option.WithBaseURL(cfg.BaseURL),
		option.WithAPIKey(apiKey),
	)

	return &implGenerator{
		client:     &client,
		model:      cfg.Model,
		timeout:    time.Duration(cfg.TimeoutSeconds) * time.Second,
		maxRetries: cfg.MaxRetries,
		logger:     log,
	}
}
