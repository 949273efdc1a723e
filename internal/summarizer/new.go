package summarizer

import (
	"github.com/nguyentantai21042004/srt-summarizer/internal/config"
	"github.com/nguyentantai21042004/srt-summarizer/internal/llm"
	"github.com/nguyentantai21042004/srt-summarizer/internal/logger"
)

type implSummarizer struct {
	cfg       *config.Config
	generator llm.Generator
	logger    logger.Logger
}

// New creates a new Summarizer instance
func New(cfg *config.Config, gen llm.Generator, log logger.Logger) Summarizer {
	return &implSummarizer{
		cfg:       cfg,
		generator: gen,
		logger:    log,
	}
}
