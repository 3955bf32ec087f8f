package processor

import (
	"io"
	"os"

	"github.com/nguyentantai21042004/chat-insights/internal/analyzer"
	"github.com/nguyentantai21042004/chat-insights/internal/config"
	"github.com/nguyentantai21042004/chat-insights/internal/logger"
	"github.com/nguyentantai21042004/chat-insights/internal/summarizer"
)

type implProcessor struct {
	cfg        *config.Config
	analyzer   analyzer.Analyzer
	summarizer summarizer.Summarizer
	logger     logger.Logger
	out        io.Writer
}

// New creates a new Processor instance. A nil out writes summaries to
// stdout.
func New(cfg *config.Config, an analyzer.Analyzer, sum summarizer.Summarizer, log logger.Logger, out io.Writer) Processor {
	if out == nil {
		out = os.Stdout
	}

	return &implProcessor{
		cfg:        cfg,
		analyzer:   an,
		summarizer: sum,
		logger:     log,
		out:        out,
	}
}
