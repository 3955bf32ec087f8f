package analyzer

import (
	"strings"

	"github.com/nguyentantai21042004/chat-insights/internal/config"
)

type implAnalyzer struct {
	topK   int
	scope  string
	extra  map[string]struct{}
	scorer Scorer
}

// New creates a new Analyzer instance. A nil scorer selects the default
// per-file TF-IDF scorer.
func New(cfg *config.Config, scorer Scorer) Analyzer {
	if scorer == nil {
		scorer = NewTFIDF()
	}

	extra := make(map[string]struct{}, len(cfg.Analysis.Stopwords))
	for _, w := range cfg.Analysis.Stopwords {
		extra[strings.ToLower(w)] = struct{}{}
	}

	return &implAnalyzer{
		topK:   cfg.Analysis.TopK,
		scope:  cfg.Analysis.TopicScope,
		extra:  extra,
		scorer: scorer,
	}
}
