package summarizer

type implSummarizer struct{}

// New creates a new Summarizer instance
func New() Summarizer {
	return &implSummarizer{}
}
