package analyzer

import "github.com/nguyentantai21042004/chat-insights/internal/parser"

// Result holds the extracted keywords and topic phrase for one conversation.
type Result struct {
	Keywords []string
	Topic    string
}

// Analyzer extracts keywords and a topic phrase from a parsed conversation.
// It never mutates the conversation.
type Analyzer interface {
	Analyze(conv *parser.Conversation) Result
}

// RankedTerm is a distinct term with its importance score.
type RankedTerm struct {
	Term  string
	Score float64
}

// Scorer ranks the distinct terms of a tokenized document by descending
// importance, ties broken alphabetically. Implementations decide what the
// reference corpus is; the pipeline never needs to know.
type Scorer interface {
	Score(tokens []string) []RankedTerm
}
