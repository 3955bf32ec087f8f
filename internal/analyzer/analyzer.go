// Package analyzer extracts the top-K keywords and a topic phrase from a
// conversation. Keywords are scored over the whole conversation; the topic
// is the most frequent adjacent word pair within the configured scope
// (user messages only, or all messages).
//
// Importance is computed per file: each transcript is its own corpus, so
// batch runs produce per-file rather than corpus-wide weights. A scorer
// that shares a corpus across the batch can be swapped in through the
// Scorer interface without touching this pipeline.
package analyzer

import (
	"github.com/bbalet/stopwords"

	"github.com/nguyentantai21042004/chat-insights/internal/config"
	"github.com/nguyentantai21042004/chat-insights/internal/parser"
	"github.com/nguyentantai21042004/chat-insights/pkg/textutil"
)

func (a *implAnalyzer) Analyze(conv *parser.Conversation) Result {
	tokens := a.preprocess(conv.AllText())

	res := Result{}
	for _, rt := range a.scorer.Score(tokens) {
		if len(res.Keywords) == a.topK {
			break
		}
		res.Keywords = append(res.Keywords, rt.Term)
	}

	topicTokens := tokens
	if a.scope == config.ScopeUser {
		topicTokens = a.preprocess(conv.Text(parser.SpeakerUser))
	}
	res.Topic = topBigram(topicTokens)

	return res
}

// preprocess lowercases the text, strips punctuation and English stopwords,
// then drops any operator-configured extra stopwords. No stemming.
func (a *implAnalyzer) preprocess(text string) []string {
	cleaned := stopwords.CleanString(text, "en", false)
	tokens := textutil.Tokenize(cleaned)

	if len(a.extra) == 0 {
		return tokens
	}

	kept := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if _, drop := a.extra[tok]; drop {
			continue
		}
		kept = append(kept, tok)
	}
	return kept
}

// topBigram returns the most frequent adjacent token pair, ties broken
// alphabetically. Empty when fewer than two tokens exist.
func topBigram(tokens []string) string {
	counts := make(map[string]int)
	for _, bg := range textutil.Bigrams(tokens) {
		counts[bg]++
	}

	best, bestN := "", 0
	for bg, n := range counts {
		if n > bestN || (n == bestN && bg < best) {
			best, bestN = bg, n
		}
	}
	return best
}
