package summarizer

import (
	"fmt"
	"strings"

	"github.com/nguyentantai21042004/chat-insights/internal/analyzer"
	"github.com/nguyentantai21042004/chat-insights/internal/parser"
)

// Render produces the fixed summary template. The topic line is omitted
// when no bigram was found; an empty keyword list falls back to a notice.
func (s *implSummarizer) Render(filename string, stats parser.Stats, res analyzer.Result) string {
	lines := []string{
		fmt.Sprintf("Summary for '%s':", filename),
		"Summary:",
		fmt.Sprintf("- The conversation had %d exchanges.(user:%d, AI:%d)", stats.Total, stats.User, stats.AI),
	}

	if res.Topic != "" {
		lines = append(lines, fmt.Sprintf("- The user asked mainly about %s.", res.Topic))
	}

	keywords := "No significant keywords found"
	if len(res.Keywords) > 0 {
		keywords = strings.Join(res.Keywords, ", ")
	}
	lines = append(lines, fmt.Sprintf("- Most common keywords: %s.", keywords))

	return strings.Join(lines, "\n")
}
