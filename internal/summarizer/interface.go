package summarizer

import (
	"github.com/nguyentantai21042004/chat-insights/internal/analyzer"
	"github.com/nguyentantai21042004/chat-insights/internal/parser"
)

// Summarizer renders per-file analysis results into the human-readable
// summary block, and optionally exports the same block as a docx report.
type Summarizer interface {
	Render(filename string, stats parser.Stats, res analyzer.Result) string
	ExportDocx(filename, summary, destDir string) error
}
