package summarizer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
)

const (
	fontName = "Times New Roman"
	fontSize = 13
)

// ExportDocx writes the rendered summary into destDir as <name>.docx,
// creating the directory if needed.
func (s *implSummarizer) ExportDocx(filename, summary, destDir string) error {
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return fmt.Errorf("create reports dir: %w", err)
	}

	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	outputPath := filepath.Join(destDir, name+".docx")

	return summaryToDocx(name, summary, outputPath)
}

// summaryToDocx renders the summary as a styled document: bold title, one
// paragraph per summary line.
func summaryToDocx(title, summary, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	doc.AddParagraph("").AddText(title).Font(fontName).Size(16).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, line := range strings.Split(summary, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		doc.AddParagraph("").AddText(trimmed).Font(fontName).Size(fontSize).Color("000000")
	}

	return doc.SaveTo(outputPath)
}
