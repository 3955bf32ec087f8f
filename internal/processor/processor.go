package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	apperrors "github.com/nguyentantai21042004/chat-insights/internal/errors"
	"github.com/nguyentantai21042004/chat-insights/internal/parser"
)

// Process orchestrates the pipeline for one transcript: read, parse,
// analyze, render.
func (p *implProcessor) Process(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return &apperrors.ReadError{Path: path, Err: err}
	}

	conv := parser.Parse(string(raw))
	stats := conv.Stats()
	if stats.Total == 0 {
		return &apperrors.ParseError{Path: path, Reason: apperrors.ErrNoMessages}
	}
	if stats.User == 0 {
		return &apperrors.ParseError{Path: path, Reason: apperrors.ErrNoUserMessages}
	}

	res := p.analyzer.Analyze(conv)
	summary := p.summarizer.Render(filepath.Base(path), stats, res)

	fmt.Fprintln(p.out, summary)
	fmt.Fprintln(p.out)

	if p.cfg.Paths.Reports != "" {
		if err := p.summarizer.ExportDocx(filepath.Base(path), summary, p.cfg.Paths.Reports); err != nil {
			p.logger.Warn(ctx, "Failed to export docx report for %s: %v", path, err)
		}
	}

	return nil
}

// ProcessAll summarizes every transcript in dir, skipping bad files.
func (p *implProcessor) ProcessAll(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("open folder %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	files, err := p.discoverTranscripts(dir)
	if err != nil {
		return fmt.Errorf("list folder %s: %w", dir, err)
	}

	fmt.Fprintf(p.out, "Processing chat logs in folder: %s\n\n", dir)

	if len(files) == 0 {
		fmt.Fprintf(p.out, "No .txt chat log files found in directory '%s'.\n", dir)
		return nil
	}

	summarized := 0
	skipped := 0

	for _, path := range files {
		if err := p.Process(ctx, path); err != nil {
			p.logger.Warn(ctx, "Skipping %s: %v", path, err)
			skipped++
			continue
		}
		summarized++
	}

	p.logger.Info(ctx, "Batch complete: %d summarized, %d skipped", summarized, skipped)
	return nil
}

// discoverTranscripts lists the .txt files of dir, sorted by name.
func (p *implProcessor) discoverTranscripts(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(entry.Name()), ".txt") {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}

	sort.Strings(files)
	return files, nil
}
