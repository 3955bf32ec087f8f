package processor

import "context"

// Processor runs the per-file analysis pipeline and the fail-soft batch
// over a folder of transcripts.
type Processor interface {
	// Process summarizes a single transcript file and writes the summary
	// block to the configured output. Skippable failures are reported as
	// ParseError or ReadError.
	Process(ctx context.Context, path string) error

	// ProcessAll summarizes every .txt file in dir in sorted order. Files
	// that fail are skipped with a diagnostic; the returned error is
	// non-nil only when the folder itself is unusable.
	ProcessAll(ctx context.Context, dir string) error
}
