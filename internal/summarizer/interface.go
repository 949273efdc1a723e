package summarizer

import "context"

// Summarizer runs the map-reduce summarization pipeline on one file.
// outputPath may be empty; the summary is then written next to the
// input as <stem>_summary.txt. The final summary text is returned as
// well as written.
type Summarizer interface {
	Summarize(ctx context.Context, inputPath, outputPath string) (string, error)
}
