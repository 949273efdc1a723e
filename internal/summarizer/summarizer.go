package summarizer

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/nguyentantai21042004/srt-summarizer/internal/chunker"
	"github.com/nguyentantai21042004/srt-summarizer/internal/subtitle"
)

// Summarize runs the full pipeline: read, normalize subtitles, split
// into word windows, summarize each window (map), merge the partial
// summaries (reduce), and write the result.
func (s *implSummarizer) Summarize(ctx context.Context, inputPath, outputPath string) (string, error) {
	startTime := time.Now()
	s.logger.Info(ctx, "Processing file: %s", inputPath)

	raw, err := os.ReadFile(inputPath)
	if err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}

	text := subtitle.Normalize(inputPath, string(raw))

	chunks := chunker.Split(text, s.cfg.Chunking.ChunkSize, s.cfg.Chunking.ChunkOverlap)
	s.logger.Info(ctx, "Split into %d chunks", len(chunks))
	s.logTokenEstimates(ctx, chunks)

	outPath := OutputPath(inputPath, outputPath)

	var final string
	if len(chunks) > 0 {
		mapStart := time.Now()
		partials, err := s.mapChunks(ctx, chunks)
		if err != nil {
			return "", err
		}
		s.logger.Info(ctx, "Map step completed in %s", time.Since(mapStart))

		final, err = s.reduce(ctx, partials, partialPath(inputPath, outPath))
		if err != nil {
			return "", err
		}
	}

	if err := os.WriteFile(outPath, []byte(final), 0644); err != nil {
		return "", fmt.Errorf("write summary: %w", err)
	}

	s.logger.Info(ctx, "Summary saved to %s", outPath)
	s.logger.Info(ctx, "Total processing time: %s", time.Since(startTime))

	return final, nil
}

// mapChunks summarizes every chunk with a bounded worker pool. Results
// are stored by chunk index so document order survives out-of-order
// completion; each worker writes a distinct slot, so no lock is needed.
func (s *implSummarizer) mapChunks(ctx context.Context, chunks []string) ([]string, error) {
	partials := make([]string, len(chunks))

	g, ctx := errgroup.WithContext(ctx)
	limit := s.cfg.Performance.MaxConcurrent
	if limit < 1 {
		limit = 1
	}
	g.SetLimit(limit)

	for i, chunk := range chunks {
		i, chunk := i, chunk
		g.Go(func() error {
			s.logger.Debug(ctx, "Summarizing chunk %d/%d", i+1, len(chunks))
			out, err := s.generator.Generate(ctx, fmt.Sprintf(mapPrompt, chunk))
			if err != nil {
				return fmt.Errorf("summarize chunk %d: %w", i+1, err)
			}
			partials[i] = out
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return partials, nil
}

// reduce merges all partial summaries with one combine call. This runs
// even for a single chunk so its bullets are normalized into final
// form. On failure the joined partials are preserved on disk so the
// map work is not lost.
func (s *implSummarizer) reduce(ctx context.Context, partials []string, keepPath string) (string, error) {
	combined := strings.Join(partials, "\n\n")

	final, err := s.generator.Generate(ctx, fmt.Sprintf(combinePrompt, combined))
	if err != nil {
		if werr := os.WriteFile(keepPath, []byte(combined), 0644); werr != nil {
			s.logger.Warn(ctx, "Failed to preserve partial summaries: %v", werr)
		} else {
			s.logger.Warn(ctx, "Combine failed, partial summaries saved to %s", keepPath)
		}
		return "", fmt.Errorf("combine summaries: %w", err)
	}

	return final, nil
}

func (s *implSummarizer) logTokenEstimates(ctx context.Context, chunks []string) {
	for i, chunk := range chunks {
		n, err := chunker.EstimateTokens(chunk)
		if err != nil {
			s.logger.Debug(ctx, "Token estimate unavailable: %v", err)
			return
		}
		s.logger.Debug(ctx, "Chunk %d: %d words, ~%d tokens", i+1, len(strings.Fields(chunk)), n)
	}
}
