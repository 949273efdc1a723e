package chunker

import "strings"

// Split cuts text into overlapping word windows. Each chunk holds
// chunkSize whitespace-delimited words (the last may be shorter) and
// consecutive chunks share chunkOverlap words. The cursor advance is
// clamped to one word so a chunkOverlap >= chunkSize cannot stall the
// loop. Sizing is by word count, not model tokens.
func Split(text string, chunkSize, chunkOverlap int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	if chunkSize < 1 {
		chunkSize = 1
	}
	step := chunkSize - chunkOverlap
	if step < 1 {
		step = 1
	}

	var chunks []string
	for start := 0; start < len(words); start += step {
		end := start + chunkSize
		if end > len(words) {
			end = len(words)
		}
		chunks = append(chunks, strings.Join(words[start:end], " "))
		if end == len(words) {
			break
		}
	}

	return chunks
}
