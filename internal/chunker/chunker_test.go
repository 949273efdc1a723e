package chunker

import (
	"fmt"
	"strings"
	"testing"
)

// numberedWords builds "w0 w1 ... wN-1" so chunk boundaries are easy to check.
func numberedWords(n int) string {
	words := make([]string, n)
	for i := range words {
		words[i] = fmt.Sprintf("w%d", i)
	}
	return strings.Join(words, " ")
}

func TestSplit(t *testing.T) {
	tests := []struct {
		name       string
		text       string
		size       int
		overlap    int
		wantChunks int
	}{
		{"empty text", "", 100, 10, 0},
		{"whitespace only", "  \n\t  ", 100, 10, 0},
		{"shorter than one window", numberedWords(5), 100, 10, 1},
		{"exactly one window no overlap", numberedWords(10), 10, 0, 1},
		{"two windows with overlap", numberedWords(2500), 2000, 200, 2},
		{"no overlap exact multiple", numberedWords(20), 10, 0, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.text, tt.size, tt.overlap)
			if len(got) != tt.wantChunks {
				t.Errorf("Split() returned %d chunks, want %d", len(got), tt.wantChunks)
			}
		})
	}
}

func TestSplitSingleChunkIsWholeText(t *testing.T) {
	text := numberedWords(10)
	got := Split(text, 10, 0)
	if len(got) != 1 || got[0] != text {
		t.Errorf("Split() = %v, want one chunk equal to input", got)
	}
}

func TestSplitReferenceWindows(t *testing.T) {
	got := Split(numberedWords(2500), 2000, 200)
	if len(got) != 2 {
		t.Fatalf("Split() returned %d chunks, want 2", len(got))
	}

	first := strings.Fields(got[0])
	second := strings.Fields(got[1])

	if len(first) != 2000 || first[0] != "w0" || first[1999] != "w1999" {
		t.Errorf("first chunk covers %s..%s (%d words), want w0..w1999", first[0], first[len(first)-1], len(first))
	}
	if len(second) != 700 || second[0] != "w1800" || second[699] != "w2499" {
		t.Errorf("second chunk covers %s..%s (%d words), want w1800..w2499", second[0], second[len(second)-1], len(second))
	}
}

func TestSplitCoversEveryWord(t *testing.T) {
	tests := []struct {
		name    string
		words   int
		size    int
		overlap int
	}{
		{"no overlap", 97, 10, 0},
		{"small overlap", 97, 10, 3},
		{"overlap equals size", 30, 5, 5},
		{"overlap beyond size", 30, 5, 9},
		{"single word", 1, 5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text := numberedWords(tt.words)
			chunks := Split(text, tt.size, tt.overlap)

			seen := make(map[string]bool)
			for _, c := range chunks {
				for _, w := range strings.Fields(c) {
					seen[w] = true
				}
			}
			for i := 0; i < tt.words; i++ {
				if !seen[fmt.Sprintf("w%d", i)] {
					t.Fatalf("word w%d missing from all chunks", i)
				}
			}
		})
	}
}

func TestSplitTerminatesWithLargeOverlap(t *testing.T) {
	// overlap >= size forces the one-word advance clamp; with 50 words
	// that means exactly 46 windows of 5 words and no infinite loop.
	chunks := Split(numberedWords(50), 5, 50)
	if len(chunks) != 46 {
		t.Errorf("Split() returned %d chunks, want 46", len(chunks))
	}
}

func TestSplitOverlapSharedWords(t *testing.T) {
	chunks := Split(numberedWords(30), 10, 4)
	if len(chunks) < 2 {
		t.Fatalf("expected at least two chunks, got %d", len(chunks))
	}

	first := strings.Fields(chunks[0])
	second := strings.Fields(chunks[1])
	if second[0] != first[6] {
		t.Errorf("second chunk starts at %s, want %s (overlap of 4)", second[0], first[6])
	}
}

func TestEstimateTokens(t *testing.T) {
	n, err := EstimateTokens("Hello world, this is a short sentence.")
	if err != nil {
		t.Skipf("encoding unavailable: %v", err)
	}
	if n <= 0 {
		t.Errorf("EstimateTokens() = %d, want > 0", n)
	}
}
