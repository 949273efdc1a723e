package chunker

import (
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

var (
	encodingOnce sync.Once
	encoding     *tiktoken.Tiktoken
	encodingErr  error
)

// EstimateTokens returns the cl100k_base token count of text. Word
// windows only approximate the model's token budget, so callers log
// this estimate to make oversized chunks visible; it never changes
// chunk boundaries.
func EstimateTokens(text string) (int, error) {
	encodingOnce.Do(func() {
		encoding, encodingErr = tiktoken.GetEncoding("cl100k_base")
	})
	if encodingErr != nil {
		return 0, encodingErr
	}
	return len(encoding.Encode(text, nil, nil)), nil
}
