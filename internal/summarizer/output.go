package summarizer

import (
	"path/filepath"
	"strings"
)

// OutputPath resolves where the final summary is written: the explicit
// override when given, else <stem>_summary.txt beside the input.
func OutputPath(inputPath, override string) string {
	if override != "" {
		return override
	}

	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(inputPath), stem+"_summary.txt")
}

// partialPath is where joined map results are preserved when the
// combine call fails, beside the intended output.
func partialPath(inputPath, outPath string) string {
	stem := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	return filepath.Join(filepath.Dir(outPath), stem+"_partial.txt")
}
