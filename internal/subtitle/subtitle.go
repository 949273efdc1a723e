package subtitle

import (
	"path/filepath"
	"regexp"
	"strings"
)

var (
	reSrtIndex = regexp.MustCompile(`^\d+$`)
	reSrtTime  = regexp.MustCompile(`\d{2}:\d{2}:\d{2},\d{3} --> \d{2}:\d{2}:\d{2},\d{3}`)
)

// IsSubtitlePath reports whether path has the .srt extension (case-insensitive)
func IsSubtitlePath(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".srt"
}

// Clean strips SRT sequence numbers and timestamp lines and joins the
// remaining dialogue lines with single spaces. Lines that match neither
// discard rule pass through unchanged, so malformed files degrade
// gracefully.
func Clean(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || reSrtIndex.MatchString(trimmed) || reSrtTime.MatchString(trimmed) {
			continue
		}
		kept = append(kept, trimmed)
	}

	return strings.Join(kept, " ")
}

// Normalize applies Clean when path names a subtitle file and returns
// raw unchanged otherwise
func Normalize(path, raw string) string {
	if IsSubtitlePath(path) {
		return Clean(raw)
	}
	return raw
}
