package meta

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Metadata holds the calendar date and meeting title derived from a
// recording or summary filename.
type Metadata struct {
	Date  string
	Title string
}

// Recording filenames follow "YYYY-MM-DD HH-MM-SS<sep><title>", e.g.
//
//	"2026-02-23 13-01-29-Amaze-Stand-up.mov"
//	"2026-02-23 13-01-29_Amaze_Stand_up.mov"
//
// Generated artifacts append "_summary" / "_transcript" to the stem.
var (
	filenamePattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\s+\d{2}-\d{2}-\d{2}[_-]?(.*)$`)
	separatorRuns   = regexp.MustCompile(`[-_]+`)
)

// FromFilename extracts date and title from a filename. The extension and a
// trailing "_summary" suffix are stripped before matching. Returns ok=false
// when the filename does not follow the naming convention; callers treat
// that as a normal outcome, not an error.
func FromFilename(filename string) (Metadata, bool) {
	base := filepath.Base(filename)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.TrimSuffix(base, "_summary")

	m := filenamePattern.FindStringSubmatch(base)
	if m == nil {
		return Metadata{}, false
	}

	title := strings.TrimSpace(separatorRuns.ReplaceAllString(m[2], " "))
	return Metadata{Date: m[1], Title: title}, true
}
