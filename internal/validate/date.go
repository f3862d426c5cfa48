package validate

import (
	"fmt"
	"regexp"
	"strings"
)

var dateFieldPattern = regexp.MustCompile(`(?i)\*\*Date\*\*:\s*(.+)`)

// checkDate verifies the summary uses the date derived from the filename.
// Comparison is a verbatim substring test, not calendar-aware: a summary
// that spells the same day differently is flagged. When expectedDate is
// empty (filename did not match the naming convention) the check is
// skipped.
func checkDate(summaryText, expectedDate string) []Finding {
	if expectedDate == "" || strings.Contains(summaryText, expectedDate) {
		return nil
	}

	// Report what date the summary actually asserts, if any.
	actual := "not found"
	if m := dateFieldPattern.FindStringSubmatch(summaryText); m != nil {
		actual = strings.TrimSpace(m[1])
	}

	return []Finding{Finding(fmt.Sprintf(
		"**Date mismatch**: expected `%s` from filename, but summary says `%s`",
		expectedDate, actual,
	))}
}
