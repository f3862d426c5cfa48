package validate

import (
	"fmt"
	"regexp"

	"github.com/quangdnh/minuteflow/internal/roster"
)

var (
	participantsPattern = regexp.MustCompile(`(?i)\*\*Participants\*\*:?\s*\n((?:\s+[-*].*\n?)+)`)
	boldNamePattern     = regexp.MustCompile(`\*\*(.+?)\*\*`)
)

// checkNames compares participant names asserted by the summary against
// the roster. An empty roster disables the check (no ground truth). Names
// absent from the roster are flagged as unknown, which may be a legitimate
// new attendee; names present case-insensitively but spelled differently
// get a spelling finding with the canonical spelling. The roster is
// trusted for spelling, never the summary.
func checkNames(summaryText string, r roster.Roster) []Finding {
	if r.Empty() {
		return nil
	}

	block := participantsPattern.FindStringSubmatch(summaryText)
	if block == nil {
		return nil
	}

	var findings []Finding
	for _, m := range boldNamePattern.FindAllStringSubmatch(block[1], -1) {
		name := m[1]
		canonical, known := r.Canonical(name)
		if !known {
			findings = append(findings, Finding(fmt.Sprintf(
				"**Unknown participant**: `%s` not found in context file (may be a new attendee or a misspelling)",
				name,
			)))
			continue
		}
		if !r.HasExact(name) {
			findings = append(findings, Finding(fmt.Sprintf(
				"**Name spelling**: `%s` should be `%s` (per context file)",
				name, canonical,
			)))
		}
	}

	return findings
}
