package validate

import (
	"fmt"
	"regexp"
	"strings"
)

// The 7 sections every generated summary must contain, in canonical order.
// The check only requires presence, not position: reordered sections are
// not flagged.
var requiredSections = []string{
	"1. Meeting Overview",
	"2. Executive Summary",
	"3. Key Discussion Points",
	"4. Decisions Made",
	"5. Action Items",
	"6. Open Questions",
	"7. Next Steps",
}

var (
	sectionPatterns   = compileSectionPatterns()
	wrongLevelPattern = regexp.MustCompile(`(?m)^###\s+\d+\.\s+`)
)

func compileSectionPatterns() []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, len(requiredSections))
	for i, section := range requiredSections {
		// Match any heading depth and flexible numbering, e.g.
		// "## 1. Meeting Overview", "# Meeting Overview", "## 1 Meeting Overview".
		name := strings.SplitN(section, ". ", 2)[1]
		patterns[i] = regexp.MustCompile(`(?mi)^#+\s*\d*\.?\s*` + regexp.QuoteMeta(name))
	}
	return patterns
}

// checkSections emits one finding per missing required section, in
// canonical order, plus a single aggregate finding when numbered section
// headings use ### instead of the expected ##.
func checkSections(summaryText string) []Finding {
	var findings []Finding

	for i, pattern := range sectionPatterns {
		if !pattern.MatchString(summaryText) {
			findings = append(findings, Finding(fmt.Sprintf(
				"**Missing section**: `%s` not found", requiredSections[i],
			)))
		}
	}

	if wrong := wrongLevelPattern.FindAllString(summaryText, -1); len(wrong) > 0 {
		findings = append(findings, Finding(fmt.Sprintf(
			"**Heading level**: found %d sections using `###` instead of `##`",
			len(wrong),
		)))
	}

	return findings
}
