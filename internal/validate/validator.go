package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/quangdnh/minuteflow/internal/meta"
	"github.com/quangdnh/minuteflow/internal/roster"
)

// Validator runs the consistency checks over generated summaries. The
// roster is built once and shared read-only across every file in a batch.
type Validator struct {
	roster roster.Roster
}

// New creates a Validator. An empty roster is valid and simply disables
// the name check.
func New(r roster.Roster) *Validator {
	return &Validator{roster: r}
}

// Validate runs all checks over one summary in fixed order: date, names,
// sections, provenance. The order only affects report readability.
// expectedDate and transcriptText may be empty; the corresponding checks
// skip. Validation is pure: identical inputs always yield an identical
// report.
func (v *Validator) Validate(summaryText, expectedDate, transcriptText string) Report {
	var r Report
	r.Findings = append(r.Findings, checkDate(summaryText, expectedDate)...)
	r.Findings = append(r.Findings, checkNames(summaryText, v.roster)...)
	r.Findings = append(r.Findings, checkSections(summaryText)...)
	r.Findings = append(r.Findings, checkProvenance(transcriptText)...)
	return r
}

// ValidateFile reads one summary file, derives the expected date from its
// filename, and runs the checks. The error is a read failure only; content
// issues are findings, never errors.
func (v *Validator) ValidateFile(summaryPath, transcriptText string) (Report, error) {
	data, err := os.ReadFile(summaryPath)
	if err != nil {
		return Report{}, fmt.Errorf("read summary: %w", err)
	}

	expectedDate := ""
	if md, ok := meta.FromFilename(summaryPath); ok {
		expectedDate = md.Date
	}

	return v.Validate(string(data), expectedDate, transcriptText), nil
}

// TranscriptPath resolves the transcript that belongs to a summary file by
// naming convention: "<stem>_summary.md" pairs with
// "<dir>/<stem>_transcript.md". Absence of the transcript is normal.
func TranscriptPath(summaryPath, transcriptsDir string) string {
	base := filepath.Base(summaryPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	stem = strings.TrimSuffix(stem, "_summary")
	return filepath.Join(transcriptsDir, stem+"_transcript.md")
}
