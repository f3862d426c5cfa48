package validate

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/quangdnh/minuteflow/internal/roster"
)

func testSummary(date string, participants ...string) string {
	var b strings.Builder
	b.WriteString("## 1. Meeting Overview\n")
	b.WriteString("- **Meeting Title**: Amaze Stand up\n")
	b.WriteString("- **Date**: " + date + "\n")
	b.WriteString("- **Participants**:\n")
	for _, p := range participants {
		b.WriteString("  - **" + p + "**\n")
	}
	b.WriteString(strings.Join([]string{
		"",
		"## 2. Executive Summary",
		"Short recap.",
		"## 3. Key Discussion Points",
		"## 4. Decisions Made",
		"## 5. Action Items",
		"## 6. Open Questions",
		"## 7. Next Steps",
		"",
	}, "\n"))
	return b.String()
}

func testRoster() roster.Roster {
	return roster.Parse("| **Jane Doe** | PM |\n| **John Smith** | Engineer |\n")
}

func TestValidateCleanSummary(t *testing.T) {
	v := New(testRoster())
	report := v.Validate(testSummary("2026-02-23", "Jane Doe", "John"), "2026-02-23", "")
	if !report.Clean() {
		t.Errorf("clean summary produced findings: %v", report.Findings)
	}
}

func TestValidateCheckOrder(t *testing.T) {
	v := New(testRoster())
	summary := testSummary("2026-01-01", "Alice Jones")
	summary = strings.Replace(summary, "## 7. Next Steps\n", "", 1)
	transcript := "Something [inaudible] here.\n"

	report := v.Validate(summary, "2026-02-23", transcript)
	if len(report.Findings) != 4 {
		t.Fatalf("got %d findings, want 4: %v", len(report.Findings), report.Findings)
	}

	// Fixed emission order: date, names, sections, provenance.
	wantPrefixes := []string{
		"**Date mismatch**",
		"**Unknown participant**",
		"**Missing section**",
		"**Inaudible segments**",
	}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(string(report.Findings[i]), prefix) {
			t.Errorf("finding[%d] = %q, want prefix %q", i, report.Findings[i], prefix)
		}
	}
}

func TestValidateIdempotent(t *testing.T) {
	v := New(testRoster())
	summary := testSummary("2026-01-01", "jane doe", "Nobody Known")
	transcript := "[inaudible] twice [inaudible]\n"

	first := v.Validate(summary, "2026-02-23", transcript)
	second := v.Validate(summary, "2026-02-23", transcript)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("reports differ across runs:\n%v\n%v", first, second)
	}
}

func TestValidateFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2026-02-23 13-01-29_Amaze_Stand_up_summary.md")
	if err := os.WriteFile(path, []byte(testSummary("2026-02-23", "Jane Doe")), 0644); err != nil {
		t.Fatal(err)
	}

	v := New(testRoster())
	report, err := v.ValidateFile(path, "")
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	if !report.Clean() {
		t.Errorf("got findings %v, want none", report.Findings)
	}
}

func TestValidateFileUnparseableName(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes_summary.md")
	// Wrong date inside, but the filename carries no date to check against.
	if err := os.WriteFile(path, []byte(testSummary("2026-01-01", "Jane Doe")), 0644); err != nil {
		t.Fatal(err)
	}

	v := New(testRoster())
	report, err := v.ValidateFile(path, "")
	if err != nil {
		t.Fatalf("ValidateFile() error = %v", err)
	}
	for _, f := range report.Findings {
		if strings.HasPrefix(string(f), "**Date mismatch**") {
			t.Errorf("date check ran without an expected date: %v", f)
		}
	}
}

func TestTranscriptPath(t *testing.T) {
	got := TranscriptPath("output/2026-02-23 13-01-29_Standup_summary.md", "transcripts")
	want := filepath.Join("transcripts", "2026-02-23 13-01-29_Standup_transcript.md")
	if got != want {
		t.Errorf("TranscriptPath() = %q, want %q", got, want)
	}
}
