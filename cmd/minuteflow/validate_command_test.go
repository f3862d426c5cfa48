package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func cleanSummary(date string) string {
	return strings.Join([]string{
		"## 1. Meeting Overview",
		"- **Date**: " + date,
		"- **Participants**:",
		"  - **Jane Doe**",
		"",
		"## 2. Executive Summary",
		"## 3. Key Discussion Points",
		"## 4. Decisions Made",
		"## 5. Action Items",
		"## 6. Open Questions",
		"## 7. Next Steps",
		"",
	}, "\n")
}

func runValidate(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"validate"}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestValidateCommandCleanFile(t *testing.T) {
	dir := t.TempDir()
	summary := writeFixture(t, dir, "2026-02-23 13-01-29_Standup_summary.md", cleanSummary("2026-02-23"))
	context := writeFixture(t, dir, "team.md", "| **Jane Doe** | PM |\n")

	out, err := runValidate(t, summary, "-c", context, "-t", dir)
	if err != nil {
		t.Fatalf("validate returned error: %v\noutput:\n%s", err, out)
	}
	if !strings.Contains(out, "✓") {
		t.Errorf("output missing clean marker:\n%s", out)
	}
	if !strings.Contains(out, "Validated 1 file(s), found 0 issue(s).") {
		t.Errorf("output missing tally:\n%s", out)
	}
}

func TestValidateCommandFindingsFailTheBatch(t *testing.T) {
	dir := t.TempDir()
	summary := writeFixture(t, dir, "2026-02-23 13-01-29_Standup_summary.md", cleanSummary("2026-01-01"))
	context := writeFixture(t, dir, "team.md", "| **Jane Doe** | PM |\n")

	out, err := runValidate(t, summary, "-c", context, "-t", dir)
	if !errors.Is(err, errValidationFailed) {
		t.Fatalf("err = %v, want errValidationFailed", err)
	}
	if !strings.Contains(out, "Date mismatch") {
		t.Errorf("output missing date finding:\n%s", out)
	}
	if !strings.Contains(out, "found 1 issue(s).") {
		t.Errorf("output missing tally:\n%s", out)
	}
}

func TestValidateCommandNoFiles(t *testing.T) {
	dir := t.TempDir()
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	out, err := runValidate(t)
	if err != nil {
		t.Fatalf("validate returned error: %v", err)
	}
	if !strings.Contains(out, "No summary files found to validate.") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
