package validate

import (
	"strings"
	"testing"
)

func TestCheckProvenance(t *testing.T) {
	tests := []struct {
		name         string
		transcript   string
		wantFindings int
		wantContains string
	}{
		{
			name:         "no transcript skips the check",
			transcript:   "",
			wantFindings: 0,
		},
		{
			name:         "clean transcript",
			transcript:   "[00:01] **Jane**: Let's get started.\n",
			wantFindings: 0,
		},
		{
			name: "markers counted case-insensitively",
			transcript: strings.Join([]string{
				"[00:01] **Jane**: The budget is [inaudible] this quarter.",
				"[00:05] **John**: [Inaudible] agreed.",
				"[00:09] **Jane**: We ship on [INAUDIBLE].",
			}, "\n"),
			wantFindings: 1,
			wantContains: "transcript had 3 [inaudible] marker(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			findings := checkProvenance(tt.transcript)
			if len(findings) != tt.wantFindings {
				t.Fatalf("checkProvenance() returned %d findings, want %d: %v",
					len(findings), tt.wantFindings, findings)
			}
			if tt.wantContains != "" && !strings.Contains(string(findings[0]), tt.wantContains) {
				t.Errorf("finding %q does not contain %q", findings[0], tt.wantContains)
			}
		})
	}
}
