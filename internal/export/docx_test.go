package export

import "testing"

func TestFlattenTableRow(t *testing.T) {
	tests := []struct {
		row  string
		want string
	}{
		{"| Action Item | Owner | Deadline |", "Action Item - Owner - Deadline"},
		{"| one |", "one"},
		{"| a |  | b |", "a - b"},
	}

	for _, tt := range tests {
		if got := flattenTableRow(tt.row); got != tt.want {
			t.Errorf("flattenTableRow(%q) = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestStripInlineMarkup(t *testing.T) {
	got := stripInlineMarkup("**bold** and `code` and __underline__")
	want := "bold and code and underline"
	if got != want {
		t.Errorf("stripInlineMarkup() = %q, want %q", got, want)
	}
}
