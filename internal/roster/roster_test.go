package roster

import "testing"

const contextDoc = `# Team

| Name | Role |
|------|------|
| **Jane Doe** | PM |
| **John Smith** | Engineer |
| **Jane Roe** | Designer |
`

func TestParse(t *testing.T) {
	r := Parse(contextDoc)
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
	if r.Empty() {
		t.Error("Empty() = true for populated roster")
	}
}

func TestParseEmpty(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty string", ""},
		{"no table rows", "# Team\n\nJust prose about **Jane Doe**.\n"},
		{"table without bold names", "| Jane Doe | PM |\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if r := Parse(tt.text); !r.Empty() {
				t.Errorf("Parse(%q) produced %d entries, want 0", tt.text, r.Len())
			}
		})
	}
}

func TestHasExact(t *testing.T) {
	r := Parse(contextDoc)

	tests := []struct {
		name  string
		query string
		exact bool
	}{
		{"exact full name", "Jane Doe", true},
		{"exact first name alias", "Jane", true},
		{"lowercase full name", "jane doe", false},
		{"lowercase first name", "jane", false},
		{"unknown name", "Alice Jones", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.HasExact(tt.query); got != tt.exact {
				t.Errorf("HasExact(%q) = %v, want %v", tt.query, got, tt.exact)
			}
		})
	}
}

func TestCanonical(t *testing.T) {
	r := Parse(contextDoc)

	tests := []struct {
		name      string
		query     string
		want      string
		wantMatch bool
	}{
		{"case-folded full name", "jane doe", "Jane Doe", true},
		{"case-folded first name", "JOHN", "John", true},
		// Both Jane Doe and Jane Roe alias to "Jane"; document order
		// settles on Jane Doe's alias.
		{"ambiguous first name", "jane", "Jane", true},
		{"unknown", "Alice Jones", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := r.Canonical(tt.query)
			if ok != tt.wantMatch {
				t.Fatalf("Canonical(%q) ok = %v, want %v", tt.query, ok, tt.wantMatch)
			}
			if got != tt.want {
				t.Errorf("Canonical(%q) = %q, want %q", tt.query, got, tt.want)
			}
		})
	}
}

func TestCanonicalDeterminism(t *testing.T) {
	r := Parse(contextDoc)
	first, _ := r.Canonical("jane")
	for i := 0; i < 10; i++ {
		if got, _ := r.Canonical("jane"); got != first {
			t.Fatalf("Canonical changed between calls: %q then %q", first, got)
		}
	}
}
