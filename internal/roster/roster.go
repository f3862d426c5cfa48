// Package roster extracts the set of known participant names from a
// free-form context document and answers spelling questions about them.
package roster

import (
	"regexp"
	"strings"
)

// Entry is one participant from the context document: the full name as
// written plus its first whitespace-delimited token as an alias.
type Entry struct {
	FullName  string
	FirstName string
}

// Roster is the ground truth for participant spelling. Entries keep
// document order; the roster is read-only once built and shared across
// every summary in a batch.
type Roster struct {
	entries []Entry
}

// Names appear in table cells as "| **Jane Doe** | PM |".
var tableNamePattern = regexp.MustCompile(`\|\s*\*\*(.+?)\*\*`)

// Parse builds a Roster from context-document text. Empty or absent text
// yields an empty roster, which disables name checking entirely.
func Parse(contextText string) Roster {
	var r Roster
	for _, m := range tableNamePattern.FindAllStringSubmatch(contextText, -1) {
		name := strings.TrimSpace(m[1])
		if name == "" {
			continue
		}
		r.entries = append(r.entries, Entry{
			FullName:  name,
			FirstName: strings.Fields(name)[0],
		})
	}
	return r
}

// Empty reports whether the roster has no entries.
func (r Roster) Empty() bool {
	return len(r.entries) == 0
}

// Len returns the number of entries.
func (r Roster) Len() int {
	return len(r.entries)
}

// HasExact reports whether name matches any full name or first-name alias
// with exact, case-sensitive spelling.
func (r Roster) HasExact(name string) bool {
	first := firstToken(name)
	for _, e := range r.entries {
		if e.FullName == name || e.FullName == first || e.FirstName == name || e.FirstName == first {
			return true
		}
	}
	return false
}

// Canonical returns the canonical spelling for a name that matches the
// roster case-insensitively. Full-name matches win over first-name alias
// matches; within each class the first entry in document order wins. This
// tie-break is deliberate: when two people share a first name the document
// order of the context file decides, and callers must not read anything
// more into the choice.
func (r Roster) Canonical(name string) (string, bool) {
	first := firstToken(name)
	for _, e := range r.entries {
		if strings.EqualFold(e.FullName, name) || strings.EqualFold(e.FullName, first) {
			return e.FullName, true
		}
	}
	for _, e := range r.entries {
		if strings.EqualFold(e.FirstName, name) || strings.EqualFold(e.FirstName, first) {
			return e.FirstName, true
		}
	}
	return "", false
}

func firstToken(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}
