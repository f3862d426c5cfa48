// Package validate cross-checks generated meeting summaries against
// independent sources of truth: the source filename, the team roster, and
// the transcript the summary was generated from. Checks only detect and
// report; they never correct the documents they inspect.
package validate

// Finding is one reported discrepancy or advisory note, formatted as a
// self-contained Markdown fragment. Findings are data, not errors: a check
// that finds nothing returns an empty slice.
type Finding string

// Report is the ordered sequence of findings for one summary document. An
// empty report means no issues were detected, which is weaker than
// "verified correct": checks without ground truth (no roster, no
// transcript, unparseable filename) skip silently.
type Report struct {
	Findings []Finding
}

// Clean reports whether the report carries no findings.
func (r Report) Clean() bool {
	return len(r.Findings) == 0
}

// FileResult pairs one summary file with its report. Err is set when the
// file could not be read at all; such a result carries no findings and is
// counted separately from content issues.
type FileResult struct {
	File   string
	Report Report
	Err    error
}

// BatchResult aggregates per-file results in processing order.
type BatchResult struct {
	Files         []FileResult
	TotalFindings int
	ReadErrors    int
}

// Failed reports whether the batch should exit non-zero: any finding in
// any file fails the whole batch, advisory or not, as does any unreadable
// file. A batch where every check was skipped for lack of ground truth is
// indistinguishable from a fully verified one; that is an inherent
// limitation of this model.
func (b BatchResult) Failed() bool {
	return b.TotalFindings > 0 || b.ReadErrors > 0
}
