package main

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/quangdnh/minuteflow/internal/validate"
)

// renderBatch prints the per-file findings followed by a batch summary
// table and tally line.
func renderBatch(w io.Writer, batch validate.BatchResult) {
	for _, fr := range batch.Files {
		name := filepath.Base(fr.File)
		switch {
		case fr.Err != nil:
			fmt.Fprintf(w, "✗  %s  (%v)\n", name, fr.Err)
		case fr.Report.Clean():
			fmt.Fprintf(w, "✓  %s\n", name)
		default:
			fmt.Fprintf(w, "⚠  %s  (%d issue(s))\n", name, len(fr.Report.Findings))
			for _, f := range fr.Report.Findings {
				fmt.Fprintf(w, "   • %s\n", f)
			}
		}
	}

	fmt.Fprintln(w)
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"File", "Issues", "Status"})
	for _, fr := range batch.Files {
		issues := len(fr.Report.Findings)
		status := "ok"
		switch {
		case fr.Err != nil:
			status = "unreadable"
		case issues > 0:
			status = "issues"
		}
		t.AppendRow(table.Row{filepath.Base(fr.File), issues, status})
	}
	t.AppendFooter(table.Row{"Total", batch.TotalFindings, ""})
	t.Render()

	fmt.Fprintf(w, "\nValidated %d file(s), found %d issue(s).\n", len(batch.Files), batch.TotalFindings)
}
