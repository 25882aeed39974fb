package output

import (
	"fmt"
	"io"
	"time"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/calculator"
	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// WriteTable writes a human summary of the result: a header line, the
// unpublished commits with their age relative to now, and any warnings.
func WriteTable(w io.Writer, result calculator.DeltaResult, now time.Time) error {
	branch, remote := "", ""
	if result.Context != nil {
		branch = result.Context.BranchName()
		remote = result.Context.Remote
	}

	headingColor.Fprintf(w, "%s -> %s\n", branch, remote)
	if result.PushPoint.IsPresent() {
		fmt.Fprintf(w, "Last push: %s (%s, confidence: %s)\n",
			result.PushPoint.Commit.ShortSha(), result.PushPoint.Strategy, result.PushPoint.Confidence)
	} else {
		fmt.Fprintln(w, "Last push: none (first publish)")
	}
	if rng := result.Range.String(); rng != "" {
		fmt.Fprintf(w, "Range: %s\n", rng)
	}
	if result.IsForcedHistory {
		warningColor.Fprintln(w, "History was rewritten since the last push")
	}

	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Format.Footer = text.FormatDefault
	tbl.AppendHeader(table.Row{"#", "Commit", "Age", "Subject"})
	for i, c := range result.Commits {
		tbl.AppendRow(table.Row{i + 1, c.ShortSha(), humanize.RelTime(c.When, now, "ago", "from now"), c.Subject()})
	}
	tbl.AppendFooter(table.Row{"", "", "Total", fmt.Sprintf("%d %s", result.Count(), plural(result.Count(), "commit"))})

	if _, err := fmt.Fprintln(w, tbl.Render()); err != nil {
		return fmt.Errorf("writing table output: %w", err)
	}

	for _, msg := range result.Warnings {
		warningColor.Fprintf(w, "warning: %s\n", msg)
	}
	return nil
}
