package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/MyCarrier-DevOps/go-pushdelta/internal/calculator"
	"github.com/fatih/color"
)

const arrowPrefix = "\u2192"

var (
	headingColor = color.New(color.Bold)
	warningColor = color.New(color.FgYellow)
)

// WriteExplanation writes how the delta was derived to w: every strategy
// attempt with its reasoning, the selected push point, the divergence
// state, the range and the enumeration path.
func WriteExplanation(w io.Writer, result calculator.DeltaResult) error {
	// --- Strategies evaluated ---
	headingColor.Fprintln(w, "Strategies evaluated:")
	if len(result.Attempts) == 0 {
		fmt.Fprintln(w, "  (none)")
	}
	for _, a := range result.Attempts {
		verdict := "miss"
		switch {
		case a.Found:
			verdict = fmt.Sprintf("found %s (confidence: %s)",
				shortSha(result.PushPoint.Sha()), result.PushPoint.Confidence)
		case a.Err != nil:
			verdict = "error"
		}
		fmt.Fprintf(w, "  %-22s %s\n", a.Strategy+":", verdict)

		if a.Explanation != nil {
			for _, step := range a.Explanation.Steps {
				fmt.Fprintf(w, "    %s %s\n", arrowPrefix, step)
			}
		}
	}

	// --- Selected ---
	fmt.Fprintln(w)
	if result.PushPoint.IsPresent() {
		fmt.Fprintf(w, "Selected: %s (%s, confidence: %s)\n",
			result.PushPoint.Strategy, result.PushPoint.Commit.ShortSha(), result.PushPoint.Confidence)
	} else {
		fmt.Fprintln(w, "Selected: none (first publish)")
	}

	// --- Divergence ---
	div := result.Divergence
	if div.TrackingSha != "" {
		fmt.Fprintf(w, "Divergence: %s (tracking: %s)\n", div.State, shortSha(div.TrackingSha))
	} else {
		fmt.Fprintf(w, "Divergence: %s\n", div.State)
	}

	// --- Range ---
	fmt.Fprintln(w)
	headingColor.Fprintln(w, "Range:")
	if result.Range.Reason != "" {
		fmt.Fprintf(w, "  %s %s\n", arrowPrefix, result.Range.Reason)
	}
	if rng := result.Range.String(); rng != "" {
		fmt.Fprintf(w, "  %s %s via %s\n", arrowPrefix, rng, result.EnumeratedBy)
	}

	// --- Warnings ---
	if len(result.Warnings) > 0 {
		fmt.Fprintln(w)
		warningColor.Fprintln(w, "Warnings:")
		for _, msg := range result.Warnings {
			fmt.Fprintf(w, "  %s %s\n", arrowPrefix, msg)
		}
	}

	// --- Result ---
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Result: %d unpublished %s\n", result.Count(), plural(result.Count(), "commit"))

	return nil
}

// FormatExplanation returns the explain output as a string.
func FormatExplanation(result calculator.DeltaResult) string {
	var sb strings.Builder
	_ = WriteExplanation(&sb, result)
	return sb.String()
}

func shortSha(sha string) string {
	if len(sha) > 7 {
		return sha[:7]
	}
	return sha
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
