package cli

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/sweeper/pkg/domain/model"
)

var (
	markOK   = color.New(color.FgGreen).Sprint("✓")
	markFail = color.New(color.FgRed).Sprint("✗")
	markWarn = color.New(color.FgYellow).Sprint("!")
)

// renderPlan prints the partition before anything is deleted: the release
// to keep (if found) and every deletion candidate
func renderPlan(w io.Writer, result *model.ReconcileResult) {
	if result.Kept != nil {
		fmt.Fprintf(w, "%s Found release to keep: %s (tag: %s)\n", markOK, result.Kept.Name, result.Kept.Tag)
	} else {
		fmt.Fprintf(w, "%s The release to keep was not found\n", markWarn)
	}

	if len(result.ToDelete) == 0 {
		fmt.Fprintln(w, "No releases to delete.")
		return
	}

	fmt.Fprintf(w, "Planning to delete %d releases:\n", len(result.ToDelete))
	for _, r := range result.ToDelete {
		fmt.Fprintf(w, "  - %s (tag: %s)\n", r.Name, r.Tag)
	}
}

// renderResult prints the run summary in the requested format
func renderResult(w io.Writer, summary *model.RunSummary, format string) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(summary); err != nil {
			return goerr.Wrap(err, "failed to encode run summary")
		}
		return nil
	}

	renderSummary(w, summary)
	return nil
}

// renderSummary prints the per-record breakdown and overall status line
func renderSummary(w io.Writer, summary *model.RunSummary) {
	fmt.Fprintln(w, "\nCleanup Summary:")

	if summary.DryRun {
		fmt.Fprintf(w, "%s Dry run: %d releases would be deleted\n", markWarn, len(summary.Planned))
	} else {
		fmt.Fprintf(w, "%s Successfully deleted: %d releases\n", markOK, summary.SuccessCount)
		if summary.FailureCount > 0 {
			fmt.Fprintf(w, "%s Failed to delete: %d releases\n", markFail, summary.FailureCount)
			for _, o := range summary.Failures() {
				fmt.Fprintf(w, "  %s %s (tag: %s): %s\n", markFail, o.Release.Name, o.Release.Tag, o.Error)
			}
		}
	}

	if summary.Kept != nil {
		fmt.Fprintf(w, "%s Kept release: %s (tag: %s)\n", markOK, summary.Kept.Name, summary.Kept.Tag)
	} else {
		fmt.Fprintf(w, "%s The release to keep was not found\n", markWarn)
	}
}

// confirm asks a y/N question and reports whether the user accepted
func confirm(r io.Reader, w io.Writer, prompt string) bool {
	fmt.Fprint(w, prompt)

	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(scanner.Text())) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
