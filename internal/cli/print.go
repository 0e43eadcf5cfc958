package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
)

type theme struct {
	Title lipgloss.Style
	OK    lipgloss.Style
	Diff  lipgloss.Style
	Fail  lipgloss.Style
	Faint lipgloss.Style
}

func defaultTheme() theme {
	return theme{
		Title: lipgloss.NewStyle().Bold(true),
		OK:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Diff:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Fail:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		Faint: lipgloss.NewStyle().Faint(true),
	}
}

func printRun(w io.Writer, run domain.RunResult, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(run)
	case "pretty", "":
		printPrettyRun(w, run)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}

func printPrettyRun(w io.Writer, run domain.RunResult) {
	th := defaultTheme()

	fmt.Fprintln(w, th.Title.Render("shotcheck"))
	fmt.Fprintf(w, "Directory 1: %s\n", run.DirA)
	fmt.Fprintf(w, "Directory 2: %s\n", run.DirB)
	fmt.Fprintf(w, "Output:      %s\n", run.OutputDir)
	if !run.StartedAt.IsZero() && !run.EndedAt.IsZero() {
		fmt.Fprintf(w, "Duration:    %s\n", run.EndedAt.Sub(run.StartedAt))
	}
	fmt.Fprintln(w)

	for _, pr := range run.Results {
		fmt.Fprintln(w, resultLine(th, pr))
	}
	fmt.Fprintln(w)

	identical, different, failed := run.Counts()
	fmt.Fprintf(w, "%d pair(s): %d identical, %d different, %d failed\n",
		len(run.Results), identical, different, failed)
	if len(run.UnmatchedA)+len(run.UnmatchedB) > 0 {
		fmt.Fprintf(w, "Unmatched:   %d in dir1, %d in dir2\n",
			len(run.UnmatchedA), len(run.UnmatchedB))
	}
	if run.ReportPath != "" {
		fmt.Fprintf(w, "Report:      %s\n", th.Faint.Render(run.ReportPath))
	}
}

func resultLine(th theme, pr domain.PairResult) string {
	switch pr.Status {
	case domain.StatusIdentical:
		return fmt.Sprintf("- %s %s", th.OK.Render("[OK]  "), pr.Key)
	case domain.StatusFailed:
		return fmt.Sprintf("- %s %s: %s", th.Fail.Render("[FAIL]"), pr.Key, pr.Error)
	default:
		if pr.SizeMismatch {
			return fmt.Sprintf("- %s %s (size mismatch)", th.Diff.Render("[DIFF]"), pr.Key)
		}
		return fmt.Sprintf("- %s %s (%d px) %s",
			th.Diff.Render("[DIFF]"), pr.Key, pr.DiffPixels, th.Faint.Render(pr.DiffPath))
	}
}
