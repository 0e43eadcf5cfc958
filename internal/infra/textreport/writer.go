// Package textreport writes the flat text summary of a comparison run.
package textreport

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kobayashik-Faber/shotcheck/internal/domain"
	"github.com/kobayashik-Faber/shotcheck/internal/ports"
)

const banner = "============================================================"

type Writer struct {
	filename string
}

func New(cfg domain.ReportConfig) *Writer {
	filename := cfg.Filename
	if strings.TrimSpace(filename) == "" {
		filename = domain.DefaultReportFilename
	}
	return &Writer{filename: filename}
}

var _ ports.ReportSink = (*Writer)(nil)

// Write renders the report into <OutputDir>/<filename>, once, after all
// pairs have been processed. A write failure here is fatal for the run.
func (w *Writer) Write(run domain.RunResult) (string, error) {
	path := filepath.Join(run.OutputDir, w.filename)
	if err := os.WriteFile(path, []byte(Format(run)), 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "textreport.write",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return path, nil
}

// Format renders the report body: a banner header with totals, one result
// line per pair in processing order, then the with/without-differences and
// unmatched sections.
func Format(run domain.RunResult) string {
	identical, different, failed := run.Counts()

	var sb strings.Builder
	sb.WriteString("Image Difference Comparison Report\n")
	sb.WriteString(banner + "\n\n")
	fmt.Fprintf(&sb, "Directory 1: %s\n", run.DirA)
	fmt.Fprintf(&sb, "Directory 2: %s\n", run.DirB)
	fmt.Fprintf(&sb, "Total image pairs: %d\n", len(run.Results))
	fmt.Fprintf(&sb, "Processed: %d\n", run.Processed())
	fmt.Fprintf(&sb, "Images with differences: %d\n", different)
	fmt.Fprintf(&sb, "Images without differences: %d\n", identical)
	fmt.Fprintf(&sb, "Failed pairs: %d\n", failed)

	section(&sb, "Results")
	for _, pr := range run.Results {
		sb.WriteString(resultLine(pr) + "\n")
	}

	section(&sb, "Files with Differences")
	list(&sb, run.Keys(domain.StatusDifferent))

	section(&sb, "Files without Differences")
	list(&sb, run.Keys(domain.StatusIdentical))

	section(&sb, "Unmatched Files")
	var unmatched []string
	for _, name := range run.UnmatchedA {
		unmatched = append(unmatched, "dir1: "+name)
	}
	for _, name := range run.UnmatchedB {
		unmatched = append(unmatched, "dir2: "+name)
	}
	list(&sb, unmatched)

	return sb.String()
}

func resultLine(pr domain.PairResult) string {
	switch {
	case pr.Status == domain.StatusFailed:
		return fmt.Sprintf("%s: failed (%s)", pr.Key, pr.Error)
	case pr.SizeMismatch:
		return fmt.Sprintf("%s: different (size mismatch)", pr.Key)
	default:
		return fmt.Sprintf("%s: %s", pr.Key, pr.Status)
	}
}

func section(sb *strings.Builder, title string) {
	sb.WriteString("\n" + banner + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(banner + "\n")
}

func list(sb *strings.Builder, items []string) {
	if len(items) == 0 {
		sb.WriteString("(None)\n")
		return
	}
	for _, item := range items {
		sb.WriteString(item + "\n")
	}
}
