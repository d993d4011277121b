package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/regwatch/regwatch/internal/git"
	"github.com/regwatch/regwatch/internal/metrics"
)

const consoleDateLayout = "2006-01-02 15:04:05 -0700"

// ConsoleCommitWriter writes a single-commit report to the console.
type ConsoleCommitWriter struct{}

// Write outputs the commit report in human-readable form.
func (w *ConsoleCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	c := report.Commit

	color.Green("Commit %s", c.Hash)
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Author:     %s\n", c.Author)
	fmt.Fprintf(out, "Date:       %s\n", c.Date.Format(consoleDateLayout))
	fmt.Fprintf(out, "Branch:     %s\n", c.Branch)
	if len(c.ParentHashes) > 0 {
		fmt.Fprintf(out, "Parent:     %s\n", strings.Join(c.ParentHashes, ", "))
	} else {
		fmt.Fprintf(out, "Parent:     (root commit)\n")
	}
	fmt.Fprintf(out, "Message:    %s\n\n", firstLine(c.Message))

	writeChangesTable(out, c.Changes)

	if options.ShowDiff {
		for _, fc := range c.Changes {
			if fc.DiffText == "" {
				continue
			}
			fmt.Fprintf(out, "\n--- %s ---\n%s\n", fc.Path, fc.DiffText)
		}
	}

	return nil
}

// ConsoleRangeWriter writes a range report to the console.
type ConsoleRangeWriter struct{}

// Write outputs one block per commit, most recent first.
func (w *ConsoleRangeWriter) Write(report *RangeReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	color.Green("Commit Range Report")
	fmt.Fprintf(out, "Repository: %s\n", report.RepoPath)
	fmt.Fprintf(out, "Commits: %d\n\n", len(report.Items))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tHash\tDate\tAuthor\tFiles\tChurn\tDispersion\tMessage")
	for n, s := range report.Items {
		m := metrics.Compute(s.Changes)
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\t%d\t%.2f\t%s\n",
			n+1,
			shortHash(s.Hash),
			s.Date.Format("2006-01-02"),
			s.Author,
			m.FileCount,
			m.Churn(),
			m.Dispersion,
			firstLine(s.Message),
		)
	}
	return tw.Flush()
}

func writeChangesTable(out io.Writer, changes []git.FileChange) {
	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Status\tPath\tAdded\tRemoved")
	for _, fc := range changes {
		path := fc.Path
		if fc.OldPath != "" {
			path = fc.OldPath + " -> " + fc.Path
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\n",
			fc.Status, path, len(fc.AddedLines), len(fc.RemovedLines))
	}
	tw.Flush()
}

func firstLine(s string) string {
	if idx := strings.IndexByte(s, '\n'); idx != -1 {
		return s[:idx]
	}
	return s
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}
