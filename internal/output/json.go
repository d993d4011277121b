package output

import (
	"encoding/json"
	"time"

	"github.com/regwatch/regwatch/internal/git"
)

// JSONCommitWriter writes a single-commit report as JSON.
type JSONCommitWriter struct{}

// JSONCommitReport is the JSON output structure for one inspected commit.
type JSONCommitReport struct {
	RepoPath    string      `json:"repo"`
	GeneratedAt time.Time   `json:"generatedAt"`
	Commit      *git.Commit `json:"commit"`
}

// Write outputs the commit report as JSON.
func (w *JSONCommitWriter) Write(report *CommitReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONCommitReport{
		RepoPath:    report.RepoPath,
		GeneratedAt: report.GeneratedAt,
		Commit:      report.Commit,
	})
}

// JSONRangeWriter writes a range report as JSON.
type JSONRangeWriter struct{}

// JSONRangeReport is the JSON output structure for a range walk.
type JSONRangeReport struct {
	RepoPath     string        `json:"repo"`
	GeneratedAt  time.Time     `json:"generatedAt"`
	TotalCommits int           `json:"totalCommits"`
	Items        []git.Summary `json:"items"`
}

// Write outputs the range report as JSON.
func (w *JSONRangeWriter) Write(report *RangeReport, options OutputOptions) error {
	out, file, err := openOutputWriter(options.OutputPath)
	if err != nil {
		return err
	}
	if file != nil {
		defer file.Close()
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(JSONRangeReport{
		RepoPath:     report.RepoPath,
		GeneratedAt:  report.GeneratedAt,
		TotalCommits: len(report.Items),
		Items:        report.Items,
	})
}
