package output

import (
	"io"
	"os"
	"time"

	"github.com/regwatch/regwatch/internal/git"
)

// Compile-time interface conformance checks.
var (
	_ CommitReportWriter = (*ConsoleCommitWriter)(nil)
	_ CommitReportWriter = (*JSONCommitWriter)(nil)

	_ RangeReportWriter = (*ConsoleRangeWriter)(nil)
	_ RangeReportWriter = (*JSONRangeWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatConsole OutputFormat = "console"
	FormatJSON    OutputFormat = "json"
)

// OutputOptions controls output behavior.
type OutputOptions struct {
	Format     OutputFormat
	OutputPath string // empty means stdout
	ShowDiff   bool   // console only: include raw diff fragments
}

// CommitReport holds one fully inspected commit for rendering.
type CommitReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Commit      *git.Commit
}

// RangeReport holds the summaries of a range walk for rendering.
type RangeReport struct {
	RepoPath    string
	GeneratedAt time.Time
	Items       []git.Summary
}

// CommitReportWriter renders a single-commit report.
type CommitReportWriter interface {
	Write(report *CommitReport, options OutputOptions) error
}

// RangeReportWriter renders a range report.
type RangeReportWriter interface {
	Write(report *RangeReport, options OutputOptions) error
}

// NewCommitReportWriter returns the writer for the requested format.
func NewCommitReportWriter(format OutputFormat) CommitReportWriter {
	switch format {
	case FormatJSON:
		return &JSONCommitWriter{}
	default:
		return &ConsoleCommitWriter{}
	}
}

// NewRangeReportWriter returns the writer for the requested format.
func NewRangeReportWriter(format OutputFormat) RangeReportWriter {
	switch format {
	case FormatJSON:
		return &JSONRangeWriter{}
	default:
		return &ConsoleRangeWriter{}
	}
}

func openOutputWriter(outputPath string) (io.Writer, *os.File, error) {
	if outputPath == "" {
		return os.Stdout, nil, nil
	}
	file, err := os.Create(outputPath)
	if err != nil {
		return nil, nil, err
	}
	return file, file, nil
}
