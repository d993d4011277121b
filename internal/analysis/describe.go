package analysis

import (
	"fmt"
	"strings"

	"github.com/regwatch/regwatch/internal/git"
)

// Requirements selects which extra aspects the description asks the
// collaborator to cover.
type Requirements struct {
	Tests       bool
	Performance bool
	Security    bool
}

// Describe renders a commit's change-set as the plain-text description
// handed to the analysis collaborator: metadata, then each touched file
// with its status, line counts and diff fragment.
func Describe(commit *git.Commit, reqs Requirements) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Commit Hash: %s\n", commit.Hash)
	fmt.Fprintf(&b, "Author: %s\n", commit.Author)
	fmt.Fprintf(&b, "Date: %s\n", commit.Date)
	fmt.Fprintf(&b, "Message: %s\n", commit.Message)

	b.WriteString("\nChanged Files:\n")
	for _, fc := range commit.Changes {
		fmt.Fprintf(&b, "- %s (%s)\n", fc.Path, fc.Status)

		if fc.Status == git.StatusDeleted {
			continue
		}
		fmt.Fprintf(&b, "  Added lines: %d\n", len(fc.AddedLines))
		fmt.Fprintf(&b, "  Removed lines: %d\n", len(fc.RemovedLines))
		if fc.DiffText != "" {
			fmt.Fprintf(&b, "  Diff:\n%s\n", fc.DiffText)
		}
	}

	var wants []string
	if reqs.Tests {
		wants = append(wants, "test impact analysis")
	}
	if reqs.Performance {
		wants = append(wants, "performance impact analysis")
	}
	if reqs.Security {
		wants = append(wants, "security vulnerability analysis")
	}
	fmt.Fprintf(&b, "\nAnalysis Requirements: %s\n", strings.Join(wants, ", "))

	return b.String()
}
