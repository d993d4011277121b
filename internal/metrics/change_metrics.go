// Package metrics derives shape metrics from a commit's change-set:
// how many files, directories and subsystems it touches, how many lines
// it moves, and how evenly the change is spread across files. Downstream
// analysis uses them as cheap structural context for a commit.
package metrics

import (
	"math"
	"path"
	"strings"

	"github.com/regwatch/regwatch/internal/git"
)

// ChangeMetrics summarizes the shape of one commit's change-set.
type ChangeMetrics struct {
	FileCount      int     `json:"fileCount"`
	DirectoryCount int     `json:"directoryCount"`
	SubsystemCount int     `json:"subsystemCount"` // top-level directories
	LinesAdded     int     `json:"linesAdded"`
	LinesRemoved   int     `json:"linesRemoved"`
	Dispersion     float64 `json:"dispersion"` // normalized Shannon entropy in [0,1]
}

// Churn returns the total lines changed (added + removed).
func (m ChangeMetrics) Churn() int {
	return m.LinesAdded + m.LinesRemoved
}

// Compute derives the metrics from a commit's file changes.
func Compute(changes []git.FileChange) ChangeMetrics {
	directories := make(map[string]struct{})
	subsystems := make(map[string]struct{})

	var added, removed int
	for _, change := range changes {
		added += len(change.AddedLines)
		removed += len(change.RemovedLines)

		dir, subsystem := splitPathComponents(change.Path)
		if dir != "" {
			directories[strings.ToLower(dir)] = struct{}{}
		}
		if subsystem != "" {
			subsystems[strings.ToLower(subsystem)] = struct{}{}
		}
	}

	subsystemCount := len(subsystems)
	if subsystemCount == 0 && len(changes) > 0 {
		subsystemCount = 1
	}

	return ChangeMetrics{
		FileCount:      len(changes),
		DirectoryCount: len(directories),
		SubsystemCount: subsystemCount,
		LinesAdded:     added,
		LinesRemoved:   removed,
		Dispersion:     dispersion(changes),
	}
}

// dispersion is the normalized Shannon entropy of churn across files.
// 0 means a focused change (at most one file carries churn), 1 means the
// churn is spread evenly over all touched files.
func dispersion(changes []git.FileChange) float64 {
	if len(changes) <= 1 {
		return 0.0
	}

	totalChurn := 0
	for _, change := range changes {
		totalChurn += change.Churn()
	}
	if totalChurn == 0 {
		// No line-level churn recorded, treat as uniform.
		return 1.0
	}

	entropy := 0.0
	for _, change := range changes {
		if churn := change.Churn(); churn > 0 {
			p := float64(churn) / float64(totalChurn)
			entropy -= p * math.Log2(p)
		}
	}

	// Normalize by the maximum possible entropy, log2(n) for n files.
	maxEntropy := math.Log2(float64(len(changes)))
	if maxEntropy <= 0 {
		return 0.0
	}

	normalized := entropy / maxEntropy
	if normalized < 0 {
		return 0.0
	}
	if normalized > 1 {
		return 1.0
	}
	return normalized
}

// splitPathComponents returns the containing directory and the subsystem
// (first path component) of a repository-relative file path.
func splitPathComponents(p string) (directory, subsystem string) {
	if p == "" {
		return "", ""
	}

	normalized := strings.ReplaceAll(p, "\\", "/")
	directory = path.Dir(normalized)
	if directory == "." {
		directory = ""
	}

	if idx := strings.IndexByte(normalized, '/'); idx != -1 {
		subsystem = normalized[:idx]
	}
	return directory, subsystem
}
