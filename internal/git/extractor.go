package git

import (
	"context"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/regwatch/regwatch/internal/diff"
)

// statusFromCode maps a one-letter name-status code to a ChangeStatus.
// Rename and copy codes carry a score suffix (e.g. "R100"); only the first
// byte matters.
func statusFromCode(code string) ChangeStatus {
	if code == "" {
		return StatusModified
	}
	switch code[0] {
	case 'A':
		return StatusAdded
	case 'M':
		return StatusModified
	case 'D':
		return StatusDeleted
	case 'R':
		return StatusRenamed
	default:
		return StatusAdded
	}
}

// fileChange builds the FileChange record for one (status, path) pair of a
// commit's name-status report. The second return is false when the file
// should be omitted from the commit's change list, either because it is
// filtered out or because the diff could not be retrieved.
//
// Deleted files short-circuit: their content is not retrievable as a clean
// pre/post diff in this model, so the runner is never invoked for them.
func (i *Inspector) fileChange(ctx context.Context, hash, path, code string) (FileChange, bool) {
	if !i.matchesFilters(path) {
		return FileChange{}, false
	}

	status := statusFromCode(code)
	if status == StatusDeleted {
		return FileChange{
			Path:         path,
			Status:       StatusDeleted,
			AddedLines:   []string{},
			RemovedLines: []string{},
			LineNumbers:  diff.LineNumbers{Added: []int{}, Removed: []int{}},
		}, true
	}

	out, err := i.runner.Run(ctx, i.opts.RepoPath, "show", "--unified=0", hash, "--", path)
	if err != nil || out == "" {
		return FileChange{}, false
	}

	frag := diff.Parse(out)

	return FileChange{
		Path:         path,
		Status:       status,
		AddedLines:   frag.AddedLines,
		RemovedLines: frag.RemovedLines,
		LineNumbers:  frag.LineNumbers,
		DiffText:     out,
	}, true
}

// matchesFilters checks a path against the include/exclude glob patterns.
func (i *Inspector) matchesFilters(path string) bool {
	path = strings.ReplaceAll(path, "\\", "/")

	for _, pattern := range i.opts.Exclude {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return false
		}
	}

	if len(i.opts.Include) == 0 {
		return true
	}

	for _, pattern := range i.opts.Include {
		if matched, _ := doublestar.Match(pattern, path); matched {
			return true
		}
	}

	return false
}
