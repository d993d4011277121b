package git

import (
	"time"

	"github.com/regwatch/regwatch/internal/diff"
)

// ChangeStatus represents the kind of change a commit made to a file.
type ChangeStatus int

const (
	StatusAdded ChangeStatus = iota
	StatusModified
	StatusDeleted
	StatusRenamed
)

// String returns a string representation of the change status.
func (s ChangeStatus) String() string {
	switch s {
	case StatusAdded:
		return "added"
	case StatusModified:
		return "modified"
	case StatusDeleted:
		return "deleted"
	case StatusRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so the status serializes as
// its name rather than an integer.
func (s ChangeStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// FileChange represents one file's change within one commit.
//
// AddedLines and RemovedLines are aligned positionally with
// LineNumbers.Added and LineNumbers.Removed. A deleted file carries empty
// line slices and empty diff text.
type FileChange struct {
	Path         string           `json:"path"`
	OldPath      string           `json:"oldPath,omitempty"` // for renames
	Status       ChangeStatus     `json:"status"`
	AddedLines   []string         `json:"addedLines"`
	RemovedLines []string         `json:"removedLines"`
	LineNumbers  diff.LineNumbers `json:"lineNumbers"`
	DiffText     string           `json:"diff"`
}

// Churn returns total lines changed (added + removed).
func (f FileChange) Churn() int {
	return len(f.AddedLines) + len(f.RemovedLines)
}

// Commit is one fully inspected commit. It is constructed once by the
// inspector and never mutated afterwards.
type Commit struct {
	Hash         string       `json:"hash"`
	Author       string       `json:"author"`
	Date         time.Time    `json:"date"`
	Message      string       `json:"message"`
	Changes      []FileChange `json:"changes"`
	ParentHashes []string     `json:"parentHashes"`
	Branch       string       `json:"branch"`
}

// Summary is the lightweight per-commit record produced by range walks.
// Parent and branch resolution are intentionally skipped on the batch path.
type Summary struct {
	Hash    string       `json:"hash"`
	Author  string       `json:"author"`
	Date    time.Time    `json:"date"`
	Message string       `json:"message"`
	Changes []FileChange `json:"changes"`
}

// Stats holds aggregate numbers for one commit.
type Stats struct {
	FilesChanged int `json:"filesChanged"`
	Insertions   int `json:"insertions"`
	Deletions    int `json:"deletions"`
}

// RepositoryInfo summarizes a working tree.
type RepositoryInfo struct {
	Name         string `json:"name"`
	Branch       string `json:"branch"`
	TotalCommits int    `json:"totalCommits"`
	LastCommit   string `json:"lastCommit"`
}

// InspectOptions configures a commit inspector.
type InspectOptions struct {
	RepoPath string
	Include  []string // Glob patterns to include
	Exclude  []string // Glob patterns to exclude
}

// RangeOptions configures a range walk.
//
// Bound semantics follow git's two-dot syntax: both bounds give
// (Start, End]; only Start gives (Start, HEAD]. Only End gives HEAD..End,
// i.e. commits reachable from End but not HEAD. Note this is the reverse of
// "commits up to End"; see Walker.Range.
type RangeOptions struct {
	Start    string
	End      string
	MaxCount int           // <= 0 means DefaultMaxCount
	Throttle time.Duration // optional pacing delay between commits
}

// DefaultMaxCount caps a range walk when RangeOptions.MaxCount is unset.
const DefaultMaxCount = 10
