package git

import "context"

// CommitReader is the surface the orchestration layer consumes. This
// abstraction allows for easier testing and potential alternative
// implementations.
type CommitReader interface {
	// Details fully inspects one commit, including parent and branch.
	Details(ctx context.Context, hash string) (*Commit, error)
	// Summarize inspects one commit without parent or branch resolution.
	Summarize(ctx context.Context, hash string) (*Summary, error)
	// ValidateCommit reports whether the revision exists.
	ValidateCommit(ctx context.Context, hash string) bool
}

// Compile-time interface conformance check.
var _ CommitReader = (*Inspector)(nil)
