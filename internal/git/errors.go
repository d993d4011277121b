package git

import (
	"errors"
	"fmt"
)

var (
	// ErrRepositoryInvalid means the target path is not a git working tree.
	ErrRepositoryInvalid = errors.New("not a git repository")

	// ErrCommitNotFound means the revision does not exist in the repository.
	ErrCommitNotFound = errors.New("commit not found")

	// ErrMalformedCommitInfo means git's metadata output did not match the
	// expected shape. Callers treat it like ErrCommitNotFound.
	ErrMalformedCommitInfo = errors.New("malformed commit info")

	// ErrNoOutput means the git invocation produced nothing usable, either
	// because it exited non-zero or could not be spawned. Callers interpret
	// it as "nothing to report" for that sub-query.
	ErrNoOutput = errors.New("git produced no output")
)

// ExitError reports a git invocation that failed. It wraps ErrNoOutput so
// callers that only care about absence of output can match on that, while
// callers needing the diagnostic can inspect the stderr text.
type ExitError struct {
	Args     []string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *ExitError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("git %v: %v", e.Args, e.Cause)
	}
	return fmt.Sprintf("git %v: exit %d: %s", e.Args, e.ExitCode, e.Stderr)
}

func (e *ExitError) Unwrap() error { return ErrNoOutput }
