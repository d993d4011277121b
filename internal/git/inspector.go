package git

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
)

// commit date layout after normalizing git's "--date=iso" output
// ("2006-01-02 15:04:05 -0700") by replacing the first space with 'T'.
const commitDateLayout = "2006-01-02T15:04:05 -0700"

// Inspector reconstructs structured change-sets for single commits. It
// never mutates the repository; all operations are read-only queries, so
// concurrent inspections of the same working tree are safe.
type Inspector struct {
	runner Runner
	opts   InspectOptions
	logger *slog.Logger
}

// NewInspector creates an inspector over the given working tree. The path
// must be a git repository; a path without repository metadata fails with
// ErrRepositoryInvalid.
func NewInspector(runner Runner, opts InspectOptions, logger *slog.Logger) (*Inspector, error) {
	if _, err := gogit.PlainOpen(opts.RepoPath); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrRepositoryInvalid, opts.RepoPath)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Inspector{
		runner: runner,
		opts:   opts,
		logger: logger.With(slog.String("component", "inspector")),
	}, nil
}

// Details inspects one commit and assembles the full Commit record:
// metadata, per-file changes, first-parent hash and the currently
// checked-out branch. A revision that does not exist fails with
// ErrCommitNotFound before any other query runs.
func (i *Inspector) Details(ctx context.Context, hash string) (*Commit, error) {
	if !i.ValidateCommit(ctx, hash) {
		return nil, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}

	meta, err := i.commitInfo(ctx, hash)
	if err != nil {
		return nil, err
	}

	changes := i.fileChanges(ctx, hash)
	parents := i.parentHashes(ctx, hash)
	branch := i.currentBranch(ctx)

	return &Commit{
		Hash:         meta.Hash,
		Author:       meta.Author,
		Date:         meta.Date,
		Message:      meta.Message,
		Changes:      changes,
		ParentHashes: parents,
		Branch:       branch,
	}, nil
}

// Summarize inspects one commit without resolving parent or branch. The
// batch path uses it for throughput.
func (i *Inspector) Summarize(ctx context.Context, hash string) (*Summary, error) {
	meta, err := i.commitInfo(ctx, hash)
	if err != nil {
		return nil, err
	}
	return &Summary{
		Hash:    meta.Hash,
		Author:  meta.Author,
		Date:    meta.Date,
		Message: meta.Message,
		Changes: i.fileChanges(ctx, hash),
	}, nil
}

// ValidateCommit reports whether the revision exists in the repository.
func (i *Inspector) ValidateCommit(ctx context.Context, hash string) bool {
	out, err := i.runner.Run(ctx, i.opts.RepoPath, "rev-parse", "--verify", hash)
	return err == nil && strings.TrimSpace(out) != ""
}

type commitMeta struct {
	Hash    string
	Author  string
	Date    time.Time
	Message string
}

// commitInfo fetches hash, author, date and message in one invocation.
// The format prints them newline-separated with the full message body from
// the fourth line onward; the message may itself contain blank lines, so
// everything past the third line is rejoined verbatim.
func (i *Inspector) commitInfo(ctx context.Context, hash string) (commitMeta, error) {
	out, err := i.runner.Run(ctx, i.opts.RepoPath, "show",
		"--format=format:%H%n%an%n%ad%n%s%n%b",
		"--date=iso",
		"--no-patch",
		hash)
	if err != nil {
		return commitMeta{}, fmt.Errorf("%w: %s", ErrCommitNotFound, hash)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) < 4 {
		return commitMeta{}, fmt.Errorf("%w: %s: %d lines", ErrMalformedCommitInfo, hash, len(lines))
	}

	date, err := parseCommitDate(lines[2])
	if err != nil {
		return commitMeta{}, fmt.Errorf("%w: %s: %v", ErrMalformedCommitInfo, hash, err)
	}

	return commitMeta{
		Hash:    lines[0],
		Author:  lines[1],
		Date:    date,
		Message: strings.Join(lines[3:], "\n"),
	}, nil
}

// parseCommitDate normalizes git's "<date> <time> <tz>" shape into an
// ISO-8601-like form by replacing the first space with 'T'.
func parseCommitDate(s string) (time.Time, error) {
	return time.Parse(commitDateLayout, strings.Replace(strings.TrimSpace(s), " ", "T", 1))
}

// fileChanges enumerates the commit's name-status report and extracts a
// FileChange per touched path, in report order. A report line that fails
// to parse is skipped; a file whose diff cannot be retrieved is omitted.
// Neither is fatal for the commit.
func (i *Inspector) fileChanges(ctx context.Context, hash string) []FileChange {
	changes := []FileChange{}

	out, err := i.runner.Run(ctx, i.opts.RepoPath, "show", "--name-status", "--format=format:", hash)
	if err != nil || strings.TrimSpace(out) == "" {
		return changes
	}

	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}

		code, path := parts[0], parts[1]
		oldPath := ""
		if len(parts) >= 3 && len(code) > 0 && (code[0] == 'R' || code[0] == 'C') {
			// Renames and copies report "R<score>\told\tnew".
			oldPath, path = parts[1], parts[2]
		}

		fc, ok := i.fileChange(ctx, hash, path, code)
		if !ok {
			continue
		}
		fc.OldPath = oldPath
		changes = append(changes, fc)
	}

	return changes
}

// parentHashes resolves the nearest ancestor via the hash^ revision syntax.
// A root commit has no ancestor; that yields an empty list, not an error.
// Only the first parent is resolved, so merge commits are represented by
// a single parent.
func (i *Inspector) parentHashes(ctx context.Context, hash string) []string {
	out, err := i.runner.Run(ctx, i.opts.RepoPath, "log",
		"--format=format:%H", "--max-count=1", hash+"^")
	if err != nil || strings.TrimSpace(out) == "" {
		return []string{}
	}
	return []string{strings.TrimSpace(out)}
}

// currentBranch resolves the checked-out branch at inspection time, which
// is not necessarily a branch containing the inspected commit. Detached
// HEAD and failures yield "unknown".
func (i *Inspector) currentBranch(ctx context.Context) string {
	out, err := i.runner.Run(ctx, i.opts.RepoPath, "branch", "--show-current")
	if err != nil || strings.TrimSpace(out) == "" {
		return "unknown"
	}
	return strings.TrimSpace(out)
}
