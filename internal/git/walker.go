package git

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Walker enumerates commit ranges and drives an Inspector over each hash.
type Walker struct {
	inspector *Inspector
}

// NewWalker creates a walker over the inspector's repository.
func NewWalker(inspector *Inspector) *Walker {
	return &Walker{inspector: inspector}
}

// Range returns the hashes in the requested range, most-recent-first
// in git's native log order, capped at the effective max count.
func (w *Walker) Range(ctx context.Context, opts RangeOptions) ([]string, error) {
	maxCount := opts.MaxCount
	if maxCount <= 0 {
		maxCount = DefaultMaxCount
	}

	args := []string{"log", "--format=format:%H", fmt.Sprintf("--max-count=%d", maxCount)}

	switch {
	case opts.Start != "" && opts.End != "":
		args = append(args, opts.Start+".."+opts.End)
	case opts.Start != "":
		args = append(args, opts.Start+"..HEAD")
	case opts.End != "":
		// Reversed relative to typical usage: commits reachable from End
		// but not HEAD. Kept as the product defined it.
		args = append(args, "HEAD.."+opts.End)
	}

	out, err := w.inspector.runner.Run(ctx, w.inspector.opts.RepoPath, args...)
	if err != nil {
		if errors.Is(err, ErrNoOutput) {
			return []string{}, nil
		}
		return nil, err
	}

	out = strings.TrimSpace(out)
	if out == "" {
		return []string{}, nil
	}

	hashes := strings.Split(out, "\n")
	if len(hashes) > maxCount {
		hashes = hashes[:maxCount]
	}
	return hashes, nil
}

// Walk enumerates the range and summarizes each commit. A commit that
// fails to summarize is skipped so one bad commit does not abort the
// batch. The optional throttle paces iterations to bound the git
// invocation rate.
func (w *Walker) Walk(ctx context.Context, opts RangeOptions) ([]Summary, error) {
	hashes, err := w.Range(ctx, opts)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(hashes))
	for n, hash := range hashes {
		if opts.Throttle > 0 && n > 0 {
			select {
			case <-time.After(opts.Throttle):
			case <-ctx.Done():
				return summaries, ctx.Err()
			}
		}

		s, err := w.inspector.Summarize(ctx, hash)
		if err != nil {
			w.inspector.logger.Warn("skipping commit", "hash", hash, "err", err)
			continue
		}
		summaries = append(summaries, *s)
	}

	return summaries, nil
}
