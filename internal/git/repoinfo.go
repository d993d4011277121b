package git

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
)

// Info summarizes the working tree: repository name (basename of the
// toplevel directory), checked-out branch, total commit count reachable
// from HEAD and the head commit hash. Sub-queries that fail leave their
// field at its zero value; the summary is best-effort by design.
func (i *Inspector) Info(ctx context.Context) RepositoryInfo {
	info := RepositoryInfo{Branch: i.currentBranch(ctx)}

	if out, err := i.runner.Run(ctx, i.opts.RepoPath, "rev-parse", "--show-toplevel"); err == nil {
		if top := strings.TrimSpace(out); top != "" {
			info.Name = filepath.Base(top)
		}
	}

	if out, err := i.runner.Run(ctx, i.opts.RepoPath, "rev-list", "--count", "HEAD"); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(out)); err == nil {
			info.TotalCommits = n
		}
	}

	if out, err := i.runner.Run(ctx, i.opts.RepoPath, "log", "--format=format:%H", "-1"); err == nil {
		info.LastCommit = strings.TrimSpace(out)
	}

	return info
}
