package git

import (
	"context"
	"strconv"
	"strings"
)

// CommitStats totals the commit's numstat report. Binary files print "-"
// columns and count as zero.
func (i *Inspector) CommitStats(ctx context.Context, hash string) (Stats, error) {
	out, err := i.runner.Run(ctx, i.opts.RepoPath, "show", "--numstat", "--format=format:", hash)
	if err != nil {
		return Stats{}, err
	}

	var stats Stats
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			continue
		}
		stats.FilesChanged++
		stats.Insertions += numstatInt(fields[0])
		stats.Deletions += numstatInt(fields[1])
	}
	return stats, nil
}

func numstatInt(s string) int {
	if s == "-" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}
