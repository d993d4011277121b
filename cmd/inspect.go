package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/regwatch/regwatch/internal/git"
	"github.com/regwatch/regwatch/internal/output"
	"github.com/urfave/cli/v2"
)

// InspectCmd returns the inspect command.
func InspectCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.BoolFlag{
			Name:  "diff",
			Usage: "Include raw diff fragments in console output",
		},
	)

	return &cli.Command{
		Name:      "inspect",
		Aliases:   []string{"i"},
		Usage:     "Inspect one commit and report its change-set",
		ArgsUsage: "<commit>",
		Flags:     flags,
		Action:    inspectAction,
	}
}

func inspectAction(c *cli.Context) error {
	if c.NArg() < 1 {
		return fmt.Errorf("missing commit argument")
	}
	hash := c.Args().Get(0)

	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	commit, err := ctx.Inspector.Details(c.Context, hash)
	if err != nil {
		if errors.Is(err, git.ErrCommitNotFound) || errors.Is(err, git.ErrMalformedCommitInfo) {
			return fmt.Errorf("commit not found: %s", hash)
		}
		return err
	}

	report := &output.CommitReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Commit:      commit,
	}

	opts := OutputOptions(c)
	return output.NewCommitReportWriter(opts.Format).Write(report, opts)
}
