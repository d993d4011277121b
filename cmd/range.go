package cmd

import (
	"time"

	"github.com/regwatch/regwatch/internal/git"
	"github.com/regwatch/regwatch/internal/output"
	"github.com/urfave/cli/v2"
)

// RangeCmd returns the range command.
func RangeCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:  "start",
			Usage: "Start commit (exclusive bound)",
		},
		&cli.StringFlag{
			Name:  "end",
			Usage: "End commit (inclusive bound)",
		},
		&cli.IntFlag{
			Name:    "max",
			Aliases: []string{"n"},
			Usage:   "Maximum number of commits to inspect",
		},
	)

	return &cli.Command{
		Name:    "range",
		Aliases: []string{"ls"},
		Usage:   "Inspect a range of commits and report their change-sets",
		Flags:   flags,
		Action:  rangeAction,
	}
}

func rangeAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	maxCount := c.Int("max")
	if maxCount <= 0 {
		maxCount = ctx.Config.Range.MaxCommits
	}

	walker := git.NewWalker(ctx.Inspector)
	summaries, err := walker.Walk(c.Context, git.RangeOptions{
		Start:    c.String("start"),
		End:      c.String("end"),
		MaxCount: maxCount,
		Throttle: ctx.Config.Range.Throttle(),
	})
	if err != nil {
		return err
	}

	report := &output.RangeReport{
		RepoPath:    ctx.RepoPath,
		GeneratedAt: time.Now(),
		Items:       summaries,
	}

	opts := OutputOptions(c)
	return output.NewRangeReportWriter(opts.Format).Write(report, opts)
}
