package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

// RepoCmd returns the repo command.
func RepoCmd() *cli.Command {
	return &cli.Command{
		Name:   "repo",
		Usage:  "Summarize the repository (name, branch, commit count, head)",
		Flags:  commonFlags(),
		Action: repoAction,
	}
}

func repoAction(c *cli.Context) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}

	info := ctx.Inspector.Info(c.Context)

	if getOutputFormat(c.String("format")) == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(info)
	}

	fmt.Printf("Repository:    %s\n", info.Name)
	fmt.Printf("Branch:        %s\n", info.Branch)
	fmt.Printf("Total commits: %d\n", info.TotalCommits)
	fmt.Printf("Head:          %s\n", info.LastCommit)
	return nil
}
