package cmd

import (
	"errors"
	"fmt"

	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/internal/git"
	"github.com/regwatch/regwatch/internal/output"
	"github.com/urfave/cli/v2"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config    *config.Config
	RepoPath  string
	Inspector *git.Inspector
}

// NewCommandContext creates a context from CLI flags. It performs
// configuration loading, logger setup and repository validation.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := c.String("repo")
	logger := newLogger(c)
	runner := git.NewCLIRunner(cfg.Git.Path, cfg.Git.Timeout(), logger)

	inspector, err := git.NewInspector(runner, git.InspectOptions{
		RepoPath: repoPath,
		Include:  cfg.Filters.Include,
		Exclude:  cfg.Filters.Exclude,
	}, logger)
	if err != nil {
		if errors.Is(err, git.ErrRepositoryInvalid) {
			return nil, fmt.Errorf("not a git repository: %s", repoPath)
		}
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}

	return &CommandContext{
		Config:    cfg,
		RepoPath:  repoPath,
		Inspector: inspector,
	}, nil
}

// OutputOptions creates OutputOptions from CLI flags.
func OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(c.String("format")),
		OutputPath: c.String("output"),
		ShowDiff:   c.Bool("diff"),
	}
}
