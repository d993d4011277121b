package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/regwatch/regwatch/config"
	"github.com/regwatch/regwatch/internal/output"
	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "regwatch",
		Usage:   "Commit change-set extraction for regression analysis",
		Version: "1.0.0",
		Commands: []*cli.Command{
			InspectCmd(),
			RangeCmd(),
			RepoCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Enable debug logging",
			},
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:  "include",
			Usage: "Glob patterns to include (can be specified multiple times)",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns to exclude (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json)",
			Value:   "console",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply filter overrides from CLI
	if includes := c.StringSlice("include"); len(includes) > 0 {
		cfg.Filters.Include = includes
	}
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}

	return cfg, nil
}

// newLogger builds the application logger. Debug level when --verbose.
func newLogger(c *cli.Context) *slog.Logger {
	level := slog.LevelWarn
	if c.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
