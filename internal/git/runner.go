package git

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os/exec"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DefaultTimeout bounds a single git invocation when no timeout is
// configured. A local git process should be short-lived; a hung one must
// not block the caller forever.
const DefaultTimeout = 30 * time.Second

// Runner executes the git tool and returns its decoded stdout. Non-zero
// exit and spawn failures are reported as an error wrapping ErrNoOutput;
// callers interpret that as "nothing to report" for the sub-query.
type Runner interface {
	Run(ctx context.Context, repoPath string, args ...string) (string, error)
}

// CLIRunner runs the git executable as a child process, one process per
// call. It holds no mutable state and is safe for concurrent use.
type CLIRunner struct {
	GitPath string        // git executable, "git" when empty
	Timeout time.Duration // per-invocation deadline, DefaultTimeout when zero
	Logger  *slog.Logger
}

// NewCLIRunner creates a runner with the given per-invocation timeout.
func NewCLIRunner(gitPath string, timeout time.Duration, logger *slog.Logger) *CLIRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &CLIRunner{
		GitPath: gitPath,
		Timeout: timeout,
		Logger:  logger.With(slog.String("component", "gitRunner")),
	}
}

// Run invokes git with -C repoPath plus args and returns decoded stdout.
func (r *CLIRunner) Run(ctx context.Context, repoPath string, args ...string) (string, error) {
	gitPath := r.GitPath
	if gitPath == "" {
		gitPath = "git"
	}
	timeout := r.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	full := append([]string{"-C", repoPath}, args...)
	cmd := exec.CommandContext(ctx, gitPath, full...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	r.Logger.Debug("running git", "args", strings.Join(args, " "), "repo", repoPath)

	if err := cmd.Run(); err != nil {
		exitCode := -1
		cause := err
		var ee *exec.ExitError
		if errors.As(err, &ee) {
			exitCode = ee.ExitCode()
			cause = nil // exit code and stderr carry the diagnostic
		}
		diag := strings.TrimSpace(decodeOutput(stderr.Bytes()))
		r.Logger.Warn("git invocation failed",
			"args", strings.Join(args, " "),
			"exitCode", exitCode,
			"stderr", diag)
		return "", &ExitError{Args: args, ExitCode: exitCode, Stderr: diag, Cause: cause}
	}

	return decodeOutput(stdout.Bytes()), nil
}

// decodeOutput turns raw git output into a string. Valid UTF-8 passes
// through; anything else is re-decoded lossily as ISO-8859-1, which is
// total over all byte values. Output is never dropped for encoding reasons.
func decodeOutput(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	decoded, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		// ISO-8859-1 maps every byte; this path is unreachable in practice.
		return string(b)
	}
	return string(decoded)
}
