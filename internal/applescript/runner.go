package applescript

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a full shell command line and returns its stdout. A non-zero
// exit surfaces as an error carrying the combined error text, stderr included.
type Runner interface {
	Run(ctx context.Context, commandLine string) (string, error)
}

// ShellRunner runs command lines through a POSIX shell. Each call is one
// independent subprocess: start, block until exit, capture output. No timeout
// and no retry here; callers that need a deadline put one on the context.
type ShellRunner struct {
	Shell string
}

// NewShellRunner returns a runner using the given shell, or /bin/sh if empty.
func NewShellRunner(shell string) *ShellRunner {
	if shell == "" {
		shell = "/bin/sh"
	}
	return &ShellRunner{Shell: shell}
}

func (r *ShellRunner) Run(ctx context.Context, commandLine string) (string, error) {
	cmd := exec.CommandContext(ctx, r.Shell, "-c", commandLine)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", err
		}
		return "", fmt.Errorf("%w: %s", err, msg)
	}
	return stdout.String(), nil
}
