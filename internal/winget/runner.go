package winget

import (
	"bytes"
	"context"
	"io"
	"os/exec"
	"time"
)

// DefaultTimeout bounds a single tool invocation so a hung child process
// cannot stall the probe indefinitely.
const DefaultTimeout = 30 * time.Second

// Runner executes the package-management tool and captures its standard
// output. The diagnostic stream is discarded; only stdout is consumed.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner invokes a fixed executable as a blocking child process.
type ExecRunner struct {
	Path    string
	Timeout time.Duration
}

var _ Runner = (*ExecRunner)(nil)

// NewRunner creates an ExecRunner for the tool at path. A non-positive
// timeout falls back to DefaultTimeout.
func NewRunner(path string, timeout time.Duration) *ExecRunner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ExecRunner{Path: path, Timeout: timeout}
}

// Run executes the tool with the given arguments. The captured stdout is
// returned even when the tool exits non-zero, so callers can decide whether
// partial output is usable.
func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, r.Path, args...)
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = io.Discard

	err := cmd.Run()
	return stdout.String(), err
}
