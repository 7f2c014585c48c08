package winget

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExecRunnerCapturesStdoutOnly(t *testing.T) {
	t.Parallel()

	binDir := t.TempDir()
	writeScript(t, binDir, "winget", `#!/bin/sh
echo "diagnostic noise" >&2
echo '{"Id":"Git.Git","Version":"2.44.0"}'
exit 0
`)

	runner := NewRunner(filepath.Join(binDir, "winget"), 0)
	out, err := runner.Run(context.Background(), "list", "--id", "Git.Git")
	require.NoError(t, err)
	require.Contains(t, out, `"Id":"Git.Git"`)
	require.NotContains(t, out, "diagnostic noise")
}

func TestExecRunnerReturnsOutputWithExitError(t *testing.T) {
	t.Parallel()

	binDir := t.TempDir()
	writeScript(t, binDir, "winget", `#!/bin/sh
echo "No installed package found matching input criteria."
exit 1
`)

	runner := NewRunner(filepath.Join(binDir, "winget"), 0)
	out, err := runner.Run(context.Background(), "list", "--id", "Missing.App")
	require.Error(t, err)
	require.Contains(t, out, "No installed package found")
}

func TestExecRunnerEnforcesTimeout(t *testing.T) {
	t.Parallel()

	binDir := t.TempDir()
	writeScript(t, binDir, "winget", `#!/bin/sh
sleep 5
echo "too late"
`)

	runner := NewRunner(filepath.Join(binDir, "winget"), 100*time.Millisecond)

	start := time.Now()
	_, err := runner.Run(context.Background(), "list")
	require.Error(t, err)
	require.Less(t, time.Since(start), 3*time.Second)
}

func TestNewRunnerDefaultsTimeout(t *testing.T) {
	t.Parallel()

	runner := NewRunner("winget", 0)
	require.Equal(t, DefaultTimeout, runner.Timeout)
}
