package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBroadStrategy_MatchesOnID(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: `[{"Name":"Git LFS","Id":"Git.LFS","Version":"3.0"},{"Name":"Git","Id":"Git.Git","Version":"2.44.0"}]`}
	strategy := NewBroadStrategy(runner)

	candidate, err := strategy.Lookup(context.Background(), "Git.Git")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	require.Equal(t, "Git.Git", candidate.ID)
	require.Equal(t, "2.44.0", candidate.Version)

	require.Len(t, runner.calls, 1)
	require.Equal(t, []string{"list", "Git.Git", "--accept-source-agreements", "--output", "json"}, runner.calls[0])
}

func TestBroadStrategy_MatchesOnName(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: `[{"Name":"7-Zip","Id":"7zip.7zip","Version":"23.01"}]`}
	strategy := NewBroadStrategy(runner)

	candidate, err := strategy.Lookup(context.Background(), "7-Zip")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	require.Equal(t, "7zip.7zip", candidate.ID)
}

func TestBroadStrategy_MatchIsCaseSensitive(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: `[{"Name":"git","Id":"git.git","Version":"2.44.0"}]`}
	strategy := NewBroadStrategy(runner)

	candidate, err := strategy.Lookup(context.Background(), "Git.Git")
	require.NoError(t, err)
	require.Nil(t, candidate, "a near-miss result set must not count as a detection")
}

func TestBroadStrategy_NoMatchIsAbsent(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: `[{"Name":"Git Extensions","Id":"GitExtensions.GitExtensions","Version":"4.0"}]`}
	strategy := NewBroadStrategy(runner)

	candidate, err := strategy.Lookup(context.Background(), "Git.Git")
	require.NoError(t, err)
	require.Nil(t, candidate)
}

func TestBroadStrategy_SingleObjectOutput(t *testing.T) {
	t.Parallel()

	runner := &fakeRunner{output: `{"Name":"Git","Id":"Git.Git","Version":"2.44.0"}`}
	strategy := NewBroadStrategy(runner)

	candidate, err := strategy.Lookup(context.Background(), "Git.Git")
	require.NoError(t, err)
	require.NotNil(t, candidate)
	require.Equal(t, "Git.Git", candidate.ID)
}
