package detect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeRunner returns canned output for every invocation and records the
// arguments it was called with.
type fakeRunner struct {
	output string
	err    error
	calls  [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (string, error) {
	f.calls = append(f.calls, args)
	return f.output, f.err
}

func TestDecodeRecords_SingleObject(t *testing.T) {
	t.Parallel()

	records, err := decodeRecords(`{"Name":"Git","Id":"Git.Git","Version":"2.44.0","Source":"winget"}`)
	require.NoError(t, err)
	require.Len(t, records, 1)
	require.Equal(t, "Git.Git", records[0].ID)
	require.Equal(t, "winget", records[0].Source)
}

func TestDecodeRecords_Array(t *testing.T) {
	t.Parallel()

	records, err := decodeRecords(`[{"Id":"A.App","Version":"1.0"},{"Id":"B.App","Version":"2.0"}]`)
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.Equal(t, "A.App", records[0].ID)
}

func TestDecodeRecords_BlankOutput(t *testing.T) {
	t.Parallel()

	records, err := decodeRecords("   \n\t")
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestDecodeRecords_MalformedOutput(t *testing.T) {
	t.Parallel()

	_, err := decodeRecords(`{"Id":`)
	require.Error(t, err)

	_, err = decodeRecords(`[{"Id":"A"}`)
	require.Error(t, err)
}

func TestDecodeRecords_MissingFieldsBecomeEmpty(t *testing.T) {
	t.Parallel()

	records, err := decodeRecords(`{"Id":"Tool.Tool"}`)
	require.NoError(t, err)
	require.Len(t, records, 1)

	candidate := records[0].candidate()
	require.Equal(t, "Tool.Tool", candidate.ID)
	require.Empty(t, candidate.Name)
	require.Empty(t, candidate.Version)
	require.Empty(t, candidate.Source)
}
