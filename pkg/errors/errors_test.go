package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("structured", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "structured", parseErr.Strategy)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "structured")
	require.Contains(t, err.Error(), "unexpected token")
}

func TestParseErrorWithoutStrategy(t *testing.T) {
	t.Parallel()

	err := NewParseError("", fmt.Errorf("truncated output"))
	require.Equal(t, "parse error: truncated output", err.Error())
}

func TestLookupErrorIncludesStrategyContext(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("exit status 1")
	err := NewLookupError("broad", underlying)

	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	require.Equal(t, "broad", lookupErr.Strategy)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "broad")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var lookupErr *LookupError
	require.Equal(t, "", parseErr.Error())
	require.Equal(t, "", lookupErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Nil(t, lookupErr.Unwrap())
}
