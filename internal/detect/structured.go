package detect

import (
	"context"

	"github.com/fleetyard/wingetprobe/internal/winget"
	proberrors "github.com/fleetyard/wingetprobe/pkg/errors"
)

type structuredStrategy struct {
	runner winget.Runner
}

// NewStructuredStrategy performs an exact-identifier lookup requesting the
// tool's machine-readable output. This is the most reliable strategy and
// runs first.
func NewStructuredStrategy(runner winget.Runner) Strategy {
	return &structuredStrategy{runner: runner}
}

func (s *structuredStrategy) Name() string { return "structured" }

func (s *structuredStrategy) Lookup(ctx context.Context, packageID string) (*Candidate, error) {
	out, err := s.runner.Run(ctx, "list", "--id", packageID, "--exact", "--accept-source-agreements", "--output", "json")
	if err != nil {
		return nil, proberrors.NewLookupError(s.Name(), err)
	}

	records, err := decodeRecords(out)
	if err != nil {
		return nil, proberrors.NewParseError(s.Name(), err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	return records[0].candidate(), nil
}
