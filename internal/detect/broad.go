package detect

import (
	"context"

	"github.com/fleetyard/wingetprobe/internal/winget"
	proberrors "github.com/fleetyard/wingetprobe/pkg/errors"
)

type broadStrategy struct {
	runner winget.Runner
}

// NewBroadStrategy queries the tool with the identifier as free text and
// filters the result set for an exact identifier-or-name match. It only runs
// when the structured exact lookup found nothing.
func NewBroadStrategy(runner winget.Runner) Strategy {
	return &broadStrategy{runner: runner}
}

func (s *broadStrategy) Name() string { return "broad" }

func (s *broadStrategy) Lookup(ctx context.Context, packageID string) (*Candidate, error) {
	out, err := s.runner.Run(ctx, "list", packageID, "--accept-source-agreements", "--output", "json")
	if err != nil {
		return nil, proberrors.NewLookupError(s.Name(), err)
	}

	records, err := decodeRecords(out)
	if err != nil {
		return nil, proberrors.NewParseError(s.Name(), err)
	}

	// A free-text query can match unrelated packages; only an exact Id or
	// Name match counts as a detection.
	for _, record := range records {
		if record.ID == packageID || record.Name == packageID {
			return record.candidate(), nil
		}
	}

	return nil, nil
}
