package detect

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/fleetyard/wingetprobe/internal/winget"
)

// Strategy is one self-contained way of obtaining a candidate from the
// package-management tool. Strategies are ordered by decreasing reliability
// and tried in sequence until one yields a candidate. A nil candidate with a
// nil error means the strategy found nothing; returned errors are logged and
// absorbed by the detector, never surfaced to the caller.
type Strategy interface {
	Name() string
	Lookup(ctx context.Context, packageID string) (*Candidate, error)
}

// StrategyFactory builds the ordered strategy list for a resolved tool path.
type StrategyFactory func(toolPath string) []Strategy

// DefaultStrategies returns the production factory: exact structured lookup,
// then broad structured lookup, then the legacy tabular fallback, all backed
// by one ExecRunner with the given per-invocation timeout.
func DefaultStrategies(timeout time.Duration) StrategyFactory {
	return func(toolPath string) []Strategy {
		runner := winget.NewRunner(toolPath, timeout)
		return []Strategy{
			NewStructuredStrategy(runner),
			NewBroadStrategy(runner),
			NewLegacyStrategy(runner),
		}
	}
}

// listRecord mirrors one entry of winget's JSON list output. Field casing
// follows what the tool emits.
type listRecord struct {
	Name    string `json:"Name"`
	ID      string `json:"Id"`
	Version string `json:"Version"`
	Source  string `json:"Source"`
}

func (r listRecord) candidate() *Candidate {
	return &Candidate{Name: r.Name, ID: r.ID, Version: r.Version, Source: r.Source}
}

// decodeRecords normalizes the tool's JSON output, which may be a single
// object or an array of objects, into a flat record list. Blank output is
// not an error; it decodes to no records.
func decodeRecords(output string) ([]listRecord, error) {
	trimmed := strings.TrimSpace(output)
	if trimmed == "" {
		return nil, nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var records []listRecord
		if err := json.Unmarshal([]byte(trimmed), &records); err != nil {
			return nil, err
		}
		return records, nil
	}

	var record listRecord
	if err := json.Unmarshal([]byte(trimmed), &record); err != nil {
		return nil, err
	}
	return []listRecord{record}, nil
}
