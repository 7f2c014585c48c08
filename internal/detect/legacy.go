package detect

import (
	"context"
	"strings"

	"github.com/fleetyard/wingetprobe/internal/winget"
	proberrors "github.com/fleetyard/wingetprobe/pkg/errors"
)

type legacyStrategy struct {
	runner winget.Runner
}

// NewLegacyStrategy parses the tool's human-readable tabular output using
// column offsets inferred from the header row. Column slicing breaks under
// localized or reordered headers, so this is a last resort behind the two
// structured strategies.
func NewLegacyStrategy(runner winget.Runner) Strategy {
	return &legacyStrategy{runner: runner}
}

func (s *legacyStrategy) Name() string { return "legacy" }

func (s *legacyStrategy) Lookup(ctx context.Context, packageID string) (*Candidate, error) {
	out, err := s.runner.Run(ctx, "list", "--id", packageID, "--exact", "--accept-source-agreements")
	if err != nil {
		return nil, proberrors.NewLookupError(s.Name(), err)
	}

	return parseTabular(out), nil
}

// parseTabular slices the last data row at the header's "Id" and "Version"
// offsets. An exact single-identifier query is expected to yield one data
// row; with several, only the last is used. Tabular output carries no
// reliable source column, so Source stays empty.
func parseTabular(output string) *Candidate {
	lines := nonBlankLines(output)
	if len(lines) < 2 {
		return nil
	}

	header := lines[0]
	idIdx := indexFold(header, "Id")
	versionIdx := indexFold(header, "Version")
	if idIdx < 0 || versionIdx < 0 {
		return nil
	}

	row := []rune(lines[len(lines)-1])
	name := sliceColumn(row, 0, idIdx)
	id := sliceColumn(row, idIdx, versionIdx)
	version := sliceColumn(row, versionIdx, len(row))

	// Drop trailing columns such as an "Available" version.
	if fields := strings.Fields(version); len(fields) > 0 {
		version = fields[0]
	}

	return &Candidate{Name: name, ID: id, Version: version}
}

func nonBlankLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, strings.TrimRight(line, "\r"))
		}
	}
	return lines
}

func indexFold(s, substr string) int {
	return strings.Index(strings.ToLower(s), strings.ToLower(substr))
}

func sliceColumn(row []rune, from, to int) string {
	if from < 0 {
		from = 0
	}
	if to > len(row) {
		to = len(row)
	}
	if from >= to {
		return ""
	}
	return strings.TrimSpace(string(row[from:to]))
}
