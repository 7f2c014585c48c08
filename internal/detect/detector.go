package detect

import (
	"context"
	"strings"

	"github.com/fleetyard/wingetprobe/internal/logger"
	"github.com/fleetyard/wingetprobe/internal/version"
)

// ToolLocator resolves the package-management executable. The boolean result
// is false when no usable path exists, which terminates detection with
// NotDetected.
type ToolLocator interface {
	Locate() (string, bool)
}

// Request describes one detection to perform. A blank MinVersion means any
// installed version satisfies the requirement.
type Request struct {
	PackageID  string
	MinVersion string
}

// Detector sequences the lookup strategies over a located tool and maps the
// first candidate, if any, through the version comparison policy. It holds
// no state between runs.
type Detector struct {
	locator    ToolLocator
	strategies StrategyFactory
	log        *logger.Logger
}

// NewDetector wires a detector from its collaborators. The logger may be nil
// for tests; all logging is nil-safe.
func NewDetector(locator ToolLocator, strategies StrategyFactory, log *logger.Logger) *Detector {
	return &Detector{locator: locator, strategies: strategies, log: log}
}

// Detect runs the full pipeline for one request. Every strategy failure is
// absorbed into "try the next strategy"; the outcome is the only signal the
// caller receives.
func (d *Detector) Detect(ctx context.Context, req Request) Outcome {
	toolPath, found := d.locator.Locate()
	if !found {
		d.log.Warn("winget executable not found; package cannot be detected")
		return NotDetected
	}

	log := d.log.WithFields(map[string]any{"tool": toolPath, "package": req.PackageID})

	candidate := d.findCandidate(ctx, log, toolPath, req.PackageID)
	if candidate == nil {
		log.Info("no strategy produced a candidate")
		return NotDetected
	}

	log.WithFields(map[string]any{
		"id":        candidate.ID,
		"installed": candidate.Version,
		"required":  req.MinVersion,
	}).Info("candidate found")

	if strings.TrimSpace(req.MinVersion) == "" {
		return Satisfied
	}

	if version.Compare(req.MinVersion, candidate.Version) == version.Lower {
		return VersionTooLow
	}
	return Satisfied
}

func (d *Detector) findCandidate(ctx context.Context, log *logger.Logger, toolPath, packageID string) *Candidate {
	for _, strategy := range d.strategies(toolPath) {
		slog := log.WithFields(map[string]any{"strategy": strategy.Name()})

		candidate, err := strategy.Lookup(ctx, packageID)
		if err != nil {
			slog.Error(err, "strategy failed; continuing with next")
			continue
		}
		if candidate != nil {
			return candidate
		}
		slog.Debug("strategy found nothing")
	}
	return nil
}
