// Package detect implements the multi-strategy package lookup pipeline and
// the orchestration that turns a lookup into an exit code.
package detect

// Candidate is the normalized package record produced by a lookup strategy.
// A Candidate is only ever constructed from tool output; at most one is
// carried forward per invocation.
type Candidate struct {
	Name    string
	ID      string
	Version string
	Source  string
}

// Outcome is the terminal classification of a single detection run.
type Outcome int

const (
	// NotDetected means the tool was unusable or no strategy found the package.
	NotDetected Outcome = iota
	// VersionTooLow means the package is present below the required minimum.
	VersionTooLow
	// Satisfied means the package is present and meets the requirement.
	Satisfied
)

// Exit codes are the probe's only contract with the scheduling agent.
const (
	ExitSatisfied     = 0
	ExitVersionTooLow = 4
	ExitNotDetected   = 10
)

// ExitCode maps the outcome onto the agent-facing exit code.
func (o Outcome) ExitCode() int {
	switch o {
	case Satisfied:
		return ExitSatisfied
	case VersionTooLow:
		return ExitVersionTooLow
	default:
		return ExitNotDetected
	}
}

// String returns the canonical name of the outcome.
func (o Outcome) String() string {
	switch o {
	case Satisfied:
		return "satisfied"
	case VersionTooLow:
		return "version_too_low"
	default:
		return "not_detected"
	}
}

// MoreSevere reports whether o ranks above other when aggregating several
// detections into a single exit code.
func (o Outcome) MoreSevere(other Outcome) bool {
	return severity(o) > severity(other)
}

func severity(o Outcome) int {
	switch o {
	case NotDetected:
		return 2
	case VersionTooLow:
		return 1
	default:
		return 0
	}
}
