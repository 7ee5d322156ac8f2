package requirements

import "github.com/Masterminds/semver/v3"

// Kind classifies the result of a single requirement check.
type Kind int

const (
	// Satisfied means the requirement is met.
	Satisfied Kind = iota
	// VersionUnsatisfied means the tool runs but reports a version below the minimum.
	VersionUnsatisfied
	// SubsystemUnusable means a sub-tool exists on the path but refuses the subcommand.
	SubsystemUnusable
	// ToolAbsent means the executable could not be found.
	ToolAbsent
	// CapabilityMissing means a required platform capability is not reported.
	CapabilityMissing
)

func (k Kind) String() string {
	switch k {
	case Satisfied:
		return "satisfied"
	case VersionUnsatisfied:
		return "version-unsatisfied"
	case SubsystemUnusable:
		return "subsystem-unusable"
	case ToolAbsent:
		return "tool-absent"
	case CapabilityMissing:
		return "capability-missing"
	default:
		return "unknown"
	}
}

// CheckResult is the outcome of checking one Requirement.
type CheckResult struct {
	// Requirement is the display name of the checked requirement.
	Requirement string
	Kind        Kind
	// Message is the human-readable, actionable diagnostic. Empty when satisfied.
	Message string
	// Tool is set for ToolAbsent.
	Tool string
	// Capability is set for CapabilityMissing.
	Capability string
	// Minimum and Installed are set for VersionUnsatisfied.
	Minimum   *semver.Version
	Installed *semver.Version
}

// OK reports whether the requirement was met.
func (r CheckResult) OK() bool { return r.Kind == Satisfied }

// Outcome aggregates a verification run. Only the first failure is kept.
type Outcome struct {
	Failure *CheckResult
}

// AllSatisfied reports whether every requirement passed.
func (o *Outcome) AllSatisfied() bool { return o.Failure == nil }

// Err returns the first failure as an *UnmetError, or nil.
func (o *Outcome) Err() error {
	if o.Failure == nil {
		return nil
	}
	return &UnmetError{Result: *o.Failure}
}

// UnmetError wraps a failed CheckResult so it can travel as an error.
type UnmetError struct {
	Result CheckResult
}

func (e *UnmetError) Error() string { return e.Result.Message }
