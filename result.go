package oxidecompat

import "github.com/Masterminds/semver/v3"

// CompatibilityLevel is the coarse classification of a compatibility
// decision. The taxonomy is closed at four levels; current producers
// only ever emit LevelFull and LevelNone. LevelPartial and
// LevelUnknown exist so future producers can report degraded or
// unverifiable compatibility without an API break.
type CompatibilityLevel string

const (
	// LevelFull means fully compatible, no issues.
	LevelFull CompatibilityLevel = "full"

	// LevelPartial means compatible with warnings (deprecated features
	// in use, etc.). Not produced by any current check.
	LevelPartial CompatibilityLevel = "partial"

	// LevelUnknown means compatibility could not be verified. Not
	// produced by any current check.
	LevelUnknown CompatibilityLevel = "unknown"

	// LevelNone means not compatible.
	LevelNone CompatibilityLevel = "none"
)

// String returns the human-readable phrase for the level.
func (l CompatibilityLevel) String() string {
	switch l {
	case LevelFull:
		return "compatible"
	case LevelPartial:
		return "partially compatible"
	case LevelUnknown:
		return "unknown compatibility"
	case LevelNone:
		return "incompatible"
	}
	return string(l)
}

// CompatibilityResult is the outcome of a single compatibility
// decision. It is structured data, never an error: callers decide
// whether an incompatible result blocks anything.
type CompatibilityResult struct {
	// Compatible reports whether the check passed.
	Compatible bool `json:"compatible"`

	// Level classifies the result.
	Level CompatibilityLevel `json:"level"`

	// Component is the name of the component that was checked.
	Component string `json:"component"`

	// Version is the checked component's version. The sentinel 0.0.0
	// stands in when no version is available (missing dependency).
	Version *semver.Version `json:"version"`

	// Required is the requirement that was evaluated.
	Required Requirement `json:"required"`

	// Actual is the version the requirement was evaluated against.
	// The sentinel 0.0.0 stands in when nothing was installed.
	Actual *semver.Version `json:"actual"`

	// Explanation is a human-readable account of the decision.
	Explanation string `json:"explanation"`

	// Suggestion proposes a fix for incompatible results, when one of
	// the suggestion heuristics applies. Empty otherwise.
	Suggestion string `json:"suggestion,omitempty"`
}

// compatibleResult builds a passing result with the fixed explanation.
func compatibleResult(component string, version *semver.Version, required Requirement, actual *semver.Version) CompatibilityResult {
	return CompatibilityResult{
		Compatible:  true,
		Level:       LevelFull,
		Component:   component,
		Version:     version,
		Required:    required,
		Actual:      actual,
		Explanation: "Versions are compatible",
	}
}

// incompatibleResult builds a failing result.
func incompatibleResult(component string, version *semver.Version, required Requirement, actual *semver.Version, explanation, suggestion string) CompatibilityResult {
	return CompatibilityResult{
		Compatible:  false,
		Level:       LevelNone,
		Component:   component,
		Version:     version,
		Required:    required,
		Actual:      actual,
		Explanation: explanation,
		Suggestion:  suggestion,
	}
}
