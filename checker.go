package oxidecompat

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// sentinelVersion stands in for "no actual version available", e.g. in
// results for dependencies that are not installed at all.
func sentinelVersion() *semver.Version {
	return newVersion(0, 0, 0)
}

// Checker evaluates ecosystem components against one reference core
// version. It is a pure decision engine: it performs no I/O, never
// mutates its inputs, and reports every outcome as structured data.
//
// A Checker is safe for concurrent use once constructed.
type Checker struct {
	reference *semver.Version
	logger    logger
}

// NewChecker creates a checker for the given installed core version.
func NewChecker(reference *semver.Version, opts ...Option) *Checker {
	c := &Checker{reference: reference}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reference returns the core version this checker evaluates against.
func (c *Checker) Reference() *semver.Version {
	return c.reference
}

// CheckComponent reports whether a component's core requirement accepts
// the reference version. On failure the result carries an explanation
// and, when one of the suggestion heuristics applies, a suggested fix.
func (c *Checker) CheckComponent(component *ComponentVersion) CompatibilityResult {
	if component.CoreRequirement.Matches(c.reference) {
		c.logger.debug("component compatible",
			"component", component.Name, "requirement", component.CoreRequirement.String())
		return compatibleResult(component.Name, component.Version, component.CoreRequirement, c.reference)
	}

	suggestion := c.suggestFix(component)
	c.logger.debug("component incompatible",
		"component", component.Name, "requirement", component.CoreRequirement.String(),
		"reference", c.reference.String())
	return incompatibleResult(
		component.Name,
		component.Version,
		component.CoreRequirement,
		c.reference,
		fmt.Sprintf("%s %s requires OxideKit %s, but %s is installed",
			component.Type, component.Name, component.CoreRequirement, c.reference),
		suggestion,
	)
}

// suggestFix proposes a remedy for an incompatible component. The
// heuristic has two branches: upgrade the core when the requirement's
// minimum lies above the reference, or fall back to an older component
// release when its maximum lies at or below the reference. Requirements
// that fail for any other reason yield no suggestion.
func (c *Checker) suggestFix(component *ComponentVersion) string {
	if min := component.CoreRequirement.MinVersion(); min != nil && min.GreaterThan(c.reference) {
		return fmt.Sprintf("Upgrade OxideKit core to version %s or higher", min)
	}

	if max := component.CoreRequirement.MaxVersion(); max != nil && !max.GreaterThan(c.reference) {
		return fmt.Sprintf("Use an older version of %s compatible with OxideKit %s",
			component.Name, c.reference)
	}

	return ""
}

// CheckDependencies evaluates a component's required dependencies
// against a catalog of available components. Results keep the
// declaration order of the dependency list; optional dependencies are
// omitted entirely, not reported as passing. Lookup in the catalog is
// by (name, type), first match wins.
func (c *Checker) CheckDependencies(component *ComponentVersion, available []ComponentVersion) []CompatibilityResult {
	var results []CompatibilityResult

	for _, dep := range component.Dependencies {
		if dep.Optional {
			continue
		}

		found := findComponent(available, dep.Name, dep.Type)
		if found == nil {
			results = append(results, incompatibleResult(
				dep.Name,
				sentinelVersion(),
				dep.Requirement,
				sentinelVersion(),
				fmt.Sprintf("Required %s '%s' is not installed", dep.Type, dep.Name),
				fmt.Sprintf("Install %s version %s", dep.Name, dep.Requirement),
			))
			continue
		}

		if dep.Requirement.Matches(found.Version) {
			results = append(results, compatibleResult(dep.Name, found.Version, dep.Requirement, found.Version))
		} else {
			results = append(results, incompatibleResult(
				dep.Name,
				found.Version,
				dep.Requirement,
				found.Version,
				fmt.Sprintf("%s requires %s %s, but %s is available",
					component.Name, dep.Name, dep.Requirement, found.Version),
				fmt.Sprintf("Install %s version %s", dep.Name, dep.Requirement),
			))
		}
	}

	return results
}

// findComponent returns the first catalog entry matching (name, type),
// or nil. Multiple candidates are not disambiguated.
func findComponent(available []ComponentVersion, name string, componentType ComponentType) *ComponentVersion {
	for i := range available {
		if available[i].Name == name && available[i].Type == componentType {
			return &available[i]
		}
	}
	return nil
}

// UpgradeAnalysis is the outcome of diffing two versions of the same
// component for upgrade safety. Warnings never block; blocking issues
// do. Safe and BlockingIssues are set independently by the analysis
// rules, though every current rule keeps them coupled
// (Safe == len(BlockingIssues) == 0).
type UpgradeAnalysis struct {
	// Safe reports whether the upgrade can proceed.
	Safe bool `json:"safe"`

	// Warnings are non-blocking observations about the upgrade.
	Warnings []string `json:"warnings,omitempty"`

	// BlockingIssues prevent the upgrade.
	BlockingIssues []string `json:"blocking_issues,omitempty"`
}

// Report renders the analysis as a human-readable block of text.
func (a *UpgradeAnalysis) Report() string {
	var b strings.Builder

	if a.Safe {
		b.WriteString("Upgrade is safe to proceed.\n")
	} else {
		b.WriteString("Upgrade is BLOCKED due to compatibility issues:\n")
		for _, issue := range a.BlockingIssues {
			fmt.Fprintf(&b, "  - %s\n", issue)
		}
	}

	if len(a.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, warning := range a.Warnings {
			fmt.Fprintf(&b, "  - %s\n", warning)
		}
	}

	return b.String()
}

// CheckUpgradeSafety diffs two versions of one component. The rules are
// independent; every rule that matches contributes to the analysis:
//
//   - a major version bump warns about possible breaking changes
//   - a changed core requirement that no longer accepts the reference
//     version blocks the upgrade
//   - changed and newly required dependencies each warn
//
// Removed or unchanged dependencies produce no entry.
func (c *Checker) CheckUpgradeSafety(from, to *ComponentVersion) UpgradeAnalysis {
	analysis := UpgradeAnalysis{Safe: true}

	if to.Version.Major() > from.Version.Major() {
		analysis.Warnings = append(analysis.Warnings, fmt.Sprintf(
			"Major version upgrade from %s to %s may include breaking changes",
			from.Version, to.Version))
	}

	if !from.CoreRequirement.Equal(to.CoreRequirement) && !to.CoreRequirement.Matches(c.reference) {
		analysis.Safe = false
		analysis.BlockingIssues = append(analysis.BlockingIssues, fmt.Sprintf(
			"New version requires OxideKit %s, but %s is installed",
			to.CoreRequirement, c.reference))
	}

	for _, newDep := range to.Dependencies {
		oldDep := findDependency(from.Dependencies, newDep.Name)
		switch {
		case oldDep != nil && !oldDep.Requirement.Equal(newDep.Requirement):
			analysis.Warnings = append(analysis.Warnings, fmt.Sprintf(
				"Dependency '%s' requirement changed from %s to %s",
				newDep.Name, oldDep.Requirement, newDep.Requirement))
		case oldDep == nil && !newDep.Optional:
			analysis.Warnings = append(analysis.Warnings, fmt.Sprintf(
				"New required dependency: %s %s", newDep.Name, newDep.Requirement))
		}
	}

	c.logger.debug("upgrade analyzed",
		"component", to.Name,
		"safe", analysis.Safe,
		"warnings", len(analysis.Warnings),
		"blocking", len(analysis.BlockingIssues))

	return analysis
}

// findDependency returns the dependency with the given name, or nil.
func findDependency(deps []ComponentDependency, name string) *ComponentDependency {
	for i := range deps {
		if deps[i].Name == name {
			return &deps[i]
		}
	}
	return nil
}
