package oxidecompat

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// ComponentType classifies an artifact in the OxideKit ecosystem.
// The string value is the canonical lowercase form used in manifests
// and JSON output.
type ComponentType string

const (
	// TypeCore is the OxideKit core runtime.
	TypeCore ComponentType = "core"

	// TypePlugin extends core functionality.
	TypePlugin ComponentType = "plugin"

	// TypeTheme provides styling and appearance.
	TypeTheme ComponentType = "theme"

	// TypeStarter is a project scaffolding template.
	TypeStarter ComponentType = "starter"
)

// String returns the lowercase display form.
func (t ComponentType) String() string {
	return string(t)
}

// IsValid reports whether t is one of the four known component types.
func (t ComponentType) IsValid() bool {
	switch t {
	case TypeCore, TypePlugin, TypeTheme, TypeStarter:
		return true
	}
	return false
}

// ParseComponentType converts a manifest string into a ComponentType.
func ParseComponentType(s string) (ComponentType, error) {
	t := ComponentType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown component type %q", s)
	}
	return t, nil
}

// ComponentVersion describes one versioned artifact and the peers it
// requires. Identity for catalog lookups is (Name, Type); this package
// does not enforce uniqueness of Version per identity.
type ComponentVersion struct {
	// Name is the component name.
	Name string `json:"name"`

	// Type is the kind of component (core, plugin, theme, starter).
	Type ComponentType `json:"type"`

	// Version is the component's own version.
	Version *semver.Version `json:"version"`

	// CoreRequirement is the OxideKit core version range this component
	// declares it works with.
	CoreRequirement Requirement `json:"core_requirement"`

	// Dependencies lists required and optional peer components, in
	// declaration order.
	Dependencies []ComponentDependency `json:"dependencies,omitempty"`
}

// NewComponentVersion creates a component with no dependencies.
func NewComponentVersion(name string, componentType ComponentType, version *semver.Version, coreReq Requirement) *ComponentVersion {
	return &ComponentVersion{
		Name:            name,
		Type:            componentType,
		Version:         version,
		CoreRequirement: coreReq,
	}
}

// AddDependency appends a dependency, preserving declaration order.
func (c *ComponentVersion) AddDependency(dep ComponentDependency) {
	c.Dependencies = append(c.Dependencies, dep)
}

// WithDependency appends a dependency and returns the component,
// allowing chained construction.
func (c *ComponentVersion) WithDependency(dep ComponentDependency) *ComponentVersion {
	c.AddDependency(dep)
	return c
}

// IsCompatibleWithCore reports whether this component accepts the given
// core version.
func (c *ComponentVersion) IsCompatibleWithCore(coreVersion *semver.Version) bool {
	return c.CoreRequirement.Matches(coreVersion)
}

// ComponentDependency declares a requirement on another component.
type ComponentDependency struct {
	// Name of the required component.
	Name string `json:"name"`

	// Type of the required component.
	Type ComponentType `json:"type"`

	// Requirement is the acceptable version range.
	Requirement Requirement `json:"requirement"`

	// Optional dependencies are always skipped by required-dependency
	// checks.
	Optional bool `json:"optional,omitempty"`
}

// RequiredDependency creates a non-optional dependency.
func RequiredDependency(name string, componentType ComponentType, req Requirement) ComponentDependency {
	return ComponentDependency{
		Name:        name,
		Type:        componentType,
		Requirement: req,
	}
}

// OptionalDependency creates an optional dependency.
func OptionalDependency(name string, componentType ComponentType, req Requirement) ComponentDependency {
	return ComponentDependency{
		Name:        name,
		Type:        componentType,
		Requirement: req,
		Optional:    true,
	}
}
