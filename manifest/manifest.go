package manifest

import (
	"fmt"
	"sort"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"

	oxidecompat "github.com/oxidekit/go-oxidecompat"
)

// Manifest is a parsed oxide.toml component manifest.
type Manifest struct {
	// Package holds the component's identity.
	Package PackageInfo `toml:"package"`

	// Compatibility declares which core versions the component works
	// with.
	Compatibility CompatibilitySpec `toml:"compatibility"`

	// Dependencies declares required plugins and themes.
	Dependencies DependencySpec `toml:"dependencies"`
}

// PackageInfo is the [package] section of a manifest.
type PackageInfo struct {
	// Name is the package name.
	Name string `toml:"name"`

	// Version is the package version string.
	Version string `toml:"version"`

	// Description is a short human-readable description.
	Description string `toml:"description"`

	// Type is the component type: core, plugin, theme or starter.
	Type oxidecompat.ComponentType `toml:"type"`

	// Authors lists the package authors.
	Authors []string `toml:"authors"`

	// License is the SPDX license identifier, if declared.
	License string `toml:"license"`

	// Repository is the source repository URL, if declared.
	Repository string `toml:"repository"`
}

// CompatibilitySpec is the [compatibility] section of a manifest.
type CompatibilitySpec struct {
	// OxideKit is the required core version range. Defaults to "*"
	// when the section or field is absent.
	OxideKit string `toml:"oxidekit"`

	// Rust is the minimum Rust toolchain version, if applicable.
	Rust string `toml:"rust"`
}

// DependencySpec is the [dependencies] section of a manifest.
type DependencySpec struct {
	// Plugins maps plugin names to their requirements.
	Plugins map[string]DependencyEntry `toml:"plugins"`

	// Themes maps theme names to their requirements.
	Themes map[string]DependencyEntry `toml:"themes"`
}

// DependencyEntry is one dependency declaration. In TOML it is either a
// bare version string:
//
//	icons = "^1.0.0"
//
// or a detailed record:
//
//	icons = { version = "^1.0.0", optional = true, features = ["svg"] }
type DependencyEntry struct {
	// Version is the requirement expression.
	Version string

	// Optional marks the dependency as skippable.
	Optional bool

	// Features lists the dependency features to enable.
	Features []string
}

// UnmarshalTOML accepts both the bare-string and detailed forms.
func (e *DependencyEntry) UnmarshalTOML(v any) error {
	switch value := v.(type) {
	case string:
		e.Version = value
		return nil
	case map[string]any:
		if s, ok := value["version"].(string); ok {
			e.Version = s
		}
		if b, ok := value["optional"].(bool); ok {
			e.Optional = b
		}
		if features, ok := value["features"].([]any); ok {
			for _, f := range features {
				if s, ok := f.(string); ok {
					e.Features = append(e.Features, s)
				}
			}
		}
		return nil
	}
	return fmt.Errorf("dependency entry must be a version string or a table, got %T", v)
}

// Parse reads an oxide.toml document. Parse failures wrap
// oxidecompat.ErrManifestParse; this is the module's only true error
// condition.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%w: %v", oxidecompat.ErrManifestParse, err)
	}

	if m.Compatibility.OxideKit == "" {
		m.Compatibility.OxideKit = "*"
	}

	if !m.Package.Type.IsValid() {
		return nil, fmt.Errorf("%w: unknown component type %q", oxidecompat.ErrManifestParse, string(m.Package.Type))
	}

	return &m, nil
}

// ComponentVersion converts the manifest into a checker-ready
// component. Requirement and version strings are parsed here;
// failures wrap oxidecompat.ErrManifestParse. Plugin dependencies come
// before theme dependencies, each group in name order, so the result
// is deterministic despite the map-shaped TOML sections.
func (m *Manifest) ComponentVersion() (*oxidecompat.ComponentVersion, error) {
	version, err := semver.NewVersion(m.Package.Version)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid package version %q: %v", oxidecompat.ErrManifestParse, m.Package.Version, err)
	}

	coreReq, err := oxidecompat.ParseRequirement(m.Compatibility.OxideKit)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid oxidekit requirement %q: %v", oxidecompat.ErrManifestParse, m.Compatibility.OxideKit, err)
	}

	component := oxidecompat.NewComponentVersion(m.Package.Name, m.Package.Type, version, coreReq)

	plugins, err := dependencyList(m.Dependencies.Plugins, oxidecompat.TypePlugin)
	if err != nil {
		return nil, err
	}
	themes, err := dependencyList(m.Dependencies.Themes, oxidecompat.TypeTheme)
	if err != nil {
		return nil, err
	}

	for _, dep := range append(plugins, themes...) {
		component.AddDependency(dep)
	}

	return component, nil
}

// dependencyList converts one manifest dependency map, sorted by name.
func dependencyList(entries map[string]DependencyEntry, componentType oxidecompat.ComponentType) ([]oxidecompat.ComponentDependency, error) {
	names := make([]string, 0, len(entries))
	for name := range entries {
		names = append(names, name)
	}
	sort.Strings(names)

	deps := make([]oxidecompat.ComponentDependency, 0, len(names))
	for _, name := range names {
		entry := entries[name]
		req, err := oxidecompat.ParseRequirement(entry.Version)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid requirement %q for %s %q: %v",
				oxidecompat.ErrManifestParse, entry.Version, componentType, name, err)
		}
		dep := oxidecompat.ComponentDependency{
			Name:        name,
			Type:        componentType,
			Requirement: req,
			Optional:    entry.Optional,
		}
		deps = append(deps, dep)
	}
	return deps, nil
}
