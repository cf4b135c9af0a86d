// Package oxidecompat decides whether versioned OxideKit ecosystem
// components (core runtime, plugins, themes, starter templates) work
// together, and explains why when they do not.
//
// The package is a pure decision core: it performs no network or
// filesystem I/O, installs nothing, and never mutates a project.
// Catalogs of available components, manifest bytes, and migration
// guide libraries are supplied by the caller.
//
// # Checking compatibility
//
// A Checker is built around one reference core version:
//
//	core := semver.MustParse("0.8.0")
//	checker := oxidecompat.NewChecker(core)
//
//	result := checker.CheckComponent(component)
//	if !result.Compatible {
//	    fmt.Println(result.Explanation)
//	    fmt.Println(result.Suggestion)
//	}
//
// Dependency lists are checked against a catalog:
//
//	results := checker.CheckDependencies(component, catalog)
//
// and upgrades between two versions of one component are diffed for
// safety:
//
//	analysis := checker.CheckUpgradeSafety(installed, candidate)
//	fmt.Print(analysis.Report())
//
// # Related packages
//
// Package manifest parses oxide.toml files into ComponentVersion
// values. Package migration models migration guides, chains them into
// upgrade paths, and tracks a user's progress through one guide.
package oxidecompat
