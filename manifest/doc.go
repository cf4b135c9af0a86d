// Package manifest parses oxide.toml component manifests.
//
// A manifest describes one ecosystem component: its identity, the core
// versions it is compatible with, and its plugin/theme dependencies.
// Dependency entries accept both a bare version string and a detailed
// table:
//
//	[package]
//	name = "my-theme"
//	version = "1.0.0"
//	type = "theme"
//
//	[compatibility]
//	oxidekit = ">=0.5.0"
//
//	[dependencies.plugins]
//	icons = "^1.0.0"
//	analytics = { version = "^2.0", optional = true }
//
// Parse returns the structured manifest; ComponentVersion converts it
// into the checker's component model:
//
//	m, err := manifest.Parse(data)
//	if err != nil {
//	    // errors.Is(err, oxidecompat.ErrManifestParse)
//	}
//	component, err := m.ComponentVersion()
//
// This package owns no file I/O: callers read the bytes.
package manifest
