package manifest

import (
	"errors"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	oxidecompat "github.com/oxidekit/go-oxidecompat"
)

const themeManifest = `
[package]
name = "my-theme"
version = "1.0.0"
type = "theme"
description = "A beautiful theme"

[compatibility]
oxidekit = ">=0.5.0"

[dependencies.plugins]
icons = "^1.0.0"
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(themeManifest))
	require.NoError(t, err)

	assert.Equal(t, "my-theme", m.Package.Name)
	assert.Equal(t, oxidecompat.TypeTheme, m.Package.Type)
	assert.Equal(t, "A beautiful theme", m.Package.Description)
	assert.Equal(t, ">=0.5.0", m.Compatibility.OxideKit)

	entry, ok := m.Dependencies.Plugins["icons"]
	require.True(t, ok)
	assert.Equal(t, "^1.0.0", entry.Version)
	assert.False(t, entry.Optional)
}

func TestParse_DetailedDependencyEntry(t *testing.T) {
	data := `
[package]
name = "my-starter"
version = "0.2.0"
type = "starter"

[dependencies.plugins]
analytics = { version = "^2.0.0", optional = true, features = ["web"] }
`
	m, err := Parse([]byte(data))
	require.NoError(t, err)

	entry := m.Dependencies.Plugins["analytics"]
	assert.Equal(t, "^2.0.0", entry.Version)
	assert.True(t, entry.Optional)
	assert.Equal(t, []string{"web"}, entry.Features)

	// Missing [compatibility] defaults to any core version.
	assert.Equal(t, "*", m.Compatibility.OxideKit)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"malformed toml", `[package`},
		{"unknown type", "[package]\nname = \"x\"\nversion = \"1.0.0\"\ntype = \"widget\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
			assert.True(t, errors.Is(err, oxidecompat.ErrManifestParse))
		})
	}
}

func TestManifest_ComponentVersion(t *testing.T) {
	data := `
[package]
name = "my-starter"
version = "0.2.0"
type = "starter"

[compatibility]
oxidekit = ">=0.5.0, <1.0.0"

[dependencies.plugins]
icons = "^1.0.0"
analytics = { version = "^2.0.0", optional = true }

[dependencies.themes]
dark = "~0.3.0"
`
	m, err := Parse([]byte(data))
	require.NoError(t, err)

	component, err := m.ComponentVersion()
	require.NoError(t, err)

	assert.Equal(t, "my-starter", component.Name)
	assert.Equal(t, oxidecompat.TypeStarter, component.Type)
	assert.Equal(t, "0.2.0", component.Version.String())
	assert.True(t, component.CoreRequirement.Matches(semver.MustParse("0.8.0")))

	// Plugins first (name order), then themes.
	require.Len(t, component.Dependencies, 3)
	assert.Equal(t, "analytics", component.Dependencies[0].Name)
	assert.True(t, component.Dependencies[0].Optional)
	assert.Equal(t, "icons", component.Dependencies[1].Name)
	assert.Equal(t, oxidecompat.TypePlugin, component.Dependencies[1].Type)
	assert.Equal(t, "dark", component.Dependencies[2].Name)
	assert.Equal(t, oxidecompat.TypeTheme, component.Dependencies[2].Type)
}

func TestManifest_ComponentVersion_BadVersion(t *testing.T) {
	data := `
[package]
name = "my-theme"
version = "not-a-version"
type = "theme"
`
	m, err := Parse([]byte(data))
	require.NoError(t, err)

	_, err = m.ComponentVersion()
	require.Error(t, err)
	assert.True(t, errors.Is(err, oxidecompat.ErrManifestParse))
}
