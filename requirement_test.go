package oxidecompat

import (
	"encoding/json"
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRequirement(t *testing.T) {
	req, err := ParseRequirement(">=0.5.0, <1.0.0")
	require.NoError(t, err)

	assert.True(t, req.Matches(semver.MustParse("0.5.0")))
	assert.True(t, req.Matches(semver.MustParse("0.9.0")))
	assert.False(t, req.Matches(semver.MustParse("1.0.0")))
	assert.False(t, req.Matches(semver.MustParse("0.4.9")))
}

func TestParseRequirement_Invalid(t *testing.T) {
	_, err := ParseRequirement("not a requirement")
	require.Error(t, err)
}

func TestRequirement_ZeroValueMatchesAny(t *testing.T) {
	var req Requirement
	assert.True(t, req.Matches(semver.MustParse("0.0.1")))
	assert.True(t, req.Matches(semver.MustParse("99.0.0")))
	assert.Equal(t, "*", req.String())
}

func TestRequirement_Equal(t *testing.T) {
	a := MustRequirement(">=1.0.0")
	b := MustRequirement(">=1.0.0")
	c := MustRequirement("^1.0.0")

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, AnyRequirement().Equal(Requirement{}))
}

func TestRequirement_Bounds(t *testing.T) {
	tests := []struct {
		expr    string
		wantMin string // "" means nil
		wantMax string
	}{
		{">=0.5.0, <1.0.0", "0.5.0", "1.0.0"},
		{"^1.2.3", "1.2.3", "2.0.0"},
		{"^0.2.3", "0.2.3", "0.3.0"},
		{"^0.0.3", "0.0.3", "0.0.4"},
		{"~1.2.3", "1.2.3", "1.3.0"},
		{"=1.0.0", "1.0.0", "1.0.0"},
		{">1.0.0", "1.0.1", ""},
		{">=1.0.0", "1.0.0", ""},
		{"<2.0.0", "0.0.0", "2.0.0"},
		{"<=2.0.0", "0.0.0", "2.0.0"},
		{"*", "", ""},
		{"<1.0.0 || >=2.0.0", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			req := MustRequirement(tt.expr)

			min := req.MinVersion()
			if tt.wantMin == "" {
				assert.Nil(t, min)
			} else {
				require.NotNil(t, min)
				assert.Equal(t, tt.wantMin, min.String())
			}

			max := req.MaxVersion()
			if tt.wantMax == "" {
				assert.Nil(t, max)
			} else {
				require.NotNil(t, max)
				assert.Equal(t, tt.wantMax, max.String())
			}
		})
	}
}

func TestRequirement_IsSatisfiable(t *testing.T) {
	assert.True(t, MustRequirement(">=1.0.0, <2.0.0").IsSatisfiable())
	assert.True(t, MustRequirement("*").IsSatisfiable())
	assert.False(t, MustRequirement(">=2.0.0, <1.0.0").IsSatisfiable())
}

func TestRequirement_Overlaps(t *testing.T) {
	a := MustRequirement(">=0.5.0, <1.0.0")
	b := MustRequirement(">=0.8.0")
	c := MustRequirement(">=1.0.0")

	assert.True(t, a.Overlaps(b))
	assert.True(t, b.Overlaps(a))

	// Exclusive upper bound: <1.0.0 and >=1.0.0 share nothing.
	assert.False(t, a.Overlaps(c))
	assert.False(t, c.Overlaps(a))

	assert.True(t, AnyRequirement().Overlaps(a))
}

func TestRequirement_JSONRoundTrip(t *testing.T) {
	req := MustRequirement(">=0.5.0, <1.0.0")

	data, err := json.Marshal(req)
	require.NoError(t, err)
	assert.Equal(t, `">=0.5.0, <1.0.0"`, string(data))

	var decoded Requirement
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.True(t, req.Equal(decoded))
	assert.True(t, decoded.Matches(semver.MustParse("0.7.0")))
}
