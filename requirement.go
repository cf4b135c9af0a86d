package oxidecompat

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Requirement is a version range predicate over semver versions.
// Parsing and matching delegate to github.com/Masterminds/semver; this
// type adds value equality and bound extraction on top.
//
// The zero value matches any version, like the "*" requirement.
type Requirement struct {
	raw         string
	constraints *semver.Constraints
}

// ParseRequirement parses a requirement expression such as
// ">=0.5.0, <1.0.0", "^1.2", "~0.3.0" or "*".
func ParseRequirement(s string) (Requirement, error) {
	s = strings.TrimSpace(s)
	c, err := semver.NewConstraint(s)
	if err != nil {
		return Requirement{}, fmt.Errorf("invalid requirement %q: %w", s, err)
	}
	return Requirement{raw: s, constraints: c}, nil
}

// MustRequirement is like ParseRequirement but panics on error.
// Intended for static expressions in tests and examples.
func MustRequirement(s string) Requirement {
	r, err := ParseRequirement(s)
	if err != nil {
		panic(err)
	}
	return r
}

// AnyRequirement returns a requirement that matches every version.
func AnyRequirement() Requirement {
	return MustRequirement("*")
}

// Matches reports whether v satisfies the requirement.
func (r Requirement) Matches(v *semver.Version) bool {
	if r.constraints == nil {
		return true
	}
	return r.constraints.Check(v)
}

// String returns the requirement expression.
func (r Requirement) String() string {
	if r.raw == "" {
		return "*"
	}
	return r.raw
}

// Equal reports value equality of two requirements. Requirements are
// equal when their expressions are identical; semantically equivalent
// but differently written ranges compare unequal.
func (r Requirement) Equal(other Requirement) bool {
	return r.String() == other.String()
}

// MarshalJSON encodes the requirement as its expression string.
func (r Requirement) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", r.String())), nil
}

// UnmarshalJSON decodes a requirement from its expression string.
func (r *Requirement) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	parsed, err := ParseRequirement(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// MinVersion returns the lowest version that could satisfy the
// requirement, or nil when the range has no minimum shape (for example
// "*" or an OR of ranges). Across AND-ed constraints the highest
// per-constraint minimum wins.
func (r Requirement) MinVersion() *semver.Version {
	min, _ := r.bounds()
	return min
}

// MaxVersion returns the highest version bound of the requirement, or
// nil when the range is unbounded above. For exclusive constraints like
// "<1.0.0" the bound itself (1.0.0) is returned. Across AND-ed
// constraints the lowest per-constraint maximum wins.
func (r Requirement) MaxVersion() *semver.Version {
	_, max := r.bounds()
	return max
}

// IsSatisfiable reports whether any version could satisfy the
// requirement, judged by its min/max bounds.
func (r Requirement) IsSatisfiable() bool {
	min, max := r.bounds()
	if min != nil && max != nil {
		return !min.GreaterThan(max)
	}
	return true
}

// Overlaps reports whether two requirements could share a satisfying
// version. Upper bounds are treated as exclusive, so adjacent ranges
// like ">=1.0" and "<1.0" do not overlap.
func (r Requirement) Overlaps(other Requirement) bool {
	rMin, rMax := r.bounds()
	oMin, oMax := other.bounds()

	if rMin != nil && oMax != nil && !rMin.LessThan(oMax) {
		return false
	}
	if oMin != nil && rMax != nil && !oMin.LessThan(rMax) {
		return false
	}
	return true
}

// bounds derives min/max from the requirement expression. OR ranges
// ("||") have no single min/max shape and yield nil bounds.
func (r Requirement) bounds() (*semver.Version, *semver.Version) {
	expr := r.String()
	if expr == "*" || strings.Contains(expr, "||") {
		return nil, nil
	}

	var min, max *semver.Version
	for _, seg := range strings.Split(expr, ",") {
		segMin, segMax := constraintBounds(strings.TrimSpace(seg))
		if segMin != nil && (min == nil || segMin.GreaterThan(min)) {
			min = segMin
		}
		if segMax != nil && (max == nil || segMax.LessThan(max)) {
			max = segMax
		}
	}
	return min, max
}

// constraintBounds computes the min/max pair for one constraint segment.
func constraintBounds(seg string) (*semver.Version, *semver.Version) {
	if seg == "" || seg == "*" || seg == "x" || seg == "X" {
		return nil, nil
	}

	// Hyphen ranges: "1.2.0 - 2.0.0" is >=1.2.0, <=2.0.0.
	if left, right, ok := strings.Cut(seg, " - "); ok {
		min, errL := semver.NewVersion(strings.TrimSpace(left))
		max, errR := semver.NewVersion(strings.TrimSpace(right))
		if errL != nil || errR != nil {
			return nil, nil
		}
		return min, max
	}

	op := ""
	for _, candidate := range []string{">=", "<=", "!=", "=>", "=<", ">", "<", "==", "=", "^", "~"} {
		if strings.HasPrefix(seg, candidate) {
			op = candidate
			seg = seg[len(candidate):]
			break
		}
	}

	v, err := semver.NewVersion(strings.TrimSpace(seg))
	if err != nil {
		// Wildcard forms like "1.x" carry no usable bound here.
		return nil, nil
	}

	switch op {
	case "", "=", "==":
		return v, v
	case ">":
		return newVersion(v.Major(), v.Minor(), v.Patch()+1), nil
	case ">=", "=>":
		return v, nil
	case "<", "<=", "=<":
		return newVersion(0, 0, 0), v
	case "^":
		if v.Major() != 0 {
			return v, newVersion(v.Major()+1, 0, 0)
		}
		if v.Minor() != 0 {
			return v, newVersion(0, v.Minor()+1, 0)
		}
		return v, newVersion(0, 0, v.Patch()+1)
	case "~":
		return v, newVersion(v.Major(), v.Minor()+1, 0)
	}
	return nil, nil
}

func newVersion(major, minor, patch uint64) *semver.Version {
	return semver.New(major, minor, patch, "", "")
}
