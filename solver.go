package oxidecompat

import (
	"sort"

	"github.com/Masterminds/semver/v3"
)

// Solver picks versions out of a fixed set of available releases.
// Versions are held newest-first, so "best" always means "highest
// satisfying".
type Solver struct {
	available []*semver.Version
}

// NewSolver creates a solver over the given releases. The input slice
// is copied and sorted in descending order.
func NewSolver(available []*semver.Version) *Solver {
	sorted := make([]*semver.Version, len(available))
	copy(sorted, available)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].GreaterThan(sorted[j])
	})
	return &Solver{available: sorted}
}

// Solve returns the highest available version satisfying the
// requirement, or nil when none does.
func (s *Solver) Solve(req Requirement) *semver.Version {
	for _, v := range s.available {
		if req.Matches(v) {
			return v
		}
	}
	return nil
}

// SolveAll returns every available version satisfying the requirement,
// newest first.
func (s *Solver) SolveAll(req Requirement) []*semver.Version {
	var matches []*semver.Version
	for _, v := range s.available {
		if req.Matches(v) {
			matches = append(matches, v)
		}
	}
	return matches
}

// SolveMulti returns the highest available version satisfying every
// requirement simultaneously, or nil when none does.
func (s *Solver) SolveMulti(reqs []Requirement) *semver.Version {
	for _, v := range s.available {
		if matchesAll(v, reqs) {
			return v
		}
	}
	return nil
}

// HasSolution reports whether some available version satisfies every
// requirement.
func (s *Solver) HasSolution(reqs []Requirement) bool {
	return s.SolveMulti(reqs) != nil
}

func matchesAll(v *semver.Version, reqs []Requirement) bool {
	for _, req := range reqs {
		if !req.Matches(v) {
			return false
		}
	}
	return true
}
