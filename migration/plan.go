package migration

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Plan is an unordered collection of guides, logically a directed
// multigraph whose nodes are versions and whose edges are guides.
// Guides are not deduplicated and from/to ordering is not validated.
type Plan struct {
	guides []*Guide
}

// NewPlan creates an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// AddGuide registers a guide as an edge of the plan.
func (p *Plan) AddGuide(guide *Guide) {
	p.guides = append(p.guides, guide)
}

// Guides returns the registered guides.
func (p *Plan) Guides() []*Guide {
	return p.guides
}

// FindPath assembles a sequence of guides leading from one version to
// another.
//
// An exact single-guide match short-circuits everything else, even when
// a multi-hop path also exists. Otherwise the search walks forward
// greedily: from the current version it always takes the guide with the
// farthest target that does not overshoot the destination. The walk
// succeeds only when it lands exactly on the destination; a nil slice
// means no path was found.
//
// The greedy walk is a heuristic, not a complete search: a long first
// hop can dead-end where a shorter one would have connected.
func (p *Plan) FindPath(from, to *semver.Version) []*Guide {
	for _, guide := range p.guides {
		if guide.FromVersion.Equal(from) && guide.ToVersion.Equal(to) {
			return []*Guide{guide}
		}
	}

	var path []*Guide
	current := from

	for current.LessThan(to) {
		var next *Guide
		for _, guide := range p.guides {
			if !guide.FromVersion.Equal(current) || guide.ToVersion.GreaterThan(to) {
				continue
			}
			if next == nil || guide.ToVersion.GreaterThan(next.ToVersion) {
				next = guide
			}
		}
		if next == nil {
			break
		}
		current = next.ToVersion
		path = append(path, next)
	}

	if current.Equal(to) {
		return path
	}
	return nil
}

// TotalTime sums the estimated minutes across a path. The sum is
// all-or-nothing: ok is false unless every guide in the path declares
// an estimate.
func (p *Plan) TotalTime(path []*Guide) (minutes int, ok bool) {
	total := 0
	for _, guide := range path {
		if guide.EstimatedMinutes == 0 {
			return 0, false
		}
		total += guide.EstimatedMinutes
	}
	return total, true
}

// TotalSteps sums step counts across a path.
func (p *Plan) TotalSteps(path []*Guide) int {
	total := 0
	for _, guide := range path {
		total += guide.StepCount()
	}
	return total
}

// PathToMarkdown renders a combined document for a path: a numbered
// hop overview, then every guide's own markdown, hops separated by a
// horizontal rule.
func (p *Plan) PathToMarkdown(path []*Guide) string {
	if len(path) == 0 {
		return "No migration path found."
	}

	var md strings.Builder

	from := path[0].FromVersion
	to := path[len(path)-1].ToVersion

	fmt.Fprintf(&md, "# Migration Path: %s -> %s\n\n", from, to)
	fmt.Fprintf(&md, "This migration consists of %d step(s):\n\n", len(path))

	for i, guide := range path {
		fmt.Fprintf(&md, "%d. %s -> %s: %s\n", i+1, guide.FromVersion, guide.ToVersion, guide.Title)
	}
	md.WriteString("\n---\n\n")

	for i, guide := range path {
		fmt.Fprintf(&md, "# Part %d: %s\n\n", i+1, guide.Title)
		md.WriteString(guide.ToMarkdown())
		md.WriteString("\n---\n\n")
	}

	return md.String()
}
