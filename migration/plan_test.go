package migration

import (
	"testing"

	"github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hopGuide(from, to, title string) *Guide {
	guide := NewGuide(semver.MustParse(from), semver.MustParse(to), title, "summary")
	guide.AddStep(NewStep("step for " + title))
	return guide
}

func TestPlan_FindPath_Direct(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("0.5.0", "0.6.0", "0.5 to 0.6"))

	path := plan.FindPath(semver.MustParse("0.5.0"), semver.MustParse("0.6.0"))
	require.Len(t, path, 1)
	assert.Equal(t, "0.5 to 0.6", path[0].Title)
	assert.Equal(t, 1, plan.TotalSteps(path))
}

func TestPlan_FindPath_DirectShortCircuitsMultiHop(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("1.0.0", "1.5.0", "first hop"))
	plan.AddGuide(hopGuide("1.5.0", "2.0.0", "second hop"))
	plan.AddGuide(hopGuide("1.0.0", "2.0.0", "direct"))

	// The exact match wins even though a two-hop path exists.
	path := plan.FindPath(semver.MustParse("1.0.0"), semver.MustParse("2.0.0"))
	require.Len(t, path, 1)
	assert.Equal(t, "direct", path[0].Title)
}

func TestPlan_FindPath_MultiHop(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("0.5.0", "0.6.0", "a"))
	plan.AddGuide(hopGuide("0.6.0", "0.7.0", "b"))
	plan.AddGuide(hopGuide("0.7.0", "0.8.0", "c"))

	path := plan.FindPath(semver.MustParse("0.5.0"), semver.MustParse("0.8.0"))
	require.Len(t, path, 3)
	assert.Equal(t, "a", path[0].Title)
	assert.Equal(t, "b", path[1].Title)
	assert.Equal(t, "c", path[2].Title)
}

// Pins the greedy "farthest hop not exceeding the target" behavior:
// the 1.0.0->3.0.0 guide overshoots 2.5.0 and is excluded, so the walk
// takes 1.0.0->2.0.0 and succeeds.
func TestPlan_FindPath_GreedyExcludesOvershoot(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("1.0.0", "3.0.0", "big jump"))
	plan.AddGuide(hopGuide("1.0.0", "2.0.0", "first"))
	plan.AddGuide(hopGuide("2.0.0", "2.5.0", "second"))

	path := plan.FindPath(semver.MustParse("1.0.0"), semver.MustParse("2.5.0"))
	require.Len(t, path, 2)
	assert.Equal(t, "first", path[0].Title)
	assert.Equal(t, "second", path[1].Title)
}

// Documents the known incompleteness of the greedy walk: the farthest
// first hop (1.0.0->2.0.0) dead-ends, and the search does not backtrack
// to the shorter 1.0.0->1.5.0->2.5.0 route that exists.
func TestPlan_FindPath_GreedyDeadEnd(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("1.0.0", "2.0.0", "dead end"))
	plan.AddGuide(hopGuide("1.0.0", "1.5.0", "short hop"))
	plan.AddGuide(hopGuide("1.5.0", "2.5.0", "finisher"))

	path := plan.FindPath(semver.MustParse("1.0.0"), semver.MustParse("2.5.0"))
	assert.Empty(t, path)
}

func TestPlan_FindPath_NoPath(t *testing.T) {
	plan := NewPlan()
	plan.AddGuide(hopGuide("0.5.0", "0.6.0", "a"))

	path := plan.FindPath(semver.MustParse("0.6.0"), semver.MustParse("0.9.0"))
	assert.Empty(t, path)
}

func TestPlan_TotalTime(t *testing.T) {
	plan := NewPlan()
	withTime := hopGuide("0.5.0", "0.6.0", "a").WithTime(30)
	alsoWithTime := hopGuide("0.6.0", "0.7.0", "b").WithTime(15)
	noTime := hopGuide("0.7.0", "0.8.0", "c")
	plan.AddGuide(withTime)
	plan.AddGuide(alsoWithTime)
	plan.AddGuide(noTime)

	minutes, ok := plan.TotalTime([]*Guide{withTime, alsoWithTime})
	require.True(t, ok)
	assert.Equal(t, 45, minutes)

	// All-or-nothing: one missing estimate makes the total unknown.
	_, ok = plan.TotalTime([]*Guide{withTime, noTime})
	assert.False(t, ok)
}

func TestPlan_PathToMarkdown(t *testing.T) {
	plan := NewPlan()
	a := hopGuide("0.5.0", "0.6.0", "first")
	b := hopGuide("0.6.0", "0.7.0", "second")
	plan.AddGuide(a)
	plan.AddGuide(b)

	md := plan.PathToMarkdown([]*Guide{a, b})

	assert.Contains(t, md, "# Migration Path: 0.5.0 -> 0.7.0")
	assert.Contains(t, md, "This migration consists of 2 step(s):")
	assert.Contains(t, md, "1. 0.5.0 -> 0.6.0: first")
	assert.Contains(t, md, "2. 0.6.0 -> 0.7.0: second")
	assert.Contains(t, md, "# Part 1: first")
	assert.Contains(t, md, "# Part 2: second")
	assert.Contains(t, md, "\n---\n")
}

func TestPlan_PathToMarkdown_Empty(t *testing.T) {
	plan := NewPlan()
	assert.Equal(t, "No migration path found.", plan.PathToMarkdown(nil))
}
