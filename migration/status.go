package migration

import (
	"sort"
	"time"

	"github.com/Masterminds/semver/v3"
)

// Status tracks one user's progress through one guide. It snapshots the
// guide's title and version bounds at creation; later mutation of the
// source guide does not affect an in-progress status.
//
// A Status performs no internal synchronization. Callers that share one
// across goroutines must supply their own locking; persistence is also
// the caller's responsibility.
type Status struct {
	// GuideTitle is the title of the guide being followed.
	GuideTitle string `json:"guide_title"`

	// FromVersion is the starting version, captured at creation.
	FromVersion *semver.Version `json:"from_version"`

	// ToVersion is the target version, captured at creation.
	ToVersion *semver.Version `json:"to_version"`

	// CompletedSteps holds completed step indices, ascending and
	// deduplicated.
	CompletedSteps []int `json:"completed_steps"`

	// Notes maps step indices to free-form notes; last write wins.
	Notes map[int]string `json:"notes,omitempty"`

	// StartedAt is when the migration was begun.
	StartedAt time.Time `json:"started_at"`

	// UpdatedAt is bumped on every mutation.
	UpdatedAt time.Time `json:"updated_at"`
}

// NewStatus begins tracking progress through a guide.
func NewStatus(guide *Guide) *Status {
	now := time.Now().UTC()
	return &Status{
		GuideTitle:  guide.Title,
		FromVersion: guide.FromVersion,
		ToVersion:   guide.ToVersion,
		Notes:       make(map[int]string),
		StartedAt:   now,
		UpdatedAt:   now,
	}
}

// CompleteStep marks a step index as done. Completing the same index
// again is a no-op apart from the timestamp update.
func (s *Status) CompleteStep(index int) {
	pos := sort.SearchInts(s.CompletedSteps, index)
	if pos == len(s.CompletedSteps) || s.CompletedSteps[pos] != index {
		s.CompletedSteps = append(s.CompletedSteps, 0)
		copy(s.CompletedSteps[pos+1:], s.CompletedSteps[pos:])
		s.CompletedSteps[pos] = index
	}
	s.UpdatedAt = time.Now().UTC()
}

// AddNote attaches a note to a step index, replacing any earlier note.
func (s *Status) AddNote(index int, note string) {
	if s.Notes == nil {
		s.Notes = make(map[int]string)
	}
	s.Notes[index] = note
	s.UpdatedAt = time.Now().UTC()
}

// IsComplete reports whether at least totalSteps distinct indices have
// been completed. This is a count-only check: it cannot tell a
// contiguous run of the right size from true coverage of [0,
// totalSteps).
func (s *Status) IsComplete(totalSteps int) bool {
	return len(s.CompletedSteps) >= totalSteps
}

// NextStep returns the first index in [0, totalSteps) not yet
// completed. ok is false when every index is done.
func (s *Status) NextStep(totalSteps int) (index int, ok bool) {
	for i := 0; i < totalSteps; i++ {
		pos := sort.SearchInts(s.CompletedSteps, i)
		if pos == len(s.CompletedSteps) || s.CompletedSteps[pos] != i {
			return i, true
		}
	}
	return 0, false
}
