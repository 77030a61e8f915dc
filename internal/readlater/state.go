package readlater

import (
	"slices"
	"time"

	"github.com/nikbrunner/rl/internal/model"
)

// State is the reading list view state. Transitions return a new State and
// never mutate the receiver.
type State struct {
	Loading   bool
	Err       error
	Bookmarks []model.Bookmark
	Expansion ExpansionState

	generation uint64
}

// NewState returns the state shown before the first load completes.
func NewState() State {
	return State{
		Loading:   true,
		Expansion: NewExpansionState(),
	}
}

// Generation returns the generation of the most recently started load.
func (s State) Generation() uint64 {
	return s.generation
}

// BeginLoad starts a new load and returns its generation. Results of older
// loads are discarded by SetRecords and SetLoadError.
func (s State) BeginLoad() (State, uint64) {
	s.generation++
	s.Loading = true
	return s, s.generation
}

// SetRecords applies the result of load gen. Reports false and leaves the
// state untouched if a newer load has started since.
func (s State) SetRecords(gen uint64, bookmarks []model.Bookmark) (State, bool) {
	if gen != s.generation {
		return s, false
	}
	s.Loading = false
	s.Err = nil
	s.Bookmarks = bookmarks
	return s, true
}

// SetLoadError applies a failed load gen, with the same staleness rule as
// SetRecords.
func (s State) SetLoadError(gen uint64, err error) (State, bool) {
	if gen != s.generation {
		return s, false
	}
	return s.SetError(err), true
}

// SetError replaces the view with an error.
func (s State) SetError(err error) State {
	s.Loading = false
	s.Err = err
	return s
}

// MarkVisited stamps the loaded bookmark id as visited at. The bookmark slice
// is copied so earlier states keep their records.
func (s State) MarkVisited(id string, at time.Time) State {
	i := slices.IndexFunc(s.Bookmarks, func(b model.Bookmark) bool { return b.ID == id })
	if i < 0 {
		return s
	}
	s.Bookmarks = slices.Clone(s.Bookmarks)
	s.Bookmarks[i].VisitedAt = &at
	return s
}

// Toggle flips the expansion of label.
func (s State) Toggle(label string) State {
	s.Expansion = s.Expansion.Clone()
	s.Expansion.Toggle(label)
	return s
}

// Buckets groups the loaded bookmarks relative to now.
func (s State) Buckets(now time.Time) []Bucket {
	return Group(s.Bookmarks, now)
}
