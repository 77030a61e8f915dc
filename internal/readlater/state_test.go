package readlater_test

import (
	"errors"
	"testing"

	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
	"gotest.tools/v3/assert"
)

func TestState_Initial(t *testing.T) {
	s := readlater.NewState()

	assert.Assert(t, s.Loading)
	assert.NilError(t, s.Err)
	assert.Assert(t, s.Expansion.IsExpanded("Today"))
	assert.Equal(t, len(s.Buckets(now)), 0)
}

func TestState_SetRecords(t *testing.T) {
	s, gen := readlater.NewState().BeginLoad()

	s, applied := s.SetRecords(gen, []model.Bookmark{bm("a", now)})

	assert.Assert(t, applied)
	assert.Assert(t, !s.Loading)
	assert.Equal(t, len(s.Buckets(now)), 1)
}

func TestState_DiscardsStaleLoad(t *testing.T) {
	s := readlater.NewState()
	s, first := s.BeginLoad()
	s, second := s.BeginLoad()

	// the second reload finishes first
	s, applied := s.SetRecords(second, []model.Bookmark{bm("new", now)})
	assert.Assert(t, applied)

	s, applied = s.SetRecords(first, []model.Bookmark{bm("old", now)})
	assert.Assert(t, !applied)
	assert.DeepEqual(t, ids(s.Bookmarks), []string{"new"})

	s, applied = s.SetLoadError(first, errors.New("late failure"))
	assert.Assert(t, !applied)
	assert.NilError(t, s.Err)
}

func TestState_SetError(t *testing.T) {
	s, gen := readlater.NewState().BeginLoad()
	s, applied := s.SetLoadError(gen, errors.New("boom"))

	assert.Assert(t, applied)
	assert.Assert(t, !s.Loading)
	assert.ErrorContains(t, s.Err, "boom")

	// a later successful load clears the error
	s, gen = s.BeginLoad()
	s, _ = s.SetRecords(gen, nil)
	assert.NilError(t, s.Err)
}

func TestState_ToggleDoesNotMutateOriginal(t *testing.T) {
	s := readlater.NewState()
	toggled := s.Toggle("Today")

	assert.Assert(t, s.Expansion.IsExpanded("Today"))
	assert.Assert(t, !toggled.Expansion.IsExpanded("Today"))
}

func TestState_MarkVisitedDoesNotMutateOriginal(t *testing.T) {
	s, gen := readlater.NewState().BeginLoad()
	s, _ = s.SetRecords(gen, []model.Bookmark{bm("a", now), bm("b", now)})

	visited := s.MarkVisited("b", now)

	assert.Assert(t, s.Bookmarks[1].VisitedAt == nil)
	assert.Assert(t, visited.Bookmarks[1].VisitedAt != nil)
	assert.Assert(t, visited.Bookmarks[0].VisitedAt == nil)
	assert.DeepEqual(t, visited.MarkVisited("missing", now).Bookmarks, visited.Bookmarks)
}
