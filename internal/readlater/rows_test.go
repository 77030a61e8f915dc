package readlater_test

import (
	"testing"

	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
	"gotest.tools/v3/assert"
)

func rowTitles(rows []readlater.Row) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Title()
	}
	return out
}

func TestRows_OnlyExpandedDaysListArticles(t *testing.T) {
	buckets := readlater.Group([]model.Bookmark{
		bm("a", now),
		bm("b", now.AddDate(0, 0, -1)),
	}, now)

	rows := readlater.Rows(buckets, readlater.NewExpansionState(), false)

	assert.DeepEqual(t, rowTitles(rows), []string{"Today", "Title a", "Yesterday"})
	assert.Assert(t, rows[0].IsDay())
	assert.Equal(t, rows[0].Count, 1)
	assert.Assert(t, rows[0].Expanded)
	assert.Assert(t, !rows[2].Expanded)
	assert.Equal(t, rows[1].Label, "Today")
}

func TestRows_ExpandAll(t *testing.T) {
	buckets := readlater.Group([]model.Bookmark{
		bm("a", now),
		bm("b", now.AddDate(0, 0, -1)),
	}, now)

	rows := readlater.Rows(buckets, readlater.ExpansionState{}, true)

	assert.DeepEqual(t, rowTitles(rows), []string{"Today", "Title a", "Yesterday", "Title b"})
}

func TestRows_Empty(t *testing.T) {
	assert.Equal(t, len(readlater.Rows(nil, readlater.NewExpansionState(), false)), 0)
}
