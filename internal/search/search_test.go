package search

import (
	"testing"
	"time"

	"github.com/nikbrunner/rl/internal/model"
)

func sampleBookmarks() []model.Bookmark {
	return []model.Bookmark{
		{ID: "b1", Title: "GitHub", URL: "https://github.com", CreatedAt: time.Now()},
		{ID: "b2", Title: "GitLab", URL: "https://gitlab.com", CreatedAt: time.Now()},
		{ID: "b3", Title: "TanStack Router", URL: "https://tanstack.com/router", CreatedAt: time.Now()},
		{ID: "b4", Title: "React Router", URL: "https://reactrouter.com", CreatedAt: time.Now()},
	}
}

func TestFuzzySearchBookmarks_EmptyQuery(t *testing.T) {
	results := FuzzySearchBookmarks(sampleBookmarks(), "")

	if len(results) != 0 {
		t.Errorf("expected 0 results for empty query, got %d", len(results))
	}
}

func TestFuzzySearchBookmarks_ExactMatch(t *testing.T) {
	results := FuzzySearchBookmarks(sampleBookmarks(), "GitHub")

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Bookmark.Title != "GitHub" {
		t.Errorf("expected GitHub, got %s", results[0].Bookmark.Title)
	}
}

func TestFuzzySearchBookmarks_FuzzyMatch(t *testing.T) {
	results := FuzzySearchBookmarks(sampleBookmarks(), "tsr")

	if len(results) == 0 {
		t.Fatal("expected at least 1 result for fuzzy query")
	}
	if results[0].Bookmark.ID != "b3" {
		t.Errorf("expected TanStack Router first, got %s", results[0].Bookmark.Title)
	}
	if len(results[0].MatchedIndexes) != 3 {
		t.Errorf("expected 3 matched indexes, got %v", results[0].MatchedIndexes)
	}
}

func TestFuzzySearchBookmarks_NoMatch(t *testing.T) {
	results := FuzzySearchBookmarks(sampleBookmarks(), "xyz123")

	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestFuzzySearchBookmarks_PointsIntoSlice(t *testing.T) {
	bookmarks := sampleBookmarks()
	results := FuzzySearchBookmarks(bookmarks, "GitHub")

	if results[0].Bookmark != &bookmarks[0] {
		t.Error("expected result to point into the input slice")
	}
}

func TestFilter_KeepsOrder(t *testing.T) {
	got := Filter(sampleBookmarks(), "router")

	if len(got) != 2 {
		t.Fatalf("expected 2 routers, got %d", len(got))
	}
	if got[0].ID != "b3" || got[1].ID != "b4" {
		t.Errorf("expected input order b3, b4, got %s, %s", got[0].ID, got[1].ID)
	}
}

func TestFilter_EmptyQuery(t *testing.T) {
	if got := Filter(sampleBookmarks(), ""); len(got) != 4 {
		t.Errorf("expected all 4 bookmarks, got %d", len(got))
	}
}
