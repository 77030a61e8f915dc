package picker

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/search"
)

var now = time.Date(2025, 3, 4, 15, 0, 0, 0, time.UTC)

// threeResults spans two days: rows are Today, b1, b3, Yesterday, b2.
func threeResults() []search.SearchResult {
	return []search.SearchResult{
		{Bookmark: &model.Bookmark{ID: "b1", Title: "Go Generics", URL: "https://go.dev/generics", CreatedAt: now}},
		{Bookmark: &model.Bookmark{ID: "b2", Title: "Go Iterators", URL: "https://go.dev/iter", CreatedAt: now.AddDate(0, 0, -1)}},
		{Bookmark: &model.Bookmark{ID: "b3", Title: "Go Modules", URL: "https://go.dev/mod", CreatedAt: now.Add(-time.Hour)}},
	}
}

func press(p Picker, msg tea.KeyMsg) (Picker, tea.Cmd) {
	m, cmd := p.Update(msg)
	return m.(Picker), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func current(p Picker) string {
	if p.cursor < 0 {
		return ""
	}
	return p.rows[p.cursor].Bookmark.ID
}

func TestPicker_Navigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want string
	}{
		{"starts on first article", nil, "b1"},
		{"down with j", []tea.KeyMsg{runes("j")}, "b3"},
		{"down with arrow", []tea.KeyMsg{{Type: tea.KeyDown}}, "b3"},
		{"skips day header", []tea.KeyMsg{runes("j"), runes("j")}, "b2"},
		{"skips header going up", []tea.KeyMsg{runes("j"), runes("j"), runes("k")}, "b3"},
		{"stops at top", []tea.KeyMsg{runes("k"), {Type: tea.KeyUp}}, "b1"},
		{"stops at bottom", []tea.KeyMsg{runes("j"), runes("j"), runes("j"), runes("j")}, "b2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New(threeResults(), "go", now)
			for _, k := range tt.keys {
				p, _ = press(p, k)
			}
			if got := current(p); got != tt.want {
				t.Errorf("expected cursor on %s, got %s", tt.want, got)
			}
		})
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(threeResults(), "go", now)
	p, _ = press(p, runes("j"))
	p, _ = press(p, runes("j"))

	p, cmd := press(p, tea.KeyMsg{Type: tea.KeyEnter})

	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	got := p.SelectedBookmark()
	if got == nil || got.ID != "b2" {
		t.Errorf("expected b2, got %v", got)
	}
}

func TestPicker_Cancel(t *testing.T) {
	for _, k := range []tea.KeyMsg{{Type: tea.KeyEsc}, {Type: tea.KeyCtrlC}, runes("q")} {
		p := New(threeResults(), "go", now)
		p, cmd := press(p, k)

		if !p.Cancelled() {
			t.Errorf("%s: expected cancelled", k)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command after cancel", k)
		}
		if p.SelectedBookmark() != nil {
			t.Errorf("%s: expected nil selection when cancelled", k)
		}
	}
}

func TestPicker_NothingSelectedYet(t *testing.T) {
	p := New(threeResults(), "go", now)
	if p.SelectedBookmark() != nil {
		t.Error("expected nil before Enter")
	}
}

func TestPicker_NoResults(t *testing.T) {
	p := New(nil, "zzz", now)
	p, _ = press(p, runes("j"))
	p, _ = press(p, tea.KeyMsg{Type: tea.KeyEnter})

	if p.SelectedBookmark() != nil {
		t.Error("expected nil selection without results")
	}
}

func TestPicker_ViewGroupsByDay(t *testing.T) {
	view := New(threeResults(), "go", now).View()

	order := []string{
		"Search: go (3 results)",
		"Today", "2 articles", "Go Generics", "Go Modules",
		"Yesterday", "1 article", "Go Iterators", "https://go.dev/iter",
	}
	pos := 0
	for _, want := range order {
		i := strings.Index(view[pos:], want)
		if i < 0 {
			t.Fatalf("expected %q after offset %d in view:\n%s", want, pos, view)
		}
		pos += i + len(want)
	}
}

func TestPicker_TruncatesToWidth(t *testing.T) {
	results := []search.SearchResult{
		{Bookmark: &model.Bookmark{ID: "long", Title: strings.Repeat("x", 60), URL: "https://example.com", CreatedAt: now}},
	}
	m, _ := New(results, "x", now).Update(tea.WindowSizeMsg{Width: 30, Height: 10})

	view := m.View()

	if strings.Contains(view, strings.Repeat("x", 27)) {
		t.Error("expected title cut to the window width")
	}
	if !strings.Contains(view, strings.Repeat("x", 23)+"...") {
		t.Errorf("expected truncated title with ellipsis, got:\n%s", view)
	}
}
