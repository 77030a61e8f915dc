package picker

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/search"
	"github.com/nikbrunner/rl/internal/tui/layout"
)

var (
	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("212")).
			Bold(true)

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	urlStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244")).
			Italic(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("109")).
			Bold(true)

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("99")).
			Bold(true).
			MarginBottom(1)
)

// KeyMap holds the picker's bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Cancel key.Binding
}

// DefaultKeyMap mirrors the movement keys of the main list.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "up")),
		Down:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "down")),
		Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "cancel")),
	}
}

// Picker lets the user choose one of several saved articles matching a query.
// Matches are listed under the day they were saved, the same way the main
// list groups them. Day headers are skipped by the cursor.
type Picker struct {
	keys      KeyMap
	text      layout.TextConfig
	rows      []readlater.Row
	matches   int
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
}

// New groups results by the day they were saved relative to now. Within a
// day, results keep their ranking order.
func New(results []search.SearchResult, query string, now time.Time) Picker {
	bookmarks := make([]model.Bookmark, 0, len(results))
	for _, r := range results {
		bookmarks = append(bookmarks, *r.Bookmark)
	}

	p := Picker{
		keys:    DefaultKeyMap(),
		text:    layout.DefaultConfig().Text,
		rows:    readlater.Rows(readlater.Group(bookmarks, now), readlater.ExpansionState{}, true),
		matches: len(bookmarks),
		query:   query,
		width:   80,
	}
	p.cursor = p.nextArticle(-1, 1)
	return p
}

// nextArticle returns the first article row after from in direction dir, or
// from itself when there is none.
func (p Picker) nextArticle(from, dir int) int {
	for i := from + dir; i >= 0 && i < len(p.rows); i += dir {
		if !p.rows[i].IsDay() {
			return i
		}
	}
	return from
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width
		return p, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Cancel):
			p.cancelled = true
			return p, tea.Quit
		case key.Matches(msg, p.keys.Select):
			p.selected = p.cursor >= 0
			return p, tea.Quit
		case key.Matches(msg, p.keys.Down):
			p.cursor = p.nextArticle(p.cursor, 1)
		case key.Matches(msg, p.keys.Up):
			p.cursor = p.nextArticle(p.cursor, -1)
		}
	}

	return p, nil
}

// View implements tea.Model.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Search: %s (%d results)", p.query, p.matches)))
	b.WriteString("\n\n")

	for i, row := range p.rows {
		if row.IsDay() {
			b.WriteString(dayStyle.Render(row.Label))
			b.WriteString(countStyle.Render("  " + readlater.CountLabel(row.Count)))
			b.WriteString("\n")
			continue
		}

		cursor := "  "
		style := normalStyle
		if i == p.cursor {
			cursor = "> "
			style = selectedStyle
		}
		title, _ := layout.TruncateText(row.Bookmark.Title, p.width-4, p.text)
		url, _ := layout.TruncateText(row.Bookmark.URL, p.width-6, p.text)

		b.WriteString("  " + cursor + style.Render(title) + "\n")
		b.WriteString("      " + urlStyle.Render(url) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(countStyle.Render(fmt.Sprintf("%s/%s: move  %s: %s  %s: %s",
		p.keys.Down.Help().Key, p.keys.Up.Help().Key,
		p.keys.Select.Help().Key, p.keys.Select.Help().Desc,
		p.keys.Cancel.Help().Key, p.keys.Cancel.Help().Desc)))

	return b.String()
}

// SelectedBookmark returns the selected bookmark, or nil if cancelled.
func (p Picker) SelectedBookmark() *model.Bookmark {
	if p.cancelled || !p.selected || p.cursor < 0 || p.cursor >= len(p.rows) {
		return nil
	}
	return p.rows[p.cursor].Bookmark
}

// Cancelled returns true if the user cancelled the selection.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
