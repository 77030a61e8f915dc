package tui

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/tui/layout"
)

// renderView creates the complete popup view.
func (a App) renderView() string {
	width := layout.CalculatePopupWidth(a.width, a.layoutConfig.Popup)
	height := layout.CalculateListHeight(a.height, a.layoutConfig.Popup)

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left,
			a.renderHeader(width),
			a.renderBody(width, height),
			a.renderHelpBar(),
		),
	)

	// Use Place to ensure exact terminal dimensions and prevent overflow
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

// renderHeader renders the folder title with the save action on the right.
func (a App) renderHeader(width int) string {
	title := readlater.DefaultFolderName
	if a.service != nil {
		title = a.service.FolderName()
	}
	save := a.renderHint(Hint{"s", "save tab"})

	gap := width - a.layoutConfig.Popup.ContentPadding - layout.VisibleLength(title) - layout.VisibleLength(save)
	if gap < 2 {
		gap = 2
	}
	return a.styles.Header.Render(title + strings.Repeat(" ", gap) + save)
}

// renderBody renders exactly one of: loading, error, empty, or the list.
func (a App) renderBody(width, height int) string {
	switch {
	case a.state.Loading:
		return a.spinner.View() + " Loading..."

	case a.state.Err != nil:
		msg, _ := layout.TruncateText("Error: "+a.state.Err.Error(), width-a.layoutConfig.Popup.ContentPadding, a.layoutConfig.Text)
		return a.styles.Error.Render(msg)

	case len(a.state.Bookmarks) == 0:
		return a.styles.Empty.Render("No saved articles yet")
	}

	var content strings.Builder

	// Show filter input or indicator at top
	if a.filtering {
		content.WriteString(a.filter.View() + "\n")
		height--
	} else if q := a.filter.Value(); q != "" {
		content.WriteString(a.styles.Count.Render("/"+q) + "\n")
		height--
	}

	if len(a.rows) == 0 {
		content.WriteString(a.styles.Empty.Render("(no matches)"))
		return content.String()
	}

	// Calculate viewport offset to keep cursor visible
	visible := max(height, 1)
	offset := layout.CalculateViewportOffset(a.cursor, len(a.rows), visible)
	rowWidth := width - a.layoutConfig.Popup.ContentPadding

	for i, row := range a.rows {
		if i < offset {
			continue
		}
		if i >= offset+visible {
			break
		}
		content.WriteString(a.renderRow(row, i == a.cursor, rowWidth) + "\n")
	}

	return strings.TrimRight(content.String(), "\n")
}

func (a App) renderRow(row readlater.Row, isCursor bool, maxWidth int) string {
	if row.IsDay() {
		prefix := "▸ "
		if row.Expanded {
			prefix = "▾ "
		}
		suffix := "  " + readlater.CountLabel(row.Count)

		line, _ := layout.TruncateWithPrefixSuffix(row.Label, maxWidth, prefix, suffix, a.layoutConfig.Text)
		if isCursor {
			return a.styles.DaySelected.Render(padRight(line, maxWidth))
		}
		return a.styles.Day.Render(line)
	}

	indent := strings.Repeat(" ", a.layoutConfig.Popup.ItemIndent)
	style := a.styles.Item
	if row.Bookmark.VisitedAt != nil {
		// opened before
		indent = strings.Repeat(" ", max(a.layoutConfig.Popup.ItemIndent-2, 0)) + "✓ "
		style = a.styles.ItemVisited
	}
	meta := "  " + hostOf(row.Bookmark.URL) + " · " + formatTimeAgo(row.Bookmark.CreatedAt, a.now())

	titleWidth := maxWidth - layout.VisibleLength(indent) - layout.VisibleLength(meta)
	if titleWidth < maxWidth/2 {
		// Not enough room for the details, give the title everything
		meta = ""
		titleWidth = maxWidth - layout.VisibleLength(indent)
	}
	title, _ := layout.TruncateText(row.Bookmark.Title, titleWidth, a.layoutConfig.Text)

	if isCursor {
		return a.styles.ItemSelected.Render(padRight(indent+title+meta, maxWidth))
	}
	return style.Render(indent+title) + a.styles.URL.Render(meta)
}

func (a App) renderHelpBar() string {
	var lines []string

	// Line 1: Empty spacer OR status message
	lines = append(lines, a.styles.Status.Render(a.status))

	hints := a.renderHints(a.getContextualHints())
	if hints != "" {
		lines = append(lines, hints)
	}

	return a.styles.Help.Render(strings.Join(lines, "\n"))
}

func padRight(s string, width int) string {
	if n := layout.VisibleLength(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}

// hostOf returns the host of a URL without a leading www., or the raw string
// when it does not parse.
func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return raw
	}
	return strings.TrimPrefix(u.Host, "www.")
}

func formatTimeAgo(t, now time.Time) string {
	d := now.Sub(t)
	if d < time.Minute {
		return "just now"
	} else if d < time.Hour {
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	} else if d < 24*time.Hour {
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	}
	return fmt.Sprintf("%dd ago", int(d.Hours()/24))
}
