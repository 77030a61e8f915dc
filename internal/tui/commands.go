package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/rl/internal/model"
)

// loadedMsg carries the result of the load started as generation gen.
type loadedMsg struct {
	gen       uint64
	bookmarks []model.Bookmark
	err       error
}

type savedMsg struct {
	bookmark model.Bookmark
	err      error
}

type removedMsg struct {
	title string
	err   error
}

// openedMsg reports a URL handed to the browser. visited is false when the
// visit could not be recorded, which is not shown as an error.
type openedMsg struct {
	id      string
	url     string
	at      time.Time
	visited bool
	err     error
}

// actionMsg reports the outcome of an action that does not touch the store.
type actionMsg struct {
	status string
	err    error
}

func (a App) loadCmd(gen uint64) tea.Cmd {
	service, timeout := a.service, a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		bookmarks, err := service.Load(ctx)
		return loadedMsg{gen: gen, bookmarks: bookmarks, err: err}
	}
}

func (a App) saveCmd() tea.Cmd {
	service, timeout := a.service, a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		bookmark, err := service.SaveCurrentTab(ctx)
		return savedMsg{bookmark: bookmark, err: err}
	}
}

func (a App) removeCmd(b model.Bookmark) tea.Cmd {
	service, timeout := a.service, a.timeout
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		return removedMsg{title: b.Title, err: service.Remove(ctx, b.ID)}
	}
}

func (a App) openCmd(b model.Bookmark) tea.Cmd {
	service, timeout, open, now := a.service, a.timeout, a.openURL, a.now
	return func() tea.Msg {
		if err := open(b.URL); err != nil {
			return openedMsg{id: b.ID, url: b.URL, err: err}
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		at := now()
		visited := service.MarkVisited(ctx, b.ID, at) == nil
		return openedMsg{id: b.ID, url: b.URL, at: at, visited: visited}
	}
}

func (a App) yankCmd(b model.Bookmark) tea.Cmd {
	copyURL := a.copyURL
	return func() tea.Msg {
		return actionMsg{status: "Copied " + b.URL, err: copyURL(b.URL)}
	}
}
