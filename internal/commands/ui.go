package commands

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/tab"
	"github.com/nikbrunner/rl/internal/tui"
)

// runUI opens the reading list popup. "save tab" saves the URL on the
// clipboard, like rl add without arguments.
func runUI(cmd *cobra.Command, gopts *globalOptions) error {
	e, err := openEnv(gopts, nil, func(titles *tab.TitleFetcher) readlater.TabQuery {
		return tab.NewClipboard(titles)
	})
	if err != nil {
		return err
	}
	defer e.Close()

	// xdg-open and friends print to the terminal the TUI owns
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	app := tui.NewApp(tui.AppParams{
		Service: e.service,
		Timeout: e.cfg.OperationTimeout(),
	})

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}
