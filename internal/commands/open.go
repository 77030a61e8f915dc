package commands

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/logger"
	"github.com/nikbrunner/rl/internal/model"
	"github.com/nikbrunner/rl/internal/picker"
	"github.com/nikbrunner/rl/internal/search"
)

// openURL is replaced in tests.
var openURL = browser.OpenURL

func addOpen(topLevel *cobra.Command, gopts *globalOptions) {
	cmd := &cobra.Command{
		Use:   "open <query>...",
		Short: "Fuzzy find an article by title and open it in the browser",
		Long: `Fuzzy find an article by title and open it in the browser.

A single match is opened directly, several matches open a picker. The visit
is recorded on the bookmark.`,
		Example: `
rl open range func
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")

			e, err := openEnv(gopts, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.opContext(cmd.Context())
			bookmarks, err := e.service.Load(ctx)
			cancel()
			if err != nil {
				return err
			}

			results := search.FuzzySearchBookmarks(bookmarks, query)
			out := cmd.OutOrStdout()

			var selected *model.Bookmark
			switch len(results) {
			case 0:
				fmt.Fprintf(out, "No saved articles match '%s'\n", query)
				return nil
			case 1:
				selected = results[0].Bookmark
			default:
				p := picker.New(results, query, time.Now())
				final, err := tea.NewProgram(p).Run()
				if err != nil {
					return fmt.Errorf("run picker: %w", err)
				}
				selected = final.(picker.Picker).SelectedBookmark()
			}

			if selected == nil {
				return nil
			}
			fmt.Fprintf(out, "Opening: %s\n", selected.Title)

			ctx, cancel = e.opContext(cmd.Context())
			defer cancel()
			if err := e.service.MarkVisited(ctx, selected.ID, time.Now()); err != nil {
				// Not worth failing the open over
				e.log.Warn("record visit failed", logger.Error(err))
			}

			return openURL(selected.URL)
		},
	}

	topLevel.AddCommand(cmd)
}
