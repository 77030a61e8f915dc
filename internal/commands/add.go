package commands

import (
	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/printers"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/tab"
)

type addOptions struct {
	Title string
}

func addAdd(topLevel *cobra.Command, gopts *globalOptions) {
	ao := &addOptions{}

	cmd := &cobra.Command{
		Use:   "add [url]",
		Short: "Save a page to the reading list",
		Long: `Save a page to the reading list.

Without a URL the page is read from the clipboard. The page title is fetched
unless --title is given or fetchTitles is off in the config.`,
		Example: `
rl add https://go.dev/blog/range-functions
rl add --title "Range over func" https://go.dev/blog/range-functions
rl add            # URL from the clipboard
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(gopts, cmd.ErrOrStderr(), func(titles *tab.TitleFetcher) readlater.TabQuery {
				if len(args) == 1 {
					return tab.Static{URL: args[0], Title: ao.Title, Titles: titles}
				}
				return tab.NewClipboard(titles)
			})
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.opContext(cmd.Context())
			defer cancel()

			b, err := e.service.SaveCurrentTab(ctx)
			if err != nil {
				return err
			}

			pp := &printers.PrettyPrint{Out: cmd.OutOrStdout()}
			pp.Saved(b)
			return nil
		},
	}

	cmd.Flags().StringVarP(&ao.Title, "title", "t", "", "title to save instead of the page title")
	topLevel.AddCommand(cmd)
}
