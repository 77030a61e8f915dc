package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/printers"
	"github.com/nikbrunner/rl/internal/readlater"
	"github.com/nikbrunner/rl/internal/search"
)

type listOptions struct {
	ShowID bool
	Filter string
}

func addList(topLevel *cobra.Command, gopts *globalOptions) {
	lo := &listOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the reading list grouped by day",
		Example: `
rl list
rl list --ids
rl list --filter golang
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(gopts, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer e.Close()

			ctx, cancel := e.opContext(cmd.Context())
			defer cancel()

			bookmarks, err := e.service.Load(ctx)
			if err != nil {
				return err
			}
			bookmarks = search.Filter(bookmarks, lo.Filter)

			pp := &printers.PrettyPrint{Out: cmd.OutOrStdout(), ShowID: lo.ShowID}
			pp.Buckets(readlater.Group(bookmarks, time.Now()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&lo.ShowID, "ids", false, "show bookmark IDs, as used by rm")
	cmd.Flags().StringVarP(&lo.Filter, "filter", "f", "", "only list titles fuzzy matching this query")
	topLevel.AddCommand(cmd)
}
