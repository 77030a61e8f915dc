package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func addRemove(topLevel *cobra.Command, gopts *globalOptions) {
	cmd := &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"remove"},
		Short:   "Remove articles from the reading list",
		Example: `
rl list --ids
rl rm 0b7c5d1e-2f4a-4b8e-9c3d-6a1f2e3d4c5b
`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := openEnv(gopts, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer e.Close()

			for _, id := range args {
				ctx, cancel := e.opContext(cmd.Context())
				err := e.service.Remove(ctx, id)
				cancel()
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			}
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
