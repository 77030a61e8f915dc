package commands

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/exporter"
	"github.com/nikbrunner/rl/internal/readlater"
)

func addExport(topLevel *cobra.Command, gopts *globalOptions) {
	cmd := &cobra.Command{
		Use:   "export [path]",
		Short: "Export the reading list as browser bookmark HTML",
		Long: `Export the reading list as Netscape bookmark HTML with one folder per day.
The default path is ~/Downloads/read-later-YYYY-MM-DD.html.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			now := time.Now()

			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				var err error
				if path, err = exporter.DefaultExportPath(now); err != nil {
					return fmt.Errorf("default export path: %w", err)
				}
			}

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

			html := exporter.ExportHTML(e.service.FolderName(), readlater.Group(bookmarks, now))
			if err := os.WriteFile(path, []byte(html), 0644); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d articles to %s\n", len(bookmarks), path)
			return nil
		},
	}

	topLevel.AddCommand(cmd)
}
