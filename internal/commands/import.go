package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikbrunner/rl/internal/importer"
)

type importOptions struct {
	Folder string
}

func addImport(topLevel *cobra.Command, gopts *globalOptions) {
	iopts := &importOptions{}

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import links from a browser bookmarks export",
		Long: `Import links from a Netscape bookmark HTML file, the format every browser
exports. Links keep their ADD_DATE, so they are grouped under the day they
were originally bookmarked. URLs already on the reading list are skipped.`,
		Example: `
rl import ~/Downloads/bookmarks.html
rl import --folder "Read Later" ~/Downloads/bookmarks.html
rl import --folder "" ~/Downloads/bookmarks.html   # every link
`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			entries, err := importer.ParseHTMLBookmarks(f)
			if err != nil {
				return fmt.Errorf("parse %s: %w", args[0], err)
			}

			e, err := openEnv(gopts, cmd.ErrOrStderr(), nil)
			if err != nil {
				return err
			}
			defer e.Close()

			folder := iopts.Folder
			if !cmd.Flags().Changed("folder") {
				folder = e.service.FolderName()
			}

			ctx, cancel := e.opContext(cmd.Context())
			defer cancel()

			added, skipped, err := e.service.Import(ctx, importer.InFolder(entries, folder))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d articles", added)
			if skipped > 0 {
				fmt.Fprintf(cmd.OutOrStdout(), " (%d duplicates skipped)", skipped)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&iopts.Folder, "folder", "",
		`only import links below this folder (default the reading list folder name, "" for all)`)
	topLevel.AddCommand(cmd)
}
