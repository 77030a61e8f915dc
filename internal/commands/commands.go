package commands

import (
	"github.com/spf13/cobra"
)

// globalOptions holds flags shared by every command.
type globalOptions struct {
	ConfigPath string
	LogLevel   string
}

// New builds the rl command tree. Without a subcommand rl opens the reading
// list popup.
func New() *cobra.Command {
	gopts := &globalOptions{}

	cmd := &cobra.Command{
		Use:   "rl",
		Short: "A read later list, grouped by the day you saved it.",
		Long: `rl keeps a "Read Later" bookmarks folder and shows it grouped by day:
Today, Yesterday, then older days newest first.

Run without arguments to open the interactive list.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, gopts)
		},
	}

	cmd.PersistentFlags().StringVar(&gopts.ConfigPath, "config", "",
		"config file (default $RL_CONFIG or ~/.config/rl/config.json)")
	cmd.PersistentFlags().StringVar(&gopts.LogLevel, "log-level", "",
		"log to stderr at this level (debug, info, warn, error); the interactive list always logs to its file")

	addCommands(cmd, gopts)
	return cmd
}

func addCommands(topLevel *cobra.Command, gopts *globalOptions) {
	addAdd(topLevel, gopts)
	addList(topLevel, gopts)
	addRemove(topLevel, gopts)
	addOpen(topLevel, gopts)
	addImport(topLevel, gopts)
	addExport(topLevel, gopts)
}
