package commands

import (
	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var opts options

	rootCmd := &cobra.Command{
		Use:     "aoiro",
		Short:   "Blue-form bookkeeping for sole proprietors",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dir, "dir", ".", "book directory")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default <dir>/aoiro.yaml)")

	rootCmd.AddCommand(
		newInitCommand(&opts),
		newAccountCommand(&opts),
		newEntryCommand(&opts),
		newReportCommand(&opts),
		newAssetCommand(&opts),
		newRentCommand(&opts),
		newLossCommand(&opts),
		newBackupCommand(&opts),
	)

	return rootCmd
}
