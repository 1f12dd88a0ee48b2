package commands

import (
	"github.com/spf13/cobra"

	"github.com/aoiro-dev/aoiro/internal/render"
)

func newBackupCommand(opts *options) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Copy the database to the backup directory",
		Args:  cobra.NoArgs,
		RunE: withBooks(opts, func(cmd *cobra.Command, s *session, _ []string) error {
			dir := to
			if dir == "" {
				dir = s.cfg.BackupPath(s.dir)
			}
			path, err := s.books.Backup(cmd.Context(), dir)
			if err != nil {
				return err
			}
			render.Success(cmd.OutOrStdout(), "Backed up to %s", path)
			return nil
		}),
	}

	cmd.Flags().StringVar(&to, "to", "", "backup directory (default from config)")
	return cmd
}
