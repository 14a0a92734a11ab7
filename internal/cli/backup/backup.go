package backup

import (
	"github.com/spf13/cobra"
)

// BackupCmd returns the backup parent command
func BackupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Push, list, and restore snapshots",
	}

	cmd.AddCommand(PushCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(PullCmd())

	return cmd
}
