package data

import (
	"github.com/spf13/cobra"
)

// DataCmd returns the data parent command
func DataCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "data",
		Short: "Export and import data as JSON",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())

	return cmd
}
