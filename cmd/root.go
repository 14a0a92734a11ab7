package cmd

import (
	"github.com/spf13/cobra"

	backupcmd "github.com/thenoetrevino/rumbo/internal/cli/backup"
	datacmd "github.com/thenoetrevino/rumbo/internal/cli/data"
	projectcmd "github.com/thenoetrevino/rumbo/internal/cli/project"
	taskcmd "github.com/thenoetrevino/rumbo/internal/cli/task"
	"github.com/thenoetrevino/rumbo/internal/launcher"
)

var rootCmd = &cobra.Command{
	Use:   "rumbo",
	Short: "Rumbo - a terminal-based project and task tracker",
	Long: `Rumbo is a terminal-based tracker for personal projects and their tasks.

Run it with no arguments to open the interactive interface, or use the
subcommands for scriptable access to the same records.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return launcher.Launch()
	},
}

func init() {
	rootCmd.AddCommand(projectcmd.ProjectCmd())
	rootCmd.AddCommand(taskcmd.TaskCmd())
	rootCmd.AddCommand(datacmd.DataCmd())
	rootCmd.AddCommand(backupcmd.BackupCmd())
}

func Execute() error {
	return rootCmd.Execute()
}
