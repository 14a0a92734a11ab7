// Package backup holds the cli commands for snapshot backups
//
// e.g., rumbo backup ...
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
)

// PushCmd returns the backup push subcommand
func PushCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "push",
		Short: "Upload a snapshot of all data",
		Long: `Upload a timestamped snapshot of all data to the backup destination.

Snapshots are named project_data_<timestamp> and never overwrite each other.

Examples:
  # Push a snapshot
  rumbo backup push

  # Quiet mode for bash capture (prints the snapshot ID)
  SNAPSHOT_ID=$(rumbo backup push --quiet)
`,
		RunE: runPush,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (snapshot ID only)")

	return cmd
}

func runPush(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Initialize CLI
	cliInstance, err := cli.NewCLI(ctx)
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	// Push a snapshot
	info, err := cliInstance.App.BackupService.Push(ctx)
	if err != nil {
		if fmtErr := formatter.Error("BACKUP_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%s\n", info.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"snapshot": info,
		})
	}

	// Human-readable output
	fmt.Printf("✓ Snapshot '%s' uploaded (ID: %s)\n", info.Name, info.ID)
	return nil
}
