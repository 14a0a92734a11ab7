package backup

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	backupservice "github.com/thenoetrevino/rumbo/internal/backup"
	"github.com/thenoetrevino/rumbo/internal/cli"
)

// PullCmd returns the backup pull subcommand
func PullCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pull",
		Short: "Restore a snapshot",
		Long: `Download a snapshot and replace all current data with it.

The restored data is saved to the backing file immediately. Requires
confirmation unless --force or --quiet. Snapshot IDs come from
'rumbo backup list'.

Examples:
  # Restore a snapshot with confirmation prompt
  rumbo backup pull --id=<snapshot_id>

  # Restore the newest snapshot without prompting
  rumbo backup pull --id=$(rumbo backup list --quiet | head -n1) --force
`,
		RunE: runPull,
	}

	// Required flags
	cmd.Flags().String("id", "", "Snapshot ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output")

	return cmd
}

func runPull(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	snapshotID, _ := cmd.Flags().GetString("id")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Printf("Replace ALL current data with snapshot %s? (y/N): ", snapshotID)
		var response string
		if _, err := fmt.Scanln(&response); err != nil {
			log.Printf("Error reading user input: %v", err)
		}
		if strings.ToLower(response) != "y" && strings.ToLower(response) != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

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

	// Pull the snapshot
	if err := cliInstance.App.BackupService.Pull(ctx, snapshotID); err != nil {
		if err == backupservice.ErrFileNotFound {
			if fmtErr := formatter.Error("SNAPSHOT_NOT_FOUND", fmt.Sprintf("snapshot %s not found", snapshotID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if errors.Is(err, backupservice.ErrBadSnapshot) {
			if fmtErr := formatter.Error("DATA_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitDataErr)
		}
		if fmtErr := formatter.Error("RESTORE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	count := cliInstance.App.Records().Count()

	// Output success
	if quietMode {
		fmt.Printf("%d\n", count)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":     true,
			"snapshot_id": snapshotID,
			"projects":    count,
		})
	}

	fmt.Printf("✓ Snapshot restored; %d projects loaded\n", count)
	return nil
}
