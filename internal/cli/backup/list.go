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

// listTimeFormat renders snapshot modification times for human output
const listTimeFormat = "2006-01-02 15:04:05"

// ListCmd returns the backup list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available snapshots",
		Long:  "List available snapshots on the backup destination, newest first.",
		RunE:  runList,
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (snapshot IDs only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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

	// Get snapshots, newest first
	snapshots, err := cliInstance.App.BackupService.Snapshots(ctx)
	if err != nil {
		if fmtErr := formatter.Error("BACKUP_LIST_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output in appropriate format
	if quietMode {
		// Just print IDs (one per line)
		for _, s := range snapshots {
			fmt.Printf("%s\n", s.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":   true,
			"snapshots": snapshots,
		})
	}

	// Human-readable output
	if len(snapshots) == 0 {
		fmt.Println("No snapshots found")
		return nil
	}

	fmt.Printf("Found %d snapshots:\n\n", len(snapshots))
	for _, s := range snapshots {
		fmt.Printf("  %s  %s (ID: %s)\n", s.ModifiedTime.Format(listTimeFormat), s.Name, s.ID)
	}

	return nil
}
