// Package data holds the cli commands for JSON export and import
//
// e.g., rumbo data ...
package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
)

// exportTimeFormat names export files down to the second so repeated
// exports never collide.
const exportTimeFormat = "20060102_150405"

// ExportCmd returns the data export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export all data to a JSON file",
		Long: `Export all projects and tasks to a portable JSON file.

The file can be imported on another machine with 'rumbo data import'.

Examples:
  # Export to a timestamped file in the current directory
  rumbo data export

  # Export to a specific path
  rumbo data export --output=/tmp/projects.json

  # Quiet mode for bash capture (prints the file path)
  FILE=$(rumbo data export --quiet)
`,
		RunE: runExport,
	}

	// Optional flags
	cmd.Flags().String("output", "", "Output file path (default: project_manager_backup_<timestamp>.json)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (file path only)")

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	outputPath, _ := cmd.Flags().GetString("output")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	if outputPath == "" {
		outputPath = fmt.Sprintf("project_manager_backup_%s.json", time.Now().Format(exportTimeFormat))
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

	records := cliInstance.App.Records()

	// Export and write
	data, err := records.ExportJSON()
	if err != nil {
		if fmtErr := formatter.Error("EXPORT_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		if fmtErr := formatter.Error("FILE_WRITE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitError)
	}

	count := records.Count()

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%s\n", outputPath)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"path":     outputPath,
			"projects": count,
		})
	}

	// Human-readable output
	fmt.Printf("✓ Exported %d projects to %s\n", count, outputPath)
	return nil
}
