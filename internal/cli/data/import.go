package data

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
)

// ImportCmd returns the data import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import data from a JSON file",
		Long: `Import projects and tasks from a JSON export, replacing all current data.

The file must contain both the projects and the next_project_id_num fields,
as written by 'rumbo data export'. Requires confirmation unless --force or
--quiet.

Examples:
  # Import with confirmation prompt
  rumbo data import --input=projects.json

  # Import without prompting
  rumbo data import --input=projects.json --force
`,
		RunE: runImport,
	}

	// Required flags
	cmd.Flags().String("input", "", "Input file path (required)")
	if err := cmd.MarkFlagRequired("input"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().Bool("force", false, "Skip confirmation")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (project count only)")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	inputPath, _ := cmd.Flags().GetString("input")
	force, _ := cmd.Flags().GetBool("force")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Read the import file before touching any state
	data, err := os.ReadFile(inputPath)
	if err != nil {
		if fmtErr := formatter.Error("FILE_READ_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	// Ask for confirmation unless force or quiet mode
	if !force && !quietMode {
		fmt.Printf("Replace ALL current data with the contents of %s? (y/N): ", inputPath)
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

	records := cliInstance.App.Records()

	// Validate and replace state. A failed import leaves current data intact.
	if err := records.ImportJSON(data); err != nil {
		if fmtErr := formatter.ErrorWithSuggestion("DATA_ERROR", err.Error(),
			"The file must be a JSON export produced by 'rumbo data export'"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitDataErr)
	}

	// Persist the imported data immediately
	if err := records.Save(ctx); err != nil {
		if fmtErr := formatter.Error("SAVE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	count := records.Count()

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", count)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"path":     inputPath,
			"projects": count,
		})
	}

	// Human-readable output
	fmt.Printf("✓ Imported %d projects from %s\n", count, inputPath)
	return nil
}
