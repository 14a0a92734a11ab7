package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
	projectservice "github.com/thenoetrevino/rumbo/internal/services/project"
)

// UpdateCmd returns the project update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a project",
		Long: `Update project name, description, or notes. Fields left out keep
their current values.

Examples:
  # Rename a project
  rumbo project update --id=P1 --name="Backend API v2"

  # Clear the description
  rumbo project update --id=P1 --description=""
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().String("id", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("id"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional update flags
	cmd.Flags().String("name", "", "New project name")
	cmd.Flags().String("description", "", "New project description")
	cmd.Flags().String("notes", "", "New project notes")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectID, _ := cmd.Flags().GetString("id")
	projectName, _ := cmd.Flags().GetString("name")
	projectDescription, _ := cmd.Flags().GetString("description")
	projectNotes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// At least one update field must be provided. An explicitly empty flag
	// still counts; it clears the field.
	nameFlag := cmd.Flags().Lookup("name")
	descFlag := cmd.Flags().Lookup("description")
	notesFlag := cmd.Flags().Lookup("notes")

	if !nameFlag.Changed && !descFlag.Changed && !notesFlag.Changed {
		if fmtErr := formatter.Error("NO_UPDATES", "at least one of --name, --description, or --notes must be specified"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitUsage)
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

	// Build request from changed flags only
	req := projectservice.UpdateProjectRequest{
		ID: projectID,
	}
	if nameFlag.Changed {
		req.Name = &projectName
	}
	if descFlag.Changed {
		req.Description = &projectDescription
	}
	if notesFlag.Changed {
		req.Notes = &projectNotes
	}

	if err := cliInstance.App.ProjectService.UpdateProject(ctx, req); err != nil {
		if err == projectservice.ErrProjectNotFound {
			if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %s not found", projectID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if err == projectservice.ErrEmptyName {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		if fmtErr := formatter.Error("UPDATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output success
	if quietMode {
		fmt.Printf("%s\n", projectID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project_id": projectID,
		})
	}

	fmt.Printf("✓ Project %s updated successfully\n", projectID)
	return nil
}
