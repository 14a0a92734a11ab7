// Package project holds all cli commands related to projects
//
// e.g., rumbo project ...
package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
	"github.com/thenoetrevino/rumbo/internal/converters"
	projectservice "github.com/thenoetrevino/rumbo/internal/services/project"
)

// CreateCmd returns the project create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new project",
		Long: `Create a new project with specified attributes.

Examples:
  # Simple project (human-readable output)
  rumbo project create --name="Backend API"

  # JSON output for agents
  rumbo project create --name="Backend API" --json

  # Quiet mode for bash capture
  PROJECT_ID=$(rumbo project create --name="Backend API" --quiet)

  # With description and notes
  rumbo project create \
    --name="Backend API" \
    --description="REST API for mobile app" \
    --notes="Kickoff scheduled for Monday"
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("name", "", "Project name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("description", "", "Project description")
	cmd.Flags().String("notes", "", "Free-form project notes (markdown)")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectName, _ := cmd.Flags().GetString("name")
	projectDescription, _ := cmd.Flags().GetString("description")
	projectNotes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Validate name is not empty
	if strings.TrimSpace(projectName) == "" {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "project name cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
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

	// Create project
	project, err := cliInstance.App.ProjectService.CreateProject(ctx, projectservice.CreateProjectRequest{
		Name:        projectName,
		Description: projectDescription,
		Notes:       projectNotes,
	})
	if err != nil {
		if err == projectservice.ErrEmptyName {
			if fmtErr := formatter.Error("VALIDATION_ERROR", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		if fmtErr := formatter.Error("PROJECT_CREATE_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%s\n", project.ID)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"project": converters.ProjectToView(project),
		})
	}

	// Human-readable output
	fmt.Printf("✓ Project '%s' created successfully (ID: %s)\n", project.Name, project.ID)
	if projectDescription != "" {
		fmt.Printf("  Description: %s\n", projectDescription)
	}

	return nil
}
