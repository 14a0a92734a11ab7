package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
	"github.com/thenoetrevino/rumbo/internal/models"
	taskservice "github.com/thenoetrevino/rumbo/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update a task",
		Long: `Update task name, due date, status, or notes. Fields left out keep
their current values. Tasks are addressed by their position in 'rumbo task list'.

Examples:
  # Change a task's status
  rumbo task update --project=P1 --position=2 --status=blocked

  # Clear a due date
  rumbo task update --project=P1 --position=2 --due=""
`,
		RunE: runUpdate,
	}

	// Required flags
	cmd.Flags().String("project", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().Int("position", 0, "Task position as shown in listings (required)")
	if err := cmd.MarkFlagRequired("position"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional update flags
	cmd.Flags().String("name", "", "New task name")
	cmd.Flags().String("due", "", "New due date (YYYY-MM-DD)")
	cmd.Flags().String("status", "", "New status: not-started, in-progress, completed, blocked")
	cmd.Flags().String("notes", "", "New task notes")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (position only)")

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectID, _ := cmd.Flags().GetString("project")
	position, _ := cmd.Flags().GetInt("position")
	taskName, _ := cmd.Flags().GetString("name")
	taskDue, _ := cmd.Flags().GetString("due")
	taskStatus, _ := cmd.Flags().GetString("status")
	taskNotes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// At least one update field must be provided
	nameFlag := cmd.Flags().Lookup("name")
	dueFlag := cmd.Flags().Lookup("due")
	statusFlag := cmd.Flags().Lookup("status")
	notesFlag := cmd.Flags().Lookup("notes")

	if !nameFlag.Changed && !dueFlag.Changed && !statusFlag.Changed && !notesFlag.Changed {
		if fmtErr := formatter.Error("NO_UPDATES", "at least one of --name, --due, --status, or --notes must be specified"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitUsage)
	}

	// Validate position
	index, err := cli.ParsePosition(position)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_POSITION", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Build request from changed flags only
	req := taskservice.UpdateTaskRequest{
		ProjectID: projectID,
		Index:     index,
	}
	if nameFlag.Changed {
		req.Name = &taskName
	}
	if dueFlag.Changed {
		req.DueDate = &taskDue
	}
	if statusFlag.Changed {
		var status models.Status
		status, err = cli.ParseStatus(taskStatus)
		if err != nil {
			if fmtErr := formatter.Error("INVALID_STATUS", err.Error()); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitValidation)
		}
		req.Status = &status
	}
	if notesFlag.Changed {
		req.Notes = &taskNotes
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

	if err := cliInstance.App.TaskService.UpdateTask(ctx, req); err != nil {
		if err == taskservice.ErrProjectNotFound {
			if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %s not found", projectID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if err == taskservice.ErrTaskNotFound {
			if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("no task at position %d in project %s", position, projectID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if err == taskservice.ErrInvalidDueDate || err == taskservice.ErrEmptyName {
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
		fmt.Printf("%d\n", position)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project_id": projectID,
			"position":   position,
		})
	}

	fmt.Printf("✓ Task %d in %s updated successfully\n", position, projectID)
	return nil
}
