// Package task holds all cli commands related to tasks
//
// e.g., rumbo task ...
package task

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
	taskservice "github.com/thenoetrevino/rumbo/internal/services/task"
)

// AddCmd returns the task add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a task to a project",
		Long: `Add a task to the end of a project's task list.

Examples:
  # Simple task (human-readable output)
  rumbo task add --project=P1 --name="Write tests"

  # With due date and status
  rumbo task add --project=P1 --name="Write tests" --due=2026-09-01 --status=in-progress

  # Quiet mode for bash capture (prints position)
  POSITION=$(rumbo task add --project=P1 --name="Write tests" --quiet)
`,
		RunE: runAdd,
	}

	// Required flags
	cmd.Flags().String("project", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("name", "", "Task name (required)")
	if err := cmd.MarkFlagRequired("name"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().String("status", "not-started", "Task status: not-started, in-progress, completed, blocked")
	cmd.Flags().String("notes", "", "Task notes")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (position only)")

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectID, _ := cmd.Flags().GetString("project")
	taskName, _ := cmd.Flags().GetString("name")
	taskDue, _ := cmd.Flags().GetString("due")
	taskStatus, _ := cmd.Flags().GetString("status")
	taskNotes, _ := cmd.Flags().GetString("notes")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Validate name is not empty
	if strings.TrimSpace(taskName) == "" {
		if fmtErr := formatter.Error("VALIDATION_ERROR", "task name cannot be empty"); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitValidation)
	}

	// Validate status
	status, err := cli.ParseStatus(taskStatus)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_STATUS", err.Error()); fmtErr != nil {
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

	// Add task
	err = cliInstance.App.TaskService.AddTask(ctx, taskservice.AddTaskRequest{
		ProjectID: projectID,
		Name:      taskName,
		DueDate:   taskDue,
		Status:    status,
		Notes:     taskNotes,
	})
	if err != nil {
		if err == taskservice.ErrProjectNotFound {
			if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %s not found", projectID)); fmtErr != nil {
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
		if fmtErr := formatter.Error("TASK_ADD_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	// Fetch the task list for the new task's position
	tasks, err := cliInstance.App.TaskService.GetTasks(ctx, projectID)
	if err != nil {
		if fmtErr := formatter.Error("TASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}
	position := len(tasks)

	// Output based on mode (JSON/Quiet/Human)
	if quietMode {
		fmt.Printf("%d\n", position)
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project_id": projectID,
			"task":       converters.TaskToView(position-1, tasks[position-1]),
		})
	}

	// Human-readable output
	fmt.Printf("✓ Task '%s' added to %s (position %d)\n", taskName, projectID, position)
	if taskDue != "" {
		fmt.Printf("  Due: %s\n", taskDue)
	}

	return nil
}
