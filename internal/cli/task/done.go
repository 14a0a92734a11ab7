package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
	"github.com/thenoetrevino/rumbo/internal/models"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <position>",
		Short: "Mark a task as completed",
		Long: `Mark the task at the given position as completed.

Examples:
  # Mark task 2 in project P1 as completed
  rumbo task done 2 --project=P1

  # JSON output for agents
  rumbo task done 2 --project=P1 --json

  # Quiet mode for bash capture
  rumbo task done 2 --project=P1 --quiet
`,
		RunE: runDone,
		Args: cobra.ExactArgs(1),
	}

	// Required flags
	cmd.Flags().String("project", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (position only)")

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Parse position from positional argument
	position, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid task position: %s", args[0])
	}

	projectID, _ := cmd.Flags().GetString("project")
	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")

	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	// Validate position
	index, err := cli.ParsePosition(position)
	if err != nil {
		if fmtErr := formatter.Error("INVALID_POSITION", err.Error()); fmtErr != nil {
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

	// Get task detail before the change for output
	task, err := cliInstance.App.TaskService.GetTask(ctx, projectID, index)
	if err != nil {
		if fmtErr := formatter.Error("TASK_NOT_FOUND", fmt.Sprintf("no task at position %d in project %s", position, projectID)); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		os.Exit(cli.ExitNotFound)
	}

	if task.Status == models.StatusCompleted {
		// Already done; not an error
		fmt.Fprintf(os.Stderr, "Task %d in %s is already completed\n", position, projectID)
		if quietMode {
			fmt.Printf("%d\n", position)
		}
		return nil
	}

	// Mark completed
	if err := cliInstance.App.TaskService.SetStatus(ctx, projectID, index, models.StatusCompleted); err != nil {
		if fmtErr := formatter.Error("STATUS_ERROR", err.Error()); fmtErr != nil {
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
			"status":     models.StatusCompleted.String(),
		})
	}

	// Human-readable output
	fmt.Printf("✓ Task '%s' marked completed\n", task.Name)
	return nil
}
