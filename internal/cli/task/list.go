package task

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/rumbo/internal/cli"
	"github.com/thenoetrevino/rumbo/internal/converters"
	taskservice "github.com/thenoetrevino/rumbo/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a project's tasks",
		Long:  "List a project's tasks in order with their positions, statuses, and due dates.",
		RunE:  runList,
	}

	// Required flags
	cmd.Flags().String("project", "", "Project ID (required)")
	if err := cmd.MarkFlagRequired("project"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (positions only)")

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	projectID, _ := cmd.Flags().GetString("project")
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

	// Get the project's tasks
	tasks, err := cliInstance.App.TaskService.GetTasks(ctx, projectID)
	if err != nil {
		if err == taskservice.ErrProjectNotFound {
			if fmtErr := formatter.Error("PROJECT_NOT_FOUND", fmt.Sprintf("project %s not found", projectID)); fmtErr != nil {
				log.Printf("Error formatting error message: %v", fmtErr)
			}
			os.Exit(cli.ExitNotFound)
		}
		if fmtErr := formatter.Error("TASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return err
	}

	views := converters.TasksToViews(tasks)

	// Output in appropriate format
	if quietMode {
		// Just print positions (one per line)
		for _, v := range views {
			fmt.Printf("%d\n", v.Position)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":    true,
			"project_id": projectID,
			"tasks":      views,
		})
	}

	// Human-readable output
	if len(views) == 0 {
		fmt.Printf("No tasks in project %s\n", projectID)
		return nil
	}

	fmt.Printf("Found %d tasks in %s:\n\n", len(views), projectID)
	for _, v := range views {
		fmt.Printf("  [%d] %s (%s)", v.Position, v.Name, v.Status)
		if v.DueDate != "" {
			fmt.Printf(" due %s", v.DueDate)
		}
		fmt.Println()
	}

	return nil
}
