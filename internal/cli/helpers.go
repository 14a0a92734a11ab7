package cli

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/rumbo/internal/models"
)

// ParseStatus maps a status flag value to its task status
func ParseStatus(value string) (models.Status, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "not-started", "not started":
		return models.StatusNotStarted, nil
	case "in-progress", "in progress":
		return models.StatusInProgress, nil
	case "completed", "done":
		return models.StatusCompleted, nil
	case "blocked":
		return models.StatusBlocked, nil
	}

	return "", fmt.Errorf("invalid status '%s' (must be: not-started, in-progress, completed, blocked)", value)
}

// ParsePosition converts a 1-based task position, as shown in listings,
// to the task's index
func ParsePosition(position int) (int, error) {
	if position < 1 {
		return 0, fmt.Errorf("invalid position %d (positions start at 1)", position)
	}

	return position - 1, nil
}
