package task

import (
	"errors"

	"github.com/thenoetrevino/rumbo/internal/store"
)

// Task-related errors. Store sentinels are re-exposed so callers can match
// with errors.Is without importing the store package.
var (
	// Validation errors
	ErrEmptyName        = store.ErrEmptyTaskName
	ErrInvalidStatus    = store.ErrInvalidStatus
	ErrInvalidDueDate   = errors.New("due date must use YYYY-MM-DD format")
	ErrInvalidProjectID = errors.New("invalid project ID")

	// Business logic errors
	ErrProjectNotFound = store.ErrProjectNotFound
	ErrTaskNotFound    = store.ErrTaskNotFound
)
