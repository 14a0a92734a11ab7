package project

import (
	"errors"

	"github.com/thenoetrevino/rumbo/internal/store"
)

// Domain errors for project service. Store sentinels are re-exposed so
// callers can match with errors.Is without importing the store package.
var (
	// Validation errors
	ErrEmptyName        = store.ErrEmptyProjectName
	ErrInvalidProjectID = errors.New("invalid project ID")

	// Business logic errors
	ErrProjectNotFound = store.ErrProjectNotFound
)
