package backup

import (
	"errors"

	"github.com/thenoetrevino/rumbo/internal/store"
)

// Backup errors. The snapshot decode sentinel is re-exposed from the store
// so callers can match with errors.Is without importing the store package.
var (
	// Validation errors
	ErrEmptyFilename = errors.New("backup filename cannot be empty")
	ErrEmptyFolder   = errors.New("backup folder cannot be empty")

	// Business logic errors
	ErrFileNotFound = errors.New("backup file not found")
	ErrBadSnapshot  = store.ErrBadSnapshot
)
