package store

import "errors"

var (
	// Validation errors
	ErrEmptyProjectName = errors.New("project name cannot be empty")
	ErrEmptyTaskName    = errors.New("task name cannot be empty")
	ErrInvalidStatus    = errors.New("invalid task status")
	ErrInvalidImport    = errors.New("import data missing projects or next_project_id_num field")

	// Business logic errors
	ErrProjectNotFound = errors.New("project not found")
	ErrTaskNotFound    = errors.New("task index out of range")

	// Persistence errors
	ErrFileLocked  = errors.New("backing file is locked by another process")
	ErrBadSnapshot = errors.New("failed to parse snapshot")
)
