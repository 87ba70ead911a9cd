package task

import (
	"errors"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 120 characters")
	ErrInvalidStatus   = models.ErrInvalidStatus
	ErrInvalidPriority = models.ErrInvalidPriority

	// Lookup errors (only from Require; mutations treat unknown ids as no-ops)
	ErrTaskNotFound = errors.New("task not found")
)
