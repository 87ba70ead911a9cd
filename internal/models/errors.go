package models

import "errors"

// Domain-specific errors for column and field validation
var (
	// ErrInvalidStatus indicates a status that is not one of the board columns
	ErrInvalidStatus = errors.New("invalid status: must be one of backlog, inProgress, review, done")

	// ErrInvalidPriority indicates a priority outside high, medium, low
	ErrInvalidPriority = errors.New("invalid priority: must be one of high, medium, low")

	// ErrAlreadyFirstColumn indicates an attempt to move left from the first column
	ErrAlreadyFirstColumn = errors.New("task is already in the first column")

	// ErrAlreadyLastColumn indicates an attempt to move right from the last column
	ErrAlreadyLastColumn = errors.New("task is already in the last column")
)
