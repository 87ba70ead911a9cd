package types

import "github.com/google/uuid"

// TaskID identifies a task on the board. It is opaque to callers and never
// changes once assigned.
type TaskID string

// NewTaskID returns a fresh random task identifier
func NewTaskID() TaskID {
	return TaskID(uuid.NewString())
}

// String returns the raw identifier
func (id TaskID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is unset
func (id TaskID) IsZero() bool {
	return id == ""
}
