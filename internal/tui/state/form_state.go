package state

import (
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// FormState holds the new task form and the values its fields write into.
// The form keeps pointers to these fields, so FormState must not be copied.
type FormState struct {
	TaskForm *huh.Form

	FormTitle       string
	FormDescription string
	FormPriority    models.Priority
	FormAssignee    string
	FormDue         string
	FormTags        string
	FormConfirm     bool

	// FormStatus is the column the task lands in
	FormStatus models.ColumnKey
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Reset prepares the fields for a new task in status.
func (s *FormState) Reset(status models.ColumnKey) {
	s.TaskForm = nil
	s.FormTitle = ""
	s.FormDescription = ""
	s.FormPriority = models.DefaultPriority
	s.FormAssignee = ""
	s.FormDue = ""
	s.FormTags = ""
	s.FormConfirm = true
	s.FormStatus = status
}

// Clear drops the form.
func (s *FormState) Clear() {
	s.Reset("")
}

// HasChanges reports whether the user typed anything worth keeping.
func (s *FormState) HasChanges() bool {
	return strings.TrimSpace(s.FormTitle) != "" ||
		strings.TrimSpace(s.FormDescription) != "" ||
		strings.TrimSpace(s.FormAssignee) != "" ||
		strings.TrimSpace(s.FormDue) != "" ||
		strings.TrimSpace(s.FormTags) != ""
}
