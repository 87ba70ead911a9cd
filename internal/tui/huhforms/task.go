// Package huhforms builds the huh forms used by the TUI.
package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
)

// TaskFormFields are the values the new task form writes into
type TaskFormFields struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Assignee    *string
	Due         *string
	Tags        *string
	Confirm     *bool
}

// CreateTaskForm creates a huh form for adding a task.
// The form uses pointers to update values in place.
func CreateTaskForm(f TaskFormFields, descriptionLines int) *huh.Form {
	priorities := make([]huh.Option[models.Priority], 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		priorities = append(priorities, huh.NewOption(p.Label(), p))
	}

	fields := []huh.Field{
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			CharLimit(models.MaxTitleLength).
			Validate(validateTitle).
			Value(f.Title),

		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown supported...").
			CharLimit(5000).
			Lines(descriptionLines).
			Value(f.Description),

		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorities...).
			Value(f.Priority),

		huh.NewInput().
			Key("assignee").
			Title("Assignee").
			Placeholder("Who owns this?").
			Value(f.Assignee),

		huh.NewInput().
			Key("due").
			Title("Due date").
			Placeholder("YYYY-MM-DD").
			Validate(validateDue).
			Value(f.Due),

		huh.NewInput().
			Key("tags").
			Title("Tags").
			Placeholder("comma separated, e.g. qa, release").
			Value(f.Tags),

		huh.NewConfirm().
			Key("confirm").
			Title("Create this task?").
			Affirmative("Yes").
			Negative("No").
			Value(f.Confirm),
	}

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

func validateTitle(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("title is required")
	}
	return nil
}

func validateDue(s string) error {
	_, err := converters.ParseDueDate(s)
	return err
}
