package persistence

import (
	"encoding/json"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// recordSchema is the shape every stored task record must have in strict mode
var recordSchema = compileRecordSchema()

// compileRecordSchema derives the task record schema from the model enums
func compileRecordSchema() *jsonschema.Schema {
	statuses := make([]string, 0, len(models.Columns()))
	for _, c := range models.Columns() {
		statuses = append(statuses, string(c.ID))
	}
	priorities := make([]string, 0, len(models.Priorities()))
	for _, p := range models.Priorities() {
		priorities = append(priorities, string(p))
	}

	text := map[string]any{"type": "string"}
	schema := map[string]any{
		"type":     "object",
		"required": []string{"id", "status", "priority"},
		"properties": map[string]any{
			"id":          map[string]any{"type": "string", "minLength": 1},
			"title":       text,
			"description": text,
			"assignee":    text,
			"createdAt":   text,
			"dueDate":     text,
			"status":      map[string]any{"enum": statuses},
			"priority":    map[string]any{"enum": priorities},
			"tags": map[string]any{
				"type":  []string{"array", "null"},
				"items": text,
			},
		},
	}

	data, err := json.Marshal(schema)
	if err != nil {
		panic(fmt.Sprintf("task record schema: %v", err))
	}
	return jsonschema.MustCompileString("task-record.json", string(data))
}

// validateRecord checks one raw snapshot element against recordSchema
func validateRecord(raw json.RawMessage) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return err
	}
	if err := recordSchema.Validate(v); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidRecord, firstCause(err))
	}
	return nil
}

// firstCause returns the innermost message of a schema validation error
func firstCause(err error) string {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return err.Error()
	}
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	if ve.InstanceLocation == "" {
		return ve.Message
	}
	return ve.InstanceLocation + ": " + ve.Message
}
