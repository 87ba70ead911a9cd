package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/thenoetrevino/flowboard/internal/models"
)

// tracerName scopes the spans around slot reads and writes
const tracerName = "github.com/thenoetrevino/flowboard/internal/persistence"

func (a *Adapter) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return otel.Tracer(tracerName).Start(ctx, name, trace.WithAttributes(
		attribute.String("flowboard.slot.key", a.key),
	))
}

func failSpan(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// Adapter serializes the task collection to and from one slot key
type Adapter struct {
	slot   Slot
	key    string
	strict bool
}

// Option configures an Adapter
type Option func(*Adapter)

// WithKey overrides the slot key (defaults to models.DefaultSlotKey)
func WithKey(key string) Option {
	return func(a *Adapter) {
		if key != "" {
			a.key = key
		}
	}
}

// WithStrictRecords makes Load validate each record and skip only the bad
// ones, instead of discarding the whole snapshot when it fails to decode.
func WithStrictRecords(strict bool) Option {
	return func(a *Adapter) {
		a.strict = strict
	}
}

// NewAdapter creates an adapter over slot. A nil slot behaves like NopSlot.
func NewAdapter(slot Slot, opts ...Option) *Adapter {
	if slot == nil {
		slot = NopSlot{}
	}
	a := &Adapter{slot: slot, key: models.DefaultSlotKey}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Key returns the slot key the adapter reads and writes
func (a *Adapter) Key() string {
	return a.key
}

// Available reports whether saves reach durable storage
func (a *Adapter) Available() bool {
	if d, ok := a.slot.(Durable); ok {
		return d.Durable()
	}
	return true
}

// Load reads the slot and decodes the snapshot.
// It never fails: an absent, unreadable or corrupt slot yields an empty
// collection and the caller decides whether to seed.
func (a *Adapter) Load(ctx context.Context) []models.Task {
	ctx, span := a.startSpan(ctx, "persistence.Load")
	defer span.End()

	data, err := a.slot.Get(ctx, a.key)
	if err != nil {
		if !errors.Is(err, ErrSlotEmpty) {
			slog.Warn("Failed to read task slot", "key", a.key, "error", err)
			failSpan(span, err)
		}
		return []models.Task{}
	}
	span.SetAttributes(attribute.Int("flowboard.slot.bytes", len(data)))
	if len(data) == 0 {
		return []models.Task{}
	}

	var tasks []models.Task
	if a.strict {
		tasks, err = decodeRecords(data)
	} else {
		tasks, err = decodeSnapshot(data)
	}
	if err != nil {
		slog.Warn("Discarding corrupt task slot", "key", a.key, "error", err)
		failSpan(span, err)
		return []models.Task{}
	}
	span.SetAttributes(attribute.Int("flowboard.tasks", len(tasks)))
	return tasks
}

// Save writes the full collection, overwriting the previous snapshot
func (a *Adapter) Save(ctx context.Context, tasks []models.Task) error {
	ctx, span := a.startSpan(ctx, "persistence.Save")
	defer span.End()
	span.SetAttributes(attribute.Int("flowboard.tasks", len(tasks)))

	data, err := Encode(tasks)
	if err != nil {
		failSpan(span, err)
		return err
	}
	span.SetAttributes(attribute.Int("flowboard.slot.bytes", len(data)))
	if err := a.slot.Set(ctx, a.key, data); err != nil {
		failSpan(span, err)
		return fmt.Errorf("failed to write slot %q: %w", a.key, err)
	}
	return nil
}

// Close releases the underlying slot if it holds resources
func (a *Adapter) Close() error {
	if c, ok := a.slot.(Closer); ok {
		return c.Close()
	}
	return nil
}

// Encode renders tasks as the snapshot JSON array. Nil tags are written as
// [] so the stored value never contains null.
func Encode(tasks []models.Task) ([]byte, error) {
	out := make([]models.Task, len(tasks))
	for i, t := range tasks {
		if t.Tags == nil {
			t.Tags = []string{}
		}
		out[i] = t
	}
	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tasks: %w", err)
	}
	return data, nil
}

// decodeSnapshot is all-or-nothing: any element that isn't task-shaped,
// null included, discards the whole snapshot
func decodeSnapshot(data []byte) ([]models.Task, error) {
	var records []*models.Task
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	tasks := make([]models.Task, 0, len(records))
	for i, rec := range records {
		if rec == nil {
			return nil, fmt.Errorf("%w: element %d is null", ErrInvalidRecord, i)
		}
		if rec.Tags == nil {
			rec.Tags = []string{}
		}
		tasks = append(tasks, *rec)
	}
	return tasks, nil
}

// decodeRecords keeps every record that matches the record schema, dropping the rest
func decodeRecords(data []byte) ([]models.Task, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	tasks := make([]models.Task, 0, len(raw))
	seen := make(map[string]struct{}, len(raw))
	for i, rec := range raw {
		if err := validateRecord(rec); err != nil {
			slog.Warn("Skipping invalid task record", "index", i, "error", err)
			continue
		}
		var t models.Task
		if err := json.Unmarshal(rec, &t); err != nil {
			slog.Warn("Skipping undecodable task record", "index", i, "error", err)
			continue
		}
		if _, dup := seen[t.ID.String()]; dup {
			slog.Warn("Skipping duplicate task record", "index", i, "id", t.ID)
			continue
		}
		seen[t.ID.String()] = struct{}{}
		if t.Tags == nil {
			t.Tags = []string{}
		}
		tasks = append(tasks, t)
	}
	return tasks, nil
}
