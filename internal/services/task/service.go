package task

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/flowboard/internal/converters"
	"github.com/thenoetrevino/flowboard/internal/models"
	"github.com/thenoetrevino/flowboard/internal/types"
)

// Service defines all task-related operations. It is the only mutator of
// task state; every effective mutation is written through to the Persister.
type Service interface {
	// Read operations
	List(ctx context.Context) []models.Task
	Get(ctx context.Context, id types.TaskID) (models.Task, bool)
	Require(ctx context.Context, id types.TaskID) (models.Task, error)
	Version() uint64

	// Write operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	UpdateTask(ctx context.Context, id types.TaskID, req UpdateTaskRequest) error
	DeleteTask(ctx context.Context, id types.TaskID) error
	Reset(ctx context.Context) error

	// Task movements
	MoveTask(ctx context.Context, id types.TaskID, status models.ColumnKey) error
	MoveTaskToNextColumn(ctx context.Context, id types.TaskID) error
	MoveTaskToPrevColumn(ctx context.Context, id types.TaskID) error
}

// Persister loads and saves the whole collection
type Persister interface {
	Load(ctx context.Context) []models.Task
	Save(ctx context.Context, tasks []models.Task) error
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	Title       string
	Description string
	Status      models.ColumnKey // Optional: "" means backlog
	Priority    models.Priority  // Optional: "" means medium
	Assignee    string
	DueDate     string // ISO-8601 timestamp, "" for none
	Tags        []string
}

// UpdateTaskRequest encapsulates a partial update.
// Fields with pointers are optional - nil means don't update
type UpdateTaskRequest struct {
	Title       *string
	Description *string
	Status      *models.ColumnKey
	Priority    *models.Priority
	Assignee    *string
	DueDate     *string
	Tags        *[]string
}

// Option configures the service
type Option func(*service)

// WithClock overrides the creation timestamp source
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides how new task ids are minted
func WithIDGenerator(newID func() types.TaskID) Option {
	return func(s *service) {
		s.newID = newID
	}
}

// WithSeed sets the tasks used when the persisted collection is empty.
// A nil seed starts from an empty board.
func WithSeed(seed func(now time.Time, newID func() types.TaskID) []models.Task) Option {
	return func(s *service) {
		s.seed = seed
	}
}

// service implements Service interface
type service struct {
	mu      sync.RWMutex
	tasks   []models.Task
	version uint64

	store Persister
	now   func() time.Time
	newID func() types.TaskID
	seed  func(now time.Time, newID func() types.TaskID) []models.Task
}

// NewService hydrates a task service from store, seeding it when the
// persisted collection is empty
func NewService(ctx context.Context, store Persister, opts ...Option) Service {
	s := &service{
		store: store,
		now:   time.Now,
		newID: types.NewTaskID,
		seed:  DefaultTasks,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks = store.Load(ctx)
	if len(s.tasks) == 0 && s.seed != nil {
		s.tasks = s.seed(s.now(), s.newID)
		if err := s.store.Save(ctx, s.tasks); err != nil {
			slog.Error("Failed to persist seed tasks", "error", err)
		}
	}
	return s
}

// List returns a copy of the collection in store order (newest first for creates)
func (s *service) List(ctx context.Context) []models.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		out[i] = t.Clone()
	}
	return out
}

// Get looks up a task by id
func (s *service) Get(ctx context.Context, id types.TaskID) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, false
	}
	return s.tasks[i].Clone(), true
}

// Require is Get for callers that must report a missing task
func (s *service) Require(ctx context.Context, id types.TaskID) (models.Task, error) {
	t, ok := s.Get(ctx, id)
	if !ok {
		return models.Task{}, fmt.Errorf("%w: %s", ErrTaskNotFound, id)
	}
	return t, nil
}

// Version increments on every effective mutation
func (s *service) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// CreateTask inserts a new task at the front of the collection.
// A title that trims to empty is silently ignored: (nil, nil) and no change.
func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	title := converters.NormalizeTitle(req.Title)
	if title == "" {
		return nil, nil
	}

	status := req.Status
	if status == "" {
		status = models.StatusBacklog
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}
	priority := req.Priority
	if priority == "" {
		priority = models.DefaultPriority
	}
	if !priority.Valid() {
		return nil, ErrInvalidPriority
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	task := models.Task{
		ID:          s.uniqueID(),
		Title:       title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		Assignee:    req.Assignee,
		CreatedAt:   models.FormatTimestamp(s.now()),
		DueDate:     req.DueDate,
		Tags:        converters.NormalizeTags(req.Tags),
	}

	s.tasks = slices.Insert(s.tasks, 0, task)
	created := task.Clone()
	return &created, s.commit(ctx)
}

// UpdateTask merges the non-nil fields into the matching task.
// An unknown id or an empty patch is a no-op.
func (s *service) UpdateTask(ctx context.Context, id types.TaskID, req UpdateTaskRequest) error {
	if err := validateUpdate(req); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	t := &s.tasks[i]
	applied := false
	if req.Title != nil {
		t.Title = converters.NormalizeTitle(*req.Title)
		applied = true
	}
	if req.Description != nil {
		t.Description = *req.Description
		applied = true
	}
	if req.Status != nil {
		t.Status = *req.Status
		applied = true
	}
	if req.Priority != nil {
		t.Priority = *req.Priority
		applied = true
	}
	if req.Assignee != nil {
		t.Assignee = *req.Assignee
		applied = true
	}
	if req.DueDate != nil {
		t.DueDate = *req.DueDate
		applied = true
	}
	if req.Tags != nil {
		t.Tags = converters.NormalizeTags(*req.Tags)
		applied = true
	}
	if !applied {
		return nil
	}

	return s.commit(ctx)
}

// DeleteTask removes the matching task permanently. Idempotent.
func (s *service) DeleteTask(ctx context.Context, id types.TaskID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	s.tasks = slices.Delete(s.tasks, i, i+1)
	return s.commit(ctx)
}

// Reset replaces the board with fresh seed tasks
func (s *service) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seed == nil {
		s.tasks = []models.Task{}
	} else {
		s.tasks = s.seed(s.now(), s.newID)
	}
	return s.commit(ctx)
}

// MoveTask is the drop-on-column transition. A drop that carries no task
// id is ignored.
func (s *service) MoveTask(ctx context.Context, id types.TaskID, status models.ColumnKey) error {
	if id.IsZero() {
		return nil
	}
	return s.UpdateTask(ctx, id, UpdateTaskRequest{Status: &status})
}

// MoveTaskToNextColumn moves task one column to the right
func (s *service) MoveTaskToNextColumn(ctx context.Context, id types.TaskID) error {
	return s.step(ctx, id, models.ColumnKey.Next)
}

// MoveTaskToPrevColumn moves task one column to the left
func (s *service) MoveTaskToPrevColumn(ctx context.Context, id types.TaskID) error {
	return s.step(ctx, id, models.ColumnKey.Prev)
}

func (s *service) step(ctx context.Context, id types.TaskID, next func(models.ColumnKey) (models.ColumnKey, error)) error {
	current, ok := s.Get(ctx, id)
	if !ok {
		return nil
	}
	target, err := next(current.Status)
	if err != nil {
		return err
	}
	return s.MoveTask(ctx, id, target)
}

// commit bumps the version and writes the snapshot. Caller holds the lock.
// A failed write leaves the in-memory change in place.
func (s *service) commit(ctx context.Context) error {
	s.version++
	if err := s.store.Save(ctx, s.tasks); err != nil {
		slog.Error("Failed to persist tasks", "error", err)
		return fmt.Errorf("failed to save tasks: %w", err)
	}
	return nil
}

// indexOf returns the position of id, or -1. Caller holds the lock.
func (s *service) indexOf(id types.TaskID) int {
	return slices.IndexFunc(s.tasks, func(t models.Task) bool { return t.ID == id })
}

// uniqueID mints an id not already in use. Caller holds the lock.
func (s *service) uniqueID() types.TaskID {
	for {
		id := s.newID()
		if s.indexOf(id) < 0 {
			return id
		}
	}
}

// validateUpdate validates an UpdateTaskRequest
func validateUpdate(req UpdateTaskRequest) error {
	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			return ErrEmptyTitle
		}
		if utf8.RuneCountInString(title) > models.MaxTitleLength {
			return ErrTitleTooLong
		}
	}
	if req.Status != nil && !req.Status.Valid() {
		return ErrInvalidStatus
	}
	if req.Priority != nil && !req.Priority.Valid() {
		return ErrInvalidPriority
	}
	return nil
}
