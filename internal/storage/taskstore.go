package storage

import (
	"github.com/valter-silva-au/tasklite/pkg/models"
)

// Keys names the backend entries a task store persists into. Distinct key
// sets let independent store instances share one backend without
// interference.
type Keys struct {
	Tasks  string
	Filter string
}

// DefaultKeys returns the standard persistence keys.
func DefaultKeys() Keys {
	return Keys{Tasks: "tasks", Filter: "filter"}
}

// TaskStore owns the in-memory task collection and the active filter,
// mirrored synchronously into a KV adapter. Construction loads and
// validates persisted state, replacing corrupt data with safe defaults.
type TaskStore interface {
	Tasks() []models.Task
	Filter() models.Filter
	FilteredTasks() []models.Task
	AddTask(title string) (models.Task, error)
	ToggleTask(id string)
	DeleteTask(id string)
	ClearCompleted() int
	SetFilter(filter models.Filter) error
}

type taskStore struct {
	kv     *KV
	keys   Keys
	logger Logger

	tasks  []models.Task
	filter models.Filter
}

// NewTaskStore creates a TaskStore over the given adapter and loads its
// state. A nil logger falls back to stderr diagnostics.
func NewTaskStore(kv *KV, keys Keys, logger Logger) TaskStore {
	if logger == nil {
		logger = stderrLogger{}
	}
	s := &taskStore{
		kv:     kv,
		keys:   keys,
		logger: logger,
	}
	s.load()
	return s
}

// load reads persisted state through the KV adapter and self-heals: any
// value that fails validation is logged, reset to its default in the
// backend, and only then exposed. Task and filter recovery are independent.
func (s *taskStore) load() {
	rawTasks := Read[any](s.kv, s.keys.Tasks, nil)
	if rawTasks == nil {
		// Absent or undecodable; write the default back so the next load
		// sees a valid empty collection.
		s.tasks = []models.Task{}
		s.persistTasks()
	} else if tasks, err := models.DecodeTaskList(rawTasks); err != nil {
		s.logger.Warn("tasks.reset", map[string]any{"key": s.keys.Tasks, "error": err.Error()})
		s.tasks = []models.Task{}
		s.persistTasks()
	} else {
		s.tasks = tasks
	}

	rawFilter := Read[any](s.kv, s.keys.Filter, nil)
	if rawFilter == nil {
		s.filter = models.FilterAll
		s.persistFilter()
	} else if filter, err := models.ValidateFilter(rawFilter); err != nil {
		s.logger.Warn("filter.reset", map[string]any{"key": s.keys.Filter, "error": err.Error()})
		s.filter = models.FilterAll
		s.persistFilter()
	} else {
		s.filter = filter
	}
}

func (s *taskStore) persistTasks() {
	Write(s.kv, s.keys.Tasks, s.tasks)
}

func (s *taskStore) persistFilter() {
	Write(s.kv, s.keys.Filter, s.filter)
}

// Tasks returns a copy of the task collection in insertion order.
func (s *taskStore) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Filter returns the active filter.
func (s *taskStore) Filter() models.Filter {
	return s.filter
}

// FilteredTasks returns the tasks visible under the active filter,
// preserving relative order. It never mutates store state.
func (s *taskStore) FilteredTasks() []models.Task {
	out := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if s.filter.Matches(t) {
			out = append(out, t)
		}
	}
	return out
}

// AddTask validates the title, appends a new task to the end of the
// collection, and persists it. Validation failures are returned to the
// caller unchanged and leave the collection untouched.
func (s *taskStore) AddTask(title string) (models.Task, error) {
	task, err := models.NewTask(title)
	if err != nil {
		return models.Task{}, err
	}
	s.tasks = append(s.tasks, task)
	s.persistTasks()
	return task, nil
}

// ToggleTask flips the completed flag of the task with the given id,
// replacing the entry rather than mutating it in place. A missing id is a
// silent no-op.
func (s *taskStore) ToggleTask(id string) {
	next := make([]models.Task, len(s.tasks))
	for i, t := range s.tasks {
		if t.ID == id {
			t.Completed = !t.Completed
		}
		next[i] = t
	}
	s.tasks = next
	s.persistTasks()
}

// DeleteTask removes the task with the given id. A missing id is a silent
// no-op.
func (s *taskStore) DeleteTask(id string) {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if t.ID != id {
			next = append(next, t)
		}
	}
	s.tasks = next
	s.persistTasks()
}

// ClearCompleted removes every completed task in one pass and returns the
// number removed.
func (s *taskStore) ClearCompleted() int {
	next := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		if !t.Completed {
			next = append(next, t)
		}
	}
	removed := len(s.tasks) - len(next)
	s.tasks = next
	s.persistTasks()
	return removed
}

// SetFilter validates and persists a new active filter. Invalid values are
// logged and returned as an error, leaving the current filter unchanged.
func (s *taskStore) SetFilter(filter models.Filter) error {
	validated, err := models.ValidateFilter(string(filter))
	if err != nil {
		s.logger.Warn("filter.rejected", map[string]any{"value": string(filter), "error": err.Error()})
		return err
	}
	s.filter = validated
	s.persistFilter()
	return nil
}
