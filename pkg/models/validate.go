package models

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxTitleLen is the maximum number of characters (code points) allowed in a
// task title after trimming.
const MaxTitleLen = 500

// ErrorKind identifies a validation failure so callers can branch on the
// failure kind without matching message strings.
type ErrorKind string

const (
	KindInvalidTitle         ErrorKind = "invalid_title"
	KindEmptyTitle           ErrorKind = "empty_title"
	KindTitleTooLong         ErrorKind = "title_too_long"
	KindNotAnObject          ErrorKind = "not_an_object"
	KindMissingID            ErrorKind = "missing_id"
	KindInvalidID            ErrorKind = "invalid_id"
	KindInvalidCompletedFlag ErrorKind = "invalid_completed_flag"
	KindNotAnArray           ErrorKind = "not_an_array"
	KindInvalidFilter        ErrorKind = "invalid_filter"
)

// ValidationError is a tagged validation failure.
type ValidationError struct {
	Kind    ErrorKind
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func validationErrorf(kind ErrorKind, format string, args ...any) error {
	return &ValidationError{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// ElementError wraps a validation failure for a single element of a task
// collection, identifying the zero-based index of the first invalid element.
type ElementError struct {
	Index int
	Err   error
}

func (e *ElementError) Error() string {
	return fmt.Sprintf("task at index %d: %v", e.Index, e.Err)
}

func (e *ElementError) Unwrap() error {
	return e.Err
}

// KindOf returns the ErrorKind carried by err, unwrapping as needed. It
// returns the empty kind when err carries no ValidationError.
func KindOf(err error) ErrorKind {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr.Kind
	}
	return ""
}

// ValidateTitle checks a candidate title and returns its trimmed form.
// The candidate must be a string that is non-empty after trimming and at
// most MaxTitleLen characters long.
func ValidateTitle(title any) (string, error) {
	s, ok := title.(string)
	if !ok {
		return "", validationErrorf(KindInvalidTitle, "title must be a string, got %T", title)
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", validationErrorf(KindEmptyTitle, "title must not be empty")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLen {
		return "", validationErrorf(KindTitleTooLong, "title exceeds %d characters", MaxTitleLen)
	}
	return trimmed, nil
}

// NewTask validates the title and returns a new uncompleted Task with a
// freshly generated id. Title validation failures are returned unchanged.
func NewTask(title any) (Task, error) {
	trimmed, err := ValidateTitle(title)
	if err != nil {
		return Task{}, err
	}
	return Task{
		ID:        NewID(),
		Title:     trimmed,
		Completed: false,
	}, nil
}

// ValidateTask checks a decoded-JSON candidate for task shape: an object
// carrying a UUID-v4 id, a valid title, and a boolean completed flag.
func ValidateTask(candidate any) error {
	obj, ok := candidate.(map[string]any)
	if !ok || obj == nil {
		return validationErrorf(KindNotAnObject, "task must be an object, got %T", candidate)
	}
	id, ok := obj["id"].(string)
	if !ok {
		return validationErrorf(KindMissingID, "task id is missing or not a string")
	}
	if !IsValidUUIDv4(id) {
		return validationErrorf(KindInvalidID, "task id %q is not a valid UUID v4", id)
	}
	if _, err := ValidateTitle(obj["title"]); err != nil {
		return err
	}
	if _, ok := obj["completed"].(bool); !ok {
		return validationErrorf(KindInvalidCompletedFlag, "task completed flag must be a boolean")
	}
	return nil
}

// ValidateTaskList checks a decoded-JSON candidate for task-collection
// shape. It fails on the first invalid element, wrapping the inner failure
// with its index.
func ValidateTaskList(candidate any) error {
	list, ok := candidate.([]any)
	if !ok {
		return validationErrorf(KindNotAnArray, "task collection must be an array, got %T", candidate)
	}
	for i, item := range list {
		if err := ValidateTask(item); err != nil {
			return &ElementError{Index: i, Err: err}
		}
	}
	return nil
}

// DecodeTaskList validates a decoded-JSON candidate and converts it into a
// task slice, preserving element order.
func DecodeTaskList(candidate any) ([]Task, error) {
	if err := ValidateTaskList(candidate); err != nil {
		return nil, err
	}
	list := candidate.([]any)
	tasks := make([]Task, 0, len(list))
	for _, item := range list {
		obj := item.(map[string]any)
		title, _ := ValidateTitle(obj["title"])
		tasks = append(tasks, Task{
			ID:        obj["id"].(string),
			Title:     title,
			Completed: obj["completed"].(bool),
		})
	}
	return tasks, nil
}

// ValidateFilter checks a candidate filter value against the accepted set.
func ValidateFilter(value any) (Filter, error) {
	s, ok := value.(string)
	if !ok {
		return "", validationErrorf(KindInvalidFilter, "filter must be one of %q, %q, %q, got %T", FilterAll, FilterCompleted, FilterPending, value)
	}
	f := Filter(s)
	for _, known := range Filters {
		if f == known {
			return f, nil
		}
	}
	return "", validationErrorf(KindInvalidFilter, "filter must be one of %q, %q, %q, got %q", FilterAll, FilterCompleted, FilterPending, s)
}
