package models

// Task represents a single entry in the task list. The JSON tags define the
// persisted envelope: the task collection is stored as an array of these
// objects under the tasks key.
type Task struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
}

// Filter selects which subset of the task collection is visible.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = "completed"
	FilterPending   Filter = "pending"
)

// Filters lists every accepted filter value, in display order.
var Filters = []Filter{FilterAll, FilterCompleted, FilterPending}

// Matches reports whether a task is visible under the filter.
func (f Filter) Matches(t Task) bool {
	switch f {
	case FilterCompleted:
		return t.Completed
	case FilterPending:
		return !t.Completed
	default:
		return true
	}
}
