package mcp

import (
	"context"
	"testing"

	"github.com/valter-silva-au/tasklite/internal/storage"
	"github.com/valter-silva-au/tasklite/pkg/models"
)

func newTestServer(t *testing.T) (*Server, storage.TaskStore) {
	t.Helper()
	kv := storage.NewKV(storage.NewMemoryBackend(), nil)
	store := storage.NewTaskStore(kv, storage.DefaultKeys(), nil)
	return NewServer(store, "test"), store
}

func TestNewServer(t *testing.T) {
	srv, _ := newTestServer(t)
	if srv.MCPServer() == nil {
		t.Fatal("underlying MCP server not constructed")
	}
}

func TestHandleAddTask(t *testing.T) {
	srv, store := newTestServer(t)

	result, out, err := srv.handleAddTask(context.Background(), nil, addTaskInput{Title: "  Buy milk  "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Title != "Buy milk" || out.Completed {
		t.Fatalf("unexpected output: %+v", out)
	}
	if len(store.Tasks()) != 1 {
		t.Fatalf("task not stored: %+v", store.Tasks())
	}
}

func TestHandleAddTask_InvalidTitle(t *testing.T) {
	srv, store := newTestServer(t)

	result, _, err := srv.handleAddTask(context.Background(), nil, addTaskInput{Title: "   "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result for blank title")
	}
	if len(store.Tasks()) != 0 {
		t.Fatal("invalid add must not store a task")
	}
}

func TestHandleListTasks_FilterParam(t *testing.T) {
	srv, store := newTestServer(t)
	a, _ := store.AddTask("done one")
	store.AddTask("open one")
	store.ToggleTask(a.ID)

	result, out, err := srv.handleListTasks(context.Background(), nil, listTasksInput{Filter: "completed"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Count != 1 || len(out.Tasks) != 1 || out.Tasks[0].ID != a.ID {
		t.Fatalf("unexpected listing: %+v", out)
	}
	if out.Filter != "completed" {
		t.Fatalf("unexpected filter echo: %q", out.Filter)
	}

	// The transient filter must not change the store's active filter.
	if store.Filter() != models.FilterAll {
		t.Fatalf("list mutated the active filter: %s", store.Filter())
	}
}

func TestHandleListTasks_InvalidFilter(t *testing.T) {
	srv, _ := newTestServer(t)

	result, _, err := srv.handleListTasks(context.Background(), nil, listTasksInput{Filter: "bogus"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result for invalid filter")
	}
}

func TestHandleToggleTask(t *testing.T) {
	srv, store := newTestServer(t)
	task, _ := store.AddTask("flip")

	result, _, err := srv.handleToggleTask(context.Background(), nil, taskIDInput{TaskID: task.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if !store.Tasks()[0].Completed {
		t.Fatal("task not toggled")
	}
}

func TestHandleToggleTask_MissingID(t *testing.T) {
	srv, _ := newTestServer(t)

	result, _, err := srv.handleToggleTask(context.Background(), nil, taskIDInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result == nil || !result.IsError {
		t.Fatal("expected error result for empty task_id")
	}
}

func TestHandleDeleteTask(t *testing.T) {
	srv, store := newTestServer(t)
	task, _ := store.AddTask("remove")

	result, _, err := srv.handleDeleteTask(context.Background(), nil, taskIDInput{TaskID: task.ID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if len(store.Tasks()) != 0 {
		t.Fatalf("task not deleted: %+v", store.Tasks())
	}
}

func TestHandleSetFilter(t *testing.T) {
	srv, store := newTestServer(t)

	result, _, err := srv.handleSetFilter(context.Background(), nil, setFilterInput{Filter: "pending"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if store.Filter() != models.FilterPending {
		t.Fatalf("filter not set: %s", store.Filter())
	}

	result, _, _ = srv.handleSetFilter(context.Background(), nil, setFilterInput{Filter: "bogus"})
	if result == nil || !result.IsError {
		t.Fatal("expected error result for invalid filter")
	}
	if store.Filter() != models.FilterPending {
		t.Fatalf("filter changed on rejected set: %s", store.Filter())
	}
}

func TestHandleClearCompleted(t *testing.T) {
	srv, store := newTestServer(t)
	a, _ := store.AddTask("done")
	store.AddTask("open")
	store.ToggleTask(a.ID)

	result, out, err := srv.handleClearCompleted(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != nil {
		t.Fatalf("unexpected error result: %+v", result)
	}
	if out.Removed != 1 {
		t.Fatalf("expected 1 removed, got %d", out.Removed)
	}
	if len(store.Tasks()) != 1 {
		t.Fatalf("unexpected survivors: %+v", store.Tasks())
	}
}
