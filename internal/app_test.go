package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/valter-silva-au/tasklite/internal/cli"
	"github.com/valter-silva-au/tasklite/internal/observability"
)

func TestNewApp_WiresEverything(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.Store == nil {
		t.Fatal("task store not constructed")
	}
	if app.EventLog == nil {
		t.Fatal("event log not constructed")
	}
	if cli.Store == nil {
		t.Fatal("cli store var not wired")
	}
	if cli.BasePath != dir {
		t.Fatalf("cli base path not wired: %q", cli.BasePath)
	}
}

func TestNewApp_StoreWorksEndToEnd(t *testing.T) {
	dir := t.TempDir()

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = app.Close() }()

	task, err := app.Store.AddTask("wired up")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := app.Store.Tasks(); len(got) != 1 || got[0].ID != task.ID {
		t.Fatalf("store not functional: %+v", got)
	}

	// The collection landed on disk under the configured data directory.
	if _, err := os.Stat(filepath.Join(dir, "data", "tasks.json")); err != nil {
		t.Fatalf("expected persisted tasks file: %v", err)
	}
}

func TestNewApp_HealsCorruptStateAndLogsIt(t *testing.T) {
	dir := t.TempDir()
	dataDir := filepath.Join(dir, "data")
	if err := os.MkdirAll(dataDir, 0o750); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dataDir, "tasks.json"), []byte("not json"), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("corrupt state must not fail startup: %v", err)
	}
	defer func() { _ = app.Close() }()

	if got := app.Store.Tasks(); len(got) != 0 {
		t.Fatalf("expected empty collection after recovery, got %+v", got)
	}

	events, err := app.EventLog.Read(observability.ReadFilter{Level: "WARN"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(events) == 0 {
		t.Fatal("expected a WARN event for the recovery")
	}
}

func TestNewApp_EventLogDisabled(t *testing.T) {
	dir := t.TempDir()
	content := "event_log:\n  enabled: false\n"
	if err := os.WriteFile(filepath.Join(dir, ".tasklite.yaml"), []byte(content), 0o600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	app, err := NewApp(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer func() { _ = app.Close() }()

	if app.EventLog != nil {
		t.Fatal("event log should be disabled")
	}
	if _, err := app.Store.AddTask("still works"); err != nil {
		t.Fatalf("store must work without event log: %v", err)
	}
}

func TestResolveBasePath_EnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKLITE_HOME", dir)

	if got := ResolveBasePath(); got != dir {
		t.Fatalf("expected %q, got %q", dir, got)
	}
}
