// Package internal provides the App struct that wires all components of
// tasklite together and initializes the CLI layer.
package internal

import (
	"os"
	"path/filepath"
	"time"

	"github.com/valter-silva-au/tasklite/internal/cli"
	"github.com/valter-silva-au/tasklite/internal/core"
	"github.com/valter-silva-au/tasklite/internal/observability"
	"github.com/valter-silva-au/tasklite/internal/storage"
)

// App holds all service dependencies for tasklite.
type App struct {
	BasePath string
	Config   *core.Config

	// Storage layer
	Backend storage.Backend
	KV      *storage.KV
	Store   storage.TaskStore

	// Observability
	EventLog observability.EventLog
}

// NewApp creates and wires all components. basePath is the directory
// holding .tasklite.yaml and, by default, the data directory.
func NewApp(basePath string) (*App, error) {
	app := &App{BasePath: basePath}

	// --- Configuration ---
	cfg, err := core.NewConfigurationManager(basePath).Load()
	if err != nil {
		// A malformed config file is not fatal; fall back to defaults.
		cfg = core.DefaultConfig(basePath)
	}
	app.Config = cfg

	// --- Observability ---
	if cfg.EventLogEnabled && cfg.EventLogPath != "" {
		app.EventLog, err = observability.NewJSONLEventLog(cfg.EventLogPath)
		if err != nil {
			// Non-fatal: diagnostics fall back to stderr.
			app.EventLog = nil
		}
	}

	var logger storage.Logger
	if app.EventLog != nil {
		logger = &eventLogAdapter{log: app.EventLog}
	} else {
		logger = storage.NewStderrLogger()
	}

	// --- Storage layer ---
	app.Backend = storage.NewFileBackend(cfg.DataDir)
	app.KV = storage.NewKV(app.Backend, logger)
	app.Store = storage.NewTaskStore(app.KV, storage.Keys{
		Tasks:  cfg.TasksKey,
		Filter: cfg.FilterKey,
	}, logger)

	// --- Wire CLI package-level variables ---
	cli.BasePath = basePath
	cli.Store = app.Store
	cli.EventLog = app.EventLog
	cli.NoColor = cfg.NoColor

	return app, nil
}

// Close releases resources held by the App. It is safe to call Close on an
// App whose EventLog is nil.
func (a *App) Close() error {
	if a.EventLog != nil {
		return a.EventLog.Close()
	}
	return nil
}

// ResolveBasePath determines the base path for the tasklite data directory.
// It checks the TASKLITE_HOME env var, then walks up from the current
// directory looking for a .tasklite.yaml, then falls back to cwd.
func ResolveBasePath() string {
	if home := os.Getenv("TASKLITE_HOME"); home != "" {
		return home
	}
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".tasklite.yaml")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	cwd, _ := os.Getwd()
	return cwd
}

// eventLogAdapter adapts observability.EventLog to storage.Logger.
type eventLogAdapter struct {
	log observability.EventLog
}

func (a *eventLogAdapter) Warn(event string, data map[string]any) {
	_ = a.log.Write(observability.Event{
		Time:    time.Now().UTC(),
		Level:   "WARN",
		Type:    event,
		Message: event,
		Data:    data,
	})
}
