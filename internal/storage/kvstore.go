// Package storage provides the persistence layer for tasklite: a string-keyed
// key-value store with pluggable backends and the task store built on top
// of it.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Backend is the raw string-keyed store underneath the KV adapter. Get
// reports whether the key was present; a missing key is not an error.
type Backend interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Logger receives diagnostic events from the storage layer. Implementations
// must not fail the caller; diagnostics are fire-and-forget.
type Logger interface {
	Warn(event string, data map[string]any)
}

// stderrLogger is the fallback Logger used when no event log is wired.
type stderrLogger struct{}

func (stderrLogger) Warn(event string, data map[string]any) {
	fmt.Fprintf(os.Stderr, "warning: %s: %v\n", event, data)
}

// NewStderrLogger returns a Logger that writes diagnostics to stderr.
func NewStderrLogger() Logger {
	return stderrLogger{}
}

// fileBackend stores one file per key under a base directory.
type fileBackend struct {
	dir string
}

// NewFileBackend returns a Backend that persists each key as a JSON file
// under dir. The directory is created on first write.
func NewFileBackend(dir string) Backend {
	return &fileBackend{dir: dir}
}

func (b *fileBackend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}

func (b *fileBackend) Get(key string) (string, bool, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading key %s: %w", key, err)
	}
	return string(data), true, nil
}

func (b *fileBackend) Set(key, value string) error {
	if err := os.MkdirAll(b.dir, 0o750); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}
	if err := os.WriteFile(b.path(key), []byte(value), 0o600); err != nil {
		return fmt.Errorf("writing key %s: %w", key, err)
	}
	return nil
}

// memBackend is an in-memory Backend for tests and side-by-side store
// instances.
type memBackend struct {
	mu sync.Mutex
	m  map[string]string
}

// NewMemoryBackend returns an empty in-memory Backend.
func NewMemoryBackend() Backend {
	return &memBackend{m: make(map[string]string)}
}

func (b *memBackend) Get(key string) (string, bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	v, ok := b.m[key]
	return v, ok, nil
}

func (b *memBackend) Set(key, value string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.m[key] = value
	return nil
}

// KV is a typed adapter over a Backend with JSON serialization. Reads and
// writes never fail the caller: failures are logged and the fallback (for
// reads) or the in-memory value (for writes) wins.
type KV struct {
	backend Backend
	logger  Logger
}

// NewKV creates a KV adapter over the given backend. A nil logger falls
// back to stderr diagnostics.
func NewKV(backend Backend, logger Logger) *KV {
	if logger == nil {
		logger = stderrLogger{}
	}
	return &KV{backend: backend, logger: logger}
}

// Read looks up key and unmarshals the stored JSON into T. It returns
// fallback unchanged when the key is absent, when the backend fails, or
// when the stored representation does not decode; the latter two are
// logged.
func Read[T any](kv *KV, key string, fallback T) T {
	raw, ok, err := kv.backend.Get(key)
	if err != nil {
		kv.logger.Warn("storage.read_failed", map[string]any{"key": key, "error": err.Error()})
		return fallback
	}
	if !ok {
		return fallback
	}
	var value T
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		kv.logger.Warn("storage.decode_failed", map[string]any{"key": key, "error": err.Error()})
		return fallback
	}
	return value
}

// Write marshals value and stores it under key. Failures are logged and
// swallowed: persistence loss never blocks the caller's state update.
func Write[T any](kv *KV, key string, value T) {
	data, err := json.Marshal(value)
	if err != nil {
		kv.logger.Warn("storage.encode_failed", map[string]any{"key": key, "error": err.Error()})
		return
	}
	if err := kv.backend.Set(key, string(data)); err != nil {
		kv.logger.Warn("storage.write_failed", map[string]any{"key": key, "error": err.Error()})
	}
}
