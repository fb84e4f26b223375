package tasks

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/teemow/daybrief/internal/logging"
)

// DefaultStorePath is used when no store path is configured.
const DefaultStorePath = "tasks.json"

// StorePathFromEnv returns the TASKS_PATH environment variable if set,
// else DefaultStorePath. Callers pass the result into NewStore; the
// store itself never reads the environment.
func StorePathFromEnv() string {
	if path := os.Getenv("TASKS_PATH"); path != "" {
		return path
	}
	return DefaultStorePath
}

// Store persists the full task list as a single JSON array on disk.
// Load and Save always move the whole list; there is no partial update.
// The store does no locking of its own - callers serialize their
// read-modify-write cycles (the Engine holds a mutex across them).
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore creates a store backed by the file at path.
func NewStore(path string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{
		path:   path,
		logger: logger.With(logging.Store(path)),
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the stored task list. A missing, unreadable, or malformed
// file is a recoverable condition and yields an empty list; it is
// logged but never surfaced as an error.
func (s *Store) Load() []Task {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("task store unreadable, treating as empty", logging.Err(err))
		}
		return nil
	}

	var list []Task
	if err := json.Unmarshal(data, &list); err != nil {
		s.logger.Warn("task store corrupt, treating as empty", logging.Err(err))
		return nil
	}

	return list
}

// Save replaces the stored list atomically: the new content is written
// to a temporary file next to the target and renamed into place, so a
// concurrent reader never observes a partially written list.
func (s *Store) Save(list []Task) error {
	if list == nil {
		list = []Task{}
	}

	data, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode task list: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for task store: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write task store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close task store temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace task store: %w", err)
	}

	return nil
}
