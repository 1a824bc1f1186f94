package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"syscall"

	"github.com/ramanasai/habitcal/internal/habit"
)

// DefaultPath is the data file used when nothing else is configured.
const DefaultPath = "habit_data.json"

// Loader reads a habit log.
type Loader interface {
	Load() (habit.Log, error)
}

// Saver persists a habit log.
type Saver interface {
	Save(habit.Log) error
}

// LoadSaver is a store that can be read and written.
type LoadSaver interface {
	Loader
	Saver
}

// FormatError reports a data file that exists but is not a valid log.
type FormatError struct {
	Path string
	Err  error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("malformed habit data in %s: %v", e.Path, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// WriteError reports a failure to persist the log.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write habit data to %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// FileStore keeps the whole log in a single JSON document.
// The file is re-read on every Load; nothing is cached.
type FileStore struct {
	path string
	mu   sync.RWMutex
}

func NewFileStore(path string) *FileStore {
	if path == "" {
		path = DefaultPath
	}
	return &FileStore{path: path}
}

// Path returns the data file location.
func (s *FileStore) Path() string { return s.path }

// Load returns the stored log. A missing file is an empty log.
func (s *FileStore) Load() (habit.Log, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	// a parent that is a regular file means the data file cannot exist either
	if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
		return habit.Log{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read habit data: %w", err)
	}

	var log habit.Log
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, &FormatError{Path: s.path, Err: err}
	}
	if log == nil {
		log = habit.Log{}
	}
	return log, nil
}

// Save writes the full log with 2-space indentation.
func (s *FileStore) Save(log habit.Log) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if log == nil {
		log = habit.Log{}
	}
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("encode habit data: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &WriteError{Path: s.path, Err: err}
		}
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return &WriteError{Path: s.path, Err: err}
	}
	return nil
}
