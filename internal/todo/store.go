package todo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Store persists the full task sequence. The repository takes a Store
// as a dependency so tests can swap in an in-memory fake.
type Store interface {
	// Load returns the raw task sequence, or nil if no store exists yet.
	Load() ([]Task, error)
	// Save replaces the stored sequence with tasks.
	Save(tasks []Task) error
}

// FileStore reads and writes a JSON task file on disk.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by .todo.json in dir.
func NewFileStore(dir string) *FileStore {
	return &FileStore{Path: dir + string(os.PathSeparator) + Filename}
}

// Load reads and parses the task file. A missing file is not an
// error: the store is simply empty.
func (s *FileStore) Load() ([]Task, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read todo file: %w", err)
	}

	var tasks []Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("parse todo file: %w", err)
	}
	return tasks, nil
}

// Save writes the task file with 2-space indentation.
func (s *FileStore) Save(tasks []Task) error {
	if tasks == nil {
		tasks = []Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal todo file: %w", err)
	}

	// Add trailing newline
	data = append(data, '\n')

	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		return fmt.Errorf("write todo file: %w", err)
	}
	return nil
}
