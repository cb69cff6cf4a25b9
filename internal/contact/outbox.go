package contact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Outbox persists accepted submissions.
type Outbox interface {
	Save(ctx context.Context, s Submission) error
}

// MemoryOutbox keeps submissions in process memory.
type MemoryOutbox struct {
	mu    sync.Mutex
	items []Submission
}

func NewMemoryOutbox() *MemoryOutbox { return &MemoryOutbox{} }

func (m *MemoryOutbox) Save(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append(m.items, s)
	return nil
}

// List returns a copy of the stored submissions in arrival order.
func (m *MemoryOutbox) List() []Submission {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Submission(nil), m.items...)
}

// FileOutbox appends submissions to a JSON Lines file.
type FileOutbox struct {
	mu   sync.Mutex
	path string
}

// NewFileOutbox prepares the parent directory of path.
func NewFileOutbox(path string) (*FileOutbox, error) {
	if path == "" {
		return nil, fmt.Errorf("contact: outbox path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("contact: create outbox dir: %w", err)
	}
	return &FileOutbox{path: path}, nil
}

func (f *FileOutbox) Path() string { return f.path }

func (f *FileOutbox) Save(ctx context.Context, s Submission) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	line, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("contact: encode submission: %w", err)
	}
	line = append(line, '\n')

	f.mu.Lock()
	defer f.mu.Unlock()
	fh, err := os.OpenFile(f.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("contact: open outbox: %w", err)
	}
	if _, err := fh.Write(line); err != nil {
		_ = fh.Close()
		return fmt.Errorf("contact: write outbox: %w", err)
	}
	if err := fh.Close(); err != nil {
		return fmt.Errorf("contact: close outbox: %w", err)
	}
	return nil
}
