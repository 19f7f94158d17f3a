package session

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSlot stores the identifier in a small file, typically under an
// ephemeral state directory that the OS clears between boots.
type FileSlot struct {
	path string
}

// NewFileSlot creates the slot file's directory if needed.
func NewFileSlot(dir, name string) (*FileSlot, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return &FileSlot{path: filepath.Join(dir, name)}, nil
}

func (s *FileSlot) Get(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read session file: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (s *FileSlot) Set(_ context.Context, value string) error {
	if err := os.WriteFile(s.path, []byte(value+"\n"), 0o600); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

func (s *FileSlot) Remove(_ context.Context) error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}
