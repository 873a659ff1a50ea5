package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"
)

const DefaultMarkerFile = "lastMatchId.txt"

type FileMarker struct {
	mu   sync.Mutex
	path string
}

func NewFileMarker(path string) *FileMarker {
	if path == "" {
		path = DefaultMarkerFile
	}
	return &FileMarker{path: path}
}

// Get returns an empty id when the file does not exist yet.
func (m *FileMarker) Get(_ context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(m.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read marker %s: %w", m.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (m *FileMarker) Set(_ context.Context, matchID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.WriteFile(m.path, []byte(matchID), 0o644); err != nil {
		return fmt.Errorf("write marker %s: %w", m.path, err)
	}
	return nil
}
