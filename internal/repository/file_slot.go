package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"

	"github.com/nikolayk812/cartstate-demo/internal/port"
)

type fileSlot struct {
	dir string
}

// NewFileSlot stores each key as one file under dir.
func NewFileSlot(dir string) (port.Slot, error) {
	if dir == "" {
		return nil, fmt.Errorf("dir is empty")
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll: %w", err)
	}

	return &fileSlot{dir: dir}, nil
}

func (s *fileSlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	value, err := os.ReadFile(s.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("os.ReadFile: %w", err)
	}

	return value, true, nil
}

func (s *fileSlot) Write(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	tmp, err := os.CreateTemp(s.dir, ".slot-*")
	if err != nil {
		return fmt.Errorf("os.CreateTemp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(value); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("tmp.Write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("tmp.Close: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path(key)); err != nil {
		return fmt.Errorf("os.Rename: %w", err)
	}

	return nil
}

func (s *fileSlot) path(key string) string {
	return filepath.Join(s.dir, url.QueryEscape(key)+".json")
}
