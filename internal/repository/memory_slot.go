package repository

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/cartstate-demo/internal/port"
)

type memorySlot struct {
	mu   sync.RWMutex
	data map[string][]byte
}

func NewMemorySlot() port.Slot {
	return &memorySlot{data: make(map[string][]byte)}
}

func (s *memorySlot) Read(_ context.Context, key string) ([]byte, bool, error) {
	if key == "" {
		return nil, false, fmt.Errorf("key is empty")
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	value, found := s.data[key]
	return slices.Clone(value), found, nil
}

func (s *memorySlot) Write(_ context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = slices.Clone(value)
	return nil
}
