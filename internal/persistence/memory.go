package persistence

import (
	"context"
	"slices"
	"sync"
)

// MemorySlot keeps values in process memory. It is the in-memory stub for
// tests and the fallback when no durable medium is configured.
type MemorySlot struct {
	mu     sync.RWMutex
	values map[string][]byte
}

// NewMemorySlot creates an empty memory slot
func NewMemorySlot() *MemorySlot {
	return &MemorySlot{values: make(map[string][]byte)}
}

func (m *MemorySlot) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrSlotEmpty
	}
	return slices.Clone(v), nil
}

func (m *MemorySlot) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.values == nil {
		m.values = make(map[string][]byte)
	}
	m.values[key] = slices.Clone(value)
	return nil
}

// Durable is false: memory does not outlive the process
func (m *MemorySlot) Durable() bool {
	return false
}

// NopSlot stands in when no storage is available at all (headless runs).
// Get is always empty and Set discards the value.
type NopSlot struct{}

func (NopSlot) Get(context.Context, string) ([]byte, error) {
	return nil, ErrSlotEmpty
}

func (NopSlot) Set(context.Context, string, []byte) error {
	return nil
}

func (NopSlot) Durable() bool {
	return false
}
