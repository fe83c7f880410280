// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"todo/internal/slot"
)

// FakeSlot is an in-memory implementation of slot.Slot for testing.
type FakeSlot struct {
	mu       sync.RWMutex
	values   map[string][]byte
	setCount int
	closed   bool

	// Error injection for testing
	GetErr   error
	SetErr   error
	CloseErr error
}

// NewFakeSlot creates an empty FakeSlot.
func NewFakeSlot() *FakeSlot {
	return &FakeSlot{
		values: make(map[string][]byte),
	}
}

// Put stores a raw value without counting it as a Set.
func (f *FakeSlot) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = []byte(value)
}

// Value returns the raw value stored under key.
func (f *FakeSlot) Value(key string) ([]byte, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	return v, ok
}

// SetCount returns how many successful Set calls were made.
func (f *FakeSlot) SetCount() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.setCount
}

// Closed reports whether Close was called.
func (f *FakeSlot) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements slot.Slot.
func (f *FakeSlot) Get(ctx context.Context, key string) ([]byte, error) {
	if f.GetErr != nil {
		return nil, f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.values[key]
	if !ok {
		return nil, slot.ErrNotFound
	}
	result := make([]byte, len(v))
	copy(result, v)
	return result, nil
}

// Set implements slot.Slot.
func (f *FakeSlot) Set(ctx context.Context, key string, value []byte) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	f.values[key] = stored
	f.setCount++
	return nil
}

// Close implements slot.Slot.
func (f *FakeSlot) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return f.CloseErr
}
