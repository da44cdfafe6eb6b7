// Package tableview implements the client-side table abstraction shared by
// the inventory, orders and suppliers screens: a session-local record store,
// a pure filter→sort→paginate projection over it, and a bulk-selection
// tracker. Per-entity behaviour is supplied as configuration (ID accessor,
// search fields, sorters, filter dimensions), not as bespoke copies.
package tableview

import "sync"

// Store holds the authoritative-for-this-session sequence of records of one
// entity variant. It is populated by fetch results and patched in place by
// successful mutations; nothing else writes to it.
type Store[T any] struct {
	mu      sync.RWMutex
	id      func(T) string
	records []T
}

// NewStore returns an empty store keyed by the given ID accessor.
func NewStore[T any](id func(T) string) *Store[T] {
	return &Store[T]{id: id}
}

// Reset replaces the whole contents with a fetch result.
func (s *Store[T]) Reset(records []T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = make([]T, len(records))
	copy(s.records, records)
}

// Append adds a server-confirmed record. If the ID is already present the
// existing entry is replaced instead, preserving the unique-ID invariant.
func (s *Store[T]) Append(record T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(record)
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records[i] = record
			return
		}
	}
	s.records = append(s.records, record)
}

// Replace swaps the entry with the same ID for the server-returned record.
// Returns false when no entry matches; the store is left unchanged.
func (s *Store[T]) Replace(record T) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.id(record)
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records[i] = record
			return true
		}
	}
	return false
}

// Remove deletes the entry with the given ID. Returns false when absent.
func (s *Store[T]) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.records {
		if s.id(s.records[i]) == id {
			s.records = append(s.records[:i], s.records[i+1:]...)
			return true
		}
	}
	return false
}

// Get returns the entry with the given ID.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.records {
		if s.id(s.records[i]) == id {
			return s.records[i], true
		}
	}
	var zero T
	return zero, false
}

// Snapshot returns a copy of the current contents in store order.
func (s *Store[T]) Snapshot() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records held.
func (s *Store[T]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
