// Package store holds the client-side state for admin screens: per-resource
// caches of last-confirmed server state and the pure cache → view → page
// pipeline derived from them. Nothing here performs I/O; mutations are
// applied only after the API client has reported success.
package store

// Store is an in-memory cache of the authoritative list for one resource
// kind, in server order. It is only ever mutated to match confirmed
// server state, never speculatively.
type Store[T any] struct {
	id    func(T) int
	items []T
}

// New creates an empty store. id extracts the server-assigned identifier.
func New[T any](id func(T) int) *Store[T] {
	return &Store[T]{id: id}
}

// Items returns the cached list in server order. Callers must treat the
// slice as read-only.
func (s *Store[T]) Items() []T {
	return s.items
}

// Len returns the number of cached items.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Replace swaps the entire cache for a freshly fetched list.
func (s *Store[T]) Replace(items []T) {
	s.items = items
}

// ApplyCreate appends a server-confirmed new item.
func (s *Store[T]) ApplyCreate(item T) {
	s.items = append(s.items, item)
}

// ApplyUpdate replaces the cached item with the same ID. Unknown IDs are
// ignored; the next refresh reconciles.
func (s *Store[T]) ApplyUpdate(item T) {
	id := s.id(item)
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items[i] = item
			return
		}
	}
}

// ApplyRemove drops the cached item with the given ID.
func (s *Store[T]) ApplyRemove(id int) {
	for i := range s.items {
		if s.id(s.items[i]) == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			return
		}
	}
}

// Get returns the cached item with the given ID.
func (s *Store[T]) Get(id int) (T, bool) {
	for i := range s.items {
		if s.id(s.items[i]) == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}
