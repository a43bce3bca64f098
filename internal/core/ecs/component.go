package ecs

import "iter"

// Removable is implemented by every store so the Registry can drop an entity
// from all of them at once.
type Removable interface {
	Remove(id EntityID)
}

// Store is an insertion-ordered map from EntityID to T. Iteration order is
// registration order and survives removals, which keeps every per-tick scan
// deterministic.
type Store[T any] struct {
	ids   []EntityID
	items []T
	index map[EntityID]int
}

func NewStore[T any]() *Store[T] {
	return &Store[T]{
		ids:   make([]EntityID, 0, 64),
		items: make([]T, 0, 64),
		index: make(map[EntityID]int, 64),
	}
}

// Set inserts v at the end, or replaces it in place if id is already present.
func (s *Store[T]) Set(id EntityID, v T) {
	if i, ok := s.index[id]; ok {
		s.items[i] = v
		return
	}
	s.index[id] = len(s.ids)
	s.ids = append(s.ids, id)
	s.items = append(s.items, v)
}

func (s *Store[T]) Get(id EntityID) (T, bool) {
	i, ok := s.index[id]
	if !ok {
		var zero T
		return zero, false
	}
	return s.items[i], true
}

// Remove deletes id, preserving the order of the remaining entries.
// Unknown ids are ignored.
func (s *Store[T]) Remove(id EntityID) {
	i, ok := s.index[id]
	if !ok {
		return
	}
	delete(s.index, id)
	copy(s.ids[i:], s.ids[i+1:])
	copy(s.items[i:], s.items[i+1:])
	var zero T
	s.items[len(s.items)-1] = zero
	s.ids = s.ids[:len(s.ids)-1]
	s.items = s.items[:len(s.items)-1]
	for j := i; j < len(s.ids); j++ {
		s.index[s.ids[j]] = j
	}
}

func (s *Store[T]) Has(id EntityID) bool {
	_, ok := s.index[id]
	return ok
}

func (s *Store[T]) Len() int {
	return len(s.ids)
}

// All yields entries in registration order. Each call starts a fresh pass.
func (s *Store[T]) All() iter.Seq2[EntityID, T] {
	return func(yield func(EntityID, T) bool) {
		for i := range s.ids {
			if !yield(s.ids[i], s.items[i]) {
				return
			}
		}
	}
}

// Values yields values in registration order.
func (s *Store[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.items {
			if !yield(s.items[i]) {
				return
			}
		}
	}
}
