package engine

import (
	"github.com/lixenwraith/sim2d/core"
)

// Store is a generic sparse-set container for a specific component type T:
// a dense value slice with a parallel entity slice and an entity→index map.
// Dense storage keeps iteration contiguous; GetPtr hands out addressable
// slots for in-place mutation. Not locked: all mutation happens on the
// tick goroutine.
type Store[T any] struct {
	index    map[core.Entity]int
	entities []core.Entity
	values   []T
}

// NewStore creates a new component store for type T
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		index:    make(map[core.Entity]int),
		entities: make([]core.Entity, 0, 64),
		values:   make([]T, 0, 64),
	}
}

// Set inserts or updates a component for an entity
func (s *Store[T]) Set(e core.Entity, val T) {
	if i, exists := s.index[e]; exists {
		s.values[i] = val
		return
	}
	s.index[e] = len(s.entities)
	s.entities = append(s.entities, e)
	s.values = append(s.values, val)
}

// Get retrieves a component copy for an entity
func (s *Store[T]) Get(e core.Entity) (T, bool) {
	if i, ok := s.index[e]; ok {
		return s.values[i], true
	}
	var zero T
	return zero, false
}

// GetPtr returns the component slot for in-place mutation, nil if absent
// The pointer is invalidated by the next Set or Remove on this store
func (s *Store[T]) GetPtr(e core.Entity) *T {
	if i, ok := s.index[e]; ok {
		return &s.values[i]
	}
	return nil
}

// Has checks if entity has this component
func (s *Store[T]) Has(e core.Entity) bool {
	_, ok := s.index[e]
	return ok
}

// Remove deletes a component from an entity (swap-remove compaction)
func (s *Store[T]) Remove(e core.Entity) {
	i, exists := s.index[e]
	if !exists {
		return
	}
	last := len(s.entities) - 1
	if i != last {
		s.entities[i] = s.entities[last]
		s.values[i] = s.values[last]
		s.index[s.entities[i]] = i
	}
	s.entities = s.entities[:last]
	s.values = s.values[:last]
	delete(s.index, e)
}

// Entities returns all entities with this component type
// The slice is shared; callers must not mutate or retain it across Removes
func (s *Store[T]) Entities() []core.Entity {
	return s.entities
}

// Len returns number of entities with this component
func (s *Store[T]) Len() int {
	return len(s.entities)
}

// Clear removes all components from this store
func (s *Store[T]) Clear() {
	s.index = make(map[core.Entity]int)
	s.entities = s.entities[:0]
	s.values = s.values[:0]
}
