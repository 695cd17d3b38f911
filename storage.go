package depot

import "iter"

var _ storageBackend = &store[int]{}

// store holds every instance of one component type, keyed by entity. An
// entity may hold multiple instances; single-component operations act on the
// first. The order slice preserves insertion order for iteration and is
// compacted by swap on removal, so iteration order is unspecified once
// entities have been removed.
type store[T any] struct {
	data  map[EntityID][]T
	order []EntityID
}

func newStore[T any]() *store[T] {
	return &store[T]{
		data: make(map[EntityID][]T),
	}
}

// insert appends an instance, never overwriting prior ones.
func (s *store[T]) insert(id EntityID, value T) {
	if _, ok := s.data[id]; !ok {
		s.order = append(s.order, id)
	}
	s.data[id] = append(s.data[id], value)
}

// first returns a pointer to the entity's first instance.
func (s *store[T]) first(id EntityID) (*T, bool) {
	seq := s.data[id]
	if len(seq) == 0 {
		return nil, false
	}
	return &seq[0], true
}

// all returns the entity's full instance sequence.
func (s *store[T]) all(id EntityID) []T {
	return s.data[id]
}

// remove deletes the entity's whole sequence and reports whether anything
// was removed.
func (s *store[T]) remove(id EntityID) bool {
	if _, ok := s.data[id]; !ok {
		return false
	}
	delete(s.data, id)
	for i, other := range s.order {
		if other == id {
			s.order[i] = s.order[len(s.order)-1]
			s.order = s.order[:len(s.order)-1]
			break
		}
	}
	return true
}

func (s *store[T]) has(id EntityID) bool {
	return len(s.data[id]) > 0
}

func (s *store[T]) count() int {
	return len(s.order)
}

func (s *store[T]) ids() []EntityID {
	return s.order
}

// iter yields (entity, first instance) pairs. One-shot and finite; callers
// must not mutate the store mid-iteration.
func (s *store[T]) iter() iter.Seq2[EntityID, *T] {
	return func(yield func(EntityID, *T) bool) {
		for _, id := range s.order {
			seq := s.data[id]
			if len(seq) == 0 {
				continue
			}
			if !yield(id, &seq[0]) {
				return
			}
		}
	}
}

// storeFor resolves the typed store behind a component key, optionally
// allocating it. Returns nil when absent and create is false.
func storeFor[T any](w *World, c ComponentType[T], create bool) *store[T] {
	backend := w.backend(c.key)
	if backend == nil {
		if !create {
			return nil
		}
		st := newStore[T]()
		w.setBackend(c.key, st)
		return st
	}
	return backend.(*store[T])
}
