package depot

import (
	"iter"
	"reflect"
	"sync/atomic"
)

// componentKeyCounter hands out stable storage keys at registration time.
// Keys are process-global so a ComponentType works across Worlds.
var componentKeyCounter uint32

// ComponentType is the typed access surface for a registered component
// type. It carries the storage key plus typed operations against Worlds and
// entity handles. Create one per component type with FactoryNewComponent and
// reuse it; each call mints a distinct key.
type ComponentType[T any] struct {
	key   uint32
	label string
}

// FactoryNewComponent registers a new component type and returns its access
// value. The key count per process is bounded by the mask width used for
// entity membership tracking.
func FactoryNewComponent[T any]() ComponentType[T] {
	key := atomic.AddUint32(&componentKeyCounter, 1) - 1
	return ComponentType[T]{
		key:   key,
		label: reflect.TypeFor[T]().String(),
	}
}

// Key returns the stable storage key assigned at registration.
func (c ComponentType[T]) Key() uint32 { return c.key }

// Label returns the human-readable component name used in logs and errors.
func (c ComponentType[T]) Label() string { return c.label }

func (c ComponentType[T]) sealed() {}

// Add attaches a component instance to a living entity, appending to any
// instances already present. The storage is allocated lazily on first use.
func (c ComponentType[T]) Add(w *World, id EntityID, value T) error {
	if !w.Alive(id) {
		return ErrEntityNotFound
	}
	storeFor(w, c, true).insert(id, value)
	w.mark(id, c.key)
	return nil
}

// Get returns a pointer to the entity's first instance of the component.
// Absence of the storage and absence of the entity are the same condition.
func (c ComponentType[T]) Get(w *World, id EntityID) (*T, bool) {
	st := storeFor(w, c, false)
	if st == nil {
		return nil, false
	}
	return st.first(id)
}

// GetAll returns the entity's full instance sequence, or nil when absent.
// The returned slice aliases the storage; callers mutating it hold the same
// responsibilities as callers of Get.
func (c ComponentType[T]) GetAll(w *World, id EntityID) []T {
	st := storeFor(w, c, false)
	if st == nil {
		return nil
	}
	return st.all(id)
}

// Has reports whether the entity holds at least one instance.
func (c ComponentType[T]) Has(w *World, id EntityID) bool {
	return w.HasComponent(id, c)
}

// Remove deletes the entity's whole instance sequence. Removing an absent
// component is a no-op.
func (c ComponentType[T]) Remove(w *World, id EntityID) {
	w.RemoveComponent(id, c)
}

// Iter yields (entity, first instance) pairs in storage insertion order,
// one entry per entity regardless of instance count. The sequence is finite
// and single-use; the storage must not be mutated while iterating.
func (c ComponentType[T]) Iter(w *World) iter.Seq2[EntityID, *T] {
	st := storeFor(w, c, false)
	if st == nil {
		return func(yield func(EntityID, *T) bool) {}
	}
	return st.iter()
}
