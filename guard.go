package depot

import "sync"

// resourceKey identifies one tracked resource: a component type on one
// entity.
type resourceKey struct {
	entity    EntityID
	component uint32
}

type accessState struct {
	readers   int
	exclusive bool
}

// accessTracker enforces "many readers xor one writer" per tracked resource
// at runtime. A conflicting acquisition fails immediately instead of
// blocking, surfacing nested conflicting references as a detectable error
// rather than a deadlock. The tracker's own mutex guards only the counter
// update and is never held across user code.
type accessTracker struct {
	mu     sync.Mutex
	states map[resourceKey]accessState
}

func newAccessTracker() *accessTracker {
	return &accessTracker{states: make(map[resourceKey]accessState)}
}

// acquireRead moves Free→Shared(1) or Shared(n)→Shared(n+1). Fails from
// Exclusive.
func (t *accessTracker) acquireRead(k resourceKey, label string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.states[k]
	if s.exclusive {
		err := AccessConflictError{Entity: k.entity, Component: label, Readers: s.readers, Exclusive: true}
		Config.logger.Warn().Uint64("entity", uint64(k.entity)).Str("component", label).Msg("shared acquire conflict")
		return err
	}
	s.readers++
	t.states[k] = s
	return nil
}

// acquireWrite moves Free→Exclusive. Fails from Shared(n) and Exclusive.
func (t *accessTracker) acquireWrite(k resourceKey, label string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.states[k]
	if s.exclusive || s.readers > 0 {
		err := AccessConflictError{Entity: k.entity, Component: label, Readers: s.readers, Exclusive: s.exclusive}
		Config.logger.Warn().Uint64("entity", uint64(k.entity)).Str("component", label).Msg("exclusive acquire conflict")
		return err
	}
	s.exclusive = true
	t.states[k] = s
	return nil
}

func (t *accessTracker) releaseRead(k resourceKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.states[k]
	if s.readers == 0 {
		return
	}
	s.readers--
	if s.readers == 0 && !s.exclusive {
		delete(t.states, k)
		return
	}
	t.states[k] = s
}

func (t *accessTracker) releaseWrite(k resourceKey) {
	t.mu.Lock()
	defer t.mu.Unlock()
	s := t.states[k]
	s.exclusive = false
	if s.readers == 0 {
		delete(t.states, k)
		return
	}
	t.states[k] = s
}

// Ref is a scoped shared reference to a component instance. It holds the
// scene's read lock and a shared guard slot until Release; forgetting to
// release blocks writers on the coarse lock and fails exclusive guard
// acquisitions on the same entity/type.
type Ref[T any] struct {
	value   *T
	release func()
}

// Value returns the referenced component. Only valid before Release.
func (r *Ref[T]) Value() *T { return r.value }

// Release drops the guard slot and the coarse lock. Safe to call more than
// once; later calls are no-ops.
func (r *Ref[T]) Release() {
	if r.release != nil {
		r.release()
		r.release = nil
		r.value = nil
	}
}

// RefMut is a scoped exclusive reference to a component instance. It holds
// the scene's write lock and the exclusive guard slot until Release.
type RefMut[T any] struct {
	value   *T
	release func()
}

// Value returns the referenced component for mutation. Only valid before
// Release.
func (r *RefMut[T]) Value() *T { return r.value }

// Release drops the guard slot and the coarse lock. Safe to call more than
// once.
func (r *RefMut[T]) Release() {
	if r.release != nil {
		r.release()
		r.release = nil
		r.value = nil
	}
}
