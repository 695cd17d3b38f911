package depot

// Entity is a lightweight handle: an id plus the scene that owns the World
// and CommandBuffer. Handles are plain values; copies compare equal when
// they name the same entity in the same scene.
//
// Every mutating method comes in two explicit flavors: the plain form
// applies immediately under the scene's exclusive lock, the Enqueue form
// records the operation on the command buffer for the next ApplyCommands.
type Entity struct {
	id    EntityID
	scene *Scene
}

// ID returns the entity's identifier.
func (e Entity) ID() EntityID { return e.id }

// Alive reports whether the entity has not been destroyed.
func (e Entity) Alive() bool {
	e.scene.mu.RLock()
	defer e.scene.mu.RUnlock()
	return e.scene.world.Alive(e.id)
}

// HasComponent reports whether the entity holds at least one instance of
// the component type. Side-effect free.
func (e Entity) HasComponent(c Component) bool {
	e.scene.mu.RLock()
	defer e.scene.mu.RUnlock()
	return e.scene.world.HasComponent(e.id, c)
}

// RemoveComponent immediately removes the entity's instances of the
// component type. A no-op when absent.
func (e Entity) RemoveComponent(c Component) {
	e.scene.mu.Lock()
	defer e.scene.mu.Unlock()
	e.scene.world.RemoveComponent(e.id, c)
}

// EnqueueRemoveComponent defers the removal to the next ApplyCommands.
func (e Entity) EnqueueRemoveComponent(c Component) {
	e.scene.commands.RemoveComponent(e.id, c)
}

// Destroy immediately removes the entity from every storage and the
// registry.
func (e Entity) Destroy() {
	e.scene.mu.Lock()
	defer e.scene.mu.Unlock()
	e.scene.world.DestroyEntity(e.id)
}

// EnqueueDestroy defers the destruction to the next ApplyCommands.
func (e Entity) EnqueueDestroy() {
	e.scene.commands.DestroyEntity(e.id)
}

// AddComponent immediately attaches a component instance to the entity.
func AddComponent[T any](e Entity, c ComponentType[T], value T) error {
	e.scene.mu.Lock()
	defer e.scene.mu.Unlock()
	return c.Add(e.scene.world, e.id, value)
}

// EnqueueAddComponent defers the attach to the next ApplyCommands. The
// value is captured now; the component is not observable until the buffer
// is applied.
func EnqueueAddComponent[T any](e Entity, c ComponentType[T], value T) {
	AddComponentDeferred(e.scene.commands, e.id, c, value)
}

// ViewComponent runs fn with shared access to the entity's first instance
// of the component type, returning false when absent. The coarse lock is
// held only for the callback and the access tracker is never involved, so
// this accessor cannot conflict with itself.
func ViewComponent[T any](e Entity, c ComponentType[T], fn func(*T)) bool {
	e.scene.mu.RLock()
	defer e.scene.mu.RUnlock()
	v, ok := c.Get(e.scene.world, e.id)
	if !ok {
		return false
	}
	fn(v)
	return true
}

// UpdateComponent runs fn with exclusive access to the entity's first
// instance of the component type, returning false when absent. Like
// ViewComponent, structurally conflict-free.
func UpdateComponent[T any](e Entity, c ComponentType[T], fn func(*T)) bool {
	e.scene.mu.Lock()
	defer e.scene.mu.Unlock()
	v, ok := c.Get(e.scene.world, e.id)
	if !ok {
		return false
	}
	fn(v)
	return true
}

// GetAllComponents copies the entity's full instance sequence of the
// component type. Returns nil when absent.
func GetAllComponents[T any](e Entity, c ComponentType[T]) []T {
	e.scene.mu.RLock()
	defer e.scene.mu.RUnlock()
	seq := c.GetAll(e.scene.world, e.id)
	if seq == nil {
		return nil
	}
	out := make([]T, len(seq))
	copy(out, seq)
	return out
}

// GetComponent acquires a scoped shared reference to the entity's first
// instance of the component type. The guard slot is claimed before the
// coarse lock, so a conflicting acquisition on the same entity/type fails
// with AccessConflictError instead of deadlocking. Holding the Ref across
// unrelated scene calls can still block on the coarse lock; release
// promptly.
func GetComponent[T any](e Entity, c ComponentType[T]) (*Ref[T], error) {
	k := resourceKey{entity: e.id, component: c.Key()}
	if err := e.scene.tracker.acquireRead(k, c.Label()); err != nil {
		return nil, err
	}
	e.scene.mu.RLock()
	v, ok := c.Get(e.scene.world, e.id)
	if !ok {
		e.scene.mu.RUnlock()
		e.scene.tracker.releaseRead(k)
		return nil, ErrComponentNotFound
	}
	scene := e.scene
	return &Ref[T]{value: v, release: func() {
		scene.mu.RUnlock()
		scene.tracker.releaseRead(k)
	}}, nil
}

// GetComponentMut acquires a scoped exclusive reference to the entity's
// first instance of the component type. Fails fast with
// AccessConflictError while any reference to the same entity/type is alive.
func GetComponentMut[T any](e Entity, c ComponentType[T]) (*RefMut[T], error) {
	k := resourceKey{entity: e.id, component: c.Key()}
	if err := e.scene.tracker.acquireWrite(k, c.Label()); err != nil {
		return nil, err
	}
	e.scene.mu.Lock()
	v, ok := c.Get(e.scene.world, e.id)
	if !ok {
		e.scene.mu.Unlock()
		e.scene.tracker.releaseWrite(k)
		return nil, ErrComponentNotFound
	}
	scene := e.scene
	return &RefMut[T]{value: v, release: func() {
		scene.mu.Unlock()
		scene.tracker.releaseWrite(k)
	}}, nil
}
