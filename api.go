package depot

// EntityID uniquely identifies an entity within a World. Ids are assigned
// monotonically starting at 1 and are never reused; 0 is the invalid id.
type EntityID uint64

// Component is the type-erased identity of a registered component type.
// Values are minted by FactoryNewComponent and passed around to select
// storages; the interface is sealed so keys always come from the registry.
type Component interface {
	Key() uint32
	Label() string
	sealed()
}

// System is a unit of game logic invoked once per step with exclusive
// access to the World for the full duration of the call.
type System interface {
	Execute(w *World, deltaTime float64)
}

// storageBackend is the type-erased face of a per-type component store,
// letting the World treat all storages uniformly for destruction and
// membership checks.
type storageBackend interface {
	remove(id EntityID) bool
	has(id EntityID) bool
	count() int
	ids() []EntityID
}
