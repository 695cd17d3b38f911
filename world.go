package depot

import (
	"github.com/TheBitDrifter/mask"
)

// World owns all component storages plus the live entity registry. Storages
// are created lazily on first use and indexed by the component key assigned
// at registration. The registry tracks, per entity, a bitmask of the
// component types it currently holds.
//
// World itself is unsynchronized: callers either own it outright or reach it
// through a Scene, which layers the coarse reader/writer lock on top.
type World struct {
	nextID   uint64
	registry map[EntityID]mask.Mask
	storages []storageBackend
}

func newWorld() *World {
	return &World{
		nextID:   1,
		registry: make(map[EntityID]mask.Mask),
	}
}

// CreateEntity registers and returns a fresh entity id. Ids are monotonic
// and never reused within the World's lifetime.
func (w *World) CreateEntity() EntityID {
	id := EntityID(w.nextID)
	w.nextID++
	w.registry[id] = mask.Mask{}
	Config.logger.Debug().Uint64("entity", uint64(id)).Msg("entity created")
	return id
}

// Alive reports whether the id is registered and not destroyed.
func (w *World) Alive(id EntityID) bool {
	_, ok := w.registry[id]
	return ok
}

// EntityCount returns the number of living entities.
func (w *World) EntityCount() int {
	return len(w.registry)
}

// HasComponent reports whether a living entity holds at least one instance
// of the component type. Pure membership test against the registry mask.
func (w *World) HasComponent(id EntityID, c Component) bool {
	m, ok := w.registry[id]
	if !ok {
		return false
	}
	return m.ContainsAll(bitFor(c.Key()))
}

// RemoveComponent deletes the entity's whole instance sequence for the
// component type. A no-op when the storage or the entity is absent.
func (w *World) RemoveComponent(id EntityID, c Component) {
	backend := w.backend(c.Key())
	if backend == nil {
		return
	}
	if backend.remove(id) {
		w.unmark(id, c.Key())
	}
}

// DestroyEntity removes the entity from every storage it occupies and from
// the registry. Cost is proportional to the number of component types ever
// used in this World.
func (w *World) DestroyEntity(id EntityID) {
	m, ok := w.registry[id]
	if !ok {
		return
	}
	for key, backend := range w.storages {
		if backend == nil {
			continue
		}
		if m.ContainsAll(bitFor(uint32(key))) {
			backend.remove(id)
		}
	}
	delete(w.registry, id)
	Config.logger.Debug().Uint64("entity", uint64(id)).Msg("entity destroyed")
}

// Clear removes every entity and component, resetting the World to empty.
// The id counter is not reset, preserving monotonic non-reuse.
func (w *World) Clear() {
	w.registry = make(map[EntityID]mask.Mask)
	w.storages = nil
}

func (w *World) backend(key uint32) storageBackend {
	if int(key) >= len(w.storages) {
		return nil
	}
	return w.storages[key]
}

func (w *World) setBackend(key uint32, backend storageBackend) {
	for int(key) >= len(w.storages) {
		w.storages = append(w.storages, nil)
	}
	w.storages[key] = backend
}

func (w *World) mark(id EntityID, key uint32) {
	m := w.registry[id]
	m.Mark(key)
	w.registry[id] = m
}

func (w *World) unmark(id EntityID, key uint32) {
	m, ok := w.registry[id]
	if !ok {
		return
	}
	m.Unmark(key)
	w.registry[id] = m
}

func bitFor(key uint32) mask.Mask {
	var m mask.Mask
	m.Mark(key)
	return m
}
