/*
Package depot provides a map-backed Entity-Component-System (ECS) with a
handle API that makes entity manipulation feel like ordinary object methods
while keeping the safety of a deferred-command architecture.

Depot stores each component type in its own container keyed by entity id.
Mutations either apply immediately under an exclusive world lock, or are
enqueued on a command buffer and drained in FIFO order at a synchronization
point. A runtime access tracker enforces "many readers xor one writer" per
entity and component type, failing fast on conflicting acquisitions instead
of deadlocking.

Core Concepts:

  - Entity: A unique identifier that represents a game object.
  - Component: A data container that defines entity attributes.
  - World: Owner of all component storages and the live entity registry.
  - CommandBuffer: Ordered queue of deferred mutations.
  - Scene: Coarse-locked pairing of a World and a CommandBuffer.

Basic Usage:

	// Define components
	position := depot.FactoryNewComponent[Position]()
	velocity := depot.FactoryNewComponent[Velocity]()

	// Create a scene and an entity
	scene := depot.Factory.NewScene()
	player := scene.Instantiate()

	depot.AddComponent(player, position, Position{X: 1, Y: 2})
	depot.EnqueueAddComponent(player, velocity, Velocity{X: 0.5})

	// Deferred mutations become visible at the sync point
	scene.ApplyCommands()

	// Query entities and process them
	scene.Update(func(w *depot.World) {
		for row := range depot.Query2(w, position, velocity) {
			row.A.X += row.B.X
			row.A.Y += row.B.Y
		}
	})

Depot runs systems sequentially through an Executor; parallel scheduling is
out of scope.
*/
package depot
