package depot

import "sync"

// Scene pairs a World with a CommandBuffer behind a coarse reader/writer
// lock, the way a game frame consumes them. Multiple goroutines may read
// the World concurrently; writers are exclusive and block until available.
// The CommandBuffer is a distinct shared resource with its own lock, so
// enqueuing never contends with readers of the World.
type Scene struct {
	mu       sync.RWMutex
	world    *World
	commands *CommandBuffer
	tracker  *accessTracker
}

func newScene() *Scene {
	return &Scene{
		world:    newWorld(),
		commands: newCommandBuffer(),
		tracker:  newAccessTracker(),
	}
}

// Instantiate creates a new entity and returns its handle.
func (s *Scene) Instantiate() Entity {
	s.mu.Lock()
	id := s.world.CreateEntity()
	s.mu.Unlock()
	return Entity{id: id, scene: s}
}

// GetEntity returns a handle for an existing id. The handle is a plain
// value; liveness is checked per operation, not here.
func (s *Scene) GetEntity(id EntityID) Entity {
	return Entity{id: id, scene: s}
}

// CommandBuffer exposes the scene's buffer for direct deferred enqueues.
func (s *Scene) CommandBuffer() *CommandBuffer {
	return s.commands
}

// View runs fn with shared access to the World. The World must not escape
// the callback.
func (s *Scene) View(fn func(w *World)) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn(s.world)
}

// Update runs fn with exclusive access to the World. The World must not
// escape the callback.
func (s *Scene) Update(fn func(w *World)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.world)
}

// ApplyCommands drains the command buffer into the World under the write
// lock. This is the only point at which deferred operations become visible.
func (s *Scene) ApplyCommands() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.commands.Execute(s.world)
}

// Step runs one frame: every registered system executes with exclusive
// World access, then pending commands are applied.
func (s *Scene) Step(executor *Executor, deltaTime float64) error {
	s.Update(func(w *World) {
		executor.Execute(w, deltaTime)
	})
	return s.ApplyCommands()
}
