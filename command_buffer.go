package depot

import (
	"errors"
	"sync"

	"github.com/rotisserie/eris"
)

type commandKind int

const (
	commandCreate commandKind = iota
	commandAdd
	commandRemove
	commandDestroy
)

// command is one deferred operation. The apply closure captures its data by
// value at enqueue time, so a command stays valid with no reference to any
// live World until execution.
type command struct {
	kind  commandKind
	apply func(w *World) error
}

// CommandBuffer queues mutations for later application to a World. Enqueue
// operations are cheap and safe to call concurrently; Execute drains the
// queue strictly FIFO at a synchronization point.
//
// The buffer is a shared resource independent of the World: it carries its
// own lock, held only while the queue itself is touched, never while
// commands run. Commands enqueued during Execute (for example from a
// CreateEntity setup closure) land in a fresh queue and apply on the next
// Execute, never the current one.
type CommandBuffer struct {
	mu       sync.Mutex
	commands []command
}

func newCommandBuffer() *CommandBuffer {
	return &CommandBuffer{}
}

func (b *CommandBuffer) push(cmd command) {
	b.mu.Lock()
	b.commands = append(b.commands, cmd)
	b.mu.Unlock()
}

// CreateEntity schedules entity creation. The setup closure, if non-nil,
// runs right after the id is assigned and may attach initial components.
func (b *CommandBuffer) CreateEntity(setup func(w *World, id EntityID)) {
	b.push(command{kind: commandCreate, apply: func(w *World) error {
		id := w.CreateEntity()
		if setup != nil {
			setup(w, id)
		}
		return nil
	}})
}

// AddComponentDeferred schedules attaching a component instance. The value
// is captured at enqueue time.
func AddComponentDeferred[T any](b *CommandBuffer, id EntityID, c ComponentType[T], value T) {
	b.push(command{kind: commandAdd, apply: func(w *World) error {
		if err := c.Add(w, id, value); err != nil {
			return eris.Wrap(err, "deferred add "+c.Label())
		}
		return nil
	}})
}

// RemoveComponent schedules removal of the entity's instances of the
// component type. Removing an absent component stays a no-op on apply.
func (b *CommandBuffer) RemoveComponent(id EntityID, c Component) {
	b.push(command{kind: commandRemove, apply: func(w *World) error {
		w.RemoveComponent(id, c)
		return nil
	}})
}

// DestroyEntity schedules destruction of the entity.
func (b *CommandBuffer) DestroyEntity(id EntityID) {
	b.push(command{kind: commandDestroy, apply: func(w *World) error {
		w.DestroyEntity(id)
		return nil
	}})
}

// Execute drains the queue against the World in FIFO order. The drained
// batch is always fully consumed: a failing command is logged, skipped, and
// its error folded into the aggregate return value.
func (b *CommandBuffer) Execute(w *World) error {
	b.mu.Lock()
	batch := b.commands
	b.commands = nil
	b.mu.Unlock()

	if len(batch) == 0 {
		return nil
	}

	var errs []error
	for _, cmd := range batch {
		if err := cmd.apply(w); err != nil {
			Config.logger.Warn().Err(err).Int("kind", int(cmd.kind)).Msg("deferred command failed")
			errs = append(errs, err)
		}
	}
	Config.logger.Debug().
		Int("applied", len(batch)).
		Int("failed", len(errs)).
		Msg("command buffer drained")
	return errors.Join(errs...)
}

// Len returns the number of pending commands.
func (b *CommandBuffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.commands)
}

// IsEmpty reports whether no commands are pending.
func (b *CommandBuffer) IsEmpty() bool {
	return b.Len() == 0
}
