package depot

import "reflect"

// EventBus is a minimal typed event bus for decoupled communication between
// systems. Handlers run synchronously in subscription order. The bus is not
// synchronized; publish and subscribe from the goroutine driving the scene,
// typically inside system execution.
type EventBus struct {
	handlers map[reflect.Type][]any
}

// Subscribe registers a handler for events of type T.
func Subscribe[T any](bus *EventBus, handler func(T)) {
	if bus.handlers == nil {
		bus.handlers = make(map[reflect.Type][]any)
	}
	t := reflect.TypeFor[T]()
	bus.handlers[t] = append(bus.handlers[t], handler)
}

// Publish delivers an event to every handler registered for T. Publishing a
// type with no subscribers is a no-op.
func Publish[T any](bus *EventBus, event T) {
	if bus.handlers == nil {
		return
	}
	for _, h := range bus.handlers[reflect.TypeFor[T]()] {
		h.(func(T))(event)
	}
}
