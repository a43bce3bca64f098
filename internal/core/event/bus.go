package event

import (
	"reflect"
	"sync"
)

type queued struct {
	typ reflect.Type
	ev  any
}

// Bus is a double-buffered event bus. Events emitted during a tick land in the
// back buffer; the host swaps and dispatches between ticks, so handlers never
// observe a half-applied tick. Delivery follows emission order.
type Bus struct {
	mu       sync.Mutex // only protects handler registration
	front    []queued
	back     []queued
	handlers map[reflect.Type][]func(any)
}

func NewBus() *Bus {
	return &Bus{
		front:    make([]queued, 0, 8),
		back:     make([]queued, 0, 8),
		handlers: make(map[reflect.Type][]func(any)),
	}
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// Emit queues an event into the back buffer.
func Emit[T any](b *Bus, event T) {
	b.back = append(b.back, queued{typ: typeOf[T](), ev: event})
}

// Subscribe registers a typed handler for events of type T.
func Subscribe[T any](b *Bus, fn func(T)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	t := typeOf[T]()
	b.handlers[t] = append(b.handlers[t], func(ev any) { fn(ev.(T)) })
}

// Pending returns the number of events waiting in the back buffer.
func (b *Bus) Pending() int { return len(b.back) }

// SwapBuffers rotates back→front and clears the new back buffer.
func (b *Bus) SwapBuffers() {
	b.front, b.back = b.back, b.front
	clear(b.back)
	b.back = b.back[:0]
}

// DispatchAll delivers all front-buffer events to their subscribed handlers
// and empties the front buffer. Events emitted by handlers go to the back
// buffer and wait for the next swap.
func (b *Bus) DispatchAll() {
	b.mu.Lock()
	snapshot := make(map[reflect.Type][]func(any), len(b.handlers))
	for t, hs := range b.handlers {
		snapshot[t] = hs
	}
	b.mu.Unlock()

	for _, q := range b.front {
		for _, h := range snapshot[q.typ] {
			h(q.ev)
		}
	}
	clear(b.front)
	b.front = b.front[:0]
}

// Flush swaps and dispatches in one step.
func (b *Bus) Flush() {
	b.SwapBuffers()
	b.DispatchAll()
}
