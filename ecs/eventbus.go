package ecs

import (
	"reflect"
	"sync"
)

// ListenerID identifies a single subscription, returned by Subscribe and
// consumed by Unsubscribe.
type ListenerID uint64

// EventBus is a typed, concurrency-safe publish/subscribe mechanism keyed by
// the static type of the event value. Publish snapshots the current
// listener set under lock and dispatches outside the lock, so a handler that
// subscribes or unsubscribes during dispatch never deadlocks and never
// observes a half-updated listener set.
type EventBus struct {
	mu        sync.Mutex
	nextID    ListenerID
	listeners map[reflect.Type]map[ListenerID]func(any)
}

// NewEventBus returns an empty EventBus.
func NewEventBus() *EventBus {
	return &EventBus{listeners: make(map[reflect.Type]map[ListenerID]func(any))}
}

// Subscribe registers fn to be called with every future event of type T,
// returning a ListenerID that Unsubscribe can later remove.
func Subscribe[T any](b *EventBus, fn func(T)) ListenerID {
	var zero T
	t := reflect.TypeOf(zero)

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	if b.listeners[t] == nil {
		b.listeners[t] = make(map[ListenerID]func(any))
	}
	b.listeners[t][id] = func(v any) { fn(v.(T)) }
	return id
}

// Unsubscribe removes the subscription identified by id for event type T.
// Unsubscribing an id that is not registered, or already removed, is a
// no-op.
func Unsubscribe[T any](b *EventBus, id ListenerID) {
	var zero T
	t := reflect.TypeOf(zero)

	b.mu.Lock()
	defer b.mu.Unlock()
	if m, ok := b.listeners[t]; ok {
		delete(m, id)
	}
}

// Publish delivers event to every listener currently subscribed to T, in
// unspecified order, against a snapshot of the listener set taken at the
// moment Publish is called.
func Publish[T any](b *EventBus, event T) {
	var zero T
	t := reflect.TypeOf(zero)

	b.mu.Lock()
	m := b.listeners[t]
	snapshot := make([]func(any), 0, len(m))
	for _, fn := range m {
		snapshot = append(snapshot, fn)
	}
	b.mu.Unlock()

	for _, fn := range snapshot {
		fn(event)
	}
}

// ListenerCount returns the number of active subscriptions for event type T,
// primarily for tests and diagnostics.
func ListenerCount[T any](b *EventBus) int {
	var zero T
	t := reflect.TypeOf(zero)

	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.listeners[t])
}
