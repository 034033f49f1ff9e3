package main

import "sync"

type EventKind string

const (
	EventPointerMove EventKind = "pointermove"
	EventPointerDown EventKind = "pointerdown"
	EventIntersect   EventKind = "intersect"
)

// Event is a browser event forwarded by the page. Only the fields relevant to
// the kind are set.
type Event struct {
	Kind         EventKind
	X, Y         float64
	Variant      CursorVariant
	Target       string
	Ratio        float64
	Intersecting bool
}

type EventHandler func(Event)

// Bindings holds the event subscriptions of one mounted component. Handlers
// run synchronously on the dispatching goroutine.
type Bindings struct {
	mu       sync.Mutex
	nextID   int
	handlers map[EventKind]map[int]EventHandler
	closed   bool
}

// NewBindings returns an empty, open binding table.
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[EventKind]map[int]EventHandler)}
}

// Subscribe registers h for kind and returns the func that releases it.
// Releasing twice is harmless. Subscribing to closed bindings returns a no-op
// release and the handler is never called.
func (b *Bindings) Subscribe(kind EventKind, h EventHandler) func() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return func() {}
	}
	id := b.nextID
	b.nextID++
	if b.handlers[kind] == nil {
		b.handlers[kind] = make(map[int]EventHandler)
	}
	b.handlers[kind][id] = h

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.handlers[kind], id)
		})
	}
}

// Dispatch delivers e to every handler of its kind and reports how many ran.
func (b *Bindings) Dispatch(e Event) int {
	b.mu.Lock()
	hs := make([]EventHandler, 0, len(b.handlers[e.Kind]))
	for _, h := range b.handlers[e.Kind] {
		hs = append(hs, h)
	}
	b.mu.Unlock()

	for _, h := range hs {
		h(e)
	}
	return len(hs)
}

// Count returns the number of live subscriptions across all kinds.
func (b *Bindings) Count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, hs := range b.handlers {
		n += len(hs)
	}
	return n
}

// Close drops every subscription. Later Subscribe and Dispatch calls are no-ops.
func (b *Bindings) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	b.handlers = make(map[EventKind]map[int]EventHandler)
}
