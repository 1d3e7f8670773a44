package events

import "sync"

// Event is implemented by every event published on the bus. Concrete event
// types carry their own mutable fields (e.g. a BeforeDamage event's
// modification total) as ordinary exported struct fields — handlers receive
// a pointer and mutate them directly, valid only for the duration of the
// dispatch that produced them (spec.md §3 "Lifecycle & ownership").
type Event interface {
	// EventRef identifies the event's class for subscription routing.
	EventRef() *Key

	// Context returns the auxiliary, untyped side-data bag attached to this
	// dispatch. Most events never need it; it exists for handlers that must
	// stash cross-cutting data (e.g. a redirection target) without widening
	// the event struct itself.
	Context() *Context
}

// Context is a small, thread-safe key/value bag carried alongside an event
// for the duration of one publish. It is the events-package analogue of the
// resolution stack's IntermediateResults map, scoped to a single dispatch.
type Context struct {
	mu   sync.Mutex
	data map[string]any
}

// NewContext creates an empty event context.
func NewContext() *Context {
	return &Context{data: make(map[string]any)}
}

// Set stores a value under key.
func (c *Context) Set(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.data == nil {
		c.data = make(map[string]any)
	}
	c.data[key] = value
}

// Get retrieves a value stored under key.
func (c *Context) Get(key string) (any, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.data[key]
	return v, ok
}

// Base is embedded by concrete event structs to satisfy the Context() half
// of the Event interface without boilerplate.
type Base struct {
	ref *Key
	ctx *Context
}

// NewBase creates a Base bound to the given event key.
func NewBase(ref *Key) Base {
	return Base{ref: ref, ctx: NewContext()}
}

// EventRef implements Event.
func (b *Base) EventRef() *Key { return b.ref }

// Context implements Event.
func (b *Base) Context() *Context {
	if b.ctx == nil {
		b.ctx = NewContext()
	}
	return b.ctx
}
