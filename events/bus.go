package events

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"sync"
	"sync/atomic"
)

// Filter lets a subscriber narrow which events of its class it receives.
// Return true to receive the event.
type Filter func(event Event) bool

// Bus is the synchronous, single-threaded, re-entrant event bus described
// in spec.md §4.2 and §5. Dispatch is depth-guarded against runaway
// cascades, following the teacher's events.Bus DefaultMaxDepth convention.
type Bus interface {
	// Publish dispatches event to every subscriber of its class, using
	// context.Background().
	Publish(event Event) error

	// PublishWithContext dispatches event with a caller-supplied context.
	PublishWithContext(ctx context.Context, event Event) error

	// Subscribe registers handler for the given key at the given priority.
	// handler must be func(EventT) error or func(context.Context, EventT) error
	// where EventT implements Event (a concrete pointer type, not the Event
	// interface itself, so handlers receive the event's own mutable fields
	// without a type assertion). Higher priority runs first; ties break by
	// subscription order (spec.md §4.2 "priority desc, attach order asc").
	Subscribe(key *Key, priority int, handler any) (string, error)

	// SubscribeWithFilter is Subscribe plus a Filter evaluated before the
	// handler runs.
	SubscribeWithFilter(key *Key, priority int, handler any, filter Filter) (string, error)

	// Unsubscribe removes a subscription. Safe to call from inside a
	// handler during dispatch; the removal is visible to the next publish.
	Unsubscribe(id string) error

	// Clear removes every subscription. Intended for tests.
	Clear()
}

// DefaultMaxDepth bounds re-entrant publish depth, guarding against
// infinite event cascades (skill A triggers on skill B's event which
// triggers on skill A's event, forever).
const DefaultMaxDepth = 16

type subscription struct {
	id             string
	key            *Key
	priority       int
	seq            int
	handler        reflect.Value
	filter         Filter
	acceptsContext bool
}

// bus is the default Bus implementation.
type bus struct {
	mu       sync.RWMutex
	subs     map[*Key][]*subscription
	nextID   int
	nextSeq  int
	depth    int32
	maxDepth int32
}

// NewBus creates a bus with the default recursion guard.
func NewBus() Bus {
	return NewBusWithMaxDepth(DefaultMaxDepth)
}

// NewBusWithMaxDepth creates a bus with a custom recursion guard.
func NewBusWithMaxDepth(maxDepth int32) Bus {
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	return &bus{
		subs:     make(map[*Key][]*subscription),
		maxDepth: maxDepth,
	}
}

func (b *bus) Publish(event Event) error {
	return b.PublishWithContext(context.Background(), event)
}

func (b *bus) PublishWithContext(ctx context.Context, event Event) error {
	depth := atomic.AddInt32(&b.depth, 1)
	defer atomic.AddInt32(&b.depth, -1)
	if depth > b.maxDepth {
		return fmt.Errorf("events: cascade depth exceeded (max=%d) publishing %s", b.maxDepth, event.EventRef())
	}

	// Snapshot the subscriber list for this key under lock, then release
	// the lock before invoking handlers. Handlers added during this
	// dispatch are not in the snapshot and will only see the next publish;
	// handlers are free to Subscribe/Unsubscribe/Publish re-entrantly
	// without deadlocking on this bus's own mutex (spec.md §4.2, §5).
	b.mu.RLock()
	entries := append([]*subscription(nil), b.subs[event.EventRef()]...)
	b.mu.RUnlock()

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].priority != entries[j].priority {
			return entries[i].priority > entries[j].priority
		}
		return entries[i].seq < entries[j].seq
	})

	for _, entry := range entries {
		if entry.filter != nil && !entry.filter(event) {
			continue
		}

		var args []reflect.Value
		if entry.acceptsContext {
			args = []reflect.Value{reflect.ValueOf(ctx), reflect.ValueOf(event)}
		} else {
			args = []reflect.Value{reflect.ValueOf(event)}
		}

		results := entry.handler.Call(args)
		if len(results) > 0 && !results[0].IsNil() {
			if err, ok := results[0].Interface().(error); ok {
				return fmt.Errorf("handler %s failed: %w", entry.id, err)
			}
		}
	}

	return nil
}

func (b *bus) Subscribe(key *Key, priority int, handler any) (string, error) {
	return b.SubscribeWithFilter(key, priority, handler, nil)
}

func (b *bus) SubscribeWithFilter(key *Key, priority int, handler any, filter Filter) (string, error) {
	hv := reflect.ValueOf(handler)
	ht := hv.Type()

	if ht.Kind() != reflect.Func {
		return "", fmt.Errorf("events: handler must be a function")
	}

	acceptsContext := false
	ctxType := reflect.TypeOf((*context.Context)(nil)).Elem()
	switch ht.NumIn() {
	case 1:
		// func(EventT) error
	case 2:
		if ht.In(0) != ctxType {
			return "", fmt.Errorf("events: two-argument handler must take context.Context first")
		}
		acceptsContext = true
	default:
		return "", fmt.Errorf("events: handler must take (event) or (context.Context, event)")
	}

	if ht.NumOut() != 1 || ht.Out(0) != reflect.TypeOf((*error)(nil)).Elem() {
		return "", fmt.Errorf("events: handler must return a single error")
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	b.nextSeq++
	sub := &subscription{
		id:             fmt.Sprintf("sub-%d", b.nextID),
		key:            key,
		priority:       priority,
		seq:            b.nextSeq,
		handler:        hv,
		filter:         filter,
		acceptsContext: acceptsContext,
	}
	b.subs[key] = append(b.subs[key], sub)
	return sub.id, nil
}

func (b *bus) Unsubscribe(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	for key, list := range b.subs {
		for i, sub := range list {
			if sub.id == id {
				b.subs[key] = append(list[:i], list[i+1:]...)
				return nil
			}
		}
	}
	return fmt.Errorf("events: subscription %s not found", id)
}

func (b *bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = make(map[*Key][]*subscription)
}
