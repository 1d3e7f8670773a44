// Package events provides the synchronous, typed event bus that drives
// trigger skills and resolver-side notifications (spec.md §4.2). It is
// deliberately small plumbing, in the spirit of the teacher toolkit's own
// events package: event payloads and their mutable fields live in the
// packages that define them, not here.
package events

// Key is a type-safe, pointer-identified event class. Two events are of
// the same class iff their EventRef() returns the same *Key instance — this
// mirrors the teacher's core.Ref pointer-comparison trick and sidesteps
// string-typo subscription bugs.
type Key struct {
	name string
}

// NewKey creates a new event key. Callers should store the result in a
// package-level var and never construct a second Key with the same name;
// the identity that matters is the pointer, not the name.
func NewKey(name string) *Key {
	return &Key{name: name}
}

// String returns the key's human-readable name, for logs and errors.
func (k *Key) String() string {
	if k == nil {
		return "<nil>"
	}
	return k.name
}
