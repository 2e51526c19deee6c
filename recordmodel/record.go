// Package recordmodel provides a map-backed observable record: a bag of
// named properties that fires one change event per mutated property. It is
// the reference implementation of the propwave Observable contract and what
// the benchmarks and typed helpers are built on.
package recordmodel

import (
	"maps"
	"reflect"
)

type listenerEntry struct {
	fn        func(changed string)
	cancelled bool
}

// Record holds named property values and notifies subscribed listeners
// whenever a property actually changes. All methods must be called from the
// single thread that owns the record.
type Record struct {
	props     map[string]any
	listeners []*listenerEntry
}

func New(initial map[string]any) *Record {
	props := maps.Clone(initial)
	if props == nil {
		props = map[string]any{}
	}
	return &Record{props: props}
}

// Get returns one property's current value.
func (r *Record) Get(prop string) (any, bool) {
	v, ok := r.props[prop]
	return v, ok
}

// Snapshot returns a copy of all properties. Mutating the copy does not
// touch the record.
func (r *Record) Snapshot() map[string]any {
	return maps.Clone(r.props)
}

// Value implements propwave.Observable. Readers get a copy so every access
// through a node stays read-only.
func (r *Record) Value() any {
	return r.Snapshot()
}

// Set writes one property and synchronously invokes every listener with the
// property name. Writing a value deep-equal to the current one fires
// nothing.
func (r *Record) Set(prop string, value any) {
	if old, ok := r.props[prop]; ok && reflect.DeepEqual(old, value) {
		return
	}
	r.props[prop] = value
	r.fire(prop)
}

// Delete removes a property, firing its name if it was present.
func (r *Record) Delete(prop string) {
	if _, ok := r.props[prop]; !ok {
		return
	}
	delete(r.props, prop)
	r.fire(prop)
}

// Subscribe implements propwave.Observable. The returned cancel func removes
// the listener; cancelling from inside a dispatch also stops delivery to the
// cancelled listener for the rest of that dispatch.
func (r *Record) Subscribe(listener func(changed string)) (cancel func()) {
	e := &listenerEntry{fn: listener}
	r.listeners = append(r.listeners, e)
	return func() {
		if e.cancelled {
			return
		}
		e.cancelled = true
		for i, le := range r.listeners {
			if le == e {
				r.listeners = append(r.listeners[:i], r.listeners[i+1:]...)
				return
			}
		}
	}
}

func (r *Record) fire(changed string) {
	snapshot := make([]*listenerEntry, len(r.listeners))
	copy(snapshot, r.listeners)
	for _, e := range snapshot {
		if e.cancelled {
			continue
		}
		e.fn(changed)
	}
}
