// Package propwave is a property-scoped change propagation engine for
// component trees. A scope provides a shared observable value to everything
// below it; dependents attach with a dependency set naming the properties
// they care about and are marked dirty only when one of those properties
// changes.
//
// The whole attach/detach/notify protocol is single-threaded by contract:
// every call happens on the host tree's build/update thread, so no locking
// is done anywhere in this package.
package propwave

// Dependent is the handle for anything that wants selective notification.
// Identity of the interface value is the subscription identity: attaching
// the same Dependent twice without detaching is an error.
type Dependent interface {
	// MarkDirty tells the dependent that a property it depends on changed
	// and its output needs recomputing. For a UI component this schedules
	// a rebuild.
	MarkDirty()
}

// Observable is the event source a Node binds to. It holds an arbitrary
// record-shaped value and invokes every subscribed listener with the name of
// the property that changed, one property per call.
type Observable interface {
	// Subscribe registers a listener and returns a cancel func that removes
	// it. Listeners are invoked synchronously from the mutation call.
	Subscribe(listener func(changed string)) (cancel func())

	// Value returns the current value without any subscription side effect.
	Value() any
}
