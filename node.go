package propwave

import "fmt"

// Node binds one observable instance to one position in the scope tree. It
// holds exactly one listener on the observable for its whole lifetime and
// fans each change event out to the attached dependents whose dependency set
// matches the changed property.
type Node struct {
	observable  Observable
	cancel      func()
	reg         registry
	lastChanged string
	hasChanged  bool
	torn        bool
}

// Bind subscribes a new node to the observable. The node does not own the
// observable, only its subscription; Teardown releases it.
func Bind(observable Observable) *Node {
	n := &Node{observable: observable}
	n.cancel = observable.Subscribe(n.onEvent)
	return n
}

// onEvent is the node's single listener callback. It runs synchronously to
// completion inside the observable's mutation call: record the changed
// property, snapshot the registry, mark every matching dependent dirty in
// attachment order.
func (n *Node) onEvent(changed string) {
	if n.torn {
		return
	}
	n.lastChanged = changed
	n.hasChanged = true
	for _, e := range n.reg.snapshot() {
		if !e.set.Matches(changed) {
			continue
		}
		// A dependent detached from inside an earlier callback of this same
		// pass must not be visited. The snapshot keeps iteration stable; the
		// live registry decides membership.
		if !n.reg.contains(e.dep) {
			continue
		}
		e.dep.MarkDirty()
	}
}

// Attach registers a dependent with its dependency set. The set is fixed for
// the dependent's lifetime; changing interest means Detach then Attach.
// Attaching the same dependent twice returns ErrDuplicateSubscription and
// leaves the registry untouched. Attaching to a torn-down node returns
// ErrNotFound: the node no longer delivers anything, so going quiet would
// hide a host-tree wiring bug.
func (n *Node) Attach(dep Dependent, set DependencySet) error {
	if n.torn {
		return fmt.Errorf("%w: node is torn down", ErrNotFound)
	}
	return n.reg.attach(dep, set)
}

// Detach removes a dependent. Detaching an absent dependent is a no-op.
func (n *Node) Detach(dep Dependent) {
	n.reg.detach(dep)
}

// Value returns the observable's current value with no subscription side
// effect.
func (n *Node) Value() any {
	return n.observable.Value()
}

// LastChanged returns the property named by the most recent event. ok is
// false before the first event. Only the latest event is retained; this is
// not a change log.
func (n *Node) LastChanged() (changed string, ok bool) {
	return n.lastChanged, n.hasChanged
}

// Teardown removes the node's listener from the observable and discards any
// lingering registry entries. After Teardown no dependent is ever notified
// again. Safe to call more than once.
func (n *Node) Teardown() {
	if n.torn {
		return
	}
	n.torn = true
	if n.cancel != nil {
		n.cancel()
		n.cancel = nil
	}
	n.reg.clear()
}
