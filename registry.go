package propwave

import "fmt"

type registryEntry struct {
	dep Dependent
	set DependencySet
}

// registry tracks the currently attached dependents of one node in
// attachment order. Notification passes iterate a value-copied snapshot so
// attach/detach from inside a dependent's callback never corrupts the pass.
type registry struct {
	entries []registryEntry
}

func (r *registry) attach(dep Dependent, set DependencySet) error {
	for _, e := range r.entries {
		if e.dep == dep {
			return fmt.Errorf("%w: dependent already attached, detach first", ErrDuplicateSubscription)
		}
	}
	r.entries = append(r.entries, registryEntry{dep: dep, set: set})
	return nil
}

// detach is a no-op when the dependent is absent, so redundant teardown
// paths stay harmless. Removal splices rather than swaps to preserve
// attachment order for later passes.
func (r *registry) detach(dep Dependent) {
	for i, e := range r.entries {
		if e.dep == dep {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return
		}
	}
}

func (r *registry) contains(dep Dependent) bool {
	for _, e := range r.entries {
		if e.dep == dep {
			return true
		}
	}
	return false
}

func (r *registry) snapshot() []registryEntry {
	out := make([]registryEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *registry) clear() {
	r.entries = nil
}
