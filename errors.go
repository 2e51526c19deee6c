package propwave

import "errors"

var (
	// ErrNotFound is returned by lookups when no scope in the chain provides
	// a node for the requested tag. It always indicates a wiring mistake in
	// the host tree, never a transient condition.
	ErrNotFound = errors.New("propwave: no propagation node for tag")

	// ErrInvalidAccessMode is returned when listen is requested with an
	// explicitly empty property list. Listening needs either nil properties
	// (depend on everything) or a non-empty set.
	ErrInvalidAccessMode = errors.New("propwave: invalid access mode")

	// ErrDuplicateSubscription is returned when a dependent attaches twice
	// without an intervening detach. The registry is left unchanged.
	ErrDuplicateSubscription = errors.New("propwave: duplicate subscription")
)
