package propwave

import "fmt"

// AccessMode selects what a read does besides reading. The recognized
// combinations are:
//
//	Listen=false                     read only, Properties ignored
//	Listen=true, Properties=nil      attach depending on every property
//	Listen=true, Properties=[p...]   attach depending on the union of p...
//
// Listen=true with a non-nil empty Properties slice is a contract violation
// and is rejected with ErrInvalidAccessMode before anything is attached.
type AccessMode struct {
	Listen     bool
	Properties []string
}

// ReadResult is what every access returns: the resolved node (so the caller
// can detach later), the observable's current value, and the most recently
// changed property. HasChanged is false when no event has fired yet.
type ReadResult struct {
	Node        *Node
	Value       any
	LastChanged string
	HasChanged  bool
}

// Read is the single entry point consumers use. It resolves the nearest node
// for the tag from the caller's scope, optionally attaches dep per mode, and
// reads the current value. Resolution failures, invalid modes, and duplicate
// attaches all surface as errors at this call; none of them mutate the
// registry.
func Read(scope *Scope, tag Tag, dep Dependent, mode AccessMode) (ReadResult, error) {
	node, err := scope.Lookup(tag)
	if err != nil {
		return ReadResult{}, err
	}

	if mode.Listen {
		if dep == nil {
			return ReadResult{}, fmt.Errorf("%w: listen requires a dependent", ErrInvalidAccessMode)
		}
		set := All()
		if mode.Properties != nil {
			if len(mode.Properties) == 0 {
				return ReadResult{}, fmt.Errorf("%w: listen with an explicitly empty property list", ErrInvalidAccessMode)
			}
			set = Subset(mode.Properties...)
		}
		if err := node.Attach(dep, set); err != nil {
			return ReadResult{}, err
		}
	}

	last, has := node.LastChanged()
	return ReadResult{
		Node:        node,
		Value:       node.Value(),
		LastChanged: last,
		HasChanged:  has,
	}, nil
}

// Peek reads without attaching anything.
func Peek(scope *Scope, tag Tag) (ReadResult, error) {
	return Read(scope, tag, nil, AccessMode{})
}

// WatchAll attaches dep with interest in every property and reads.
func WatchAll(scope *Scope, tag Tag, dep Dependent) (ReadResult, error) {
	return Read(scope, tag, dep, AccessMode{Listen: true})
}

// WatchProps attaches dep with interest in the union of the named properties
// and reads. At least one property is required.
func WatchProps(scope *Scope, tag Tag, dep Dependent, props ...string) (ReadResult, error) {
	if len(props) == 0 {
		return ReadResult{}, fmt.Errorf("%w: WatchProps needs at least one property", ErrInvalidAccessMode)
	}
	return Read(scope, tag, dep, AccessMode{Listen: true, Properties: props})
}
