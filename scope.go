package propwave

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Tag identifies what kind of observable a node provides, so a position in
// the tree can host several providers of different kinds and lookups can ask
// for one by kind.
type Tag uint64

// TagFor derives a stable tag from a name, typically the provided type's
// name.
func TagFor(name string) Tag {
	return Tag(xxhash.Sum64String(name))
}

// Scope is one position in the host tree. Providers register nodes on the
// scope they own; consumers below resolve them by walking parent pointers
// upward, nearest provider wins. The walk is structural: it never touches
// any node's subscription registry.
type Scope struct {
	parent *Scope
	nodes  map[Tag]*Node
}

func NewScope() *Scope {
	return &Scope{}
}

// Child derives the scope for a position directly below this one.
func (s *Scope) Child() *Scope {
	return &Scope{parent: s}
}

// Provide binds a new node for the observable at this scope and returns it.
// Providing a tag that this same scope already holds replaces the previous
// node after tearing it down.
func (s *Scope) Provide(tag Tag, observable Observable) *Node {
	if s.nodes == nil {
		s.nodes = map[Tag]*Node{}
	}
	if prev, ok := s.nodes[tag]; ok {
		prev.Teardown()
	}
	n := Bind(observable)
	s.nodes[tag] = n
	return n
}

// Lookup resolves the nearest enclosing node for the tag, starting at this
// scope and walking upward. Returns ErrNotFound when no ancestor provides
// it.
func (s *Scope) Lookup(tag Tag) (*Node, error) {
	for cur := s; cur != nil; cur = cur.parent {
		if n, ok := cur.nodes[tag]; ok {
			return n, nil
		}
	}
	return nil, fmt.Errorf("%w %d in scope chain", ErrNotFound, tag)
}

// Teardown tears down every node provided at this scope. The host tree calls
// it when the position owning the scope leaves the tree. Ancestor scopes are
// untouched.
func (s *Scope) Teardown() {
	for _, n := range s.nodes {
		n.Teardown()
	}
	s.nodes = nil
}
