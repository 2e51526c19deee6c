package propwave

import (
	"fmt"
	"sort"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
)

// DependencySet is what a dependent declares interest in: either every
// property (All) or a finite set of property names (Subset). A Subset with
// zero properties behaves the same as All, mirroring "listen without
// filtering".
type DependencySet struct {
	all   bool
	props mapset.Set[string]
}

// All returns the set that matches every property change.
func All() DependencySet {
	return DependencySet{all: true}
}

// Subset returns the set matching exactly the named properties. Duplicates
// collapse; the union of everything listed is what gets matched.
func Subset(props ...string) DependencySet {
	return DependencySet{props: mapset.NewThreadUnsafeSet(props...)}
}

// Matches reports whether a change to the named property concerns this set.
// It is pure and total: any property name, including ones never seen before,
// yields a boolean. Unknown names simply fail to match a non-All set.
func (d DependencySet) Matches(changed string) bool {
	if d.all || d.props == nil || d.props.Cardinality() == 0 {
		return true
	}
	return d.props.Contains(changed)
}

// IsAll reports whether this set matches every property.
func (d DependencySet) IsAll() bool {
	return d.all || d.props == nil || d.props.Cardinality() == 0
}

func (d DependencySet) String() string {
	if d.IsAll() {
		return "all"
	}
	props := d.props.ToSlice()
	sort.Strings(props)
	return fmt.Sprintf("{%s}", strings.Join(props, ", "))
}
