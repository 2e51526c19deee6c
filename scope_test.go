package propwave_test

import (
	"testing"

	"github.com/delaneyj/propwave"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagFor(t *testing.T) {
	assert.Equal(t, propwave.TagFor("theme.Model"), propwave.TagFor("theme.Model"))
	assert.NotEqual(t, propwave.TagFor("theme.Model"), propwave.TagFor("cart.Model"))
}

// the nearest enclosing provider wins over deeper ancestors of the same tag
func TestScopeLookupNearestWins(t *testing.T) {
	tag := propwave.TagFor("test.Model")

	far := &fakeObservable{value: "far"}
	near := &fakeObservable{value: "near"}

	root := propwave.NewScope()
	root.Provide(tag, far)

	mid := root.Child()
	mid.Provide(tag, near)

	leaf := mid.Child()

	node, err := leaf.Lookup(tag)
	require.NoError(t, err)
	assert.Equal(t, "near", node.Value())

	// above the nearer provider the farther one is still in effect
	node, err = root.Lookup(tag)
	require.NoError(t, err)
	assert.Equal(t, "far", node.Value())
}

func TestScopeLookupNotFound(t *testing.T) {
	root := propwave.NewScope()
	leaf := root.Child().Child()

	_, err := leaf.Lookup(propwave.TagFor("nobody.Provides"))
	require.ErrorIs(t, err, propwave.ErrNotFound)
}

// several tags can live at the same position without shadowing each other
func TestScopeMultipleTags(t *testing.T) {
	themeTag := propwave.TagFor("theme.Model")
	cartTag := propwave.TagFor("cart.Model")

	root := propwave.NewScope()
	root.Provide(themeTag, &fakeObservable{value: "dark"})
	root.Provide(cartTag, &fakeObservable{value: 3})

	leaf := root.Child()

	theme, err := leaf.Lookup(themeTag)
	require.NoError(t, err)
	assert.Equal(t, "dark", theme.Value())

	cart, err := leaf.Lookup(cartTag)
	require.NoError(t, err)
	assert.Equal(t, 3, cart.Value())
}

// re-providing a tag at the same scope tears the previous node down
func TestScopeProvideReplaces(t *testing.T) {
	tag := propwave.TagFor("test.Model")
	obs := &fakeObservable{value: 1}

	root := propwave.NewScope()
	old := root.Provide(tag, obs)

	dep := &recordingDependent{name: "dep"}
	require.NoError(t, old.Attach(dep, propwave.All()))

	fresh := root.Provide(tag, obs)
	assert.NotSame(t, old, fresh)

	obs.Fire("foo")
	assert.Equal(t, 0, dep.marks, "old node was torn down, its dependents dropped")

	node, err := root.Lookup(tag)
	require.NoError(t, err)
	assert.Same(t, fresh, node)
}

func TestScopeTeardown(t *testing.T) {
	tag := propwave.TagFor("test.Model")
	obs := &fakeObservable{value: 1}

	root := propwave.NewScope()
	mid := root.Child()
	mid.Provide(tag, obs)

	dep := &recordingDependent{name: "dep"}
	_, err := propwave.WatchAll(mid.Child(), tag, dep)
	require.NoError(t, err)

	mid.Teardown()

	obs.Fire("foo")
	assert.Equal(t, 0, dep.marks)

	_, err = mid.Child().Lookup(tag)
	require.ErrorIs(t, err, propwave.ErrNotFound)
}
