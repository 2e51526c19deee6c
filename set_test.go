package propwave_test

import (
	"testing"

	"github.com/delaneyj/propwave"
	"github.com/stretchr/testify/assert"
)

// matches(p, ALL) == true for every p, including names nobody declared
func TestFilterAllMatchesEverything(t *testing.T) {
	all := propwave.All()
	for _, p := range []string{"foo", "bar", "", "never seen", "日本語", "a/b/c"} {
		assert.True(t, all.Matches(p))
	}
	assert.True(t, all.IsAll())
}

// an empty subset means "listen without filtering", same as ALL
func TestFilterEmptySubsetBehavesAsAll(t *testing.T) {
	empty := propwave.Subset()
	assert.True(t, empty.IsAll())
	assert.True(t, empty.Matches("foo"))
	assert.True(t, empty.Matches(""))
}

func TestFilterSubsetMembership(t *testing.T) {
	set := propwave.Subset("foo", "bar")
	assert.False(t, set.IsAll())

	assert.True(t, set.Matches("foo"))
	assert.True(t, set.Matches("bar"))
	assert.False(t, set.Matches("baz"))
	assert.False(t, set.Matches(""))
	assert.False(t, set.Matches("never seen before"))
}

// duplicates in the declaration collapse to the union
func TestFilterSubsetUnion(t *testing.T) {
	set := propwave.Subset("foo", "bar", "foo", "foo")
	assert.Equal(t, "{bar, foo}", set.String())
	assert.True(t, set.Matches("foo"))
	assert.True(t, set.Matches("bar"))
	assert.False(t, set.Matches("qux"))
}

func TestFilterString(t *testing.T) {
	assert.Equal(t, "all", propwave.All().String())
	assert.Equal(t, "all", propwave.Subset().String())
	assert.Equal(t, "{a, b}", propwave.Subset("b", "a").String())
}
