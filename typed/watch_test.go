package typed_test

import (
	"testing"

	"github.com/delaneyj/propwave"
	"github.com/delaneyj/propwave/recordmodel"
	"github.com/delaneyj/propwave/typed"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch1(t *testing.T) {
	tag := propwave.TagFor("typed.Record")
	record := recordmodel.New(map[string]any{"count": 1})

	root := propwave.NewScope()
	root.Provide(tag, record)

	var got []int
	stop, err := typed.Watch1(root.Child(), tag, "count", func(count int) {
		got = append(got, count)
	})
	require.NoError(t, err)

	// delivered once immediately with the current value
	assert.Equal(t, []int{1}, got)

	record.Set("count", 2)
	assert.Equal(t, []int{1, 2}, got)

	stop()
	record.Set("count", 3)
	assert.Equal(t, []int{1, 2}, got)
}

// fires on any of the watched properties, never on others
func TestWatch2Filtered(t *testing.T) {
	tag := propwave.TagFor("typed.Record")
	record := recordmodel.New(map[string]any{
		"name":  "ada",
		"score": 10,
		"noise": false,
	})

	root := propwave.NewScope()
	root.Provide(tag, record)

	calls := 0
	var lastName string
	var lastScore int
	stop, err := typed.Watch2(root.Child(), tag, "name", "score", func(name string, score int) {
		calls++
		lastName = name
		lastScore = score
	})
	require.NoError(t, err)
	defer stop()

	assert.Equal(t, 1, calls)
	assert.Equal(t, "ada", lastName)
	assert.Equal(t, 10, lastScore)

	record.Set("score", 11)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 11, lastScore)

	record.Set("noise", true)
	assert.Equal(t, 2, calls)

	record.Set("name", "grace")
	assert.Equal(t, 3, calls)
	assert.Equal(t, "grace", lastName)
}

// a property of the wrong type comes through as the zero value
func TestWatchTypeMismatch(t *testing.T) {
	tag := propwave.TagFor("typed.Record")
	record := recordmodel.New(map[string]any{"count": "not an int"})

	root := propwave.NewScope()
	root.Provide(tag, record)

	var got int
	stop, err := typed.Watch1(root.Child(), tag, "count", func(count int) {
		got = count
	})
	require.NoError(t, err)
	defer stop()

	assert.Equal(t, 0, got)
}

func TestWatchNotFound(t *testing.T) {
	root := propwave.NewScope()

	_, err := typed.Watch1(root, propwave.TagFor("missing"), "count", func(int) {})
	require.ErrorIs(t, err, propwave.ErrNotFound)
}
