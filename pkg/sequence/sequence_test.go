package sequence

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterator_Collect(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3}, From([]int{1, 2, 3}).Collect())
	assert.Nil(t, From([]int{}).Collect())
}

func TestIterator_Filter(t *testing.T) {
	even := From([]int{1, 2, 3, 4, 5, 6}).Filter(func(v int) bool { return v%2 == 0 })
	assert.Equal(t, []int{2, 4, 6}, even.Collect())
	assert.Equal(t, 3, even.Count())
}

func TestIterator_FindStopsEarly(t *testing.T) {
	visited := 0
	it := From([]int{1, 2, 3, 4}).Filter(func(v int) bool {
		visited++
		return true
	})

	v, ok := it.Find(func(v int) bool { return v == 2 })
	require.True(t, ok)
	assert.Equal(t, 2, v)
	assert.Equal(t, 2, visited)

	_, ok = it.Find(func(v int) bool { return v == 10 })
	assert.False(t, ok)
}

func TestIterator_First(t *testing.T) {
	v, ok := From([]string{"a", "b"}).First()
	require.True(t, ok)
	assert.Equal(t, "a", v)

	_, ok = From([]string(nil)).First()
	assert.False(t, ok)
}

func TestIterator_EachAndSeq(t *testing.T) {
	var sum int
	From([]int{1, 2, 3}).Each(func(v int) { sum += v })
	assert.Equal(t, 6, sum)

	var seen []int
	for v := range From([]int{4, 5}).Seq() {
		seen = append(seen, v)
	}
	assert.Equal(t, []int{4, 5}, seen)
}

func TestMap(t *testing.T) {
	got := Map(From([]int{1, 2}), strconv.Itoa)
	assert.Equal(t, []string{"1", "2"}, got)
}
