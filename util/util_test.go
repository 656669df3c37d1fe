package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInRange(t *testing.T) {
	assert := assert.New(t)
	assert.True(InRange(0, 1))
	assert.False(InRange(1, 1))
	assert.False(InRange(-1, 3))
	assert.False(InRange(uint8(0), 0))
}

func TestRemoveAtDoesNotAlias(t *testing.T) {
	orig := []string{"a", "b", "c"}
	res := RemoveAt(orig, 1)

	assert := assert.New(t)
	assert.Equal([]string{"a", "c"}, res)
	assert.Equal([]string{"a", "b", "c"}, orig)
	assert.Equal(orig, RemoveAt(orig, 7))
}

func TestAppendDoesNotAlias(t *testing.T) {
	orig := make([]int, 1, 4)
	a := Append(orig, 1)
	b := Append(orig, 2)
	assert.Equal(t, []int{0, 1}, a)
	assert.Equal(t, []int{0, 2}, b)
}

func TestCountBy(t *testing.T) {
	order, counts := CountBy([]string{"C", "E", "C"}, func(s string) string { return s })
	assert.Equal(t, []string{"C", "E"}, order)
	assert.Equal(t, map[string]int{"C": 2, "E": 1}, counts)
}

func TestSum(t *testing.T) {
	assert.Equal(t, uint64(6), Sum([]int{1, 2, 3}))
}
