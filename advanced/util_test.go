package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRankStack(t *testing.T) {
	var s RankStack
	assert.True(t, s.Empty())
	s.Push(1)
	assert.False(t, s.Empty())
	assert.Equal(t, 1, s.Peek())
	assert.False(t, s.Empty())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
	s.Push(1)
	s.Push(3)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, "[1 3]", s.String())
	assert.Equal(t, 3, s.Peek())
	assert.Equal(t, 3, s.Pop())
	assert.False(t, s.Empty())
	assert.Equal(t, 1, s.Peek())
	assert.Equal(t, 1, s.Pop())
	assert.True(t, s.Empty())
	assert.Equal(t, "[]", s.String())

	t.Run("empty", func(t *testing.T) {
		var s RankStack
		assert.PanicsWithError(t, "pop from empty stack: triangulation invariant violated", func() {
			s.Pop()
		})
		assert.Panics(t, func() {
			s.Peek()
		})
	})
}

func TestCircularIndex(t *testing.T) {
	n := 3
	expectedIndexes := []int{0, 1, 2, 0, 1, 2, 0, 1, 2}
	for i := -3; i < 6; i++ {
		actualIndex := CircularIndex(i, n)
		expectedIndex := expectedIndexes[0]
		expectedIndexes = expectedIndexes[1:]
		assert.Equal(t, expectedIndex, actualIndex)
	}
}
