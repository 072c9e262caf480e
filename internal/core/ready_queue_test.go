package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadyQueue_FIFO(t *testing.T) {
	q := NewReadyQueue(0)
	assert.True(t, q.Empty())

	_, ok := q.Pop()
	assert.False(t, ok)

	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	assert.Equal(t, []int{0, 1, 2}, q.Items())

	v, ok := q.Pop()
	assert.True(t, ok)
	assert.Equal(t, 0, v)
	assert.Equal(t, []int{1, 2}, q.Items())
}

func TestReadyQueue_GrowsAcrossWrap(t *testing.T) {
	q := NewReadyQueue(4)
	for i := 0; i < 3; i++ {
		q.Push(i)
	}
	// move head forward so the next pushes wrap around
	q.Pop()
	q.Pop()
	for i := 3; i < 12; i++ {
		q.Push(i)
	}

	want := []int{2, 3, 4, 5, 6, 7, 8, 9, 10, 11}
	assert.Equal(t, want, q.Items())
	for _, w := range want {
		v, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, w, v)
	}
	assert.True(t, q.Empty())
}
