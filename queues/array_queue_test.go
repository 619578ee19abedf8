package queues_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/queues"
	"seqview/views"
)

func TestArrayQueue_FIFO(t *testing.T) {
	for _, capacity := range []int{-1, 0, 1, 3, 8} {
		q := queues.NewArrayQueue[int](capacity)
		assert.True(t, q.IsEmpty())

		q.EnqueueAll(1, 2, 3)
		q.Enqueue(4)
		v, ok := q.Peek()
		require.True(t, ok)
		assert.Equal(t, 1, v)

		for want := 1; want <= 4; want++ {
			v, ok := q.Dequeue()
			require.True(t, ok)
			assert.Equal(t, want, v)
		}
		_, ok = q.Dequeue()
		assert.False(t, ok)
	}
}

func TestArrayQueue_WrapAround(t *testing.T) {
	q := queues.NewArrayQueue[int](4)
	q.EnqueueAll(1, 2, 3, 4)
	q.Dequeue()
	q.Dequeue()
	q.EnqueueAll(5, 6) // [5 6 3 4], head at 2
	assert.Equal(t, 3, q.At(0))
	assert.Equal(t, 6, q.At(3))

	q.EnqueueAll(7, 8, 9) // grows and unwraps
	got, err := views.Collect[int](q)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9}, got)

	q.ResizeToFit()
	assert.Equal(t, 7, q.Len())
	assert.Equal(t, 9, q.At(6))
	assert.Panics(t, func() { q.At(7) })

	q.Clear()
	assert.Zero(t, q.Len())
}

func TestArrayQueue_Take(t *testing.T) {
	q := queues.NewArrayQueue[string](4)
	q.EnqueueAll("a", "b", "c", "d")
	q.Dequeue()
	q.Enqueue("e")

	v, err := views.Take[string](q, 3, views.Lenient)
	require.NoError(t, err)
	require.Equal(t, views.KindRange, v.Kind(), "a ring buffer is random access but not contiguous")
	rv := v.(*views.RangeView[string])
	assert.Equal(t, 3, rv.Len())
	assert.Equal(t, "d", rv.At(2))

	got, err := views.Collect(v)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "c", "d"}, got)
	assert.Equal(t, 4, q.Len(), "a view does not consume the queue")

	_, err = views.TakeOrThrow[string](q, 5)
	require.ErrorIs(t, err, views.ErrRangeTooShort)
}

func TestArrayQueue_Drain(t *testing.T) {
	q := queues.NewArrayQueue[int](0)
	q.EnqueueAll(1, 2, 0, 3, 4, 5)

	head, err := views.TakeUntilAndConsume[int](q.Drain(), func(x int) bool { return x == 0 })
	require.NoError(t, err)
	got, err := views.Collect(head)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)

	next, err := views.Take[int](q.Drain(), 2, views.Lenient)
	require.NoError(t, err)
	got, err = views.Collect(next)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)
	assert.Equal(t, 1, q.Len())
}

func TestArrayQueue_DrainBuffersTheTerminator(t *testing.T) {
	q := queues.NewArrayQueue[int](0)
	q.EnqueueAll(1, 2, 0, 3)
	stream := q.Drain()

	head, err := views.TakeUntil[int](stream, func(x int) bool { return x == 0 }, views.Lenient)
	require.NoError(t, err)
	got, err := views.Collect(head)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
	assert.Equal(t, 1, q.Len(), "the terminator was dequeued to test it")

	rest, err := views.Collect[int](stream)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3}, rest, "the same stream still yields it")
}
