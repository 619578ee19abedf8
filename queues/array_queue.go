package queues

import (
	"math/bits"

	"seqview/sources"
	"seqview/views"
)

// ArrayQueue is a FIFO queue over a ring buffer whose capacity is a power of
// two.
//
// It is a sized, multi-pass, random-access views.Source over the queued
// elements, front first. The elements are not contiguous in memory, so
// views.Take returns a *views.RangeView over the queue rather than a slice.
// Enqueue and Dequeue invalidate cursors; Drain gives a consuming,
// forward-only view instead.
type ArrayQueue[T any] struct {
	buf  []T
	head int
	size int
	mask int // len(buf) - 1
}

func NewArrayQueue[T any](initialCapacity int) *ArrayQueue[T] {
	if initialCapacity <= 0 {
		initialCapacity = 16
	}
	capacity := ceilPow2(initialCapacity)
	return &ArrayQueue[T]{
		buf:  make([]T, capacity),
		mask: capacity - 1,
	}
}

func ceilPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << uint(bits.Len(uint(n-1)))
}

// grow reallocates so that extra more elements fit, unwrapping the ring.
func (aq *ArrayQueue[T]) grow(extra int) {
	aq.realloc(ceilPow2(aq.size + extra))
}

func (aq *ArrayQueue[T]) realloc(capacity int) {
	newBuf := make([]T, capacity)
	if aq.head+aq.size <= len(aq.buf) {
		copy(newBuf, aq.buf[aq.head:aq.head+aq.size])
	} else {
		n := copy(newBuf, aq.buf[aq.head:])
		copy(newBuf[n:], aq.buf[:(aq.head+aq.size)&aq.mask])
	}
	clear(aq.buf)
	aq.buf = newBuf
	aq.head = 0
	aq.mask = capacity - 1
}

func (aq *ArrayQueue[T]) Enqueue(value T) {
	if aq.size == len(aq.buf) {
		aq.grow(1)
	}
	aq.buf[(aq.head+aq.size)&aq.mask] = value
	aq.size++
}

func (aq *ArrayQueue[T]) EnqueueAll(values ...T) {
	n := len(values)
	if aq.size+n > len(aq.buf) {
		aq.grow(n)
	}
	tail := (aq.head + aq.size) & aq.mask
	if tail+n <= len(aq.buf) {
		copy(aq.buf[tail:], values)
	} else {
		k := copy(aq.buf[tail:], values)
		copy(aq.buf, values[k:])
	}
	aq.size += n
}

func (aq *ArrayQueue[T]) Dequeue() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	value = aq.buf[aq.head]
	var zero T
	aq.buf[aq.head] = zero
	aq.head = (aq.head + 1) & aq.mask
	aq.size--
	return value, true
}

func (aq *ArrayQueue[T]) Peek() (value T, ok bool) {
	if aq.size == 0 {
		return value, false
	}
	return aq.buf[aq.head], true
}

// At returns the i-th queued element, counting from the front. It panics
// when i is out of range.
func (aq *ArrayQueue[T]) At(i int) T {
	if i < 0 || i >= aq.size {
		panic("queues: index out of range")
	}
	return aq.buf[(aq.head+i)&aq.mask]
}

func (aq *ArrayQueue[T]) Len() int {
	return aq.size
}

func (aq *ArrayQueue[T]) IsEmpty() bool {
	return aq.size == 0
}

func (aq *ArrayQueue[T]) Clear() {
	clear(aq.buf)
	aq.head = 0
	aq.size = 0
}

// ResizeToFit shrinks the buffer to the smallest power of two holding the
// queued elements.
func (aq *ArrayQueue[T]) ResizeToFit() {
	aq.realloc(ceilPow2(aq.size))
}

func (aq *ArrayQueue[T]) Begin() views.Cursor[T] {
	return views.NewIndexCursor[T](aq, 0, aq.size)
}

func (aq *ArrayQueue[T]) End() views.Sentinel[T] {
	return views.IndexEnd[T]()
}

func (aq *ArrayQueue[T]) Caps() views.Caps {
	return views.Sized | views.MultiPass | views.Bidirectional | views.RandomAccess
}

// Drain returns a forward-only source that dequeues as it is read. A view
// may dequeue one element past what it yields in order to test it, such as
// the terminator of a non-consuming TakeUntil. That element is buffered by
// the returned stream, so keep reading the same stream to see it; a new Drain
// starts after it.
func (aq *ArrayQueue[T]) Drain() *sources.Stream[T] {
	return sources.NewStream(func() (T, bool, error) {
		v, ok := aq.Dequeue()
		return v, ok, nil
	}, nil)
}
