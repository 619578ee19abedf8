package views_test

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"seqview/views"
)

// deque is a sized, multi-pass, bidirectional source that hides its random
// access so that views fall back to their generic representation.
type deque[T any] struct {
	items []T
}

func newDeque[T any](items ...T) *deque[T] {
	return &deque[T]{items: items}
}

func (d *deque[T]) Begin() views.Cursor[T] {
	return &dequeCursor[T]{inner: views.NewIndexCursor[T](d, 0, len(d.items))}
}

func (d *deque[T]) End() views.Sentinel[T] { return dequeEnd[T]{} }

func (d *deque[T]) Caps() views.Caps { return views.Sized | views.MultiPass | views.Bidirectional }

func (d *deque[T]) Len() int { return len(d.items) }

func (d *deque[T]) At(i int) T { return d.items[i] }

type dequeCursor[T any] struct {
	inner *views.IndexCursor[T]
}

func (c *dequeCursor[T]) Value() T { return c.inner.Value() }
func (c *dequeCursor[T]) Next()    { c.inner.Next() }
func (c *dequeCursor[T]) Prev()    { c.inner.Prev() }

func (c *dequeCursor[T]) Clone() views.Cursor[T] {
	return &dequeCursor[T]{inner: c.inner.Clone().(*views.IndexCursor[T])}
}

type dequeEnd[T any] struct{}

func (dequeEnd[T]) Reached(c views.Cursor[T]) (bool, error) {
	return views.IndexEnd[T]().Reached(c.(*dequeCursor[T]).inner)
}

// counter wraps a predicate and records how often it ran.
type counter[T any] struct {
	fn    func(T) bool
	calls int
}

func (c *counter[T]) stop(v T) bool {
	c.calls++
	return c.fn(v)
}

func collect[T any](t *testing.T, src views.Source[T]) []T {
	t.Helper()
	out, err := views.Collect(src)
	require.NoError(t, err)
	return out
}

// recoverError runs f and returns the error it panicked with.
func recoverError(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				e = errors.Newf("%v", r)
			}
			err = e
		}
	}()
	f()
	return nil
}
