package views

import "github.com/cockroachdb/errors"

// MoveHook is told how far a Delegate moved after each traversal call.
type MoveHook interface {
	Moved(delta int)
}

// Delegate forwards the traversal surface of a base cursor. A view cursor
// embeds it, passes itself as the hook to keep its own bookkeeping, and
// overrides only the methods whose behaviour differs.
//
// Every forwarding method is always present; calling one that the base cursor
// does not support panics with an error wrapping ErrUnsupported. Check the
// view's Caps before relying on Prev, Seek, At or Index.
type Delegate[T any] struct {
	base Cursor[T]
	hook MoveHook
}

// NewDelegate wraps base. hook may be nil.
func NewDelegate[T any](base Cursor[T], hook MoveHook) Delegate[T] {
	return Delegate[T]{base: base, hook: hook}
}

// Base returns the wrapped cursor.
func (d *Delegate[T]) Base() Cursor[T] { return d.base }

func (d *Delegate[T]) Value() T { return d.base.Value() }

func (d *Delegate[T]) Next() {
	d.base.Next()
	d.moved(1)
}

func (d *Delegate[T]) Prev() {
	bidi, ok := d.base.(BidiCursor[T])
	if !ok {
		panic(unsupported(d.base, "Prev"))
	}
	bidi.Prev()
	d.moved(-1)
}

func (d *Delegate[T]) Seek(offset int) {
	d.random("Seek").Seek(offset)
	d.moved(offset)
}

func (d *Delegate[T]) At(offset int) T { return d.random("At").At(offset) }

func (d *Delegate[T]) Index() int { return d.random("Index").Index() }

// CloneBase returns an independent copy of the base cursor.
func (d *Delegate[T]) CloneBase() Cursor[T] {
	cl, ok := d.base.(Cloner[T])
	if !ok {
		panic(unsupported(d.base, "Clone"))
	}
	return cl.Clone()
}

func (d *Delegate[T]) random(op string) RandomCursor[T] {
	rc, ok := d.base.(RandomCursor[T])
	if !ok {
		panic(unsupported(d.base, op))
	}
	return rc
}

func (d *Delegate[T]) moved(delta int) {
	if d.hook != nil {
		d.hook.Moved(delta)
	}
}

func unsupported(c any, op string) error {
	return errors.Wrapf(ErrUnsupported, "%s on %T", op, c)
}
