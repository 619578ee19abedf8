package views

import "github.com/cockroachdb/errors"

// predicate is an optional slot for the stop function, so zero cursors and
// sentinels stay valid values.
type predicate[T any] struct {
	fn func(T) bool
}

func (p predicate[T]) call(v T) bool {
	if p.fn == nil {
		panic(errors.AssertionFailedf("views: predicate slot is empty"))
	}
	return p.fn(v)
}

// TakeUntil returns a view of the elements of src before the first one for
// which stop returns true. That element is never part of the view.
//
// With OrThrow, reaching the end of src before stop fires is reported as
// ErrUnexpectedEndOfInput by the view's sentinel. With Consume over a
// forward-only source, the element that stopped the view is also consumed from
// src, so the next reader of src starts after it; stop is then evaluated
// eagerly on Begin and after every Next. Consume has no effect on MultiPass
// sources.
//
// stop may be called more than once for the same element. Pass Repeatable if
// it is free of side effects: the view then keeps the traversal capabilities
// of src up to Bidirectional. Otherwise the view only promises one forward pass.
func TakeUntil[T any](src Source[T], stop func(T) bool, flags Flags) (View[T], error) {
	return NewUntilView(src, stop, flags)
}

// TakeUntilOrThrow is TakeUntil with OrThrow.
func TakeUntilOrThrow[T any](src Source[T], stop func(T) bool) (View[T], error) {
	return TakeUntil(src, stop, OrThrow)
}

// TakeUntilAndConsume is TakeUntil with Consume.
func TakeUntilAndConsume[T any](src Source[T], stop func(T) bool) (View[T], error) {
	return TakeUntil(src, stop, Consume)
}

// TakeUntilOrThrowAndConsume is TakeUntil with OrThrow and Consume.
func TakeUntilOrThrowAndConsume[T any](src Source[T], stop func(T) bool) (View[T], error) {
	return TakeUntil(src, stop, OrThrow|Consume)
}

// UntilView is the predicate terminated view built by TakeUntil.
type UntilView[T any] struct {
	src   Source[T]
	stop  predicate[T]
	flags Flags
	// stopped is set once a consuming cursor has stepped past the
	// terminator; later cursors start at the end.
	stopped bool
}

// NewUntilView builds the view returned by TakeUntil.
func NewUntilView[T any](src Source[T], stop func(T) bool, flags Flags) (*UntilView[T], error) {
	if stop == nil {
		return nil, ErrNilPredicate
	}
	return &UntilView[T]{src: src, stop: predicate[T]{fn: stop}, flags: flags}, nil
}

func (v *UntilView[T]) consuming() bool {
	return v.flags.Has(Consume) && !v.src.Caps().Has(MultiPass)
}

func (v *UntilView[T]) Begin() Cursor[T] {
	if v.consuming() {
		c := &consumeCursor[T]{view: v, stop: v.stop, end: v.src.End(), gracefully: v.stopped}
		c.Delegate = NewDelegate(v.src.Begin(), nil)
		if !c.gracefully {
			c.settle()
		}
		return c
	}
	c := &untilCursor[T]{}
	c.Delegate = NewDelegate(v.src.Begin(), nil)
	return c
}

func (v *UntilView[T]) End() Sentinel[T] {
	end := untilEnd[T]{base: v.src.End(), stop: v.stop, orThrow: v.flags.Has(OrThrow)}
	if v.consuming() {
		return consumeEnd[T]{end}
	}
	return end
}

func (v *UntilView[T]) Caps() Caps {
	if v.consuming() || !v.flags.Has(Repeatable) {
		return 0
	}
	return v.src.Caps() &^ (Sized | RandomAccess | Contiguous | Text)
}

func (v *UntilView[T]) Kind() Kind { return KindUntil }

func (v *UntilView[T]) Flags() Flags { return v.flags }

type untilCursor[T any] struct {
	Delegate[T]
}

func (c *untilCursor[T]) Clone() Cursor[T] {
	return &untilCursor[T]{Delegate: NewDelegate(c.CloneBase(), nil)}
}

type untilEnd[T any] struct {
	base    Sentinel[T]
	stop    predicate[T]
	orThrow bool
}

func (s untilEnd[T]) Reached(c Cursor[T]) (bool, error) {
	return s.check(cursorOf[*untilCursor[T]](c).Base())
}

// check decides termination for a cursor of the underlying source.
func (s untilEnd[T]) check(base Cursor[T]) (bool, error) {
	done, err := s.base.Reached(base)
	if err != nil {
		return true, err
	}
	if done {
		if s.orThrow {
			return true, errors.Wrap(ErrUnexpectedEndOfInput, "source ended before the stop condition held")
		}
		return true, nil
	}
	return s.stop.call(base.Value()), nil
}

// consumeCursor is used for forward-only sources with Consume set. A match
// found while settling is remembered and the source is stepped past it.
type consumeCursor[T any] struct {
	Delegate[T]
	view       *UntilView[T]
	stop       predicate[T]
	end        Sentinel[T]
	gracefully bool
	err        error
}

func (c *consumeCursor[T]) Next() {
	if c.gracefully {
		return
	}
	c.Delegate.Next()
	c.settle()
}

func (c *consumeCursor[T]) settle() {
	done, err := c.end.Reached(c.Base())
	if err != nil {
		c.err = err
		return
	}
	if !done && c.stop.call(c.Base().Value()) {
		c.gracefully = true
		c.view.stopped = true
		c.Delegate.Next()
	}
}

type consumeEnd[T any] struct {
	untilEnd[T]
}

func (s consumeEnd[T]) Reached(c Cursor[T]) (bool, error) {
	cc := cursorOf[*consumeCursor[T]](c)
	if cc.err != nil {
		return true, cc.err
	}
	if cc.gracefully {
		return true, nil
	}
	return s.check(cc.Base())
}
