package views

import "github.com/cockroachdb/errors"

// Take returns a view of at most n leading elements of src.
//
// The representation is chosen once, from the capabilities of src:
//
//	Text                    *StringView (substring)
//	Contiguous and Sized    *SliceView  (src.Slice()[:n])
//	RandomAccess and Sized  *RangeView  ([0, n))
//	otherwise               *TakeView
//
// When src is sized, n is clamped to its length, unless flags has OrThrow, in
// which case a source shorter than n is rejected with ErrRangeTooShort before
// any view is built. A negative n is treated as zero.
func Take[T any](src Source[T], n int, flags Flags) (View[T], error) {
	n = max(n, 0)
	caps := src.Caps()
	if size, ok := lenOf(src); ok {
		if flags.Has(OrThrow) && n > size {
			return nil, errors.Wrapf(ErrRangeTooShort, "take %d from a source of %d", n, size)
		}
		n = min(n, size)
	}

	switch {
	case caps.Has(Text):
		if t, ok := src.(Texter); ok {
			if v, ok := any(NewStringView(t.String()[:n])).(View[T]); ok {
				return v, nil
			}
		}
	case caps.Has(Contiguous | Sized):
		if f, ok := src.(Flat[T]); ok {
			return NewSliceView(f.Slice()[:n]), nil
		}
	case caps.Has(RandomAccess | Sized):
		if ix, ok := src.(Indexer[T]); ok {
			return NewRangeView(ix, 0, n), nil
		}
	}
	return NewTakeView(src, n, flags)
}

// TakeExactly is Take with Exact.
func TakeExactly[T any](src Source[T], n int) (View[T], error) {
	return Take(src, n, Exact)
}

// TakeOrThrow is Take with OrThrow.
func TakeOrThrow[T any](src Source[T], n int) (View[T], error) {
	return Take(src, n, OrThrow)
}

// TakeExactlyOrThrow is Take with Exact and OrThrow.
func TakeExactlyOrThrow[T any](src Source[T], n int) (View[T], error) {
	return Take(src, n, Exact|OrThrow)
}

// TakeView is the generic bounded view. Take returns it when no cheaper
// representation fits the source.
type TakeView[T any] struct {
	src    Source[T]
	target int
	flags  Flags
}

// NewTakeView builds the generic bounded view without representation
// dispatch or clamping. The only eager check is for Exact|OrThrow over a sized
// source shorter than n, which fails with ErrRangeTooShort. Consume and
// Repeatable are ignored.
func NewTakeView[T any](src Source[T], n int, flags Flags) (*TakeView[T], error) {
	n = max(n, 0)
	if flags.Has(Exact | OrThrow) {
		if size, ok := lenOf(src); ok && size < n {
			return nil, errors.Wrapf(ErrRangeTooShort, "take exactly %d from a source of %d", n, size)
		}
	}
	return &TakeView[T]{src: src, target: n, flags: flags}, nil
}

// shrinks reports whether cursors must count down the view's own target.
func (v *TakeView[T]) shrinks() bool {
	return v.flags.Has(Exact) && !v.src.Caps().Has(MultiPass)
}

func (v *TakeView[T]) Begin() Cursor[T] {
	c := &takeCursor[T]{max: v.target}
	if v.shrinks() {
		c.host = v
	}
	c.Delegate = NewDelegate(v.src.Begin(), c)
	return c
}

// End wraps the source's own sentinel; the count check happens there too.
func (v *TakeView[T]) End() Sentinel[T] {
	return takeEnd[T]{base: v.src.End(), orThrow: v.flags.Has(OrThrow)}
}

// Caps drops RandomAccess: cursors still seek when the source's do, but the
// view itself has no Indexer.
func (v *TakeView[T]) Caps() Caps {
	caps := v.src.Caps() &^ (RandomAccess | Contiguous | Text)
	if v.flags.Has(Exact) {
		caps |= Sized
	}
	return caps
}

func (v *TakeView[T]) Kind() Kind { return KindTake }

func (v *TakeView[T]) Flags() Flags { return v.flags }

// Len returns the number of elements the view exposes, or -1 when it is not
// known.
//
// With Exact it is the target count. Over a forward-only source that count is
// what remains: it goes down by one each time a cursor of this view advances.
// Without Exact over a sized source it is min(n, src.Len()), computed on each
// call.
func (v *TakeView[T]) Len() int {
	if v.flags.Has(Exact) {
		return v.target
	}
	if size, ok := lenOf(v.src); ok {
		return min(v.target, size)
	}
	return -1
}

type takeCursor[T any] struct {
	Delegate[T]
	pos  int
	max  int
	host *TakeView[T]
}

func (c *takeCursor[T]) Moved(delta int) {
	c.pos += delta
	if c.host != nil && delta > 0 {
		c.host.target = max(c.host.target-delta, 0)
	}
}

func (c *takeCursor[T]) Clone() Cursor[T] {
	cp := &takeCursor[T]{pos: c.pos, max: c.max, host: c.host}
	cp.Delegate = NewDelegate(c.CloneBase(), cp)
	return cp
}

type takeEnd[T any] struct {
	base    Sentinel[T]
	orThrow bool
}

func (s takeEnd[T]) Reached(c Cursor[T]) (bool, error) {
	tc := cursorOf[*takeCursor[T]](c)
	if tc.pos >= tc.max {
		return true, nil
	}
	done, err := s.base.Reached(tc.Base())
	if err != nil {
		return true, err
	}
	if done && s.orThrow {
		return true, errors.Wrapf(ErrUnexpectedEndOfInput,
			"source ended after %d of %d elements", tc.pos, tc.max)
	}
	return done, nil
}
