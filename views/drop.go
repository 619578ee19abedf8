package views

// Drop returns a view of src without its first n elements. It dispatches like
// Take: text, contiguous and random access sources get a substring, slice or
// index range view, anything else a lazy DropView. When src is sized, n is
// clamped to its length.
func Drop[T any](src Source[T], n int) View[T] {
	n = max(n, 0)
	size, sized := lenOf(src)
	if sized {
		n = min(n, size)
	}

	caps := src.Caps()
	switch {
	case caps.Has(Text):
		if t, ok := src.(Texter); ok {
			if v, ok := any(NewStringView(t.String()[n:])).(View[T]); ok {
				return v
			}
		}
	case caps.Has(Contiguous | Sized):
		if f, ok := src.(Flat[T]); ok {
			return NewSliceView(f.Slice()[n:])
		}
	case caps.Has(RandomAccess | Sized):
		if ix, ok := src.(Indexer[T]); ok {
			return NewRangeView(ix, n, size)
		}
	}
	return &DropView[T]{src: src, skip: n}
}

// DropView skips the first elements of its source when a cursor is requested.
// Over a forward-only source the skip happens once: later Begin calls resume
// wherever the shared cursor is.
type DropView[T any] struct {
	src     Source[T]
	skip    int
	skipped bool
}

func (v *DropView[T]) Begin() Cursor[T] {
	c := v.src.Begin()
	if v.skipped {
		return c
	}
	if !v.src.Caps().Has(MultiPass) {
		v.skipped = true
	}
	end := v.src.End()
	for range v.skip {
		// A failing sentinel is left for the caller's own comparison to report.
		if done, err := end.Reached(c); done || err != nil {
			break
		}
		c.Next()
	}
	return c
}

func (v *DropView[T]) End() Sentinel[T] { return v.src.End() }

// Caps keeps the traversal capabilities of the source except random access,
// which needs an Indexer the view does not provide.
func (v *DropView[T]) Caps() Caps { return v.src.Caps() &^ (RandomAccess | Contiguous | Text) }

func (v *DropView[T]) Kind() Kind { return KindDrop }

// Len returns the number of remaining elements of a sized source, or -1.
func (v *DropView[T]) Len() int {
	size, ok := lenOf(v.src)
	if !ok {
		return -1
	}
	return max(size-v.skip, 0)
}
