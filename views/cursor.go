package views

import "github.com/cockroachdb/errors"

// Cursor is a position in a Source.
type Cursor[T any] interface {
	// Value returns the element at the current position.
	// Calling it on a cursor that has reached its sentinel is undefined.
	Value() T
	// Next moves one element forward.
	Next()
}

// BidiCursor is a cursor of a Bidirectional source.
type BidiCursor[T any] interface {
	Cursor[T]
	// Prev moves one element back.
	Prev()
}

// RandomCursor is a cursor of a RandomAccess source.
type RandomCursor[T any] interface {
	BidiCursor[T]
	// Seek moves by offset elements, backwards when offset is negative.
	Seek(offset int)
	// At returns the element offset positions away without moving.
	At(offset int) T
	// Index returns the distance from the first position of the source.
	Index() int
}

// Cloner is implemented by cursors of MultiPass sources.
type Cloner[T any] interface {
	// Clone returns an independent cursor at the same position.
	Clone() Cursor[T]
}

// Sentinel marks the end of a Source.
type Sentinel[T any] interface {
	// Reached reports whether c has arrived at the end. c must come from the
	// source that produced the sentinel. A non-nil error means the source
	// ended in a way the view treats as a failure; the view is finished.
	Reached(c Cursor[T]) (bool, error)
}

// Source is an ordered collection traversed through cursors.
type Source[T any] interface {
	Begin() Cursor[T]
	End() Sentinel[T]
	Caps() Caps
}

// cursorOf recovers the concrete cursor type a sentinel was built for.
func cursorOf[C any, T any](c Cursor[T]) C {
	cc, ok := c.(C)
	if !ok {
		panic(errors.AssertionFailedf("views: cursor %T compared against a foreign sentinel", c))
	}
	return cc
}

// IndexCursor walks an Indexer between two bounds. It is the cursor behind
// SliceView, RangeView and StringView, and may be reused by RandomAccess
// sources.
type IndexCursor[T any] struct {
	src    Indexer[T]
	i      int
	lo, hi int
}

// NewIndexCursor returns a cursor at lo over the half-open range [lo, hi) of src.
func NewIndexCursor[T any](src Indexer[T], lo, hi int) *IndexCursor[T] {
	return &IndexCursor[T]{src: src, i: lo, lo: lo, hi: hi}
}

func (c *IndexCursor[T]) Value() T { return c.src.At(c.i) }

func (c *IndexCursor[T]) Next() { c.i++ }

func (c *IndexCursor[T]) Prev() { c.i-- }

func (c *IndexCursor[T]) Seek(offset int) { c.i += offset }

func (c *IndexCursor[T]) At(offset int) T { return c.src.At(c.i + offset) }

func (c *IndexCursor[T]) Index() int { return c.i - c.lo }

func (c *IndexCursor[T]) Clone() Cursor[T] {
	cp := *c
	return &cp
}

// IndexEnd returns the sentinel matching cursors built by NewIndexCursor.
func IndexEnd[T any]() Sentinel[T] {
	return indexEnd[T]{}
}

type indexEnd[T any] struct{}

func (indexEnd[T]) Reached(c Cursor[T]) (bool, error) {
	ic := cursorOf[*IndexCursor[T]](c)
	return ic.i >= ic.hi, nil
}
