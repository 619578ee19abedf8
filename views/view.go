package views

// Kind names the concrete representation behind a View.
type Kind uint8

const (
	KindSlice Kind = iota
	KindRange
	KindString
	KindTake
	KindUntil
	KindDrop
	KindSinglePass
)

func (k Kind) String() string {
	switch k {
	case KindSlice:
		return "slice"
	case KindRange:
		return "range"
	case KindString:
		return "string"
	case KindTake:
		return "take"
	case KindUntil:
		return "until"
	case KindDrop:
		return "drop"
	case KindSinglePass:
		return "single-pass"
	default:
		return "unknown"
	}
}

// View is a Source that narrows exactly one other Source without copying it.
// Switch on Kind, or type-assert to the concrete view, to reach
// representation specific accessors.
type View[T any] interface {
	Source[T]
	Kind() Kind
}

var (
	_ View[int]  = (*SliceView[int])(nil)
	_ View[int]  = (*RangeView[int])(nil)
	_ View[byte] = (*StringView)(nil)
	_ View[int]  = (*TakeView[int])(nil)
	_ View[int]  = (*UntilView[int])(nil)
	_ View[int]  = (*DropView[int])(nil)
	_ View[int]  = (*SinglePassView[int])(nil)
)

// SliceView is a window onto contiguous storage.
type SliceView[T any] struct {
	s []T
}

// NewSliceView returns a view of s. The view aliases s.
func NewSliceView[T any](s []T) *SliceView[T] {
	return &SliceView[T]{s: s}
}

func (v *SliceView[T]) Begin() Cursor[T] { return NewIndexCursor[T](v, 0, len(v.s)) }

func (v *SliceView[T]) End() Sentinel[T] { return IndexEnd[T]() }

func (v *SliceView[T]) Caps() Caps {
	return Sized | MultiPass | Bidirectional | RandomAccess | Contiguous
}

func (v *SliceView[T]) Kind() Kind { return KindSlice }

func (v *SliceView[T]) Len() int { return len(v.s) }

func (v *SliceView[T]) At(i int) T { return v.s[i] }

// Slice returns the viewed elements without copying them.
func (v *SliceView[T]) Slice() []T { return v.s }

// RangeView is the index range [lo, hi) of a random access source.
type RangeView[T any] struct {
	src    Indexer[T]
	lo, hi int
}

// NewRangeView returns the view of src between lo and hi. The bounds are not
// checked against src.
func NewRangeView[T any](src Indexer[T], lo, hi int) *RangeView[T] {
	return &RangeView[T]{src: src, lo: lo, hi: hi}
}

func (v *RangeView[T]) Begin() Cursor[T] { return NewIndexCursor(v.src, v.lo, v.hi) }

func (v *RangeView[T]) End() Sentinel[T] { return IndexEnd[T]() }

func (v *RangeView[T]) Caps() Caps { return Sized | MultiPass | Bidirectional | RandomAccess }

func (v *RangeView[T]) Kind() Kind { return KindRange }

func (v *RangeView[T]) Len() int { return v.hi - v.lo }

func (v *RangeView[T]) At(i int) T { return v.src.At(v.lo + i) }

// Bounds returns the viewed index range of the underlying source.
func (v *RangeView[T]) Bounds() (lo, hi int) { return v.lo, v.hi }

// StringView is a substring of a text source. It yields bytes.
type StringView struct {
	s string
}

// NewStringView returns a view of s.
func NewStringView(s string) *StringView {
	return &StringView{s: s}
}

func (v *StringView) Begin() Cursor[byte] { return NewIndexCursor[byte](v, 0, len(v.s)) }

func (v *StringView) End() Sentinel[byte] { return IndexEnd[byte]() }

func (v *StringView) Caps() Caps { return Sized | MultiPass | Bidirectional | RandomAccess | Text }

func (v *StringView) Kind() Kind { return KindString }

func (v *StringView) Len() int { return len(v.s) }

func (v *StringView) At(i int) byte { return v.s[i] }

func (v *StringView) String() string { return v.s }
