// Package sources provides ready-made views.Source implementations: in-memory
// slices and strings, and forward-only streams over iter.Seq, io.Reader and
// channels.
package sources

import "seqview/views"

// Slice is a contiguous, random access source over a Go slice.
type Slice[T any] []T

var _ views.Source[int] = Slice[int](nil)

func (s Slice[T]) Begin() views.Cursor[T] { return views.NewIndexCursor[T](s, 0, len(s)) }

func (s Slice[T]) End() views.Sentinel[T] { return views.IndexEnd[T]() }

func (s Slice[T]) Caps() views.Caps {
	return views.Sized | views.MultiPass | views.Bidirectional | views.RandomAccess | views.Contiguous
}

func (s Slice[T]) Len() int { return len(s) }

func (s Slice[T]) At(i int) T { return s[i] }

func (s Slice[T]) Slice() []T { return s }

// Text is a contiguous text buffer yielding its bytes.
type Text string

var _ views.Source[byte] = Text("")

func (t Text) Begin() views.Cursor[byte] { return views.NewIndexCursor[byte](t, 0, len(t)) }

func (t Text) End() views.Sentinel[byte] { return views.IndexEnd[byte]() }

func (t Text) Caps() views.Caps {
	return views.Sized | views.MultiPass | views.Bidirectional | views.RandomAccess | views.Text
}

func (t Text) Len() int { return len(t) }

func (t Text) At(i int) byte { return t[i] }

func (t Text) String() string { return string(t) }
