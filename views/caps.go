package views

import "strings"

// Caps is the set of traversal capabilities a Source offers beyond a single
// forward pass.
type Caps uint8

const (
	// Sized sources know their length up front and implement Sizer.
	Sized Caps = 1 << iota
	// MultiPass sources hand out independent cursors from every Begin call,
	// and those cursors implement Cloner.
	MultiPass
	// Bidirectional sources hand out cursors implementing BidiCursor.
	Bidirectional
	// RandomAccess sources implement Indexer and hand out cursors implementing
	// RandomCursor.
	RandomAccess
	// Contiguous sources are backed by one flat slice and implement Flat.
	Contiguous
	// Text sources are backed by a string and implement Texter.
	Text
)

var capNames = []string{"sized", "multi-pass", "bidirectional", "random-access", "contiguous", "text"}

// Has reports whether every capability in want is present.
func (c Caps) Has(want Caps) bool {
	return c&want == want
}

func (c Caps) String() string {
	if c == 0 {
		return "forward-only"
	}
	var names []string
	for i, name := range capNames {
		if c&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

// Sizer is implemented by Sized sources.
type Sizer interface {
	Len() int
}

// Indexer is implemented by RandomAccess sources.
type Indexer[T any] interface {
	At(i int) T
	Len() int
}

// Flat is implemented by Contiguous sources. The returned slice aliases the
// source's storage.
type Flat[T any] interface {
	Slice() []T
}

// Texter is implemented by Text sources.
type Texter interface {
	String() string
}

// lenOf returns the length of src when it is sized.
func lenOf[T any](src Source[T]) (int, bool) {
	if !src.Caps().Has(Sized) {
		return 0, false
	}
	s, ok := src.(Sizer)
	if !ok {
		return 0, false
	}
	return s.Len(), true
}
