package views

import "strings"

// Flags configure a view. They are fixed when the view is built.
type Flags uint8

const (
	// Exact makes a bounded view report the requested count as its length.
	Exact Flags = 1 << iota
	// OrThrow turns running out of input into an error.
	OrThrow
	// Consume makes TakeUntil step a forward-only source past the element
	// that stopped it.
	Consume
	// Repeatable declares that a TakeUntil predicate has no side effects and
	// may be called more than once per element.
	Repeatable
)

// Lenient is the zero configuration: shortage and exhaustion end the view
// silently.
const Lenient Flags = 0

var flagNames = []string{"exact", "or-throw", "consume", "repeatable"}

// Has reports whether every flag in want is set.
func (f Flags) Has(want Flags) bool {
	return f&want == want
}

func (f Flags) String() string {
	if f == Lenient {
		return "lenient"
	}
	var names []string
	for i, name := range flagNames {
		if f&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}
