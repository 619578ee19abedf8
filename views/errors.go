package views

import "github.com/cockroachdb/errors"

var (
	// ErrRangeTooShort is returned when a strict bounded view is requested
	// from a sized source holding fewer elements than asked for.
	ErrRangeTooShort = errors.New("views: range too short")

	// ErrUnexpectedEndOfInput is returned by a strict view's sentinel when the
	// source runs out before the view's own end condition is met.
	ErrUnexpectedEndOfInput = errors.New("views: unexpected end of input")

	// ErrUnsupported is the panic value (wrapped) when a cursor is asked for a
	// traversal its source does not offer.
	ErrUnsupported = errors.New("views: unsupported cursor operation")

	// ErrNilPredicate is returned by TakeUntil when no predicate is given.
	ErrNilPredicate = errors.New("views: nil predicate")
)
