package sources

import (
	"bufio"
	"io"
	"iter"

	"github.com/cockroachdb/errors"

	"seqview/views"
)

// Stream is a forward-only source. All cursors handed out by Begin share one
// read position, and an element is only pulled from the underlying producer
// when a cursor reads it or compares it against the sentinel.
type Stream[T any] struct {
	pull   func() (T, bool, error)
	stop   func()
	cur    T
	ok     bool
	primed bool
	err    error
}

var _ views.Source[int] = (*Stream[int])(nil)

// NewStream builds a stream from a pull function returning the next element,
// false once the producer is exhausted, or an error. stop, if not nil, is
// called by Close.
func NewStream[T any](pull func() (T, bool, error), stop func()) *Stream[T] {
	return &Stream[T]{pull: pull, stop: stop}
}

// FromSeq returns a stream pulling from seq. Close it to release seq when the
// stream is abandoned before the end.
func FromSeq[T any](seq iter.Seq[T]) *Stream[T] {
	next, stop := iter.Pull(seq)
	return NewStream(func() (T, bool, error) {
		v, ok := next()
		return v, ok, nil
	}, stop)
}

// FromChan returns a stream receiving from ch until it is closed.
func FromChan[T any](ch <-chan T) *Stream[T] {
	return NewStream(func() (T, bool, error) {
		v, ok := <-ch
		return v, ok, nil
	}, nil)
}

// Lines returns a stream of the lines of r, without line terminators.
func Lines(r io.Reader) *Stream[string] {
	sc := bufio.NewScanner(r)
	return NewStream(func() (string, bool, error) {
		if sc.Scan() {
			return sc.Text(), true, nil
		}
		if err := sc.Err(); err != nil {
			return "", false, errors.Wrap(err, "sources: read line")
		}
		return "", false, nil
	}, nil)
}

// Bytes returns a stream of the bytes of r.
func Bytes(r io.Reader) *Stream[byte] {
	br := bufio.NewReader(r)
	return NewStream(func() (byte, bool, error) {
		b, err := br.ReadByte()
		switch {
		case err == nil:
			return b, true, nil
		case errors.Is(err, io.EOF):
			return 0, false, nil
		default:
			return 0, false, errors.Wrap(err, "sources: read byte")
		}
	}, nil)
}

func (s *Stream[T]) fill() {
	if s.primed {
		return
	}
	s.primed = true
	if s.err != nil {
		s.ok = false
		return
	}
	s.cur, s.ok, s.err = s.pull()
	if s.err != nil {
		s.ok = false
	}
}

func (s *Stream[T]) Begin() views.Cursor[T] { return streamCursor[T]{s} }

func (s *Stream[T]) End() views.Sentinel[T] { return streamEnd[T]{s} }

func (s *Stream[T]) Caps() views.Caps { return 0 }

// Err returns the first error the producer reported.
func (s *Stream[T]) Err() error { return s.err }

// Close releases the producer. It is safe to call more than once.
func (s *Stream[T]) Close() error {
	if s.stop != nil {
		s.stop()
		s.stop = nil
	}
	return nil
}

type streamCursor[T any] struct {
	s *Stream[T]
}

func (c streamCursor[T]) Value() T {
	c.s.fill()
	return c.s.cur
}

func (c streamCursor[T]) Next() {
	c.s.fill()
	c.s.primed = false
}

// streamEnd needs no cursor state: every cursor of a stream sits at the same
// shared position.
type streamEnd[T any] struct {
	s *Stream[T]
}

func (e streamEnd[T]) Reached(views.Cursor[T]) (bool, error) {
	e.s.fill()
	if e.s.err != nil {
		return true, e.s.err
	}
	return !e.s.ok, nil
}
