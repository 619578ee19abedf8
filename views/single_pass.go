package views

// SinglePass presents src as a forward-only source: every Begin returns a
// handle on one shared cursor, and traversing any handle consumes it for all.
func SinglePass[T any](src Source[T]) *SinglePassView[T] {
	return &SinglePassView[T]{src: src}
}

// SinglePassView is the view returned by SinglePass.
type SinglePassView[T any] struct {
	src    Source[T]
	shared Cursor[T]
}

func (v *SinglePassView[T]) Begin() Cursor[T] {
	if v.shared == nil {
		v.shared = v.src.Begin()
	}
	return singlePassCursor[T]{view: v}
}

func (v *SinglePassView[T]) End() Sentinel[T] {
	return singlePassEnd[T]{base: v.src.End()}
}

func (v *SinglePassView[T]) Caps() Caps { return 0 }

func (v *SinglePassView[T]) Kind() Kind { return KindSinglePass }

type singlePassCursor[T any] struct {
	view *SinglePassView[T]
}

func (c singlePassCursor[T]) Value() T { return c.view.shared.Value() }

func (c singlePassCursor[T]) Next() { c.view.shared.Next() }

type singlePassEnd[T any] struct {
	base Sentinel[T]
}

func (s singlePassEnd[T]) Reached(c Cursor[T]) (bool, error) {
	return s.base.Reached(cursorOf[singlePassCursor[T]](c).view.shared)
}
