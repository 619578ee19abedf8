package lists

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"seqview/views"
)

var ErrInvalidOperation = errors.New("lists: invalid operation on cursor")

// LinkedListCursor is a bidirectional position in a LinkedList. Beyond the
// views.BidiCursor protocol it can edit the list in place.
type LinkedListCursor[T any] struct {
	current *node[T]
	list    *LinkedList[T]
}

var (
	_ views.BidiCursor[int] = (*LinkedListCursor[int])(nil)
	_ views.Cloner[int]     = (*LinkedListCursor[int])(nil)
)

// IsValid reports whether the cursor is on an element that is still linked.
func (llc *LinkedListCursor[T]) IsValid() bool {
	return llc.current != nil && llc.current.next != nil && llc.list != nil &&
		llc.current != llc.list.headSentinel && llc.current != llc.list.tailSentinel
}

// Value returns the zero value of T when the cursor is not valid.
func (llc *LinkedListCursor[T]) Value() (val T) {
	if !llc.IsValid() {
		return val
	}
	return llc.current.val
}

// Next stops at the tail sentinel so that Prev can come back.
func (llc *LinkedListCursor[T]) Next() {
	if llc.current == nil || llc.current == llc.list.tailSentinel || llc.current.next == nil {
		return
	}
	llc.current = llc.current.next
}

// Prev stops at the head sentinel.
func (llc *LinkedListCursor[T]) Prev() {
	if llc.current == nil || llc.current == llc.list.headSentinel || llc.current.prev == nil {
		return
	}
	llc.current = llc.current.prev
}

// Set replaces the value at the cursor.
func (llc *LinkedListCursor[T]) Set(value T) error {
	if !llc.IsValid() {
		return ErrInvalidOperation
	}
	llc.current.val = value
	return nil
}

// Remove deletes the element at the cursor and moves to its successor.
func (llc *LinkedListCursor[T]) Remove() (val T, err error) {
	if !llc.IsValid() {
		return val, ErrInvalidOperation
	}
	next := llc.current.next
	val = llc.list.removeNode(llc.current)
	llc.current = next
	return val, nil
}

// InsertBefore inserts value before the cursor. At the tail sentinel this
// appends.
func (llc *LinkedListCursor[T]) InsertBefore(value T) error {
	if !llc.IsValid() && (llc.list == nil || llc.current != llc.list.tailSentinel) {
		return ErrInvalidOperation
	}
	llc.list.insertNodeAt(llc.current.prev, &node[T]{val: value})
	return nil
}

func (llc *LinkedListCursor[T]) Clone() views.Cursor[T] {
	return &LinkedListCursor[T]{current: llc.current, list: llc.list}
}

func (llc *LinkedListCursor[T]) String() string {
	if llc.IsValid() {
		return fmt.Sprintf("Cursor[%v]", llc.current.val)
	}
	return "Cursor[invalid]"
}
