package lists

import (
	"fmt"
	"iter"
	"strings"

	"github.com/cockroachdb/errors"

	"seqview/views"
)

var ErrIndexOutOfBounds = errors.New("lists: index out of bounds")

type node[T any] struct {
	prev *node[T]
	next *node[T]
	val  T
}

// LinkedList is a doubly linked list with head and tail sentinels. It is a
// sized, multi-pass, bidirectional views.Source without random access, so
// views.Take wraps it in a *views.TakeView.
type LinkedList[T any] struct {
	headSentinel *node[T]
	tailSentinel *node[T]
	size         int
}

func NewLinkedList[T any](values ...T) *LinkedList[T] {
	ll := &LinkedList[T]{
		headSentinel: &node[T]{},
		tailSentinel: &node[T]{},
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.Add(values...)
	return ll
}

// insertNodeAt insert newNode after indexNode
func (ll *LinkedList[T]) insertNodeAt(indexNode *node[T], newNode *node[T]) {
	newNode.prev = indexNode
	newNode.next = indexNode.next
	indexNode.next.prev = newNode
	indexNode.next = newNode
	ll.size++
}

// findNodeAt returns the node at index, 0 <= index <= ll.size.
func (ll *LinkedList[T]) findNodeAt(index int) *node[T] {
	if index == ll.size {
		return ll.tailSentinel
	}
	// start from whichever end is closer
	if index < ll.size/2 {
		current := ll.headSentinel.next
		for range index {
			current = current.next
		}
		return current
	}
	current := ll.tailSentinel.prev
	for i := ll.size - 1; i > index; i-- {
		current = current.prev
	}
	return current
}

// removeNode unlinks targetNode and returns its value. The node's pointers
// are cleared, which makes cursors still holding it invalid.
func (ll *LinkedList[T]) removeNode(targetNode *node[T]) T {
	targetNode.prev.next = targetNode.next
	targetNode.next.prev = targetNode.prev
	res := targetNode.val
	targetNode.prev = nil
	targetNode.next = nil
	var zero T
	targetNode.val = zero
	ll.size--
	return res
}

// Add appends values to the end of the list.
func (ll *LinkedList[T]) Add(values ...T) {
	for _, value := range values {
		ll.insertNodeAt(ll.tailSentinel.prev, &node[T]{val: value})
	}
}

// AddFirst prepends a value to the list.
func (ll *LinkedList[T]) AddFirst(value T) {
	ll.insertNodeAt(ll.headSentinel, &node[T]{val: value})
}

// Get retrieves the element at the specified index.
func (ll *LinkedList[T]) Get(index int) (val T, err error) {
	if index < 0 || index >= ll.size {
		return val, errors.Wrapf(ErrIndexOutOfBounds, "get %d of %d", index, ll.size)
	}
	return ll.findNodeAt(index).val, nil
}

// Remove removes the element at the specified index.
func (ll *LinkedList[T]) Remove(index int) (T, error) {
	var zero T
	if index < 0 || index >= ll.size {
		return zero, errors.Wrapf(ErrIndexOutOfBounds, "remove %d of %d", index, ll.size)
	}
	return ll.removeNode(ll.findNodeAt(index)), nil
}

// RemoveFirst removes and returns the first element.
func (ll *LinkedList[T]) RemoveFirst() (T, error) {
	return ll.Remove(0)
}

func (ll *LinkedList[T]) Len() int {
	return ll.size
}

func (ll *LinkedList[T]) IsEmpty() bool {
	return ll.size == 0
}

func (ll *LinkedList[T]) Clear() {
	current := ll.headSentinel.next
	var zero T
	for current != ll.tailSentinel {
		next := current.next
		current.prev = nil
		current.next = nil
		current.val = zero
		current = next
	}
	ll.headSentinel.next = ll.tailSentinel
	ll.tailSentinel.prev = ll.headSentinel
	ll.size = 0
}

// Begin returns a cursor at the first element, or at the tail sentinel when
// the list is empty.
func (ll *LinkedList[T]) Begin() views.Cursor[T] {
	return &LinkedListCursor[T]{current: ll.headSentinel.next, list: ll}
}

func (ll *LinkedList[T]) End() views.Sentinel[T] {
	return listEnd[T]{list: ll}
}

func (ll *LinkedList[T]) Caps() views.Caps {
	return views.Sized | views.MultiPass | views.Bidirectional
}

func (ll *LinkedList[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
			if !yield(current.val) {
				return
			}
		}
	}
}

func (ll *LinkedList[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		index := ll.size - 1
		for current := ll.tailSentinel.prev; current != ll.headSentinel; current = current.prev {
			if !yield(index, current.val) {
				return
			}
			index--
		}
	}
}

func (ll *LinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	for current := ll.headSentinel.next; current != ll.tailSentinel; current = current.next {
		fmt.Fprintf(&sb, "%v", current.val)
		if current.next != ll.tailSentinel {
			sb.WriteString(", ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

type listEnd[T any] struct {
	list *LinkedList[T]
}

func (e listEnd[T]) Reached(c views.Cursor[T]) (bool, error) {
	lc, ok := c.(*LinkedListCursor[T])
	if !ok || lc.list != e.list {
		panic(errors.AssertionFailedf("lists: cursor %T does not belong to this list", c))
	}
	// a detached node has no successor, treat it as the end
	return lc.current == e.list.tailSentinel || lc.current.next == nil, nil
}
