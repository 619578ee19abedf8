/*
Package views provides lazy, non-copying views over ordered sources.

A [Source] is traversed with a [Cursor] obtained from Begin and a [Sentinel]
obtained from End. The sentinel is the only place where termination is decided:

	end := src.End()
	for c := src.Begin(); ; c.Next() {
		done, err := end.Reached(c)
		if err != nil || done {
			break
		}
		use(c.Value())
	}

[Seq] and [Collect] wrap that loop for the common case.

Two adaptors narrow a source without materializing it:

  - [Take] exposes at most n leading elements. It inspects the source's [Caps]
    once and returns the cheapest correct [View]: a [StringView] for text, a
    [SliceView] for contiguous storage, a [RangeView] for random access storage,
    or a generic [TakeView] otherwise.
  - [TakeUntil] exposes elements up to, but excluding, the first one matching a
    stop predicate.

[Drop] and [SinglePass] complete the family.

# Flags

Behaviour is selected with [Flags] fixed at construction:

  - [Exact]: Len reports the requested count instead of min(n, len(src)).
  - [OrThrow]: running out of input is an error ([ErrRangeTooShort] when the
    source size is known up front, [ErrUnexpectedEndOfInput] otherwise).
  - [Consume]: on forward-only sources TakeUntil also steps the source past the
    element that stopped it, so later readers resume after it.
  - [Repeatable]: the TakeUntil predicate has no side effects, so the view keeps
    the traversal capabilities of its source.

# Forward-only sources

A source without [MultiPass] shares one cursor state between every Begin call.
Traversing it through a view consumes it. For an [Exact] TakeView over such a
source, Len reports the remaining count and shrinks as the cursor advances,
while over a sized multi-pass source Len is min(n, len(src)) recomputed on each
call. Cursors of a shrinking view refer back to it and must not outlive it.

Views are not safe for concurrent use, and two views must not traverse the same
forward-only source at the same time.
*/
package views
