package seqs

import (
	"iter"

	"seqview/sources"
	"seqview/views"
)

// Take yields at most n leading elements of seq. With views.OrThrow a seq
// that ends before n elements yields a wrapped views.ErrUnexpectedEndOfInput
// after the elements it had.
func Take[T any](seq iter.Seq[T], n int, flags views.Flags) iter.Seq2[T, error] {
	return over(seq, func(src views.Source[T]) (views.View[T], error) {
		return views.Take(src, n, flags)
	})
}

// TakeUntil yields the elements of seq before the first one for which stop
// returns true. views.Consume has no visible effect here because the input
// is released when the loop ends.
func TakeUntil[T any](seq iter.Seq[T], stop func(T) bool, flags views.Flags) iter.Seq2[T, error] {
	return over(seq, func(src views.Source[T]) (views.View[T], error) {
		return views.TakeUntil(src, stop, flags)
	})
}

// TakeWhile yields elements as long as keep returns true.
func TakeWhile[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq2[T, error] {
	if keep == nil {
		return TakeUntil[T](seq, nil, views.Lenient)
	}
	return TakeUntil(seq, func(v T) bool { return !keep(v) }, views.Lenient)
}

// Drop skips the first n elements of seq and yields the rest.
func Drop[T any](seq iter.Seq[T], n int) iter.Seq2[T, error] {
	return over(seq, func(src views.Source[T]) (views.View[T], error) {
		return views.Drop(src, n), nil
	})
}

func over[T any](seq iter.Seq[T], build func(views.Source[T]) (views.View[T], error)) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		src := sources.FromSeq(seq)
		defer src.Close()

		v, err := build(src)
		if err != nil {
			var zero T
			yield(zero, err)
			return
		}
		for x, err := range views.Seq(v) {
			if !yield(x, err) {
				return
			}
		}
	}
}
