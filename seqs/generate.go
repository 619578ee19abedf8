package seqs

import (
	"iter"
	"math/rand/v2"
)

// RandomInts yields size random integers.
func RandomInts(size int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for range size {
			if !yield(rand.Int()) {
				return
			}
		}
	}
}

// Range yields start, start+step, ... up to but excluding end. A zero step
// yields nothing.
func Range(start, end, step int) iter.Seq[int] {
	return func(yield func(int) bool) {
		if step == 0 {
			return
		}
		for i := start; step > 0 && i < end || step < 0 && i > end; i += step {
			if !yield(i) {
				return
			}
		}
	}
}

// Naturals yields 0, 1, 2, ... without end.
func Naturals() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
}

// Repeat yields value count times, or forever when count is negative.
func Repeat[T any](value T, count int) iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; count < 0 || i < count; i++ {
			if !yield(value) {
				return
			}
		}
	}
}
