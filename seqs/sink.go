package seqs

import "iter"

// First returns the first element of seq. ok is false when seq is empty or
// fails before its first element.
func First[T any](seq iter.Seq2[T, error]) (v T, ok bool, err error) {
	for x, err := range seq {
		if err != nil {
			return v, false, err
		}
		return x, true, nil
	}
	return v, false, nil
}

// Count counts the elements of seq up to the first error.
func Count[T any](seq iter.Seq2[T, error]) (int, error) {
	n := 0
	for _, err := range seq {
		if err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}

// Collect gathers the elements of seq. On error it returns what was gathered
// so far along with the error.
func Collect[T any](seq iter.Seq2[T, error]) ([]T, error) {
	var out []T
	for x, err := range seq {
		if err != nil {
			return out, err
		}
		out = append(out, x)
	}
	return out, nil
}
