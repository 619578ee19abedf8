package views

import "iter"

// Seq drives src from Begin to End. Each element is yielded with a nil error;
// if the sentinel reports an error it is yielded once with a zero value and
// iteration stops. Breaking out of the loop leaves src positioned at the last
// yielded element, so a forward-only source is not read further.
func Seq[T any](src Source[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		end := src.End()
		for c := src.Begin(); ; c.Next() {
			done, err := end.Reached(c)
			if err != nil {
				var zero T
				yield(zero, err)
				return
			}
			if done || !yield(c.Value(), nil) {
				return
			}
		}
	}
}

// Values is Seq without errors: iteration stops silently where Seq would
// yield an error.
func Values[T any](src Source[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v, err := range Seq(src) {
			if err != nil || !yield(v) {
				return
			}
		}
	}
}

// Collect copies the elements of src into a new slice. On error it returns
// the elements read so far together with the error.
func Collect[T any](src Source[T]) ([]T, error) {
	var out []T
	for v, err := range Seq(src) {
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
