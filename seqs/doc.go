/*
Package seqs adapts the views package to plain iter.Seq pipelines.

[Take], [TakeUntil], [TakeWhile] and [Drop] accept an iter.Seq, treat it as a
forward-only source and return an iter.Seq2 pairing each element with an
error. The error is non-nil at most once, as the last pair, when a strict
view finds its input too short:

	for line, err := range seqs.Take(lines, 10, views.OrThrow) {
		if err != nil {
			return err
		}
		fmt.Println(line)
	}

Each range over the result pulls a fresh iterator from the input and
releases it when the loop ends, so the input is read at most as far as the
view needs. The generators ([Range], [Repeat], [RandomInts]) and sinks
([First], [Count], [Collect]) round out small pipelines and tests.
*/
package seqs
