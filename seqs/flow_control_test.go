package seqs_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/seqs"
	"seqview/views"
)

func TestTake(t *testing.T) {
	tests := []struct {
		name    string
		input   []int
		n       int
		flags   views.Flags
		want    []int
		wantErr error
	}{
		{"prefix", []int{1, 2, 3, 4}, 2, views.Lenient, []int{1, 2}, nil},
		{"zero", []int{1, 2}, 0, views.OrThrow, nil, nil},
		{"negative", []int{1, 2}, -3, views.Lenient, nil, nil},
		{"short lenient", []int{1, 2}, 5, views.Exact, []int{1, 2}, nil},
		{"short strict", []int{1, 2}, 5, views.OrThrow, []int{1, 2}, views.ErrUnexpectedEndOfInput},
		{"exact length strict", []int{1, 2}, 2, views.OrThrow, []int{1, 2}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := seqs.Collect(seqs.Take(slices.Values(tt.input), tt.n, tt.flags))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTake_Infinite(t *testing.T) {
	got, err := seqs.Collect(seqs.Take(seqs.Naturals(), 3, views.OrThrow))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, got)

	words, err := seqs.Collect(seqs.Take(seqs.Repeat("x", -1), 2, views.Lenient))
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "x"}, words)
}

func TestTake_ReadsOnlyWhatItNeeds(t *testing.T) {
	pulled := 0
	counted := func(yield func(int) bool) {
		for v := range seqs.Naturals() {
			pulled++
			if !yield(v) {
				return
			}
		}
	}

	n, err := seqs.Count(seqs.Take(counted, 3, views.Lenient))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 3, pulled)
}

func TestTakeUntil(t *testing.T) {
	got, err := seqs.Collect(seqs.TakeUntil(seqs.Range(0, 10, 1), func(x int) bool { return x*x > 10 }, views.Lenient))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, got)

	got, err = seqs.Collect(seqs.TakeUntil(seqs.Range(0, 3, 1), func(x int) bool { return x > 5 }, views.OrThrow))
	require.ErrorIs(t, err, views.ErrUnexpectedEndOfInput)
	assert.Equal(t, []int{0, 1, 2}, got)

	_, err = seqs.Collect(seqs.TakeUntil[int](seqs.Range(0, 3, 1), nil, views.Lenient))
	require.ErrorIs(t, err, views.ErrNilPredicate)
}

func TestTakeWhile(t *testing.T) {
	got, err := seqs.Collect(seqs.TakeWhile(seqs.Range(10, 0, -2), func(x int) bool { return x > 4 }))
	require.NoError(t, err)
	assert.Equal(t, []int{10, 8, 6}, got)

	_, err = seqs.Collect(seqs.TakeWhile[int](seqs.Range(0, 3, 1), nil))
	require.ErrorIs(t, err, views.ErrNilPredicate)
}

func TestDrop(t *testing.T) {
	got, err := seqs.Collect(seqs.Drop(seqs.Range(0, 5, 1), 3))
	require.NoError(t, err)
	assert.Equal(t, []int{3, 4}, got)

	n, err := seqs.Count(seqs.Drop(seqs.Range(0, 5, 1), 9))
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestFirst(t *testing.T) {
	v, ok, err := seqs.First(seqs.Drop(seqs.Naturals(), 7))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 7, v)

	_, ok, err = seqs.First(seqs.Take(seqs.Range(0, 0, 1), 1, views.Lenient))
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = seqs.First(seqs.Take(seqs.Range(0, 0, 1), 1, views.OrThrow))
	require.ErrorIs(t, err, views.ErrUnexpectedEndOfInput)
	assert.False(t, ok)
}

func TestBreakReleasesInput(t *testing.T) {
	stopped := false
	seq := func(yield func(int) bool) {
		defer func() { stopped = true }()
		for i := 0; ; i++ {
			if !yield(i) {
				return
			}
		}
	}
	for v, err := range seqs.Take(seq, 10, views.Lenient) {
		require.NoError(t, err)
		if v == 1 {
			break
		}
	}
	assert.True(t, stopped)
}
