package sources_test

import (
	"io"
	"slices"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/sources"
	"seqview/views"
)

func TestSlice(t *testing.T) {
	s := sources.Slice[int]{1, 2, 3}
	assert.True(t, s.Caps().Has(views.Contiguous|views.RandomAccess|views.Sized))
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, 2, s.At(1))

	got, err := views.Collect[int](s)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestText(t *testing.T) {
	s := sources.Text("hey")
	assert.True(t, s.Caps().Has(views.Text))
	got, err := views.Collect[byte](s)
	require.NoError(t, err)
	assert.Equal(t, []byte("hey"), got)
}

func TestStream_Lazy(t *testing.T) {
	pulled := 0
	s := sources.FromSeq(func(yield func(int) bool) {
		for i := 1; ; i++ {
			pulled++
			if !yield(i) {
				return
			}
		}
	})
	defer s.Close()

	c := s.Begin()
	assert.Zero(t, pulled, "nothing is read before the first access")
	assert.Equal(t, 1, c.Value())
	c.Next()
	c.Next()
	assert.Equal(t, 2, pulled, "Next only discards, the following read pulls")

	done, err := s.End().Reached(c)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, 3, c.Value())
	assert.Equal(t, 3, s.Begin().Value(), "cursors share one position")
}

func TestStream_Chan(t *testing.T) {
	ch := make(chan string, 3)
	ch <- "a"
	ch <- "b"
	ch <- "c"
	close(ch)

	got, err := views.Collect[string](sources.FromChan(ch))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestStream_Bytes(t *testing.T) {
	src := sources.Bytes(strings.NewReader("abcdef"))
	head, err := views.Take[byte](src, 2, views.Lenient)
	require.NoError(t, err)

	got, err := views.Collect(head)
	require.NoError(t, err)
	assert.Equal(t, []byte("ab"), got)

	rest, err := views.Collect[byte](src)
	require.NoError(t, err)
	assert.Equal(t, []byte("cdef"), rest)
}

func TestStream_ReadError(t *testing.T) {
	boom := errors.New("boom")
	r := io.MultiReader(strings.NewReader("one\ntwo\n"), iotest.ErrReader(boom))
	src := sources.Lines(r)

	got, err := views.Collect[string](src)
	require.ErrorIs(t, err, boom)
	assert.Equal(t, []string{"one", "two"}, got)
	require.ErrorIs(t, src.Err(), boom)
}

func TestStream_Close(t *testing.T) {
	stopped := false
	s := sources.NewStream(func() (int, bool, error) { return 0, false, nil }, func() { stopped = true })
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.True(t, stopped)

	// Closing an iter.Seq stream early releases it.
	seq := sources.FromSeq(slices.Values([]int{1, 2, 3}))
	assert.Equal(t, 1, seq.Begin().Value())
	require.NoError(t, seq.Close())
}
