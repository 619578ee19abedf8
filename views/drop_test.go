package views_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seqview/sources"
	"seqview/views"
)

func TestDrop(t *testing.T) {
	t.Run("string", func(t *testing.T) {
		v := views.Drop[byte](sources.Text("foobar"), 3)
		require.Equal(t, views.KindString, v.Kind())
		assert.Equal(t, "bar", v.(*views.StringView).String())
	})

	t.Run("contiguous", func(t *testing.T) {
		v := views.Drop[int](sources.Slice[int]{1, 2, 3, 4, 5, 6}, 3)
		require.Equal(t, views.KindSlice, v.Kind())
		assert.Equal(t, []int{4, 5, 6}, v.(*views.SliceView[int]).Slice())
	})

	t.Run("generic", func(t *testing.T) {
		v := views.Drop[int](newDeque(1, 2, 3, 4, 5, 6), 3)
		require.Equal(t, views.KindDrop, v.Kind())
		assert.Equal(t, []int{4, 5, 6}, collect(t, v))
		assert.Equal(t, []int{4, 5, 6}, collect(t, v), "multi pass sources skip on every Begin")
		assert.Equal(t, 3, v.(*views.DropView[int]).Len())
	})

	t.Run("underlying is shorter", func(t *testing.T) {
		assert.Empty(t, collect(t, views.Drop[int](sources.Slice[int]{1, 2}, 4)))
		assert.Empty(t, collect(t, views.Drop[int](newDeque(1, 2), 4)))

		src := views.SinglePass[byte](sources.Text("foobar"))
		assert.Equal(t, []byte("ar"), collect(t, views.Drop[byte](src, 4)))
	})

	t.Run("forward only skips once", func(t *testing.T) {
		src := views.SinglePass[int](sources.Slice[int]{1, 2, 3, 4, 5})
		v := views.Drop[int](src, 2)
		assert.Equal(t, -1, v.(*views.DropView[int]).Len())

		c := v.Begin()
		assert.Equal(t, 3, c.Value())
		c.Next()
		assert.Equal(t, []int{4, 5}, collect(t, v))
	})

	t.Run("composes with take", func(t *testing.T) {
		page, err := views.Take(views.Drop[int](newDeque(1, 2, 3, 4, 5, 6, 7), 2), 3, views.Exact|views.OrThrow)
		require.NoError(t, err)
		assert.Equal(t, []int{3, 4, 5}, collect(t, page))

		_, err = views.Take(views.Drop[int](newDeque(1, 2, 3), 2), 3, views.OrThrow)
		require.ErrorIs(t, err, views.ErrRangeTooShort)
	})
}

func TestSinglePass(t *testing.T) {
	src := views.SinglePass[int](sources.Slice[int]{1, 2, 3})
	assert.Equal(t, views.Caps(0), src.Caps())
	assert.Equal(t, views.KindSinglePass, src.Kind())

	a := src.Begin()
	b := src.Begin()
	assert.Equal(t, 1, b.Value())
	a.Next()
	assert.Equal(t, 2, b.Value(), "cursors share one position")

	assert.Equal(t, []int{2, 3}, collect[int](t, src))
	assert.Empty(t, collect[int](t, src))
}

func TestSeq(t *testing.T) {
	t.Run("break leaves forward only source in place", func(t *testing.T) {
		src := views.SinglePass[int](sources.Slice[int]{1, 2, 3, 4})
		for v, err := range views.Seq[int](src) {
			require.NoError(t, err)
			if v == 2 {
				break
			}
		}
		assert.Equal(t, []int{2, 3, 4}, collect[int](t, src))
	})

	t.Run("values stops at errors", func(t *testing.T) {
		v, err := views.TakeOrThrow[int](views.SinglePass[int](sources.Slice[int]{1, 2}), 3)
		require.NoError(t, err)
		var got []int
		for x := range views.Values(v) {
			got = append(got, x)
		}
		assert.Equal(t, []int{1, 2}, got)
	})
}

func TestCapsAndFlags_String(t *testing.T) {
	assert.Equal(t, "forward-only", views.Caps(0).String())
	assert.Equal(t, "sized|random-access", (views.Sized | views.RandomAccess).String())
	assert.Equal(t, "lenient", views.Lenient.String())
	assert.Equal(t, "exact|or-throw", (views.Exact | views.OrThrow).String())
	assert.Equal(t, "take", views.KindTake.String())
}
