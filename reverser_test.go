package queen_test

import (
	"testing"

	"github.com/advdv/queen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReverser(t *testing.T) {
	rev := queen.NewReverser()

	t.Run("should allow naming paths", func(t *testing.T) {
		s := rev.Named("homepage", "/")
		assert.Equal(t, "/", s)

		s, err := rev.NamedPath("blog_post", "/Blog/:id/comments/:cid")
		require.NoError(t, err)
		assert.Equal(t, "/Blog/:id/comments/:cid", s)
	})

	t.Run("should reverse named paths", func(t *testing.T) {
		res, err := rev.Reverse("homepage")
		require.NoError(t, err)
		assert.Equal(t, "/", res)

		res, err = rev.Reverse("blog_post", "12", "a b")
		require.NoError(t, err)
		assert.Equal(t, "/blog/12/comments/a%20b/", res)
	})

	t.Run("should error if name already exists", func(t *testing.T) {
		_, err := rev.NamedPath("homepage", "/")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")
	})

	t.Run("should panic for Named error", func(t *testing.T) {
		assert.PanicsWithValue(t, "queen: empty path: invalid path pattern", func() {
			rev.Named("bogus", "")
		})
	})

	t.Run("should error if reversing unknown name", func(t *testing.T) {
		_, err := rev.Reverse("bogus")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `no route named: "bogus", got: [blog_post homepage]`)
	})

	t.Run("should error on wrong number of values", func(t *testing.T) {
		_, err := rev.Reverse("blog_post", "12")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not enough values")

		_, err = rev.Reverse("homepage", "12")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "too many values")
	})
}
