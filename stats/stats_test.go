package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamizmi/fullstack-blogi/blogs"
)

func sampleBlogs() []blogs.Blog {
	return []blogs.Blog{
		{ID: 1, Title: "React patterns", Author: "Michael Chan", URL: "https://reactpatterns.com/", Likes: 7},
		{ID: 2, Title: "Go To Statement Considered Harmful", Author: "Edsger W. Dijkstra", URL: "http://www.u.arizona.edu/~rubinson/copyright_violations/Go_To_Considered_Harmful.html", Likes: 5},
		{ID: 3, Title: "Canonical string reduction", Author: "Edsger W. Dijkstra", URL: "http://www.cs.utexas.edu/~EWD/transcriptions/EWD08xx/EWD808.html", Likes: 12},
		{ID: 4, Title: "First class tests", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/05/05/TestDefinitions.html", Likes: 10},
		{ID: 5, Title: "TDD harms architecture", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2017/03/03/TDD-Harms-Architecture.html", Likes: 0},
		{ID: 6, Title: "99 Bottles of OOP", Author: "Sandi Metz", URL: "https://sandimetz.com/99bottles", Likes: 15},
		{ID: 7, Title: "Type wars", Author: "Robert C. Martin", URL: "http://blog.cleancoder.com/uncle-bob/2016/05/01/TypeWars.html", Likes: 2},
	}
}

func TestTotalLikes(t *testing.T) {
	t.Run("empty collection totals zero", func(t *testing.T) {
		assert.Equal(t, 0, TotalLikes([]blogs.Blog{}))
		assert.Equal(t, 0, TotalLikes(nil))
	})

	t.Run("single blog equals its likes", func(t *testing.T) {
		assert.Equal(t, 5, TotalLikes(sampleBlogs()[1:2]))
	})

	t.Run("sums the whole collection", func(t *testing.T) {
		assert.Equal(t, 51, TotalLikes(sampleBlogs()))
	})
}

func TestMaxLikes(t *testing.T) {
	t.Run("empty collection yields zero", func(t *testing.T) {
		assert.Equal(t, 0, MaxLikes(nil))
	})

	t.Run("finds the highest like count", func(t *testing.T) {
		assert.Equal(t, 15, MaxLikes(sampleBlogs()))
	})

	t.Run("zero-liked collection is indistinguishable from empty", func(t *testing.T) {
		list := []blogs.Blog{{Title: "a", URL: "u", Likes: 0}}
		assert.Equal(t, MaxLikes(nil), MaxLikes(list))
	})
}

func TestFavoriteBlog(t *testing.T) {
	t.Run("nil for empty collection", func(t *testing.T) {
		assert.Nil(t, FavoriteBlog(nil))
	})

	t.Run("returns the record with the most likes", func(t *testing.T) {
		favorite := FavoriteBlog(sampleBlogs())
		require.NotNil(t, favorite)
		assert.Equal(t, "99 Bottles of OOP", favorite.Title)
		assert.Equal(t, 15, favorite.Likes)
	})

	t.Run("ties resolve to the first occurrence", func(t *testing.T) {
		list := []blogs.Blog{
			{ID: 1, Title: "first", URL: "u1", Likes: 9},
			{ID: 2, Title: "second", URL: "u2", Likes: 9},
		}
		favorite := FavoriteBlog(list)
		require.NotNil(t, favorite)
		assert.Equal(t, "first", favorite.Title)
	})

	t.Run("does not alias the input slice", func(t *testing.T) {
		list := sampleBlogs()
		favorite := FavoriteBlog(list)
		require.NotNil(t, favorite)
		favorite.Likes = 999
		assert.Equal(t, 15, list[5].Likes)
	})
}

func TestMostBlogs(t *testing.T) {
	t.Run("nil for empty collection", func(t *testing.T) {
		assert.Nil(t, MostBlogs(nil))
	})

	t.Run("counts records per author", func(t *testing.T) {
		top := MostBlogs(sampleBlogs())
		require.NotNil(t, top)
		assert.Equal(t, "Robert C. Martin", top.Author)
		assert.Equal(t, 3, top.Blogs)
	})

	t.Run("ties resolve to the author encountered first", func(t *testing.T) {
		list := []blogs.Blog{
			{Title: "a", URL: "u", Author: "Alpha"},
			{Title: "b", URL: "u", Author: "Beta"},
			{Title: "c", URL: "u", Author: "Beta"},
			{Title: "d", URL: "u", Author: "Alpha"},
		}
		top := MostBlogs(list)
		require.NotNil(t, top)
		assert.Equal(t, "Alpha", top.Author)
		assert.Equal(t, 2, top.Blogs)
	})

	t.Run("authorless records group under the empty string", func(t *testing.T) {
		list := []blogs.Blog{
			{Title: "a", URL: "u"},
			{Title: "b", URL: "u"},
			{Title: "c", URL: "u", Author: "Someone"},
		}
		top := MostBlogs(list)
		require.NotNil(t, top)
		assert.Equal(t, "", top.Author)
		assert.Equal(t, 2, top.Blogs)
	})
}

func TestMostLikes(t *testing.T) {
	t.Run("nil for empty collection", func(t *testing.T) {
		assert.Nil(t, MostLikes(nil))
	})

	t.Run("sums likes per author", func(t *testing.T) {
		top := MostLikes(sampleBlogs())
		require.NotNil(t, top)
		assert.Equal(t, "Edsger W. Dijkstra", top.Author)
		assert.Equal(t, 17, top.Likes)
	})

	t.Run("ties resolve to the author encountered first", func(t *testing.T) {
		list := []blogs.Blog{
			{Title: "a", URL: "u", Author: "Alpha", Likes: 4},
			{Title: "b", URL: "u", Author: "Beta", Likes: 4},
		}
		top := MostLikes(list)
		require.NotNil(t, top)
		assert.Equal(t, "Alpha", top.Author)
	})
}

func TestAggregationsAreReferentiallyTransparent(t *testing.T) {
	list := sampleBlogs()

	first := TotalLikes(list)
	second := TotalLikes(list)
	assert.Equal(t, first, second)

	fav1 := FavoriteBlog(list)
	fav2 := FavoriteBlog(list)
	assert.Equal(t, fav1, fav2)

	assert.Equal(t, sampleBlogs(), list, "input must not be mutated")
}
