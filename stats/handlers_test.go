package stats

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Zamizmi/fullstack-blogi/blogs"
)

type fakeBlogLister struct {
	list []blogs.Blog
	err  error
}

func (f *fakeBlogLister) List(_ context.Context) ([]blogs.Blog, error) {
	return f.list, f.err
}

func getSummary(t *testing.T, lister BlogLister) *httptest.ResponseRecorder {
	t.Helper()
	handler := NewHandlers(lister).HandleSummary()
	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))
	return rec
}

func TestHandleSummary(t *testing.T) {
	rec := getSummary(t, &fakeBlogLister{list: sampleBlogs()})
	require.Equal(t, http.StatusOK, rec.Code)

	var summary Summary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))

	assert.Equal(t, 51, summary.TotalLikes)
	assert.Equal(t, 15, summary.MaxLikes)
	require.NotNil(t, summary.Favorite)
	assert.Equal(t, "99 Bottles of OOP", summary.Favorite.Title)
	require.NotNil(t, summary.MostBlogs)
	assert.Equal(t, AuthorBlogCount{Author: "Robert C. Martin", Blogs: 3}, *summary.MostBlogs)
	require.NotNil(t, summary.MostLikes)
	assert.Equal(t, AuthorLikes{Author: "Edsger W. Dijkstra", Likes: 17}, *summary.MostLikes)
}

func TestHandleSummaryEmptyCollection(t *testing.T) {
	rec := getSummary(t, &fakeBlogLister{})
	require.Equal(t, http.StatusOK, rec.Code)

	// The per-author aggregates are null for an empty collection while the
	// numeric ones are plain zeros.
	var body map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0", string(body["totalLikes"]))
	assert.Equal(t, "0", string(body["maxLikes"]))
	assert.Equal(t, "null", string(body["favorite"]))
	assert.Equal(t, "null", string(body["mostBlogs"]))
	assert.Equal(t, "null", string(body["mostLikes"]))
}

func TestHandleSummaryListFailure(t *testing.T) {
	rec := getSummary(t, &fakeBlogLister{err: errors.New("connection lost")})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection lost", "internal detail must not leak")
}
