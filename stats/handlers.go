package stats

import (
	"context"
	"net/http"

	"github.com/Zamizmi/fullstack-blogi/auth"
	"github.com/Zamizmi/fullstack-blogi/blogs"
)

// BlogLister materializes the collection the summary is computed over.
// The blog service satisfies it.
type BlogLister interface {
	List(ctx context.Context) ([]blogs.Blog, error)
}

// Summary bundles every aggregate over the current blog collection.
// Favorite, MostBlogs and MostLikes are null for an empty collection; the
// numeric aggregates are 0 there.
type Summary struct {
	TotalLikes int              `json:"totalLikes"`
	MaxLikes   int              `json:"maxLikes"`
	Favorite   *blogs.Blog      `json:"favorite"`
	MostBlogs  *AuthorBlogCount `json:"mostBlogs"`
	MostLikes  *AuthorLikes     `json:"mostLikes"`
}

// Handlers exposes the aggregation engine over HTTP.
type Handlers struct {
	blogs BlogLister
}

// NewHandlers creates stats Handlers.
func NewHandlers(blogs BlogLister) *Handlers {
	return &Handlers{blogs: blogs}
}

// HandleSummary godoc
// @Summary Aggregate blog statistics
// @Description Computes totals, maxima and per-author rollups over the full blog listing.
// @Tags stats
// @Produce json
// @Success 200 {object} stats.Summary
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /stats [get]
func (h *Handlers) HandleSummary() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := h.blogs.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, Summary{
			TotalLikes: TotalLikes(list),
			MaxLikes:   MaxLikes(list),
			Favorite:   FavoriteBlog(list),
			MostBlogs:  MostBlogs(list),
			MostLikes:  MostLikes(list),
		})
	}
}
