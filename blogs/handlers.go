package blogs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Zamizmi/fullstack-blogi/apperror"
	"github.com/Zamizmi/fullstack-blogi/auth"
)

// Handlers exposes the blog service over HTTP.
type Handlers struct {
	service *Service
}

// NewHandlers creates blog Handlers.
func NewHandlers(service *Service) *Handlers {
	return &Handlers{service: service}
}

// RegisterRoutes mounts the blog routes. Create and delete sit behind the
// token middleware. Update deliberately does not: the API this service
// replaces never authenticated it, so any caller can modify any blog's
// fields. That is almost certainly an oversight rather than an intended
// capability, but it is part of the wire contract and is preserved here
// instead of silently fixed.
func (h *Handlers) RegisterRoutes(r chi.Router, requireToken func(http.Handler) http.Handler) {
	r.Get("/", h.handleList)
	r.Get("/{id}", h.handleGet)
	r.Put("/{id}", h.handleUpdate)

	r.Group(func(r chi.Router) {
		r.Use(requireToken)
		r.Post("/", h.handleCreate)
		r.Delete("/{id}", h.handleDelete)
	})
}

// handleList godoc
// @Summary List blogs
// @Description Returns all blogs in insertion order, each with its owner's public summary.
// @Tags blogs
// @Produce json
// @Success 200 {array} blogs.Blog
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /blogs [get]
func (h *Handlers) handleList(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.List(r.Context())
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, result)
}

// handleGet godoc
// @Summary Get a blog
// @Tags blogs
// @Produce json
// @Param id path int true "Blog id"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Malformed id"
// @Failure 404 {object} apperror.ErrorResponse "No blog with that id"
// @Router /blogs/{id} [get]
func (h *Handlers) handleGet(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	blog, err := h.service.Get(r.Context(), id)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, blog)
}

// handleCreate godoc
// @Summary Create a blog
// @Description Creates a blog owned by the authenticated caller. Likes defaults to 0.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blogBody body blogs.NewBlogRequest true "Blog to create"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Missing title or url"
// @Failure 401 {object} apperror.ErrorResponse "Missing or invalid token"
// @Router /blogs [post]
func (h *Handlers) handleCreate(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("token missing or invalid", nil))
		return
	}

	var req NewBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	blog, err := h.service.Create(r.Context(), callerID, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, blog)
}

// handleUpdate godoc
// @Summary Update a blog
// @Description Applies a partial merge of the provided fields over the existing record. Requires no token.
// @Tags blogs
// @Accept json
// @Produce json
// @Param id path int true "Blog id"
// @Param blogBody body blogs.UpdateBlogRequest true "Fields to update"
// @Success 200 {object} blogs.Blog
// @Failure 400 {object} apperror.ErrorResponse "Malformed id"
// @Failure 404 {object} apperror.ErrorResponse "No blog with that id"
// @Router /blogs/{id} [put]
func (h *Handlers) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := blogID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	var req UpdateBlogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
		return
	}
	defer r.Body.Close()

	blog, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}
	auth.WriteJSON(w, http.StatusOK, blog)
}

// handleDelete godoc
// @Summary Delete a blog
// @Description Deletes a blog. Only the owner may delete; a valid token for any other user is rejected.
// @Tags blogs
// @Security BearerAuth
// @Param id path int true "Blog id"
// @Success 204 "Deleted"
// @Failure 400 {object} apperror.ErrorResponse "Malformed id"
// @Failure 401 {object} apperror.ErrorResponse "Missing/invalid token or not the owner"
// @Failure 404 {object} apperror.ErrorResponse "No blog with that id"
// @Router /blogs/{id} [delete]
func (h *Handlers) handleDelete(w http.ResponseWriter, r *http.Request) {
	callerID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		auth.WriteError(w, r, apperror.NewAuthError("token missing or invalid", nil))
		return
	}

	id, err := blogID(r)
	if err != nil {
		auth.WriteError(w, r, err)
		return
	}

	if err := h.service.Delete(r.Context(), callerID, id); err != nil {
		auth.WriteError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// blogID parses the id path parameter. A non-numeric id is a client error
// distinct from a well-formed id with no matching record.
func blogID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		return 0, apperror.NewBadRequestError("malformatted id", err)
	}
	return id, nil
}
