package users

import (
	"encoding/json"
	"net/http"

	"github.com/Zamizmi/fullstack-blogi/apperror"
	"github.com/Zamizmi/fullstack-blogi/auth"
)

// UserHandlers exposes the registry over HTTP.
type UserHandlers struct {
	service *UserService
}

// NewUserHandlers creates UserHandlers.
func NewUserHandlers(service *UserService) *UserHandlers {
	return &UserHandlers{service: service}
}

// HandleCreateUser godoc
// @Summary Register a new user
// @Description Creates a user. The password must be at least 3 characters and the username unique. An omitted adult flag defaults to true.
// @Tags users
// @Accept json
// @Produce json
// @Param userBody body users.NewUserRequest true "User registration details"
// @Success 200 {object} auth.User "Created user, without password hash"
// @Failure 400 {object} apperror.ErrorResponse "Weak password or username taken"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users [post]
func (h *UserHandlers) HandleCreateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req NewUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			auth.WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		user, err := h.service.Register(r.Context(), req)
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}

		auth.WriteJSON(w, http.StatusOK, user)
	}
}

// HandleListUsers godoc
// @Summary List users
// @Description Returns all users with the ids of the blogs they own.
// @Tags users
// @Produce json
// @Success 200 {array} auth.User
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /users [get]
func (h *UserHandlers) HandleListUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := h.service.List(r.Context())
		if err != nil {
			auth.WriteError(w, r, err)
			return
		}
		auth.WriteJSON(w, http.StatusOK, result)
	}
}
