package auth

import (
	"encoding/json"
	"net/http"

	"github.com/Zamizmi/fullstack-blogi/apperror"
)

// Handlers exposes the auth service over HTTP.
type Handlers struct {
	service *AuthService
}

// NewHandlers creates auth Handlers.
func NewHandlers(service *AuthService) *Handlers {
	return &Handlers{service: service}
}

// HandleLogin godoc
// @Summary User login
// @Description Verifies credentials and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param loginBody body auth.LoginRequest true "User credentials"
// @Success 200 {object} auth.LoginResponse "Login successful"
// @Failure 400 {object} apperror.ErrorResponse "Invalid request body"
// @Failure 401 {object} apperror.ErrorResponse "Invalid credentials"
// @Failure 500 {object} apperror.ErrorResponse "Internal server error"
// @Router /login [post]
func (h *Handlers) HandleLogin() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, r, apperror.NewBadRequestError("invalid request body: "+err.Error(), nil))
			return
		}
		defer r.Body.Close()

		if req.Username == "" || req.Password == "" {
			WriteError(w, r, apperror.NewBadRequestError("username and password are required", nil))
			return
		}

		resp, err := h.service.Login(r.Context(), req)
		if err != nil {
			WriteError(w, r, err)
			return
		}

		WriteJSON(w, http.StatusOK, resp)
	}
}

// WriteJSON serializes data and writes it with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			http.Error(w, `{"error":"failed to encode response"}`, http.StatusInternalServerError)
		}
	}
}

// WriteError writes a standardized error response. Errors that are not
// *AppError values are surfaced as opaque internal errors.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	appErr, ok := apperror.FromError(err)
	if !ok {
		appErr = apperror.NewInternalError("something went wrong...", err)
	}
	WriteJSON(w, appErr.StatusCode(), appErr.ToResponse())
}
