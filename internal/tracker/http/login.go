package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/fitnesslabs/fittrack/internal/tracker/service"
	"github.com/fitnesslabs/fittrack/pkg/httpx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
	"github.com/fitnesslabs/fittrack/pkg/trackersdk"
)

// LoginHandler serves POST /api/login.
type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP godoc
//
//	@Summary		Login Endpoint
//	@Description	Exchanges a username and password for a JWT access token plus the user's role and id.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		trackersdk.LoginRequest		true	"Credentials"
//	@Success		200		{object}	trackersdk.LoginResponse	"token, userType, userId"
//	@Failure		400		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse			"error, error_description"
//	@Header			200		{string}	Cache-Control				"no-store"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"request body must be valid JSON")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"username and password are required")
		return
	}

	token, user, err := h.AuthService.Login(ctx, username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeInvalidCredentials,
				"invalid username or password")
			return
		}
		log.Error("login failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.LoginResponse{
		Token:    token,
		UserType: user.Role,
		UserID:   user.ID,
	})
}
