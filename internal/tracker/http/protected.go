package http

import (
	"net/http"

	"github.com/fitnesslabs/fittrack/pkg/httpx"
	"github.com/fitnesslabs/fittrack/pkg/trackersdk"
)

// ProtectedHandler godoc
//
//	@Summary		Identity Echo Endpoint
//	@Description	Returns the identity baked into the caller's token. Any authenticated role may call it.
//	@Tags			Auth
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	trackersdk.ProtectedResponse	"userId, role, username"
//	@Failure		401	{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	httpx.ErrorResponse				"error, error_description"
//	@Router			/protected [get].
func ProtectedHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	claims, ok := httpx.ClaimsFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, httpx.CodeUnauthenticated,
			"missing bearer token")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.ProtectedResponse{
		UserID:   claims.Subject,
		Role:     claims.Role,
		Username: claims.Username,
	})
}
