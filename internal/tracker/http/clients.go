package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/fitnesslabs/fittrack/internal/tracker/domain"
	"github.com/fitnesslabs/fittrack/internal/tracker/service"
	"github.com/fitnesslabs/fittrack/pkg/httpx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
	"github.com/fitnesslabs/fittrack/pkg/trackersdk"
)

// ClientsHandler serves the client management endpoints.
type ClientsHandler struct {
	ClientService *service.ClientService
}

func clientInfo(c domain.Client) trackersdk.ClientInfo {
	return trackersdk.ClientInfo{
		ID:          c.ID,
		UserID:      c.UserID,
		Username:    c.Username,
		Name:        c.Name(),
		FirstName:   c.FirstName,
		LastName:    c.LastName,
		DateOfBirth: c.DOB,
		CreatedAt:   c.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// HandleList godoc
//
//	@Summary		List Clients Endpoint
//	@Description	Returns every registered client profile, newest first. Admin only.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		trackersdk.ClientInfo	"client profiles"
//	@Failure		401	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		500	{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/api/clients [get].
func (h *ClientsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clients, err := h.ClientService.List(ctx)
	if err != nil {
		log.Error("list clients failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"internal server error")
		return
	}

	out := make([]trackersdk.ClientInfo, 0, len(clients))
	for _, c := range clients {
		out = append(out, clientInfo(c))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate godoc
//
//	@Summary		Register Client Endpoint
//	@Description	Creates a client login account and its profile in one atomic step. Admin only.
//	@Description	Any failure, including a duplicate username, leaves no partial record behind.
//	@Tags			Clients
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trackersdk.CreateClientRequest	true	"New client account"
//	@Success		201		{object}	trackersdk.CreateClientResponse	"clientId, userId"
//	@Failure		400		{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse				"error, error_description"
//	@Router			/api/clients [post].
func (h *ClientsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"request body must be valid JSON")
		return
	}

	// Validate before any write is attempted.
	req.Username = strings.TrimSpace(req.Username)
	req.FirstName = strings.TrimSpace(req.FirstName)
	req.LastName = strings.TrimSpace(req.LastName)
	req.DateOfBirth = strings.TrimSpace(req.DateOfBirth)
	if req.Username == "" || req.Password == "" ||
		req.FirstName == "" || req.LastName == "" || req.DateOfBirth == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"username, password, firstName, lastName and dateOfBirth are required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.DateOfBirth); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"dateOfBirth must be an ISO date (YYYY-MM-DD)")
		return
	}

	clientID, userID, err := h.ClientService.Register(ctx, service.RegisterParams{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DOB:       req.DateOfBirth,
	})
	if err != nil {
		// Duplicate usernames surface the same way as any other failed
		// write; the rollback already happened in the service.
		log.Error("client registration failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"failed to register client")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, trackersdk.CreateClientResponse{
		ClientID: clientID,
		UserID:   userID,
	})
}

// HandleDelete godoc
//
//	@Summary		Delete Client Endpoint
//	@Description	Removes a client profile and its login account atomically. Admin only.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id	path		string							true	"Client id"
//	@Success		200	{object}	trackersdk.DeleteClientResponse	"message"
//	@Failure		401	{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		403	{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		404	{object}	httpx.ErrorResponse				"error, error_description"
//	@Failure		500	{object}	httpx.ErrorResponse				"error, error_description"
//	@Router			/api/clients/{id} [delete].
func (h *ClientsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("id")
	if clientID == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"client id is required")
		return
	}

	if err := h.ClientService.Delete(ctx, clientID); err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
				"client not found")
			return
		}
		log.Error("client deletion failed", "client_id", clientID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"failed to delete client")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, trackersdk.DeleteClientResponse{
		Message: "client deleted",
	})
}

// HandleOwnDetails godoc
//
//	@Summary		Own Profile Endpoint
//	@Description	Returns the profile owned by the authenticated client.
//	@Tags			Clients
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{object}	trackersdk.ClientInfo	"the caller's profile"
//	@Failure		401	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/api/client-details [get].
func (h *ClientsHandler) HandleOwnDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	client, err := h.ClientService.GetByUserID(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
				"no profile for this account")
			return
		}
		log.Error("own profile lookup failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, clientInfo(client))
}
