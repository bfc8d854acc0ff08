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

// FoodHandler serves the food consumption endpoints.
type FoodHandler struct {
	FoodService *service.FoodService
}

func foodEntry(e domain.FoodEntry) trackersdk.FoodEntry {
	return trackersdk.FoodEntry{
		ID:       e.ID,
		ClientID: e.ClientID,
		FoodItem: e.FoodItem,
		Quantity: e.Quantity,
		Date:     e.Date,
	}
}

func foodEntries(entries []domain.FoodEntry) []trackersdk.FoodEntry {
	out := make([]trackersdk.FoodEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, foodEntry(e))
	}
	return out
}

// HandleListForClient godoc
//
//	@Summary		Client Food Log Endpoint
//	@Description	Returns every entry logged by the given client, newest first. Admin only.
//	@Tags			Food
//	@Produce		json
//	@Security		BearerAuth
//	@Param			clientID	path		string					true	"Client id"
//	@Success		200			{array}		trackersdk.FoodEntry	"logged entries"
//	@Failure		401			{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		403			{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		404			{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/api/food-consumption/{clientID} [get].
func (h *FoodHandler) HandleListForClient(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	clientID := r.PathValue("clientID")
	entries, err := h.FoodService.ListForClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, service.ErrClientNotFound) {
			httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
				"client not found")
			return
		}
		log.Error("food listing failed", "client_id", clientID, "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, foodEntries(entries))
}

// HandleListOwn godoc
//
//	@Summary		Own Food Log Endpoint
//	@Description	Returns the entries logged against the authenticated client's profile.
//	@Tags			Food
//	@Produce		json
//	@Security		BearerAuth
//	@Success		200	{array}		trackersdk.FoodEntry	"logged entries"
//	@Failure		401	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		403	{object}	httpx.ErrorResponse		"error, error_description"
//	@Failure		404	{object}	httpx.ErrorResponse		"error, error_description"
//	@Router			/api/client-food-consumption [get].
func (h *FoodHandler) HandleListOwn(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	entries, err := h.FoodService.ListOwn(ctx, httpx.UserIDFromContext(ctx))
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
				"no profile for this account")
			return
		}
		log.Error("own food listing failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"internal server error")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, foodEntries(entries))
}

// HandleLog godoc
//
//	@Summary		Log Food Endpoint
//	@Description	Records one food consumption entry against the authenticated client's profile.
//	@Tags			Food
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		trackersdk.LogFoodRequest	true	"Entry to record"
//	@Success		201		{object}	trackersdk.FoodEntry		"the stored entry"
//	@Failure		400		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		401		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		403		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		404		{object}	httpx.ErrorResponse			"error, error_description"
//	@Failure		500		{object}	httpx.ErrorResponse			"error, error_description"
//	@Router			/api/food-consumption [post].
func (h *FoodHandler) HandleLog(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req trackersdk.LogFoodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"request body must be valid JSON")
		return
	}

	req.FoodItem = strings.TrimSpace(req.FoodItem)
	req.Quantity = strings.TrimSpace(req.Quantity)
	req.Date = strings.TrimSpace(req.Date)
	if req.FoodItem == "" || req.Quantity == "" || req.Date == "" {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"foodItem, quantity and date are required")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, httpx.CodeValidationError,
			"date must be an ISO date (YYYY-MM-DD)")
		return
	}

	entry, err := h.FoodService.Log(ctx,
		httpx.UserIDFromContext(ctx), req.FoodItem, req.Quantity, req.Date)
	if err != nil {
		if errors.Is(err, service.ErrNoProfile) {
			httpx.WriteError(w, http.StatusNotFound, httpx.CodeNotFound,
				"no profile for this account")
			return
		}
		log.Error("food logging failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, httpx.CodeWriteFailed,
			"failed to record entry")
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, foodEntry(entry))
}
