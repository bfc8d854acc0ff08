package trackersdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session is an authenticated handle on the API. It is safe for concurrent
// use; the token is immutable for the session's lifetime.
type Session struct {
	client *SDKClient
	token  string

	// UserID and UserType echo the login response.
	UserID   string
	UserType string
}

// Token returns the raw bearer token, for callers that need to pass it on.
func (s *Session) Token() string { return s.token }

// Protected calls the identity echo endpoint. Useful as a token sanity
// check.
func (s *Session) Protected(ctx context.Context) (ProtectedResponse, error) {
	var out ProtectedResponse
	err := s.client.doJSONAuth(ctx, http.MethodGet, "/protected",
		nil, &out, http.StatusOK, s.token)
	return out, err
}

// ListClients returns every client profile. Admin only.
func (s *Session) ListClients(ctx context.Context) ([]ClientInfo, error) {
	var out []ClientInfo
	err := s.client.doJSONAuth(ctx, http.MethodGet, "/api/clients",
		nil, &out, http.StatusOK, s.token)
	return out, err
}

// CreateClient registers a new client account with its profile. Admin only.
func (s *Session) CreateClient(ctx context.Context, req CreateClientRequest) (CreateClientResponse, error) {
	var out CreateClientResponse
	err := s.client.doJSONAuth(ctx, http.MethodPost, "/api/clients",
		req, &out, http.StatusCreated, s.token)
	return out, err
}

// DeleteClient removes a client profile and its login account. Admin only.
func (s *Session) DeleteClient(ctx context.Context, clientID string) error {
	var out DeleteClientResponse
	return s.client.doJSONAuth(ctx, http.MethodDelete,
		"/api/clients/"+url.PathEscape(clientID),
		nil, &out, http.StatusOK, s.token)
}

// FoodConsumption returns a client's logged entries. Admin only.
func (s *Session) FoodConsumption(ctx context.Context, clientID string) ([]FoodEntry, error) {
	var out []FoodEntry
	err := s.client.doJSONAuth(ctx, http.MethodGet,
		"/api/food-consumption/"+url.PathEscape(clientID),
		nil, &out, http.StatusOK, s.token)
	return out, err
}

// ClientDetails returns the caller's own profile. Client only.
func (s *Session) ClientDetails(ctx context.Context) (ClientInfo, error) {
	var out ClientInfo
	err := s.client.doJSONAuth(ctx, http.MethodGet, "/api/client-details",
		nil, &out, http.StatusOK, s.token)
	return out, err
}

// ClientFoodConsumption returns the caller's own entries. Client only.
func (s *Session) ClientFoodConsumption(ctx context.Context) ([]FoodEntry, error) {
	var out []FoodEntry
	err := s.client.doJSONAuth(ctx, http.MethodGet, "/api/client-food-consumption",
		nil, &out, http.StatusOK, s.token)
	return out, err
}

// LogFood records one consumption entry against the caller's profile.
// Client only.
func (s *Session) LogFood(ctx context.Context, req LogFoodRequest) (FoodEntry, error) {
	var out FoodEntry
	err := s.client.doJSONAuth(ctx, http.MethodPost, "/api/food-consumption",
		req, &out, http.StatusCreated, s.token)
	return out, err
}
