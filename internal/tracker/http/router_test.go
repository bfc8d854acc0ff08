package http

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fitnesslabs/fittrack/internal/tracker/service"
	"github.com/fitnesslabs/fittrack/internal/tracker/store/drivers/sqlite"
	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/fitnesslabs/fittrack/pkg/trackersdk"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

const testIssuer = "fittrack-test"

// newTestServer wires the full router over an in-memory database and seeds
// the admin account.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	verifier, err := jwtx.NewVerifierHS256(testSecret, testIssuer)
	require.NoError(t, err)

	boot := &service.BootstrapService{Store: st}
	_, err = boot.EnsureAdmin(context.Background(), "admin", "adminpass")
	require.NoError(t, err)

	router := NewRouter(verifier, "test", st, slog.Default())
	router.AuthService = &service.AuthService{
		Signer:    signer,
		Store:     st,
		Issuer:    testIssuer,
		AccessTTL: jwtx.DefaultAccessTokenTTL,
	}
	router.ClientService = &service.ClientService{Store: st}
	router.FoodService = &service.FoodService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func adminSession(t *testing.T, sdk *trackersdk.SDKClient) *trackersdk.Session {
	t.Helper()

	session, err := sdk.Login(context.Background(), "admin", "adminpass")
	require.NoError(t, err)
	require.Equal(t, "admin", session.UserType)
	return session
}

func registerTestClient(
	t *testing.T,
	admin *trackersdk.Session,
	username string,
) trackersdk.CreateClientResponse {
	t.Helper()

	created, err := admin.CreateClient(context.Background(), trackersdk.CreateClientRequest{
		Username:    username,
		Password:    "hunter22",
		FirstName:   "Jane",
		LastName:    "Doe",
		DateOfBirth: "1990-04-01",
	})
	require.NoError(t, err)
	return created
}

func TestAdminManagesClientLifecycle(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)

	created := registerTestClient(t, admin, "jane")
	require.NotEmpty(t, created.ClientID)
	require.NotEmpty(t, created.UserID)

	clients, err := admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	require.Equal(t, created.ClientID, clients[0].ID)
	require.Equal(t, "jane", clients[0].Username)
	require.Equal(t, "Jane Doe", clients[0].Name)

	require.NoError(t, admin.DeleteClient(ctx, created.ClientID))

	clients, err = admin.ListClients(ctx)
	require.NoError(t, err)
	require.Empty(t, clients)

	// The deleted client's login no longer works.
	_, err = sdk.Login(ctx, "jane", "hunter22")
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid_credentials", apiErr.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)

	_, err := sdk.Login(context.Background(), "admin", "wrongpass")
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	require.Equal(t, "invalid_credentials", apiErr.Code)
}

func TestProtectedEchoesIdentity(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)

	admin := adminSession(t, sdk)
	id, err := admin.Protected(context.Background())
	require.NoError(t, err)
	require.Equal(t, admin.UserID, id.UserID)
	require.Equal(t, "admin", id.Role)
	require.Equal(t, "admin", id.Username)
}

func TestProtectedRequiresToken(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/protected")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestClientCannotManageClients(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)
	registerTestClient(t, admin, "jane")

	session, err := sdk.Login(ctx, "jane", "hunter22")
	require.NoError(t, err)
	require.Equal(t, "client", session.UserType)

	_, err = session.CreateClient(ctx, trackersdk.CreateClientRequest{
		Username: "mallory", Password: "x",
		FirstName: "Mallory", LastName: "M", DateOfBirth: "1990-01-01",
	})
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)

	// The forbidden attempt wrote nothing.
	clients, err := admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestCreateClientValidation(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)

	_, err := admin.CreateClient(ctx, trackersdk.CreateClientRequest{
		Username: "jane", Password: "hunter22",
		// firstName missing
		LastName: "Doe", DateOfBirth: "1990-04-01",
	})
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "validation_error", apiErr.Code)

	_, err = admin.CreateClient(ctx, trackersdk.CreateClientRequest{
		Username: "jane", Password: "hunter22",
		FirstName: "Jane", LastName: "Doe", DateOfBirth: "April 1st",
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestCreateClientDuplicateUsername(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)
	registerTestClient(t, admin, "jane")

	_, err := admin.CreateClient(ctx, trackersdk.CreateClientRequest{
		Username: "jane", Password: "other",
		FirstName: "Janet", LastName: "Roe", DateOfBirth: "1991-05-02",
	})
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	require.Equal(t, "write_failed", apiErr.Code)

	clients, err := admin.ListClients(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 1)
}

func TestDeleteUnknownClient(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)

	admin := adminSession(t, sdk)
	err := admin.DeleteClient(context.Background(), "01JUNKJUNKJUNKJUNKJUNKJUNK")
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	require.Equal(t, "not_found", apiErr.Code)
}

func TestClientFoodFlow(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)
	created := registerTestClient(t, admin, "jane")

	session, err := sdk.Login(ctx, "jane", "hunter22")
	require.NoError(t, err)

	details, err := session.ClientDetails(ctx)
	require.NoError(t, err)
	require.Equal(t, created.ClientID, details.ID)
	require.Equal(t, "Jane", details.FirstName)

	entry, err := session.LogFood(ctx, trackersdk.LogFoodRequest{
		FoodItem: "oatmeal", Quantity: "150g", Date: "2026-08-30",
	})
	require.NoError(t, err)
	require.Equal(t, created.ClientID, entry.ClientID)

	own, err := session.ClientFoodConsumption(ctx)
	require.NoError(t, err)
	require.Len(t, own, 1)
	require.Equal(t, "oatmeal", own[0].FoodItem)

	// Admin sees the same entries through the admin endpoint.
	viewed, err := admin.FoodConsumption(ctx, created.ClientID)
	require.NoError(t, err)
	require.Len(t, viewed, 1)

	// Clients cannot use the admin endpoint, even for their own id.
	_, err = session.FoodConsumption(ctx, created.ClientID)
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusForbidden, apiErr.StatusCode)
}

func TestFoodValidation(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)
	ctx := context.Background()

	admin := adminSession(t, sdk)
	registerTestClient(t, admin, "jane")

	session, err := sdk.Login(ctx, "jane", "hunter22")
	require.NoError(t, err)

	_, err = session.LogFood(ctx, trackersdk.LogFoodRequest{
		FoodItem: "", Quantity: "150g", Date: "2026-08-30",
	})
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)

	_, err = session.LogFood(ctx, trackersdk.LogFoodRequest{
		FoodItem: "oatmeal", Quantity: "150g", Date: "30/08/2026",
	})
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
}

func TestAdminFoodViewUnknownClient(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)

	admin := adminSession(t, sdk)
	_, err := admin.FoodConsumption(context.Background(), "01JUNKJUNKJUNKJUNKJUNKJUNK")
	var apiErr *trackersdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestHealthProbes(t *testing.T) {
	srv := newTestServer(t)
	sdk := trackersdk.NewSDKClient(srv.URL)

	require.NoError(t, sdk.Livez(context.Background()))
	require.NoError(t, sdk.Readyz(context.Background()))
}
