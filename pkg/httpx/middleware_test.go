package httpx_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fitnesslabs/fittrack/pkg/httpx"
	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/stretchr/testify/require"
)

var middlewareTestSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestToken(t *testing.T, role string, issuedAt time.Time) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256(middlewareTestSecret)
	require.NoError(t, err)
	claims := jwtx.NewAccessClaims("01ARZ3NDEKTSV4RRFFQ69G5FAV", role, "tester", "fittrack-test",
		jwtx.DefaultAccessTokenTTL, issuedAt)
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return token
}

func newSecuredEcho(t *testing.T, requiredRole string) http.Handler {
	t.Helper()

	verifier, err := jwtx.NewVerifierHS256(middlewareTestSecret, "fittrack-test")
	require.NoError(t, err)

	echo := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"userId": httpx.UserIDFromContext(r.Context()),
			"role":   httpx.RoleFromContext(r.Context()),
		})
	})

	mws := []httpx.Middleware{httpx.AuthnMiddleware(verifier)}
	if requiredRole != "" {
		mws = append(mws, httpx.RequireRole(requiredRole))
	}
	return httpx.Chain(echo, mws...)
}

func TestAuthnMiddlewareMissingToken(t *testing.T) {
	t.Parallel()

	handler := newSecuredEcho(t, "")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var body httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, httpx.CodeUnauthenticated, body.Error)
}

func TestAuthnMiddlewareInvalidToken(t *testing.T) {
	t.Parallel()

	handler := newSecuredEcho(t, "")

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage.token.here")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)

	var body httpx.ErrorResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, httpx.CodeInvalidToken, body.Error)
}

func TestAuthnMiddlewareExpiredToken(t *testing.T) {
	t.Parallel()

	handler := newSecuredEcho(t, "")
	token := newTestToken(t, "client", time.Now().Add(-2*jwtx.DefaultAccessTokenTTL))

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthnMiddlewareAttachesIdentity(t *testing.T) {
	t.Parallel()

	handler := newSecuredEcho(t, "")
	token := newTestToken(t, "client", time.Now())

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Equal(t, "01ARZ3NDEKTSV4RRFFQ69G5FAV", body["userId"])
	require.Equal(t, "client", body["role"])
}

func TestRequireRole(t *testing.T) {
	t.Parallel()

	handler := newSecuredEcho(t, "admin")

	t.Run("matching role passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+newTestToken(t, "admin", time.Now()))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("mismatched role is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+newTestToken(t, "client", time.Now()))
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusForbidden, rec.Code)

		var body httpx.ErrorResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		require.Equal(t, httpx.CodeForbidden, body.Error)
	})
}
