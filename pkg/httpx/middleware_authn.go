package httpx

import (
	"context"
	"net/http"
	"strings"

	"github.com/fitnesslabs/fittrack/pkg/jwtx"
	"github.com/fitnesslabs/fittrack/pkg/slogx"
)

// AuthnMiddleware verifies the bearer token on every protected request and
// attaches the decoded identity and role to the request context. A missing
// token is 401; a present but unverifiable or expired token is 403.
func AuthnMiddleware(v jwtx.Verifier) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if authz == "" || !strings.HasPrefix(authz, "Bearer ") {
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_request"`)
				WriteError(w, http.StatusUnauthorized, CodeUnauthenticated,
					"missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer"))

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
				WriteError(w, http.StatusForbidden, CodeInvalidToken,
					"token verification failed")
				return
			}

			ctx = contextWithAuth(ctx, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithAuth(ctx context.Context, c jwtx.Claims) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, c.Subject)
	ctx = context.WithValue(ctx, CtxKeyRole, c.Role)
	ctx = context.WithValue(ctx, CtxKeyClaims, c)
	return ctx
}
