package httpx

import "net/http"

// RequireRole is the single authorization guard: the caller's decoded role
// must match the required role exactly. Apply it after AuthnMiddleware.
func RequireRole(required string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if RoleFromContext(r.Context()) != required {
				WriteError(w, http.StatusForbidden, CodeForbidden,
					"insufficient role for this operation")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
