package httpx

import "net/http"

// RequireRole rejects the request unless the authenticated principal carries
// the role. AuthnMiddleware must run earlier in the chain.
func RequireRole(role string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			p, ok := PrincipalFromContext(r.Context())
			if !ok {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			if !p.HasRole(role) {
				WriteError(w, http.StatusForbidden, "Accès refusé")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
