package httpx

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/atelierlivre/biblio/pkg/jwtx"
	"github.com/atelierlivre/biblio/pkg/slogx"
)

// ErrPrincipalNotFound is returned by PrincipalStore implementations when no
// principal matches the token subject.
var ErrPrincipalNotFound = errors.New("httpx: principal not found")

// PrincipalStore resolves a token subject to a live principal. Validation is
// stateless beyond this single lookup: the role snapshot embedded in the
// token is never consulted for authorization, the store's current roles win.
type PrincipalStore interface {
	FindByUUID(ctx context.Context, uuid string) (Principal, error)
}

// AuthnMiddleware gates a route behind bearer authentication.
//
// A request without an Authorization header is rejected outright with
// "Authentication required"; a request that offered a credential gets a
// reason-specific message instead. Authentication never writes to storage.
func AuthnMiddleware(v jwtx.Verifier, principals PrincipalStore) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			header := r.Header.Get("Authorization")
			if header == "" {
				WriteError(w, http.StatusUnauthorized, "Authentication required")
				return
			}

			scheme, raw, ok := strings.Cut(header, " ")
			raw = strings.TrimSpace(raw)
			if !ok || !strings.EqualFold(scheme, "Bearer") || raw == "" {
				WriteError(w, http.StatusUnauthorized, "Token manquant ou invalide")
				return
			}

			claims, err := v.Verify(raw)
			if err != nil {
				log.Warn("token verification failed", "err", err)
				if errors.Is(err, jwtx.ErrExpired) {
					WriteError(w, http.StatusUnauthorized, "Token expiré. Veuillez vous reconnecter.")
					return
				}
				WriteError(w, http.StatusUnauthorized, "Token JWT invalide: "+err.Error())
				return
			}

			p, err := principals.FindByUUID(ctx, claims.UUID)
			if err != nil {
				if errors.Is(err, ErrPrincipalNotFound) {
					WriteError(w, http.StatusUnauthorized, "Utilisateur non trouvé")
					return
				}
				log.Error("principal lookup failed", "uuid", claims.UUID, "err", err)
				WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithPrincipal(ctx, p)))
		})
	}
}
