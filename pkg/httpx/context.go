package httpx

import (
	"context"
	"slices"
)

type ctxKey string

const ctxKeyPrincipal ctxKey = "principal"

// Principal is the authenticated identity attached to a request once its
// bearer token has been verified and the user re-loaded from storage.
type Principal struct {
	ID    int64
	UUID  string
	Roles []string
}

// HasRole reports whether the principal carries the exact role tag. No
// hierarchy is implied: ROLE_ADMIN satisfies a ROLE_USER check only because
// every stored role set already contains ROLE_USER.
func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

// ContextWithPrincipal attaches the authenticated principal to the context.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, ctxKeyPrincipal, p)
}

// PrincipalFromContext returns the authenticated principal, if any.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(ctxKeyPrincipal).(Principal)
	return p, ok
}
