package http

import (
	"context"
	"errors"

	"github.com/atelierlivre/biblio/internal/biblio/store"
	"github.com/atelierlivre/biblio/pkg/httpx"
)

// principalStore adapts the users repo to the authn middleware. Roles always
// come from this lookup, never from the token snapshot.
type principalStore struct {
	users store.Users
}

func (p *principalStore) FindByUUID(ctx context.Context, uuid string) (httpx.Principal, error) {
	u, err := p.users.GetUserByUUID(ctx, uuid)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return httpx.Principal{}, httpx.ErrPrincipalNotFound
		}
		return httpx.Principal{}, err
	}

	return httpx.Principal{
		ID:    u.ID,
		UUID:  u.UUID,
		Roles: u.Roles,
	}, nil
}
