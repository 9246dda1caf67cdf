package http

import (
	"net/http"

	"github.com/atelierlivre/biblio/pkg/httpx"
)

type MeHandler struct{}

// MeResponse describes the authenticated principal.
type MeResponse struct {
	ID    int64    `json:"id" example:"1"`
	UUID  string   `json:"uuid" example:"marcel"`
	Roles []string `json:"roles" example:"ROLE_USER"`
}

// ServeHTTP returns the current principal.
//
//	@Summary		Who am I
//	@Description	Returns the id, uuid and current roles of the authenticated user.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{object}	MeResponse
//	@Failure		401	{object}	httpx.ErrorResponse	"Missing or invalid token"
//	@Router			/api/me [get].
func (h *MeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	p, ok := httpx.PrincipalFromContext(r.Context())
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}

	httpx.WriteJSON(w, http.StatusOK, MeResponse{
		ID:    p.ID,
		UUID:  p.UUID,
		Roles: p.Roles,
	})
}
