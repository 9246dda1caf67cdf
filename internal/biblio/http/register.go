package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/atelierlivre/biblio/pkg/httpx"
	"github.com/atelierlivre/biblio/pkg/slogx"
)

type RegisterHandler struct {
	AuthService *service.AuthService
}

// RegisterRequest is the payload for creating an account. Roles beyond
// ROLE_USER may be requested; ROLE_USER is always granted.
type RegisterRequest struct {
	UUID     string   `json:"uuid" example:"marcel"`
	Password string   `json:"password" example:"motdepasse"`
	Roles    []string `json:"roles,omitempty" example:"ROLE_ADMIN"`
}

// ServeHTTP handles account creation. Only administrators may register
// new accounts.
//
//	@Summary		Register a new user
//	@Description	Creates an account and returns its first token. Requires ROLE_ADMIN.
//	@Tags			Auth
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		RegisterRequest	true	"New account"
//	@Success		201		{object}	TokenResponse		"Utilisateur créé avec succès"
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing uuid or password"
//	@Failure		401		{object}	httpx.ErrorResponse	"Missing or invalid token"
//	@Failure		403		{object}	httpx.ErrorResponse	"Caller is not an administrator"
//	@Failure		409		{object}	httpx.ErrorResponse	"UUID already registered"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	p, ok := httpx.PrincipalFromContext(ctx)
	if !ok {
		httpx.WriteError(w, http.StatusUnauthorized, "Authentication required")
		return
	}
	if !p.HasRole(domain.RoleAdmin) {
		httpx.WriteError(w, http.StatusForbidden, "Accès refusé")
		return
	}

	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "UUID et mot de passe sont requis")
		return
	}

	result, err := h.AuthService.Register(ctx, req.UUID, req.Password, req.Roles)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteError(w, http.StatusBadRequest, "UUID et mot de passe sont requis")
		case errors.Is(err, service.ErrUUIDTaken):
			httpx.WriteError(w, http.StatusConflict, "Cet UUID existe déjà")
		default:
			log.Error("registration failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusCreated, TokenResponse{
		Message:   "Utilisateur créé avec succès",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}
