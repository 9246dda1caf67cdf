package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/atelierlivre/biblio/pkg/httpx"
	"github.com/atelierlivre/biblio/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// LoginRequest is the credential payload for /api/login.
type LoginRequest struct {
	UUID     string `json:"uuid" example:"marcel"`
	Password string `json:"password" example:"motdepasse"`
}

// TokenResponse is returned on successful login or registration.
type TokenResponse struct {
	Message   string `json:"message" example:"Connexion réussie"`
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn" example:"3600"`
}

// ServeHTTP handles credential login.
//
//	@Summary		Authenticate with UUID and password
//	@Description	Exchanges credentials for a signed JWT. The issued token is recorded on the user account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		LoginRequest	true	"Credentials"
//	@Success		200		{object}	TokenResponse		"Connexion réussie"
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing uuid or password"
//	@Failure		401		{object}	httpx.ErrorResponse	"Unknown user or wrong password"
//	@Failure		429		{object}	httpx.ErrorResponse	"Rate limited"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "UUID et mot de passe sont requis")
		return
	}

	result, err := h.AuthService.Login(ctx, req.UUID, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidation):
			httpx.WriteError(w, http.StatusBadRequest, "UUID et mot de passe sont requis")
		case errors.Is(err, service.ErrUserNotFound):
			httpx.WriteError(w, http.StatusUnauthorized, "Utilisateur non trouvé")
		case errors.Is(err, service.ErrBadPassword):
			httpx.WriteError(w, http.StatusUnauthorized, "Mot de passe incorrect")
		default:
			log.Error("login failed", "err", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, TokenResponse{
		Message:   "Connexion réussie",
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}
