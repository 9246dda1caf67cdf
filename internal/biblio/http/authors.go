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

type AuthorsHandler struct {
	AuthorService *service.AuthorService
}

// AuthorRequest is the payload for creating or renaming an author.
type AuthorRequest struct {
	Name string `json:"name" example:"Victor Hugo"`
}

// AuthorResponse is an author entry.
type AuthorResponse struct {
	ID   int64  `json:"id" example:"1"`
	Name string `json:"name" example:"Victor Hugo"`
}

func toAuthorResponse(a domain.Author) AuthorResponse {
	return AuthorResponse{ID: a.ID, Name: a.Name}
}

// List returns all authors.
//
//	@Summary		List authors
//	@Tags			Authors
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		AuthorResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/api/authors [get].
func (h *AuthorsHandler) List(w http.ResponseWriter, r *http.Request) {
	authors, err := h.AuthorService.ListAuthors(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("list authors failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	out := make([]AuthorResponse, 0, len(authors))
	for _, a := range authors {
		out = append(out, toAuthorResponse(a))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Get returns a single author.
//
//	@Summary		Get an author
//	@Tags			Authors
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Author id"
//	@Success		200	{object}	AuthorResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Auteur non trouvé"
//	@Router			/api/authors/{id} [get].
func (h *AuthorsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	a, err := h.AuthorService.GetAuthor(r.Context(), id)
	if err != nil {
		h.writeAuthorError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuthorResponse(a))
}

// Create adds an author.
//
//	@Summary		Create an author
//	@Description	Adds an author. Requires ROLE_ADMIN.
//	@Tags			Authors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		AuthorRequest	true	"Author"
//	@Success		201		{object}	AuthorResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing name"
//	@Failure		409		{object}	httpx.ErrorResponse	"Cet auteur existe déjà"
//	@Router			/api/authors [post].
func (h *AuthorsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Le nom de l'auteur est requis")
		return
	}

	a, err := h.AuthorService.CreateAuthor(r.Context(), req.Name)
	if err != nil {
		h.writeAuthorError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toAuthorResponse(a))
}

// Update renames an author.
//
//	@Summary		Rename an author
//	@Tags			Authors
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int				true	"Author id"
//	@Param			request	body		AuthorRequest	true	"Author"
//	@Success		200		{object}	AuthorResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"Auteur non trouvé"
//	@Failure		409		{object}	httpx.ErrorResponse	"Cet auteur existe déjà"
//	@Router			/api/authors/{id} [put].
func (h *AuthorsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req AuthorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Le nom de l'auteur est requis")
		return
	}

	a, err := h.AuthorService.RenameAuthor(r.Context(), id, req.Name)
	if err != nil {
		h.writeAuthorError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toAuthorResponse(a))
}

// Delete removes an author without books.
//
//	@Summary		Delete an author
//	@Description	Refused while books still reference the author.
//	@Tags			Authors
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Author id"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorResponse	"Auteur non trouvé"
//	@Failure		409	{object}	httpx.ErrorResponse	"Cet auteur a encore des livres"
//	@Router			/api/authors/{id} [delete].
func (h *AuthorsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.AuthorService.DeleteAuthor(r.Context(), id); err != nil {
		h.writeAuthorError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *AuthorsHandler) writeAuthorError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "Le nom de l'auteur est requis")
	case errors.Is(err, service.ErrAuthorNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Auteur non trouvé")
	case errors.Is(err, service.ErrDuplicateAuthor):
		httpx.WriteError(w, http.StatusConflict, "Cet auteur existe déjà")
	case errors.Is(err, service.ErrAuthorHasBooks):
		httpx.WriteError(w, http.StatusConflict, "Cet auteur a encore des livres")
	default:
		slogx.FromContext(r.Context()).Error("author operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
	}
}
