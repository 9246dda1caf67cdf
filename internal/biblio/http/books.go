package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/atelierlivre/biblio/pkg/httpx"
	"github.com/atelierlivre/biblio/pkg/slogx"
)

type BooksHandler struct {
	BookService *service.BookService
}

// BookRequest is the payload for creating or updating a book. The author is
// referenced by name and created when unknown.
type BookRequest struct {
	Title         string `json:"title" example:"Germinal"`
	Author        string `json:"author" example:"Émile Zola"`
	PublishedYear *int64 `json:"publishedYear,omitempty" example:"1885"`
}

// BookResponse is a catalogue entry.
type BookResponse struct {
	ID            int64  `json:"id" example:"1"`
	Title         string `json:"title" example:"Germinal"`
	Author        string `json:"author" example:"Émile Zola"`
	AuthorID      int64  `json:"authorId" example:"1"`
	PublishedYear *int64 `json:"publishedYear,omitempty" example:"1885"`
}

func toBookResponse(b domain.Book) BookResponse {
	return BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.AuthorName,
		AuthorID:      b.AuthorID,
		PublishedYear: b.PublishedYear,
	}
}

// pathID parses the {id} path segment. A non-numeric id gets a French 400.
func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		httpx.WriteError(w, http.StatusBadRequest, "Identifiant invalide")
		return 0, false
	}
	return id, true
}

// List returns the whole catalogue.
//
//	@Summary		List books
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Success		200	{array}		BookResponse
//	@Failure		401	{object}	httpx.ErrorResponse
//	@Router			/api/books [get].
func (h *BooksHandler) List(w http.ResponseWriter, r *http.Request) {
	books, err := h.BookService.ListBooks(r.Context())
	if err != nil {
		slogx.FromContext(r.Context()).Error("list books failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	out := make([]BookResponse, 0, len(books))
	for _, b := range books {
		out = append(out, toBookResponse(b))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Get returns a single book.
//
//	@Summary		Get a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		int	true	"Book id"
//	@Success		200	{object}	BookResponse
//	@Failure		404	{object}	httpx.ErrorResponse	"Livre non trouvé"
//	@Router			/api/books/{id} [get].
func (h *BooksHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	b, err := h.BookService.GetBook(r.Context(), id)
	if err != nil {
		h.writeBookError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBookResponse(b))
}

// Create adds a book to the catalogue.
//
//	@Summary		Create a book
//	@Description	Adds a book, creating the author when it does not exist yet. Requires ROLE_ADMIN.
//	@Tags			Books
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		BookRequest	true	"Book"
//	@Success		201		{object}	BookResponse
//	@Failure		400		{object}	httpx.ErrorResponse	"Missing title or author"
//	@Failure		403		{object}	httpx.ErrorResponse	"Accès refusé"
//	@Failure		409		{object}	httpx.ErrorResponse	"Ce livre existe déjà pour cet auteur"
//	@Router			/api/books [post].
func (h *BooksHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Titre et auteur sont requis")
		return
	}

	b, err := h.BookService.CreateBook(r.Context(), req.Title, req.Author, req.PublishedYear)
	if err != nil {
		h.writeBookError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toBookResponse(b))
}

// Update rewrites a book.
//
//	@Summary		Update a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		int			true	"Book id"
//	@Param			request	body		BookRequest	true	"Book"
//	@Success		200		{object}	BookResponse
//	@Failure		404		{object}	httpx.ErrorResponse	"Livre non trouvé"
//	@Failure		409		{object}	httpx.ErrorResponse	"Ce livre existe déjà pour cet auteur"
//	@Router			/api/books/{id} [put].
func (h *BooksHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req BookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Titre et auteur sont requis")
		return
	}

	b, err := h.BookService.UpdateBook(r.Context(), id, req.Title, req.Author, req.PublishedYear)
	if err != nil {
		h.writeBookError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toBookResponse(b))
}

// Delete removes a book.
//
//	@Summary		Delete a book
//	@Tags			Books
//	@Security		BearerAuth
//	@Param			id	path	int	true	"Book id"
//	@Success		204
//	@Failure		404	{object}	httpx.ErrorResponse	"Livre non trouvé"
//	@Router			/api/books/{id} [delete].
func (h *BooksHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.BookService.DeleteBook(r.Context(), id); err != nil {
		h.writeBookError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *BooksHandler) writeBookError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		httpx.WriteError(w, http.StatusBadRequest, "Titre et auteur sont requis")
	case errors.Is(err, service.ErrBookNotFound):
		httpx.WriteError(w, http.StatusNotFound, "Livre non trouvé")
	case errors.Is(err, service.ErrDuplicateBook):
		httpx.WriteError(w, http.StatusConflict, "Ce livre existe déjà pour cet auteur")
	default:
		slogx.FromContext(r.Context()).Error("book operation failed", "err", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Erreur interne du serveur")
	}
}
