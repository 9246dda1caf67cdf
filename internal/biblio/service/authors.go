package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/store"
)

var (
	ErrAuthorNotFound  = errors.New("author_not_found")
	ErrDuplicateAuthor = errors.New("duplicate_author")
	ErrAuthorHasBooks  = errors.New("author_has_books")
)

// AuthorService manages authors independently of the book flow.
type AuthorService struct {
	Store store.Store
}

// ListAuthors returns all authors ordered by name.
func (s *AuthorService) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	return s.Store.Authors().ListAuthors(ctx)
}

// GetAuthor fetches a single author.
func (s *AuthorService) GetAuthor(ctx context.Context, id int64) (domain.Author, error) {
	a, err := s.Store.Authors().GetAuthorByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Author{}, ErrAuthorNotFound
	}
	return a, err
}

// CreateAuthor adds a new author.
func (s *AuthorService) CreateAuthor(ctx context.Context, name string) (domain.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Author{}, ErrValidation
	}

	id, err := s.Store.Authors().CreateAuthor(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return domain.Author{}, ErrDuplicateAuthor
		}
		return domain.Author{}, err
	}

	return s.Store.Authors().GetAuthorByID(ctx, id)
}

// RenameAuthor changes an author's name.
func (s *AuthorService) RenameAuthor(ctx context.Context, id int64, name string) (domain.Author, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Author{}, ErrValidation
	}

	if err := s.Store.Authors().UpdateAuthorName(ctx, id, name); err != nil {
		switch {
		case errors.Is(err, store.ErrNotFound):
			return domain.Author{}, ErrAuthorNotFound
		case errors.Is(err, store.ErrAlreadyExists):
			return domain.Author{}, ErrDuplicateAuthor
		}
		return domain.Author{}, err
	}

	return s.Store.Authors().GetAuthorByID(ctx, id)
}

// DeleteAuthor removes an author, refusing while books still reference it.
// The check and the delete run in one transaction so a concurrent book
// insert cannot slip between them.
func (s *AuthorService) DeleteAuthor(ctx context.Context, id int64) error {
	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		n, err := tx.Books().CountByAuthor(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return ErrAuthorHasBooks
		}

		if err := tx.Authors().DeleteAuthor(ctx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrAuthorNotFound
			}
			return err
		}
		return nil
	})
}
