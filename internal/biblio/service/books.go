package service

import (
	"context"
	"errors"
	"strings"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/store"
)

var (
	ErrBookNotFound  = errors.New("book_not_found")
	ErrDuplicateBook = errors.New("duplicate_book")
)

// BookService manages the catalogue. Authors referenced by name are created
// on the fly so adding a book never requires a separate author call.
type BookService struct {
	Store store.Store
}

// ListBooks returns the whole catalogue ordered by title.
func (s *BookService) ListBooks(ctx context.Context) ([]domain.Book, error) {
	return s.Store.Books().ListBooks(ctx)
}

// GetBook fetches a single book.
func (s *BookService) GetBook(ctx context.Context, id int64) (domain.Book, error) {
	b, err := s.Store.Books().GetBookByID(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Book{}, ErrBookNotFound
	}
	return b, err
}

// CreateBook adds a book, resolving or creating the author by name in the
// same transaction.
func (s *BookService) CreateBook(ctx context.Context, title, authorName string, publishedYear *int64) (domain.Book, error) {
	title = strings.TrimSpace(title)
	authorName = strings.TrimSpace(authorName)
	if title == "" || authorName == "" {
		return domain.Book{}, ErrValidation
	}

	var created domain.Book
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		authorID, err := resolveAuthor(ctx, tx, authorName)
		if err != nil {
			return err
		}

		id, err := tx.Books().CreateBook(ctx, domain.Book{
			Title:         title,
			AuthorID:      authorID,
			PublishedYear: publishedYear,
		})
		if err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateBook
			}
			return err
		}

		created, err = tx.Books().GetBookByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Book{}, err
	}
	return created, nil
}

// UpdateBook rewrites a book's title, author and published year.
func (s *BookService) UpdateBook(ctx context.Context, id int64, title, authorName string, publishedYear *int64) (domain.Book, error) {
	title = strings.TrimSpace(title)
	authorName = strings.TrimSpace(authorName)
	if title == "" || authorName == "" {
		return domain.Book{}, ErrValidation
	}

	var updated domain.Book
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		authorID, err := resolveAuthor(ctx, tx, authorName)
		if err != nil {
			return err
		}

		if err := tx.Books().UpdateBook(ctx, domain.Book{
			ID:            id,
			Title:         title,
			AuthorID:      authorID,
			PublishedYear: publishedYear,
		}); err != nil {
			switch {
			case errors.Is(err, store.ErrNotFound):
				return ErrBookNotFound
			case errors.Is(err, store.ErrAlreadyExists):
				return ErrDuplicateBook
			}
			return err
		}

		updated, err = tx.Books().GetBookByID(ctx, id)
		return err
	})
	if err != nil {
		return domain.Book{}, err
	}
	return updated, nil
}

// DeleteBook removes a book from the catalogue.
func (s *BookService) DeleteBook(ctx context.Context, id int64) error {
	err := s.Store.Books().DeleteBook(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return ErrBookNotFound
	}
	return err
}

// resolveAuthor finds an author by exact name or creates it.
func resolveAuthor(ctx context.Context, tx store.Tx, name string) (int64, error) {
	author, err := tx.Authors().GetAuthorByName(ctx, name)
	if err == nil {
		return author.ID, nil
	}
	if !errors.Is(err, store.ErrNotFound) {
		return 0, err
	}
	return tx.Authors().CreateAuthor(ctx, name)
}
