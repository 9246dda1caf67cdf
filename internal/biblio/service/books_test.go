package service_test

import (
	"context"
	"testing"

	"github.com/atelierlivre/biblio/internal/biblio/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookCreatesAuthorOnTheFly(t *testing.T) {
	st := newTestStore(t)
	books := &service.BookService{Store: st}
	authors := &service.AuthorService{Store: st}
	ctx := context.Background()

	year := int64(1844)
	b, err := books.CreateBook(ctx, "Le Comte de Monte-Cristo", "Alexandre Dumas", &year)
	require.NoError(t, err)
	assert.Equal(t, "Alexandre Dumas", b.AuthorName)
	assert.Positive(t, b.ID)
	require.NotNil(t, b.PublishedYear)
	assert.Equal(t, year, *b.PublishedYear)

	// A second book by the same author reuses the author row.
	b2, err := books.CreateBook(ctx, "Les Trois Mousquetaires", "Alexandre Dumas", nil)
	require.NoError(t, err)
	assert.Equal(t, b.AuthorID, b2.AuthorID)
	assert.Nil(t, b2.PublishedYear)

	list, err := authors.ListAuthors(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestCreateBookDuplicate(t *testing.T) {
	books := &service.BookService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := books.CreateBook(ctx, "Germinal", "Émile Zola", nil)
	require.NoError(t, err)

	_, err = books.CreateBook(ctx, "Germinal", "Émile Zola", nil)
	assert.ErrorIs(t, err, service.ErrDuplicateBook)

	// Same title under a different author is fine.
	_, err = books.CreateBook(ctx, "Germinal", "Quelqu'un d'autre", nil)
	assert.NoError(t, err)
}

func TestCreateBookValidation(t *testing.T) {
	books := &service.BookService{Store: newTestStore(t)}
	ctx := context.Background()

	_, err := books.CreateBook(ctx, "", "Auteur", nil)
	assert.ErrorIs(t, err, service.ErrValidation)

	_, err = books.CreateBook(ctx, "Titre", "  ", nil)
	assert.ErrorIs(t, err, service.ErrValidation)
}

func TestUpdateBook(t *testing.T) {
	books := &service.BookService{Store: newTestStore(t)}
	ctx := context.Background()

	b, err := books.CreateBook(ctx, "Candide", "Voltaire", nil)
	require.NoError(t, err)

	t.Run("retitle and move to new author", func(t *testing.T) {
		year := int64(1747)
		updated, err := books.UpdateBook(ctx, b.ID, "Zadig", "Voltaire (pseud.)", &year)
		require.NoError(t, err)
		assert.Equal(t, "Zadig", updated.Title)
		assert.Equal(t, "Voltaire (pseud.)", updated.AuthorName)
		assert.NotEqual(t, b.AuthorID, updated.AuthorID)
		require.NotNil(t, updated.PublishedYear)
		assert.Equal(t, year, *updated.PublishedYear)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := books.UpdateBook(ctx, 9999, "Titre", "Auteur", nil)
		assert.ErrorIs(t, err, service.ErrBookNotFound)
	})

	t.Run("collides with existing pair", func(t *testing.T) {
		other, err := books.CreateBook(ctx, "Micromégas", "Voltaire (pseud.)", nil)
		require.NoError(t, err)

		_, err = books.UpdateBook(ctx, other.ID, "Zadig", "Voltaire (pseud.)", nil)
		assert.ErrorIs(t, err, service.ErrDuplicateBook)
	})
}

func TestDeleteBook(t *testing.T) {
	books := &service.BookService{Store: newTestStore(t)}
	ctx := context.Background()

	b, err := books.CreateBook(ctx, "L'Étranger", "Albert Camus", nil)
	require.NoError(t, err)

	require.NoError(t, books.DeleteBook(ctx, b.ID))
	assert.ErrorIs(t, books.DeleteBook(ctx, b.ID), service.ErrBookNotFound)

	_, err = books.GetBook(ctx, b.ID)
	assert.ErrorIs(t, err, service.ErrBookNotFound)
}

func TestAuthorLifecycle(t *testing.T) {
	st := newTestStore(t)
	authors := &service.AuthorService{Store: st}
	books := &service.BookService{Store: st}
	ctx := context.Background()

	a, err := authors.CreateAuthor(ctx, "George Sand")
	require.NoError(t, err)

	t.Run("duplicate name", func(t *testing.T) {
		_, err := authors.CreateAuthor(ctx, "George Sand")
		assert.ErrorIs(t, err, service.ErrDuplicateAuthor)
	})

	t.Run("rename", func(t *testing.T) {
		renamed, err := authors.RenameAuthor(ctx, a.ID, "Aurore Dupin")
		require.NoError(t, err)
		assert.Equal(t, "Aurore Dupin", renamed.Name)

		_, err = authors.RenameAuthor(ctx, 9999, "Personne")
		assert.ErrorIs(t, err, service.ErrAuthorNotFound)
	})

	t.Run("delete refused while books remain", func(t *testing.T) {
		b, err := books.CreateBook(ctx, "Indiana", "Aurore Dupin", nil)
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.AuthorID)

		assert.ErrorIs(t, authors.DeleteAuthor(ctx, a.ID), service.ErrAuthorHasBooks)

		require.NoError(t, books.DeleteBook(ctx, b.ID))
		require.NoError(t, authors.DeleteAuthor(ctx, a.ID))

		_, err = authors.GetAuthor(ctx, a.ID)
		assert.ErrorIs(t, err, service.ErrAuthorNotFound)
	})

	t.Run("delete unknown", func(t *testing.T) {
		assert.ErrorIs(t, authors.DeleteAuthor(ctx, 424242), service.ErrAuthorNotFound)
	})
}
