package store

import (
	"context"
	"errors"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite for now)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and to actively stop people from accidentally nesting
// transactions.
type Store interface {
	Users() Users
	Authors() Authors
	Books() Books

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByUUID is used during login and on every authenticated request.
	GetUserByUUID(ctx context.Context, uuid string) (domain.User, error)

	// GetUserByID returns a user by row id.
	GetUserByID(ctx context.Context, id int64) (domain.User, error)

	// CreateUser inserts a new user and returns the generated row id.
	// Returns ErrAlreadyExists if the UUID is taken.
	CreateUser(ctx context.Context, u domain.User) (int64, error)

	// UpdateLastToken records the most recently issued token for a user.
	UpdateLastToken(ctx context.Context, userID int64, token string) error

	// UpdateRoles replaces the user's role set and bumps updated_at.
	UpdateRoles(ctx context.Context, userID int64, roles []string) error
}

type Authors interface {
	GetAuthorByID(ctx context.Context, id int64) (domain.Author, error)

	// GetAuthorByName resolves an author by exact name, used by the
	// create-or-reuse flow when adding books.
	GetAuthorByName(ctx context.Context, name string) (domain.Author, error)

	// ListAuthors returns all authors ordered by name.
	ListAuthors(ctx context.Context) ([]domain.Author, error)

	// CreateAuthor inserts a new author and returns the generated row id.
	// Returns ErrAlreadyExists if the name is taken.
	CreateAuthor(ctx context.Context, name string) (int64, error)

	// UpdateAuthorName renames an author and bumps updated_at.
	UpdateAuthorName(ctx context.Context, id int64, name string) error

	// DeleteAuthor removes an author. The schema restricts deletion while
	// books still reference the author.
	DeleteAuthor(ctx context.Context, id int64) error
}

type Books interface {
	// GetBookByID returns a book joined with its author's name.
	GetBookByID(ctx context.Context, id int64) (domain.Book, error)

	// GetBookByTitleAndAuthor checks the (title, author) uniqueness pair.
	GetBookByTitleAndAuthor(ctx context.Context, title string, authorID int64) (domain.Book, error)

	// ListBooks returns all books with author names, ordered by title.
	ListBooks(ctx context.Context) ([]domain.Book, error)

	// CreateBook inserts a new book and returns the generated row id.
	// Returns ErrAlreadyExists when (title, author_id) is taken.
	CreateBook(ctx context.Context, b domain.Book) (int64, error)

	// UpdateBook rewrites title, author and published year, bumping updated_at.
	UpdateBook(ctx context.Context, b domain.Book) error

	// DeleteBook removes a book.
	DeleteBook(ctx context.Context, id int64) error

	// CountByAuthor reports how many books reference the author.
	CountByAuthor(ctx context.Context, authorID int64) (int64, error)
}
