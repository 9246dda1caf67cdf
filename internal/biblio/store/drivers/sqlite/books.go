package sqlite

import (
	"context"
	"database/sql"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
)

type booksRepo struct {
	db dbtx
}

const bookColumns = `b.id, b.title, b.author_id, a.name, b.published_year, b.created_at, b.updated_at`

const bookJoin = `FROM books b JOIN authors a ON a.id = b.author_id`

func scanBook(row *sql.Row) (domain.Book, error) {
	var (
		b    domain.Book
		year sql.NullInt64
	)
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &year, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return domain.Book{}, mapNotFound(err)
	}
	b.PublishedYear = mapNullInt64Ptr(year)
	return b, nil
}

func (r *booksRepo) GetBookByID(ctx context.Context, id int64) (domain.Book, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` `+bookJoin+` WHERE b.id = ?`, id)
	return scanBook(row)
}

func (r *booksRepo) GetBookByTitleAndAuthor(ctx context.Context, title string, authorID int64) (domain.Book, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+bookColumns+` `+bookJoin+` WHERE b.title = ? AND b.author_id = ?`,
		title, authorID)
	return scanBook(row)
}

func (r *booksRepo) ListBooks(ctx context.Context) ([]domain.Book, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+bookColumns+` `+bookJoin+` ORDER BY b.title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Book
	for rows.Next() {
		var (
			b    domain.Book
			year sql.NullInt64
		)
		if err := rows.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &year, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.PublishedYear = mapNullInt64Ptr(year)
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *booksRepo) CreateBook(ctx context.Context, b domain.Book) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO books (title, author_id, published_year) VALUES (?, ?, ?)`,
		b.Title, b.AuthorID, mapOptionalInt64(b.PublishedYear))
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *booksRepo) UpdateBook(ctx context.Context, b domain.Book) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE books SET title = ?, author_id = ?, published_year = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		b.Title, b.AuthorID, mapOptionalInt64(b.PublishedYear), b.ID)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *booksRepo) DeleteBook(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM books WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *booksRepo) CountByAuthor(ctx context.Context, authorID int64) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM books WHERE author_id = ?`, authorID).Scan(&n)
	return n, err
}
