package sqlite

import (
	"context"
	"database/sql"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
	"github.com/atelierlivre/biblio/internal/biblio/store"
)

type authorsRepo struct {
	db dbtx
}

const authorColumns = `id, name, created_at, updated_at`

func scanAuthor(row *sql.Row) (domain.Author, error) {
	var a domain.Author
	if err := row.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return domain.Author{}, mapNotFound(err)
	}
	return a, nil
}

func (r *authorsRepo) GetAuthorByID(ctx context.Context, id int64) (domain.Author, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE id = ?`, id)
	return scanAuthor(row)
}

func (r *authorsRepo) GetAuthorByName(ctx context.Context, name string) (domain.Author, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+authorColumns+` FROM authors WHERE name = ?`, name)
	return scanAuthor(row)
}

func (r *authorsRepo) ListAuthors(ctx context.Context) ([]domain.Author, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+authorColumns+` FROM authors ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Author
	for rows.Next() {
		var a domain.Author
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *authorsRepo) CreateAuthor(ctx context.Context, name string) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO authors (name) VALUES (?)`, name)
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *authorsRepo) UpdateAuthorName(ctx context.Context, id int64, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE authors SET name = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		name, id)
	if err != nil {
		return mapConstraint(err)
	}
	return requireRowAffected(res)
}

func (r *authorsRepo) DeleteAuthor(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM authors WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

// requireRowAffected maps zero-row updates/deletes to ErrNotFound so services
// don't need a separate existence probe.
func requireRowAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
