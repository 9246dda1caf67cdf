package sqlite

import (
	"context"
	"database/sql"

	"github.com/atelierlivre/biblio/internal/biblio/domain"
)

type usersRepo struct {
	db dbtx
}

const userColumns = `id, uuid, password_hash, roles, last_token, created_at, updated_at`

func (r *usersRepo) scanUser(row *sql.Row) (domain.User, error) {
	var (
		u         domain.User
		roles     string
		lastToken sql.NullString
	)
	err := row.Scan(&u.ID, &u.UUID, &u.PasswordHash, &roles, &lastToken, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}

	u.Roles = splitRoles(roles)
	u.LastToken = mapNullStringPtr(lastToken)
	return u, nil
}

func (r *usersRepo) GetUserByUUID(ctx context.Context, uuid string) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE uuid = ?`, uuid)
	return r.scanUser(row)
}

func (r *usersRepo) GetUserByID(ctx context.Context, id int64) (domain.User, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	return r.scanUser(row)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO users (uuid, password_hash, roles) VALUES (?, ?, ?)`,
		u.UUID, u.PasswordHash, joinRoles(u.Roles))
	if err != nil {
		return 0, mapConstraint(err)
	}
	return res.LastInsertId()
}

func (r *usersRepo) UpdateLastToken(ctx context.Context, userID int64, token string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET last_token = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		token, userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}

func (r *usersRepo) UpdateRoles(ctx context.Context, userID int64, roles []string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET roles = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		joinRoles(roles), userID)
	if err != nil {
		return err
	}
	return requireRowAffected(res)
}
