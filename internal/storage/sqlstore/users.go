package sqlstore

import (
	"context"

	"game-admin/internal/storage"
)

const userColumns = `id, username, password_hash, roles, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*storage.User, error) {
	var (
		u                    storage.User
		roles                string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &roles, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	u.Roles = decodeList(roles)
	u.CreatedAt = fromMillis(createdAt)
	u.UpdatedAt = fromMillis(updatedAt)
	return &u, nil
}

func (a *Adapter) CreateUser(ctx context.Context, user *storage.User) error {
	now := a.now().UTC()
	if user.CreatedAt.IsZero() {
		user.CreatedAt = now
	}
	user.UpdatedAt = now

	_, err := a.exec(ctx, `INSERT INTO users (`+userColumns+`) VALUES (?, ?, ?, ?, ?, ?)`,
		user.ID, user.Username, user.PasswordHash, encodeList(user.Roles),
		toMillis(user.CreatedAt), toMillis(user.UpdatedAt))
	return mapError(err, "user")
}

func (a *Adapter) GetUser(ctx context.Context, id string) (*storage.User, error) {
	u, err := scanUser(a.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = ?`, id))
	if err != nil {
		return nil, mapError(err, "user")
	}
	return u, nil
}

func (a *Adapter) GetUserByUsername(ctx context.Context, username string) (*storage.User, error) {
	u, err := scanUser(a.queryRow(ctx, `SELECT `+userColumns+` FROM users WHERE username = ?`, username))
	if err != nil {
		return nil, mapError(err, "user")
	}
	return u, nil
}

func (a *Adapter) ListUsers(ctx context.Context, limit, offset int) ([]*storage.User, int, error) {
	total, err := a.CountUsers(ctx)
	if err != nil {
		return nil, 0, err
	}

	rows, err := a.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY created_at, username LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, 0, mapError(err, "user")
	}
	defer rows.Close()

	users := make([]*storage.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, mapError(err, "user")
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "user")
	}
	return users, total, nil
}

func (a *Adapter) UpdateUser(ctx context.Context, user *storage.User) error {
	user.UpdatedAt = a.now().UTC()
	res, err := a.exec(ctx, `UPDATE users SET username = ?, password_hash = ?, roles = ?, updated_at = ? WHERE id = ?`,
		user.Username, user.PasswordHash, encodeList(user.Roles), toMillis(user.UpdatedAt), user.ID)
	return requireAffected(res, err, "user")
}

func (a *Adapter) DeleteUser(ctx context.Context, id string) error {
	res, err := a.exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	return requireAffected(res, err, "user")
}

func (a *Adapter) CountUsers(ctx context.Context) (int, error) {
	return a.count(ctx, `SELECT COUNT(*) FROM users`)
}

