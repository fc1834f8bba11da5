package sqlstore

import (
	"context"

	"game-admin/internal/storage"
)

const roleColumns = `name, description, permissions, created_at, updated_at`

func scanRole(row rowScanner) (*storage.Role, error) {
	var (
		r                    storage.Role
		perms                string
		createdAt, updatedAt int64
	)
	if err := row.Scan(&r.Name, &r.Description, &perms, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	r.Permissions = decodeList(perms)
	r.CreatedAt = fromMillis(createdAt)
	r.UpdatedAt = fromMillis(updatedAt)
	return &r, nil
}

func (a *Adapter) CreateRole(ctx context.Context, role *storage.Role) error {
	now := a.now().UTC()
	role.CreatedAt = now
	role.UpdatedAt = now

	_, err := a.exec(ctx, `INSERT INTO roles (`+roleColumns+`) VALUES (?, ?, ?, ?, ?)`,
		role.Name, role.Description, encodeList(role.Permissions),
		toMillis(role.CreatedAt), toMillis(role.UpdatedAt))
	return mapError(err, "role")
}

func (a *Adapter) GetRole(ctx context.Context, name string) (*storage.Role, error) {
	r, err := scanRole(a.queryRow(ctx, `SELECT `+roleColumns+` FROM roles WHERE name = ?`, name))
	if err != nil {
		return nil, mapError(err, "role")
	}
	return r, nil
}

func (a *Adapter) ListRoles(ctx context.Context) ([]*storage.Role, error) {
	rows, err := a.query(ctx, `SELECT `+roleColumns+` FROM roles ORDER BY name`)
	if err != nil {
		return nil, mapError(err, "role")
	}
	defer rows.Close()

	var roles []*storage.Role
	for rows.Next() {
		r, err := scanRole(rows)
		if err != nil {
			return nil, mapError(err, "role")
		}
		roles = append(roles, r)
	}
	return roles, mapError(rows.Err(), "role")
}

func (a *Adapter) UpdateRole(ctx context.Context, role *storage.Role) error {
	role.UpdatedAt = a.now().UTC()
	res, err := a.exec(ctx, `UPDATE roles SET description = ?, permissions = ?, updated_at = ? WHERE name = ?`,
		role.Description, encodeList(role.Permissions), toMillis(role.UpdatedAt), role.Name)
	return requireAffected(res, err, "role")
}

func (a *Adapter) DeleteRole(ctx context.Context, name string) error {
	res, err := a.exec(ctx, `DELETE FROM roles WHERE name = ?`, name)
	return requireAffected(res, err, "role")
}
