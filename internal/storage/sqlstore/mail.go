package sqlstore

import (
	"context"
	"database/sql"
	"time"

	"game-admin/internal/storage"
)

const mailColumns = `id, app_id, player_id, title, content, attachments, is_read, created_at, expire_at`

func scanMail(row rowScanner) (*storage.Mail, error) {
	var (
		m         storage.Mail
		createdAt int64
		expireAt  sql.NullInt64
	)
	if err := row.Scan(&m.ID, &m.AppID, &m.PlayerID, &m.Title, &m.Content, &m.Attachments,
		&m.Read, &createdAt, &expireAt); err != nil {
		return nil, err
	}
	m.CreatedAt = fromMillis(createdAt)
	if expireAt.Valid {
		t := fromMillis(expireAt.Int64)
		m.ExpireAt = &t
	}
	return &m, nil
}

func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: toMillis(*t), Valid: true}
}

func (a *Adapter) CreateMail(ctx context.Context, mail *storage.Mail) error {
	if mail.CreatedAt.IsZero() {
		mail.CreatedAt = a.now().UTC()
	}
	_, err := a.exec(ctx, `INSERT INTO mail (`+mailColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		mail.ID, mail.AppID, mail.PlayerID, mail.Title, mail.Content, mail.Attachments,
		mail.Read, toMillis(mail.CreatedAt), nullMillis(mail.ExpireAt))
	return mapError(err, "mail")
}

func (a *Adapter) GetMail(ctx context.Context, id string) (*storage.Mail, error) {
	m, err := scanMail(a.queryRow(ctx, `SELECT `+mailColumns+` FROM mail WHERE id = ?`, id))
	if err != nil {
		return nil, mapError(err, "mail")
	}
	return m, nil
}

func (a *Adapter) ListMail(ctx context.Context, appID, playerID string, now time.Time, limit, offset int) ([]*storage.Mail, int, error) {
	const where = ` FROM mail WHERE app_id = ? AND player_id = ? AND (expire_at IS NULL OR expire_at > ?)`
	nowMs := toMillis(now)

	total, err := a.count(ctx, `SELECT COUNT(*)`+where, appID, playerID, nowMs)
	if err != nil {
		return nil, 0, err
	}

	rows, err := a.query(ctx, `SELECT `+mailColumns+where+` ORDER BY created_at DESC, id LIMIT ? OFFSET ?`,
		appID, playerID, nowMs, limit, offset)
	if err != nil {
		return nil, 0, mapError(err, "mail")
	}
	defer rows.Close()

	mails := make([]*storage.Mail, 0, limit)
	for rows.Next() {
		m, err := scanMail(rows)
		if err != nil {
			return nil, 0, mapError(err, "mail")
		}
		mails = append(mails, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, mapError(err, "mail")
	}
	return mails, total, nil
}

func (a *Adapter) MarkMailRead(ctx context.Context, id string) error {
	res, err := a.exec(ctx, `UPDATE mail SET is_read = ? WHERE id = ?`, true, id)
	return requireAffected(res, err, "mail")
}

func (a *Adapter) DeleteMail(ctx context.Context, id string) error {
	res, err := a.exec(ctx, `DELETE FROM mail WHERE id = ?`, id)
	return requireAffected(res, err, "mail")
}

// DeleteExpiredMail removes mail whose expiry is at or before the given time
func (a *Adapter) DeleteExpiredMail(ctx context.Context, before time.Time) (int64, error) {
	res, err := a.exec(ctx, `DELETE FROM mail WHERE expire_at IS NOT NULL AND expire_at <= ?`, toMillis(before))
	if err != nil {
		return 0, mapError(err, "mail")
	}
	return res.RowsAffected()
}
