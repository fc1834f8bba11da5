package sqlstore

import (
	"context"

	"game-admin/internal/storage"
)

func scanAppConfig(row rowScanner) (*storage.AppConfig, error) {
	var (
		c         storage.AppConfig
		updatedAt int64
	)
	if err := row.Scan(&c.AppID, &c.Key, &c.Value, &updatedAt); err != nil {
		return nil, err
	}
	c.UpdatedAt = fromMillis(updatedAt)
	return &c, nil
}

func (a *Adapter) GetAppConfigs(ctx context.Context, appID string) ([]*storage.AppConfig, error) {
	rows, err := a.query(ctx, `SELECT app_id, config_key, config_value, updated_at
		FROM app_configs WHERE app_id = ? ORDER BY config_key`, appID)
	if err != nil {
		return nil, mapError(err, "app config")
	}
	defer rows.Close()

	configs := []*storage.AppConfig{}
	for rows.Next() {
		c, err := scanAppConfig(rows)
		if err != nil {
			return nil, mapError(err, "app config")
		}
		configs = append(configs, c)
	}
	return configs, mapError(rows.Err(), "app config")
}

func (a *Adapter) GetAppConfig(ctx context.Context, appID, key string) (*storage.AppConfig, error) {
	c, err := scanAppConfig(a.queryRow(ctx, `SELECT app_id, config_key, config_value, updated_at
		FROM app_configs WHERE app_id = ? AND config_key = ?`, appID, key))
	if err != nil {
		return nil, mapError(err, "app config")
	}
	return c, nil
}

// SetAppConfig inserts or replaces a single key
func (a *Adapter) SetAppConfig(ctx context.Context, cfg *storage.AppConfig) error {
	cfg.UpdatedAt = a.now().UTC()
	_, err := a.exec(ctx, `INSERT INTO app_configs (app_id, config_key, config_value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (app_id, config_key) DO UPDATE
		SET config_value = excluded.config_value, updated_at = excluded.updated_at`,
		cfg.AppID, cfg.Key, cfg.Value, toMillis(cfg.UpdatedAt))
	return mapError(err, "app config")
}

func (a *Adapter) DeleteAppConfig(ctx context.Context, appID, key string) error {
	res, err := a.exec(ctx, `DELETE FROM app_configs WHERE app_id = ? AND config_key = ?`, appID, key)
	return requireAffected(res, err, "app config")
}
