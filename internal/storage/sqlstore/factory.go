package sqlstore

import (
	"game-admin/internal/storage"
)

type Factory struct {
	dialect Dialect
}

func (f *Factory) Create(config storage.StorageConfig) (storage.Storage, error) {
	cfg, err := configFrom(config, f.dialect)
	if err != nil {
		return nil, err
	}
	return Open(cfg)
}

func (f *Factory) GetType() string {
	return string(f.dialect)
}

func init() {
	storage.Register(string(DialectSQLite), &Factory{dialect: DialectSQLite})
	storage.Register(string(DialectPostgres), &Factory{dialect: DialectPostgres})
}
