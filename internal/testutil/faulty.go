package testutil

import (
	"context"
	"sync"

	"game-admin/internal/storage"
)

// FaultyStorage wraps a Storage and fails selected methods on demand.
// Methods without an override pass straight through.
type FaultyStorage struct {
	storage.Storage

	mu            sync.RWMutex
	ErrorOnMethod map[string]error
}

// NewFaultyStorage wraps inner
func NewFaultyStorage(inner storage.Storage) *FaultyStorage {
	return &FaultyStorage{Storage: inner, ErrorOnMethod: make(map[string]error)}
}

// FailOn makes method return err until Heal is called
func (f *FaultyStorage) FailOn(method string, err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ErrorOnMethod[method] = err
}

// Heal clears all injected errors
func (f *FaultyStorage) Heal() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.ErrorOnMethod = make(map[string]error)
}

func (f *FaultyStorage) fault(method string) error {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.ErrorOnMethod[method]
}

func (f *FaultyStorage) Health() error {
	if err := f.fault("Health"); err != nil {
		return err
	}
	return f.Storage.Health()
}

func (f *FaultyStorage) ListUsers(ctx context.Context, limit, offset int) ([]*storage.User, int, error) {
	if err := f.fault("ListUsers"); err != nil {
		return nil, 0, err
	}
	return f.Storage.ListUsers(ctx, limit, offset)
}

func (f *FaultyStorage) ListRoles(ctx context.Context) ([]*storage.Role, error) {
	if err := f.fault("ListRoles"); err != nil {
		return nil, err
	}
	return f.Storage.ListRoles(ctx)
}

func (f *FaultyStorage) SetAppConfig(ctx context.Context, cfg *storage.AppConfig) error {
	if err := f.fault("SetAppConfig"); err != nil {
		return err
	}
	return f.Storage.SetAppConfig(ctx, cfg)
}

func (f *FaultyStorage) UpsertScore(ctx context.Context, score *storage.Score) (bool, error) {
	if err := f.fault("UpsertScore"); err != nil {
		return false, err
	}
	return f.Storage.UpsertScore(ctx, score)
}

func (f *FaultyStorage) CreateMail(ctx context.Context, mail *storage.Mail) error {
	if err := f.fault("CreateMail"); err != nil {
		return err
	}
	return f.Storage.CreateMail(ctx, mail)
}
