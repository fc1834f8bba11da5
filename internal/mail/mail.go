// Package mail delivers admin-authored messages to players' in-game inboxes
// and purges them once they expire.
package mail

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"game-admin/internal/common/errors"
	"game-admin/internal/common/logging"
	"game-admin/internal/common/pagination"
	"game-admin/internal/common/timefmt"
	"game-admin/internal/common/utils"
	"game-admin/internal/locks"
	"game-admin/internal/storage"
)

// Store is the part of storage used for mail
type Store interface {
	CreateMail(ctx context.Context, mail *storage.Mail) error
	GetMail(ctx context.Context, id string) (*storage.Mail, error)
	ListMail(ctx context.Context, appID, playerID string, now time.Time, limit, offset int) ([]*storage.Mail, int, error)
	MarkMailRead(ctx context.Context, id string) error
	DeleteMail(ctx context.Context, id string) error
	DeleteExpiredMail(ctx context.Context, before time.Time) (int64, error)
}

// Message is a new mail to deliver
type Message struct {
	AppID       string
	PlayerID    string
	Title       string
	Content     string
	Attachments string
	ExpireAt    *time.Time
}

// View is a mail as returned to admins, with formatted timestamps
type View struct {
	ID          string `json:"mailId"`
	AppID       string `json:"appId"`
	PlayerID    string `json:"playerId"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	Attachments string `json:"attachments,omitempty"`
	Read        bool   `json:"read"`
	CreatedAt   string `json:"createdAt"`
	ExpireAt    string `json:"expireAt,omitempty"`
}

func newView(m *storage.Mail) View {
	return View{
		ID:          m.ID,
		AppID:       m.AppID,
		PlayerID:    m.PlayerID,
		Title:       m.Title,
		Content:     m.Content,
		Attachments: m.Attachments,
		Read:        m.Read,
		CreatedAt:   timefmt.Format(m.CreatedAt),
		ExpireAt:    timefmt.FormatPtr(m.ExpireAt),
	}
}

// Option configures a Service
type Option func(*Service)

// WithClock replaces time.Now, for tests
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// WithLocker makes scheduled purges take a lock first, so only one
// instance purges per tick
func WithLocker(m locks.Manager) Option {
	return func(s *Service) {
		s.locks = m
	}
}

// Service implements the mail operations
type Service struct {
	store  Store
	now    func() time.Time
	locks  locks.Manager
	logger logging.Logger

	mu     sync.Mutex
	purger *purger
}

// New creates a mail service
func New(store Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		now:    time.Now,
		logger: logging.GetGlobalLogger().WithFields(logging.String("component", "mail")),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ParseExpiry reads an expiry given either as "YYYY-MM-DD HH:mm:ss" in the
// configured zone or as a lifetime such as "72h" or "7d" counted from now.
// An empty string means the mail never expires.
func ParseExpiry(s string, now time.Time) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	if t, err := timefmt.Parse(s); err == nil {
		return &t, nil
	}

	d, err := utils.ParseDuration(s)
	if err != nil || d <= 0 {
		return nil, errors.ValidationError("expireAt must be YYYY-MM-DD HH:mm:ss or a positive duration such as 7d").
			WithReason("invalid_expire_at")
	}
	t := now.Add(d)
	return &t, nil
}

// Send stores a new unread mail
func (s *Service) Send(ctx context.Context, msg Message) (*View, error) {
	now := s.now()
	if msg.ExpireAt != nil && !msg.ExpireAt.After(now) {
		return nil, errors.ValidationError("expireAt must be in the future").WithReason("invalid_expire_at")
	}

	m := &storage.Mail{
		ID:          uuid.NewString(),
		AppID:       msg.AppID,
		PlayerID:    msg.PlayerID,
		Title:       msg.Title,
		Content:     msg.Content,
		Attachments: msg.Attachments,
		CreatedAt:   now.UTC(),
		ExpireAt:    msg.ExpireAt,
	}
	if err := s.store.CreateMail(ctx, m); err != nil {
		return nil, err
	}

	s.logger.Info("Mail sent",
		logging.String("mail_id", m.ID),
		logging.String("app_id", m.AppID),
		logging.String("player_id", m.PlayerID))

	v := newView(m)
	return &v, nil
}

// List returns a page of a player's unexpired mail, newest first
func (s *Service) List(ctx context.Context, appID, playerID string, page pagination.Params) ([]View, int, error) {
	mails, total, err := s.store.ListMail(ctx, appID, playerID, s.now(), page.Limit, page.Offset)
	if err != nil {
		return nil, 0, err
	}

	views := make([]View, len(mails))
	for i, m := range mails {
		views[i] = newView(m)
	}
	return views, total, nil
}

// Read marks a mail as read and returns it. Expired mail is reported as not
// found even before the purger removes it.
func (s *Service) Read(ctx context.Context, id string) (*View, error) {
	m, err := s.store.GetMail(ctx, id)
	if err != nil {
		return nil, err
	}
	if m.Expired(s.now()) {
		return nil, errors.NotFoundError("mail")
	}

	if !m.Read {
		if err := s.store.MarkMailRead(ctx, id); err != nil {
			return nil, err
		}
		m.Read = true
	}

	v := newView(m)
	return &v, nil
}

// Delete removes a mail
func (s *Service) Delete(ctx context.Context, id string) error {
	return s.store.DeleteMail(ctx, id)
}

// Purge removes all mail that has expired by now
func (s *Service) Purge(ctx context.Context) (int64, error) {
	removed, err := s.store.DeleteExpiredMail(ctx, s.now())
	if err != nil {
		return 0, err
	}
	if removed > 0 {
		s.logger.Info("Purged expired mail", logging.Int64("removed", removed))
	}
	return removed, nil
}
