package signature

import (
	"time"

	"game-admin/internal/common/logging"
)

// Authenticator validates incoming requests. The zero value is not usable;
// create one with NewAuthenticator.
type Authenticator struct {
	config *Config
	now    func() time.Time
	logger logging.Logger
}

// Option configures an Authenticator
type Option func(*Authenticator)

// WithClock replaces the clock used by the freshness check
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		a.now = now
	}
}

// WithLogger sets the logger used to report rejected requests
func WithLogger(logger logging.Logger) Option {
	return func(a *Authenticator) {
		a.logger = logger
	}
}

// NewAuthenticator creates an authenticator. A nil config means DefaultConfig.
func NewAuthenticator(config *Config, opts ...Option) *Authenticator {
	if config == nil {
		config = DefaultConfig()
	} else {
		config.SetDefaults()
	}

	a := &Authenticator{
		config: config,
		now:    time.Now,
		logger: logging.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Config returns the active configuration
func (a *Authenticator) Config() Config {
	return *a.config
}

// VerifyFreshness checks the request timestamp against the configured tolerance
func (a *Authenticator) VerifyFreshness(r Request) bool {
	return verifyFreshnessAt(r, a.config.Tolerance(), a.now())
}

// ValidateRequest runs the checks in order and stops at the first failure:
// payload present, token present unless this is a login call, timestamp fresh
// when enabled, signature valid.
func (a *Authenticator) ValidateRequest(r Request, isLoginRequest bool) Verdict {
	verdict := a.validate(r, isLoginRequest)
	if !verdict.OK() {
		a.logger.Debug("Request rejected",
			logging.String("reason", verdict.Reason()),
			logging.Bool("login", isLoginRequest),
		)
	}
	return verdict
}

func (a *Authenticator) validate(r Request, isLoginRequest bool) Verdict {
	if r == nil {
		return MissingPayload
	}

	if !isLoginRequest && !r.Has(FieldToken) {
		return MissingToken
	}

	if a.config.FreshnessEnabled && !a.VerifyFreshness(r) {
		return InvalidTimestamp
	}

	if !VerifySignature(r) {
		return InvalidSignature
	}

	return Ok
}

var defaultAuthenticator = NewAuthenticator(nil)

// ValidateRequest validates r with the default configuration, where the
// freshness check is disabled.
func ValidateRequest(r Request, isLoginRequest bool) Verdict {
	return defaultAuthenticator.ValidateRequest(r, isLoginRequest)
}
