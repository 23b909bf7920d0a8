package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"marquee/internal/logging"
	"marquee/internal/users"
)

// Store is the persistence surface the authenticator needs. *users.Store
// satisfies it; tests may substitute their own.
type Store interface {
	InsertUser(ctx context.Context, username, credential string) error
	Credential(ctx context.Context, username string) (string, error)
	InsertSession(ctx context.Context, session users.Session) error
	GetSession(ctx context.Context, token string) (*users.Session, error)
	DeleteSession(ctx context.Context, token string) (bool, error)
	DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error)
}

// Authenticator provisions and verifies credentials and manages sessions.
// Construct one at process start and pass it where needed; it holds no state
// beyond the store handle.
type Authenticator struct {
	store      Store
	sessionTTL time.Duration
	logger     *slog.Logger
	now        func() time.Time
}

// Option configures an Authenticator.
type Option func(*Authenticator)

// WithLogger attaches a logger. Passwords are never logged.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Authenticator) {
		if logger != nil {
			a.logger = logger.With(slog.String(logging.FieldComponent, "auth"))
		}
	}
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Authenticator) {
		if now != nil {
			a.now = now
		}
	}
}

// New creates an Authenticator over the supplied store.
func New(store Store, sessionTTL time.Duration, opts ...Option) *Authenticator {
	if sessionTTL <= 0 {
		sessionTTL = 12 * time.Hour
	}
	a := &Authenticator{
		store:      store,
		sessionTTL: sessionTTL,
		logger:     logging.NewNop(),
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Provision creates a credential record for a new user. The username must be
// non-empty and not already present; ErrDuplicateUser is returned and nothing
// is written otherwise.
func (a *Authenticator) Provision(ctx context.Context, username, password string) error {
	username = strings.TrimSpace(username)
	if username == "" {
		return errors.New("username must not be empty")
	}
	if password == "" {
		return errors.New("password must not be empty")
	}

	salt, err := NewSalt()
	if err != nil {
		return err
	}
	credential := EncodeCredential(salt, HashPassword(password, salt))

	if err := a.store.InsertUser(ctx, username, credential); err != nil {
		if errors.Is(err, users.ErrDuplicateUser) {
			return fmt.Errorf("%w: %s", ErrDuplicateUser, username)
		}
		return fmt.Errorf("provision %s: %w", username, err)
	}
	a.logger.Info("user provisioned", slog.String("username", username))
	return nil
}

// decoySalt is hashed against when the username does not exist, keeping the
// unknown-user and wrong-password paths comparable in cost.
var decoySalt = strings.Repeat("00", saltBytes)

// Verify decides whether the claimed username and password are authentic.
// Unknown users and wrong passwords both return ErrInvalidCredentials; any
// other error is a storage fault.
func (a *Authenticator) Verify(ctx context.Context, username, password string) error {
	stored, err := a.store.Credential(ctx, username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			// Hash anyway so the unknown-user path costs the same as a
			// wrong password.
			HashPassword(password, decoySalt)
			return ErrInvalidCredentials
		}
		return fmt.Errorf("lookup credential: %w", err)
	}

	salt, expected, err := SplitCredential(stored)
	if err != nil {
		return fmt.Errorf("credential record for %s: %w", username, err)
	}

	candidate := HashPassword(password, salt)
	if subtle.ConstantTimeCompare([]byte(candidate), []byte(expected)) != 1 {
		return ErrInvalidCredentials
	}
	return nil
}

// Login verifies the credentials and, on success, issues a new session.
func (a *Authenticator) Login(ctx context.Context, username, password string) (*users.Session, error) {
	if err := a.Verify(ctx, username, password); err != nil {
		return nil, err
	}

	now := a.now().UTC()
	session := users.Session{
		Token:     uuid.NewString(),
		Username:  username,
		CreatedAt: now,
		ExpiresAt: now.Add(a.sessionTTL),
	}
	if err := a.store.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	// Opportunistic cleanup; stale rows are harmless if this fails.
	if _, err := a.store.DeleteExpiredSessions(ctx, now); err != nil {
		a.logger.Warn("purge expired sessions", slog.Any("error", err))
	}

	a.logger.Info("login verified", slog.String("username", username))
	return &session, nil
}

// Session resolves a token to an unexpired session. Expired sessions are
// deleted and reported as ErrSessionExpired; unknown tokens as ErrNoSession.
func (a *Authenticator) Session(ctx context.Context, token string) (*users.Session, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, ErrNoSession
	}
	session, err := a.store.GetSession(ctx, token)
	if err != nil {
		if errors.Is(err, users.ErrSessionNotFound) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("lookup session: %w", err)
	}
	if session.Expired(a.now().UTC()) {
		_, _ = a.store.DeleteSession(ctx, token)
		return nil, ErrSessionExpired
	}
	return session, nil
}

// Logout removes a session. Removing an already-absent session is not an error.
func (a *Authenticator) Logout(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return nil
	}
	if _, err := a.store.DeleteSession(ctx, token); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// Default demo account, matching the sample configuration's
// seed_default_user switch.
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// SeedDefaultUser provisions the demo account, ignoring the duplicate case so
// repeated startups are idempotent.
func (a *Authenticator) SeedDefaultUser(ctx context.Context) error {
	err := a.Provision(ctx, DefaultUsername, DefaultPassword)
	if errors.Is(err, ErrDuplicateUser) {
		return nil
	}
	return err
}
