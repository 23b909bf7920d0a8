package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"marquee/internal/config"
)

// storedTimeFormat keeps the fractional seconds fixed-width so stored
// timestamps compare correctly as strings in SQL (RFC3339Nano trims
// trailing zeros and would not).
const storedTimeFormat = "2006-01-02T15:04:05.000000000Z07:00"

// Store manages credential and session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the user database and applies migrations.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	dbPath := cfg.DatabasePath()
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	store := &Store{db: db, path: dbPath}
	if err := store.applyMigrations(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the on-disk location of the database.
func (s *Store) Path() string {
	return s.path
}

// InsertUser writes a new credential record. The username must not already
// exist; ErrDuplicateUser is returned and nothing is written otherwise.
func (s *Store) InsertUser(ctx context.Context, username, credential string) error {
	if strings.TrimSpace(username) == "" {
		return errors.New("username must not be empty")
	}
	if credential == "" {
		return errors.New("credential must not be empty")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO users (username, credential, created_at) VALUES (?, ?, ?)`,
		username,
		credential,
		time.Now().UTC().Format(storedTimeFormat),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: %s", ErrDuplicateUser, username)
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// Credential returns the stored "<salt>:<hash>" string for the username.
// ErrUserNotFound is returned when no record exists.
func (s *Store) Credential(ctx context.Context, username string) (string, error) {
	row := s.db.QueryRowContext(ctx, `SELECT credential FROM users WHERE username = ?`, username)
	var credential string
	if err := row.Scan(&credential); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("read credential: %w", err)
	}
	return credential, nil
}

// GetUser fetches a full credential record by username.
func (s *Store) GetUser(ctx context.Context, username string) (*Record, error) {
	row := s.db.QueryRowContext(ctx, `SELECT username, credential, created_at FROM users WHERE username = ?`, username)
	record, err := scanRecord(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return record, nil
}

// ListUsers returns every credential record ordered by username.
func (s *Store) ListUsers(ctx context.Context) ([]*Record, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT username, credential, created_at FROM users ORDER BY username`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var records []*Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// DeleteUser removes a credential record and, via the schema's cascade, any
// sessions issued for it. Returns false when no record existed.
func (s *Store) DeleteUser(ctx context.Context, username string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM users WHERE username = ?`, username)
	if err != nil {
		return false, fmt.Errorf("delete user: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// CountUsers returns the number of credential records.
func (s *Store) CountUsers(ctx context.Context) (int, error) {
	row := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM users`)
	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return count, nil
}

// InsertSession persists a login session.
func (s *Store) InsertSession(ctx context.Context, session Session) error {
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO sessions (token, username, created_at, expires_at) VALUES (?, ?, ?, ?)`,
		session.Token,
		session.Username,
		session.CreatedAt.UTC().Format(storedTimeFormat),
		session.ExpiresAt.UTC().Format(storedTimeFormat),
	)
	if err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	return nil
}

// GetSession fetches a session by token. ErrSessionNotFound is returned when
// the token is unknown.
func (s *Store) GetSession(ctx context.Context, token string) (*Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT token, username, created_at, expires_at FROM sessions WHERE token = ?`, token)
	var (
		session    Session
		createdRaw string
		expiresRaw string
	)
	if err := row.Scan(&session.Token, &session.Username, &createdRaw, &expiresRaw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		session.CreatedAt = created
	}
	if expires, err := parseTimeString(expiresRaw); err == nil {
		session.ExpiresAt = expires
	}
	return &session, nil
}

// DeleteSession removes a session by token. Returns false when no session existed.
func (s *Store) DeleteSession(ctx context.Context, token string) (bool, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = ?`, token)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return affected > 0, nil
}

// DeleteExpiredSessions purges sessions that lapsed before the cutoff.
func (s *Store) DeleteExpiredSessions(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(
		ctx,
		`DELETE FROM sessions WHERE expires_at <= ?`,
		cutoff.UTC().Format(storedTimeFormat),
	)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", err)
	}
	return res.RowsAffected()
}

func scanRecord(scanner interface{ Scan(dest ...any) error }) (*Record, error) {
	var (
		record     Record
		createdRaw string
	)
	if err := scanner.Scan(&record.Username, &record.Credential, &createdRaw); err != nil {
		return nil, err
	}
	if created, err := parseTimeString(createdRaw); err == nil {
		record.CreatedAt = created
	}
	return &record, nil
}

func parseTimeString(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, errors.New("empty")
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", value)
}

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
