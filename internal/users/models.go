package users

import "time"

// Record is a stored credential entry. Credential holds the persisted
// "<salt_hex>:<hash_hex>" string; the plaintext password is never stored.
type Record struct {
	Username   string
	Credential string
	CreatedAt  time.Time
}

// Session is a login session issued after successful verification.
type Session struct {
	Token     string
	Username  string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session lapsed before the given instant.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}
