// Package auth implements credential provisioning, verification, and login
// sessions over the users store.
//
// A credential is a per-user random salt plus the SHA-256 digest of the
// plaintext password concatenated with that salt, persisted as a single
// "<salt_hex>:<hash_hex>" string. Verification recomputes the digest with the
// stored salt and compares in constant time. Unknown usernames and wrong
// passwords are deliberately indistinguishable: both surface as
// ErrInvalidCredentials so login responses cannot be used to enumerate
// accounts.
//
// There is no retry, lockout, or rate-limiting here; callers own that policy.
package auth
