package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// credentialDelimiter joins the salt and hash in the stored credential. Both
// halves are hex-encoded, so the delimiter can never occur inside either.
const credentialDelimiter = ":"

// saltBytes is the length of the random salt before hex encoding.
const saltBytes = 32

// NewSalt returns a fresh hex-encoded random salt.
func NewSalt() (string, error) {
	buf := make([]byte, saltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// HashPassword computes the hex digest of SHA-256(password || salt).
func HashPassword(password, salt string) string {
	sum := sha256.Sum256([]byte(password + salt))
	return hex.EncodeToString(sum[:])
}

// EncodeCredential joins a salt and hash into the stored representation.
func EncodeCredential(salt, hash string) string {
	return salt + credentialDelimiter + hash
}

// SplitCredential splits a stored credential into its salt and hash. An error
// means the record is corrupt, not that the credentials are wrong.
func SplitCredential(stored string) (salt, hash string, err error) {
	salt, hash, ok := strings.Cut(stored, credentialDelimiter)
	if !ok || salt == "" || hash == "" {
		return "", "", fmt.Errorf("malformed credential record")
	}
	return salt, hash, nil
}
