// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"strings"
	"sync/atomic"

	"orgs/config"
	"orgs/internal/domain/service"
	"orgs/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrNoAPIKey is returned when neither a key nor a key hash is configured.
var ErrNoAPIKey = errors.New("no API key configured")

// apiKeyVerifier compares caller keys against a plain secret in constant time.
type apiKeyVerifier struct {
	key []byte
}

// bcryptKeyVerifier checks caller keys against a bcrypt hash of the secret.
// The digest of the last accepted key is kept so repeat callers skip bcrypt.
type bcryptKeyVerifier struct {
	hash     []byte
	compare  func(hash, key []byte) error
	verified atomic.Pointer[[sha256.Size]byte]
}

func newBcryptKeyVerifier(hash []byte) *bcryptKeyVerifier {
	return &bcryptKeyVerifier{hash: hash, compare: bcrypt.CompareHashAndPassword}
}

// NewAPIKeyVerifier is the constructor used by Fx. A configured hash takes
// precedence over the plain key.
func NewAPIKeyVerifier(cfg *config.Config) (service.APIKeyVerifier, error) {
	if hash := strings.TrimSpace(cfg.API.KeyHash); hash != "" {
		if _, err := bcrypt.Cost([]byte(hash)); err != nil {
			return nil, errors.Wrap(err, "api.keyHash is not a bcrypt hash")
		}

		return newBcryptKeyVerifier([]byte(hash)), nil
	}

	if cfg.API.Key == "" {
		return nil, ErrNoAPIKey
	}

	return &apiKeyVerifier{key: []byte(cfg.API.Key)}, nil
}

// Verify implements service.APIKeyVerifier.
func (v *apiKeyVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(key), v.key) == 1
}

// Verify implements service.APIKeyVerifier.
func (v *bcryptKeyVerifier) Verify(key string) bool {
	if key == "" {
		return false
	}

	digest := sha256.Sum256([]byte(key))
	if last := v.verified.Load(); last != nil && subtle.ConstantTimeCompare(digest[:], last[:]) == 1 {
		return true
	}

	// err is nil if the key and hash match.
	if v.compare(v.hash, []byte(key)) != nil {
		return false
	}
	v.verified.Store(&digest)

	return true
}
