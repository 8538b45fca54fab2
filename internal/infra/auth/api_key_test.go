package auth

import (
	"testing"

	"orgs/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestAPIKeyVerifier_Plain(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.Key = "supersecret"

	verifier, err := NewAPIKeyVerifier(cfg)
	require.NoError(t, err)

	assert.True(t, verifier.Verify("supersecret"))
	assert.False(t, verifier.Verify("supersecreT"))
	assert.False(t, verifier.Verify("supersecret "))
	assert.False(t, verifier.Verify(""))
}

func TestAPIKeyVerifier_Hashed(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.API.Key = "ignored-when-hash-set"
	cfg.API.KeyHash = string(hash)

	verifier, err := NewAPIKeyVerifier(cfg)
	require.NoError(t, err)

	assert.True(t, verifier.Verify("supersecret"))
	assert.False(t, verifier.Verify("ignored-when-hash-set"))
	assert.False(t, verifier.Verify(""))
}

func TestBcryptKeyVerifier_RemembersLastKey(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecret"), bcrypt.MinCost)
	require.NoError(t, err)

	verifier := newBcryptKeyVerifier(hash)
	calls := 0
	verifier.compare = func(hash, key []byte) error {
		calls++
		return bcrypt.CompareHashAndPassword(hash, key)
	}

	assert.True(t, verifier.Verify("supersecret"))
	assert.True(t, verifier.Verify("supersecret"))
	assert.Equal(t, 1, calls)

	assert.False(t, verifier.Verify("wrong"))
	assert.False(t, verifier.Verify("wrong"))
	assert.Equal(t, 3, calls)

	// A rejected key leaves the remembered one in place.
	assert.True(t, verifier.Verify("supersecret"))
	assert.Equal(t, 3, calls)
}

func TestAPIKeyVerifier_InvalidHash(t *testing.T) {
	cfg := &config.Config{}
	cfg.API.KeyHash = "not-a-hash"

	_, err := NewAPIKeyVerifier(cfg)

	assert.Error(t, err)
}

func TestAPIKeyVerifier_NothingConfigured(t *testing.T) {
	_, err := NewAPIKeyVerifier(&config.Config{})

	assert.ErrorIs(t, err, ErrNoAPIKey)
}
