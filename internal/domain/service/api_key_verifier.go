package service

// APIKeyVerifier checks caller-supplied keys against the configured secret.
type APIKeyVerifier interface {
	// Verify reports whether key matches. Implementations must not leak timing
	// information about the secret.
	Verify(key string) bool
}
