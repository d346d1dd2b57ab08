package security

import "time"

// NewTestTokenProvider returns a TokenProvider backed by a fresh ES256 key, for tests in other packages.
func NewTestTokenProvider() (*TokenProvider, error) {
	signer, pub, err := GenerateEphemeralKey()
	if err != nil {
		return nil, err
	}
	return NewTokenProvider(signer, pub, "palay-test", "palay-test-api", time.Hour), nil
}
