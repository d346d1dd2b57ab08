package otp

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
)

const codeDigits = 6

// Generate returns a 6-digit numeric code (e.g. "042917"). Each digit is uniform over 0-9:
// bytes >= 250 are discarded so that the modulo does not favour low digits.
func Generate() (string, error) {
	s := make([]byte, 0, codeDigits)
	buf := make([]byte, codeDigits*2)
	for len(s) < codeDigits {
		if _, err := rand.Read(buf); err != nil {
			return "", err
		}
		for _, b := range buf {
			if b >= 250 {
				continue
			}
			s = append(s, '0'+b%10)
			if len(s) == codeDigits {
				break
			}
		}
	}
	return string(s), nil
}

// HashCode returns a SHA-256 hash of the code, hex-encoded.
func HashCode(code string) string {
	h := sha256.Sum256([]byte(code))
	return hex.EncodeToString(h[:])
}

// CodeEqual performs constant-time comparison of the provided code's hash with the stored hash.
func CodeEqual(provided, storedHash string) bool {
	if provided == "" || storedHash == "" {
		return false
	}
	providedHash := HashCode(provided)
	return subtle.ConstantTimeCompare([]byte(providedHash), []byte(storedHash)) == 1
}
