package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// streamKeyBytes is the entropy of a stream key before encoding.
const streamKeyBytes = 32

// NewStreamKey returns a URL-safe random string with 32 bytes of entropy,
// used as the opaque RTMP ingest credential. Stream keys are independent of
// the session tokens.
func NewStreamKey() (string, error) {
	buf := make([]byte, streamKeyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("error generating stream key: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
