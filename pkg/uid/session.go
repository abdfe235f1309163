package uid

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// GenerateSessionID returns a random 32-character hex identifier used to tell
// matches apart in the logs.
func GenerateSessionID() (string, error) {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate session ID: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}
