package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// Keyring provides secure key storage abstraction
type Keyring interface {
	GetKey() (string, error)
	SetKey(password string) error
	DeleteKey() error
	IsAvailable() bool
}

const (
	ServiceName = "invoicegenius"
	KeyName     = "storage-encryption-key"
)

// NewKeyring returns the best available keyring implementation
func NewKeyring() Keyring {
	return newPlatformKeyring()
}

// GenerateKey produces a random storage encryption key. Used on first
// run so the user never has to invent a password unless the keyring is
// unavailable.
func GenerateKey() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate encryption key: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
