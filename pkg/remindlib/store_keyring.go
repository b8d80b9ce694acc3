package remindlib

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// KeyringStore persists blobs as secrets in the OS keychain.
// The blob is JSON text, so it is stored as the secret string directly.
type KeyringStore struct {
	// Service is the keychain service name the secrets live under.
	Service string
}

// NewKeyringStore creates a KeyringStore under the remindctl service name.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{Service: "remindctl"}
}

// Get returns the secret stored under key, or (nil, nil) when absent.
func (s *KeyringStore) Get(key string) ([]byte, error) {
	secret, err := keyring.Get(s.Service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("keyring get %s: %w", key, err)
	}
	return []byte(secret), nil
}

// Set overwrites the secret stored under key.
func (s *KeyringStore) Set(key string, blob []byte) error {
	if err := keyring.Set(s.Service, key, string(blob)); err != nil {
		return fmt.Errorf("keyring set %s: %w", key, err)
	}
	return nil
}

// Delete removes the secret stored under key, ignoring a missing secret.
func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.Service, key)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("keyring delete %s: %w", key, err)
	}
	return nil
}

var _ Store = (*KeyringStore)(nil)
