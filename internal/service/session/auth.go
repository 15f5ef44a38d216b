package session

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/heartmarshall/founty-inventory/internal/domain"
)

// SecretGate checks submitted text against the bcrypt hash of the shared
// admin secret. It is fail-closed: any mismatch or hash problem yields
// domain.ErrCredentialMismatch, never a retry.
type SecretGate struct {
	hash []byte
}

// NewSecretGate creates a gate from a bcrypt hash string.
func NewSecretGate(hash string) (*SecretGate, error) {
	if _, err := bcrypt.Cost([]byte(hash)); err != nil {
		return nil, fmt.Errorf("admin secret hash: %w", err)
	}
	return &SecretGate{hash: []byte(hash)}, nil
}

// Verify compares the submitted secret against the stored hash.
func (g *SecretGate) Verify(secret string) error {
	if err := bcrypt.CompareHashAndPassword(g.hash, []byte(secret)); err != nil {
		return domain.ErrCredentialMismatch
	}
	return nil
}
