// ABOUTME: Password-based key derivation for the vault
// ABOUTME: Argon2id with a random per-vault salt; the derived key never persists
package vault

import (
	"crypto/rand"
	"fmt"

	"golang.org/x/crypto/argon2"
)

const (
	// KeySize is the derived key length in bytes
	KeySize = 32
	// SaltSize is the per-vault salt length in bytes
	SaltSize = 16

	// Argon2id parameters. Slow by design; unlocking is a rare operation.
	argonTime    = 3
	argonMemory  = 64 * 1024 // KiB
	argonThreads = 4
)

// verifierToken is the known plaintext sealed at vault creation.
// Decrypting it successfully proves the password is correct.
const verifierToken = "solace-vault-v1"

// NewSalt generates a random per-vault salt
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("vault: generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey stretches a password into an encryption key using Argon2id
func DeriveKey(password string, salt []byte) []byte {
	return argon2.IDKey([]byte(password), salt, argonTime, argonMemory, argonThreads, KeySize)
}

// Open derives a cipher from the password and salt
func Open(password string, salt []byte) (*Cipher, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("vault: salt must be %d bytes, got %d", SaltSize, len(salt))
	}
	return NewCipher(DeriveKey(password, salt))
}

// SealVerifier encrypts the verifier token for storage at vault creation
func SealVerifier(c *Cipher) (string, error) {
	return c.Encrypt(verifierToken)
}

// CheckVerifier decrypts the stored verifier and confirms the password.
// Returns ErrAuthentication on any mismatch.
func CheckVerifier(c *Cipher, sealed string) error {
	plaintext, err := c.Decrypt(sealed)
	if err != nil {
		return ErrAuthentication
	}
	if plaintext != verifierToken {
		return ErrAuthentication
	}
	return nil
}
