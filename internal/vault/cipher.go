// ABOUTME: Cipher is the encrypt-on-write / decrypt-on-read boundary for vault records
// ABOUTME: ChaCha20-Poly1305 AEAD with a random nonce per record, base64-encoded at rest
package vault

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/chacha20poly1305"
)

// ErrAuthentication signals a wrong vault password.
// Nothing decrypts under a wrong key; the vault fails closed.
var ErrAuthentication = errors.New("vault: authentication failed")

// Cipher encrypts and decrypts individual record fields
type Cipher struct {
	key []byte
}

// NewCipher wraps a derived key. The key must be KeySize bytes.
func NewCipher(key []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, fmt.Errorf("vault: key must be %d bytes, got %d", KeySize, len(key))
	}
	k := make([]byte, KeySize)
	copy(k, key)
	return &Cipher{key: k}, nil
}

// Encrypt seals plaintext and returns nonce||ciphertext as base64
func (c *Cipher) Encrypt(plaintext string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("vault: init cipher: %w", err)
	}

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("vault: generate nonce: %w", err)
	}

	sealed := aead.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
// Any tampering or key mismatch returns ErrAuthentication, never partial plaintext.
func (c *Cipher) Decrypt(encoded string) (string, error) {
	aead, err := chacha20poly1305.NewX(c.key)
	if err != nil {
		return "", fmt.Errorf("vault: init cipher: %w", err)
	}

	sealed, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("vault: malformed record: %w", err)
	}
	if len(sealed) < aead.NonceSize() {
		return "", fmt.Errorf("vault: malformed record: short ciphertext")
	}

	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrAuthentication
	}
	return string(plaintext), nil
}

// Zero wipes the key material. The cipher is unusable afterwards.
func (c *Cipher) Zero() {
	for i := range c.key {
		c.key[i] = 0
	}
}
