package crypto

import (
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KeyBytes is the size of the derived XChaCha20-Poly1305 key.
	KeyBytes = chacha20poly1305.KeySize
	// NonceBytes is the size of the random nonce prefixed to every ciphertext.
	NonceBytes = chacha20poly1305.NonceSizeX
	// Iterations is the PBKDF2-HMAC-SHA256 work factor.
	Iterations = 100_000
)

// ErrDecrypt is returned when the key or salt is wrong, or the ciphertext has
// been modified / corrupted.
var ErrDecrypt = errors.New("wrong key or corrupted ciphertext")

// encoding keeps ciphertexts safe to embed in JSON and file names.
var encoding = base64.URLEncoding

// PBKDF2Cipher encrypts short text values with a key derived from a
// passphrase and salt. Derived keys are cached per (passphrase, salt) pair
// so the KDF runs once per pair rather than once per value.
type PBKDF2Cipher struct {
	mu    sync.Mutex
	aeads map[[sha256.Size]byte]cipher.AEAD
}

// NewPBKDF2Cipher returns a cipher with an empty key cache.
func NewPBKDF2Cipher() *PBKDF2Cipher {
	return &PBKDF2Cipher{aeads: make(map[[sha256.Size]byte]cipher.AEAD)}
}

// Encrypt seals plaintext and returns nonce||ciphertext as URL-safe base64.
func (c *PBKDF2Cipher) Encrypt(key, salt, plaintext string) (string, error) {
	aead, err := c.aead(key, salt)
	if err != nil {
		return "", err
	}
	out := make([]byte, NonceBytes, NonceBytes+len(plaintext)+aead.Overhead())
	if _, err := rand.Read(out); err != nil {
		return "", err
	}
	out = aead.Seal(out, out[:NonceBytes], []byte(plaintext), nil)
	return encoding.EncodeToString(out), nil
}

// Decrypt reverses Encrypt.
func (c *PBKDF2Cipher) Decrypt(key, salt, ciphertext string) (string, error) {
	raw, err := encoding.DecodeString(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	if len(raw) < NonceBytes {
		return "", fmt.Errorf("%w: ciphertext too short", ErrDecrypt)
	}
	aead, err := c.aead(key, salt)
	if err != nil {
		return "", err
	}
	pt, err := aead.Open(nil, raw[:NonceBytes], raw[NonceBytes:], nil)
	if err != nil {
		return "", ErrDecrypt
	}
	return string(pt), nil
}

func (c *PBKDF2Cipher) aead(key, salt string) (cipher.AEAD, error) {
	id := cacheKey(key, salt)

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.aeads == nil {
		c.aeads = make(map[[sha256.Size]byte]cipher.AEAD)
	}
	if a, ok := c.aeads[id]; ok {
		return a, nil
	}

	dk := DeriveKey(key, salt)
	defer clear(dk)

	a, err := chacha20poly1305.NewX(dk)
	if err != nil {
		return nil, err
	}
	c.aeads[id] = a
	return a, nil
}

// DeriveKey derives a KeyBytes-long key from passphrase and salt using
// PBKDF2-HMAC-SHA256.
func DeriveKey(passphrase, salt string) []byte {
	return pbkdf2.Key([]byte(passphrase), []byte(salt), Iterations, KeyBytes, sha256.New)
}

// cacheKey avoids holding passphrases as map keys. The salt is length
// prefixed so (key, salt) pairs cannot collide by shifting bytes between them.
func cacheKey(key, salt string) [sha256.Size]byte {
	buf := binary.BigEndian.AppendUint32(nil, uint32(len(salt)))
	buf = append(buf, salt...)
	buf = append(buf, key...)
	defer clear(buf)
	return sha256.Sum256(buf)
}
