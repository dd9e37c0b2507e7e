package store

import (
	"go.uber.org/zap"

	"cactus/internal/codec"
	"cactus/internal/crypto"
)

// Cipher encrypts and decrypts stored values with a caller key and the
// configured salt. Decrypt(k, s, Encrypt(k, s, p)) must equal p.
type Cipher interface {
	Encrypt(key, salt, plaintext string) (string, error)
	Decrypt(key, salt, ciphertext string) (string, error)
}

// Option customises a Store built by New.
type Option func(*Store)

// WithCodec sets the codec used for values and for the persisted document.
// Defaults to codec.JSON.
func WithCodec(c codec.Codec) Option {
	return func(s *Store) { s.codec = c }
}

// WithCipher sets the value cipher. Defaults to crypto.PBKDF2Cipher. Only
// consulted when Config.EnableEncryption is set.
func WithCipher(c Cipher) Option {
	return func(s *Store) { s.cipher = c }
}

// WithFileSystem replaces the disk backend. Defaults to an OSFileSystem
// rooted at Config.BaseDir.
func WithFileSystem(fs FileSystem) Option {
	return func(s *Store) { s.fs = fs }
}

// WithLogger sets the logger. Defaults to zap.NewNop().
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) { s.log = l }
}

var _ Cipher = (*crypto.PBKDF2Cipher)(nil)
