// Package crypto provides the value encryption used by encrypted stores.
//
// Contents
//
//   - PBKDF2-HMAC-SHA256 key derivation from a passphrase and salt (DeriveKey)
//   - XChaCha20-Poly1305 sealing of text values with a random per-value
//     nonce, rendered as URL-safe base64 (PBKDF2Cipher)
//
// # Notes
//
// Derived keys are wiped after the AEAD is constructed; the AEAD itself is
// cached for the lifetime of the PBKDF2Cipher. Authentication failures are
// reported as ErrDecrypt without distinguishing a wrong key from tampering.
package crypto
