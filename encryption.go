package bio

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

// Encrypter is the collaborator interface for the outer frame's
// FlagEncrypted channel (spec.md §4.2, §9 "Encrypter"). Codec calls
// Encrypt on encode when encryption is enabled, and Decrypt on decode
// when FlagEncrypted is set.
type Encrypter interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// aeadEncrypter is the default Encrypter: XChaCha20-Poly1305 keyed by
// HKDF-SHA256 over a caller-supplied secret, grounded on
// bureau-foundation-bureau/lib/artifactstore/encrypt.go's
// EncryptBlob/DecryptBlob wire shape (version byte + nonce + AEAD
// ciphertext), simplified to a single static key since the bio wire
// format has no per-record identity hash to bind as AAD.
type aeadEncrypter struct {
	aead aeadSealer
}

type aeadSealer interface {
	Seal(dst, nonce, plaintext, additionalData []byte) []byte
	Open(dst, nonce, ciphertext, additionalData []byte) ([]byte, error)
}

const encryptedBlobVersion byte = 0x01

var hkdfInfoBioFrame = []byte("bio.frame.encryption.v1")

// NewAEADEncrypter derives a XChaCha20-Poly1305 key from secret via
// HKDF-SHA256 and returns an Encrypter using it. secret is typically a
// long-lived deployment key; a fresh key is derived per Encrypter rather
// than reusing secret directly.
func NewAEADEncrypter(secret []byte) (Encrypter, error) {
	reader := hkdf.New(sha256.New, secret, nil, hkdfInfoBioFrame)
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(reader, key); err != nil {
		return nil, fmt.Errorf("bio: deriving frame encryption key: %w", err)
	}
	aead, err := chacha20poly1305.NewX(key)
	if err != nil {
		return nil, fmt.Errorf("bio: constructing AEAD cipher: %w", err)
	}
	return &aeadEncrypter{aead: aead}, nil
}

// Encrypt returns [version:1][nonce:24][ciphertext+tag].
func (e *aeadEncrypter) Encrypt(plaintext []byte) ([]byte, error) {
	var nonce [chacha20poly1305.NonceSizeX]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return nil, fmt.Errorf("bio: generating nonce: %w", err)
	}
	out := make([]byte, 1+chacha20poly1305.NonceSizeX, 1+chacha20poly1305.NonceSizeX+len(plaintext)+chacha20poly1305.Overhead)
	out[0] = encryptedBlobVersion
	copy(out[1:], nonce[:])
	return e.aead.Seal(out, nonce[:], plaintext, []byte{encryptedBlobVersion}), nil
}

func (e *aeadEncrypter) Decrypt(ciphertext []byte) ([]byte, error) {
	minLen := 1 + chacha20poly1305.NonceSizeX + chacha20poly1305.Overhead
	if len(ciphertext) < minLen {
		return nil, fmt.Errorf("bio: encrypted payload is %d bytes, minimum is %d", len(ciphertext), minLen)
	}
	version := ciphertext[0]
	if version != encryptedBlobVersion {
		return nil, fmt.Errorf("bio: unsupported encrypted payload version %d", version)
	}
	nonce := ciphertext[1 : 1+chacha20poly1305.NonceSizeX]
	body := ciphertext[1+chacha20poly1305.NonceSizeX:]
	plaintext, err := e.aead.Open(nil, nonce, body, []byte{version})
	if err != nil {
		return nil, fmt.Errorf("bio: AEAD decryption failed: %w", err)
	}
	return plaintext, nil
}
