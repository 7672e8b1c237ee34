package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/hkdf"

	"signhub/internal/domain/apperr"
)

const (
	sealedPrefix = "sealed:v1:"
	vaultKeySize = 32
)

var hkdfInfo = []byte("signhub private key vault")

// KeyVault seals private keys at rest with AES-256-GCM. A vault built from an empty
// secret stores keys as plain PEM and still opens plain PEM records.
type KeyVault struct {
	aead cipher.AEAD
}

// NewKeyVault accepts either a 32 byte hex key or an arbitrary passphrase, which is
// stretched with HKDF-SHA256.
func NewKeyVault(secret string) (*KeyVault, error) {
	if secret == "" {
		return &KeyVault{}, nil
	}

	key, err := deriveKey(secret)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("failed to create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCM: %w", err)
	}

	return &KeyVault{aead: gcm}, nil
}

func deriveKey(secret string) ([]byte, error) {
	if raw, err := hex.DecodeString(secret); err == nil && len(raw) == vaultKeySize {
		return raw, nil
	}

	key := make([]byte, vaultKeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, hkdfInfo), key); err != nil {
		return nil, fmt.Errorf("derive vault key: %w", err)
	}
	return key, nil
}

func (v *KeyVault) Enabled() bool {
	return v.aead != nil
}

func (v *KeyVault) Seal(privateKeyPEM string) (string, error) {
	if v.aead == nil {
		return privateKeyPEM, nil
	}

	nonce := make([]byte, v.aead.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("failed to generate nonce: %w", err)
	}

	ciphertext := v.aead.Seal(nonce, nonce, []byte(privateKeyPEM), nil)
	return sealedPrefix + hex.EncodeToString(ciphertext), nil
}

func (v *KeyVault) Open(stored string) (string, error) {
	if !strings.HasPrefix(stored, sealedPrefix) {
		return stored, nil
	}
	if v.aead == nil {
		return "", keyParseError("private key is sealed but no vault secret is configured")
	}

	ciphertext, err := hex.DecodeString(strings.TrimPrefix(stored, sealedPrefix))
	if err != nil {
		return "", keyParseError("sealed private key: " + err.Error())
	}

	nonceSize := v.aead.NonceSize()
	if len(ciphertext) < nonceSize {
		return "", keyParseError("sealed private key: ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:nonceSize], ciphertext[nonceSize:]
	plaintext, err := v.aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", fmt.Errorf("%w: open sealed private key", apperr.ErrKeyParse)
	}

	return string(plaintext), nil
}
