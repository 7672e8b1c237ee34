package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"io"
)

const (
	KeyBits = 2048

	privateKeyBlock = "PRIVATE KEY"
	publicKeyBlock  = "PUBLIC KEY"
)

// KeyGenerator produces RSA-2048 key pairs with public exponent 65537.
type KeyGenerator struct {
	random io.Reader
	bits   int
}

func NewKeyGenerator() *KeyGenerator {
	return &KeyGenerator{
		random: rand.Reader,
		bits:   KeyBits,
	}
}

// Generate returns the public key as a SubjectPublicKeyInfo PEM block and the private
// key as an unencrypted PKCS#8 PEM block.
func (g *KeyGenerator) Generate() (publicKey, privateKey string, err error) {
	priv, err := rsa.GenerateKey(g.random, g.bits)
	if err != nil {
		return "", "", fmt.Errorf("generate rsa key: %w", err)
	}

	privDER, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return "", "", fmt.Errorf("marshal private key: %w", err)
	}

	pubDER, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	if err != nil {
		return "", "", fmt.Errorf("marshal public key: %w", err)
	}

	publicKey = string(pem.EncodeToMemory(&pem.Block{Type: publicKeyBlock, Bytes: pubDER}))
	privateKey = string(pem.EncodeToMemory(&pem.Block{Type: privateKeyBlock, Bytes: privDER}))
	return publicKey, privateKey, nil
}
