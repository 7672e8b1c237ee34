package crypto

import (
	"crypto"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"signhub/internal/domain/apperr"
	"signhub/internal/domain/verification"
)

// Algorithm is the label reported to verifiers.
const Algorithm = verification.Algorithm

func valid() verification.Outcome {
	return verification.Outcome{Valid: true, Reason: "signature matches"}
}

func invalid(reason string) verification.Outcome {
	return verification.Outcome{Reason: reason}
}

// Engine signs and verifies with RSASSA-PKCS1-v1_5 over SHA-256. It is stateless and
// safe for concurrent use.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Sign is deterministic: the same message and key always give the same bytes.
func (e *Engine) Sign(message []byte, privateKeyPEM string) ([]byte, error) {
	priv, err := parsePrivateKey(privateKeyPEM)
	if err != nil {
		return nil, err
	}

	digest := sha256.Sum256(message)
	sig, err := rsa.SignPKCS1v15(nil, priv, crypto.SHA256, digest[:])
	if err != nil {
		return nil, fmt.Errorf("sign message: %w", err)
	}

	return sig, nil
}

// Verify never fails: every problem with the key, the signature or the message is false.
func (e *Engine) Verify(message, signature []byte, publicKeyPEM string) bool {
	return e.Check(message, signature, publicKeyPEM).Valid
}

// Check keeps the reason a signature was rejected.
func (e *Engine) Check(message, signature []byte, publicKeyPEM string) verification.Outcome {
	if len(signature) == 0 {
		return invalid("empty signature")
	}

	pub, err := parsePublicKey(publicKeyPEM)
	if err != nil {
		return invalid(err.Error())
	}

	if len(signature) != pub.Size() {
		return invalid("signature length does not match key size")
	}

	digest := sha256.Sum256(message)
	if err := rsa.VerifyPKCS1v15(pub, crypto.SHA256, digest[:], signature); err != nil {
		return invalid("signature mismatch")
	}

	return valid()
}

func parsePrivateKey(text string) (*rsa.PrivateKey, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, keyParseError("private key: no PEM block")
	}

	switch block.Type {
	case privateKeyBlock:
		key, err := x509.ParsePKCS8PrivateKey(block.Bytes)
		if err != nil {
			return nil, keyParseError("private key: " + err.Error())
		}
		rsaKey, ok := key.(*rsa.PrivateKey)
		if !ok {
			return nil, keyParseError("private key: not an RSA key")
		}
		return rsaKey, nil
	case "RSA PRIVATE KEY":
		key, err := x509.ParsePKCS1PrivateKey(block.Bytes)
		if err != nil {
			return nil, keyParseError("private key: " + err.Error())
		}
		return key, nil
	default:
		return nil, keyParseError("private key: unexpected PEM block " + block.Type)
	}
}

func parsePublicKey(text string) (*rsa.PublicKey, error) {
	block, _ := pem.Decode([]byte(text))
	if block == nil {
		return nil, keyParseError("public key: no PEM block")
	}

	key, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, keyParseError("public key: " + err.Error())
	}

	rsaKey, ok := key.(*rsa.PublicKey)
	if !ok {
		return nil, keyParseError("public key: not an RSA key")
	}

	return rsaKey, nil
}

func keyParseError(msg string) error {
	return fmt.Errorf("%w: %s", apperr.ErrKeyParse, msg)
}

// IsKeyParse reports whether err came from malformed key material.
func IsKeyParse(err error) bool {
	return errors.Is(err, apperr.ErrKeyParse)
}
