package crypto

import (
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	fixtureOnce sync.Once
	fixtureA    keyPair
	fixtureB    keyPair
)

type keyPair struct {
	PublicKey  string
	PrivateKey string
}

// keyPairs generates two key pairs once per test binary.
func keyPairs(t *testing.T) (keyPair, keyPair) {
	t.Helper()
	fixtureOnce.Do(func() {
		gen := NewKeyGenerator()
		var err error
		fixtureA.PublicKey, fixtureA.PrivateKey, err = gen.Generate()
		require.NoError(t, err)
		fixtureB.PublicKey, fixtureB.PrivateKey, err = gen.Generate()
		require.NoError(t, err)
	})
	return fixtureA, fixtureB
}

func TestKeyGenerator_Generate(t *testing.T) {
	pair, _ := keyPairs(t)

	privBlock, rest := pem.Decode([]byte(pair.PrivateKey))
	require.NotNil(t, privBlock)
	assert.Empty(t, rest)
	assert.Equal(t, "PRIVATE KEY", privBlock.Type)
	assert.Empty(t, privBlock.Headers)

	key, err := x509.ParsePKCS8PrivateKey(privBlock.Bytes)
	require.NoError(t, err)
	priv, ok := key.(*rsa.PrivateKey)
	require.True(t, ok)
	assert.Equal(t, KeyBits, priv.N.BitLen())
	assert.Equal(t, 65537, priv.E)

	pubBlock, _ := pem.Decode([]byte(pair.PublicKey))
	require.NotNil(t, pubBlock)
	assert.Equal(t, "PUBLIC KEY", pubBlock.Type)

	pubKey, err := x509.ParsePKIXPublicKey(pubBlock.Bytes)
	require.NoError(t, err)
	pub, ok := pubKey.(*rsa.PublicKey)
	require.True(t, ok)
	assert.Equal(t, 0, priv.PublicKey.N.Cmp(pub.N))
}

func TestKeyGenerator_DistinctPairs(t *testing.T) {
	a, b := keyPairs(t)
	assert.NotEqual(t, a.PrivateKey, b.PrivateKey)
	assert.NotEqual(t, a.PublicKey, b.PublicKey)
}
