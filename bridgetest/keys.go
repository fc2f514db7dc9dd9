package bridgetest

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/crypto"
)

// NewKey returns a new random private key.
func NewKey() crypto.PrivateKey {
	return crypto.GenPrivKeyEd25519()
}

// NewCondition returns the condition of a new random key.
func NewCondition() bridge.Condition {
	return NewKey().PublicKey().Condition()
}

// SeedKey returns a private key derived from a seed made of the given byte
// repeated. The same byte always returns the same key, which is useful for
// fixed test vectors.
func SeedKey(b byte) crypto.PrivateKey {
	seed := make([]byte, crypto.SeedSize)
	for i := range seed {
		seed[i] = b
	}
	return crypto.PrivKeyEd25519FromSeed(seed)
}

// NewKeys returns n new random private keys.
func NewKeys(n int) []crypto.PrivateKey {
	keys := make([]crypto.PrivateKey, n)
	for i := range keys {
		keys[i] = NewKey()
	}
	return keys
}
