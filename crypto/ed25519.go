package crypto

import (
	"encoding/hex"
	"encoding/json"
	"strings"

	"filippo.io/edwards25519"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"golang.org/x/crypto/ed25519"
)

const (
	// ExtensionName is used for the conditions we get from signatures.
	ExtensionName = "sigs"

	// PublicKeySize is the length of an Ed25519 public key.
	PublicKeySize = ed25519.PublicKeySize
	// SignatureSize is the length of an Ed25519 signature.
	SignatureSize = ed25519.SignatureSize
	// SeedSize is the length of a private key seed.
	SeedSize = ed25519.SeedSize
)

// Signer is the functionality we use from a private key
// No serializing to support hardware devices as well.
type Signer interface {
	Sign(message []byte) ([]byte, error)
	PublicKey() PublicKey
}

// PublicKey is a 32 byte Ed25519 public key.
type PublicKey []byte

// ParsePublicKey returns the key if raw is a well-formed Ed25519 public key:
// of the right size and encoding a point on the curve.
func ParsePublicKey(raw []byte) (PublicKey, error) {
	if len(raw) != PublicKeySize {
		return nil, errors.Wrapf(errors.ErrInput, "public key must be %d bytes, got %d", PublicKeySize, len(raw))
	}
	if _, err := new(edwards25519.Point).SetBytes(raw); err != nil {
		return nil, errors.Wrap(errors.ErrInput, "public key is not a curve point")
	}
	return PublicKey(raw), nil
}

// CheckSignature returns an error if sig is not a well-formed Ed25519
// signature: of the right size and with a canonical S scalar.
func CheckSignature(sig []byte) error {
	if len(sig) != SignatureSize {
		return errors.Wrapf(errors.ErrInput, "signature must be %d bytes, got %d", SignatureSize, len(sig))
	}
	if _, err := new(edwards25519.Scalar).SetCanonicalBytes(sig[32:]); err != nil {
		return errors.Wrap(errors.ErrInput, "signature scalar is not canonical")
	}
	return nil
}

// Verify verifies the signature was created with this message and public key
func (p PublicKey) Verify(message, sig []byte) bool {
	if len(p) != PublicKeySize || len(sig) != SignatureSize {
		return false
	}
	return ed25519.Verify(ed25519.PublicKey(p), message, sig)
}

// Condition encodes the public key into a bridge condition
func (p PublicKey) Condition() bridge.Condition {
	if len(p) == 0 {
		return nil
	}
	return bridge.NewCondition(ExtensionName, "ed25519", p)
}

// Address returns the identity of the key holder.
func (p PublicKey) Address() bridge.Address {
	return p.Condition().Address()
}

func (p PublicKey) String() string {
	return hex.EncodeToString(p)
}

func (p PublicKey) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *PublicKey) UnmarshalJSON(raw []byte) error {
	var enc string
	if err := json.Unmarshal(raw, &enc); err != nil {
		return errors.Wrap(err, "cannot decode json")
	}
	val, err := hex.DecodeString(strings.TrimPrefix(enc, "0x"))
	if err != nil {
		return errors.Wrap(errors.ErrInput, "cannot decode hex")
	}
	key, err := ParsePublicKey(val)
	if err != nil {
		return err
	}
	*p = key
	return nil
}

var _ Signer = PrivateKey(nil)

// PrivateKey is a 64 byte Ed25519 private key (seed followed by the public
// key).
type PrivateKey []byte

// Sign returns a matching signature for this private key
func (p PrivateKey) Sign(message []byte) ([]byte, error) {
	if len(p) != ed25519.PrivateKeySize {
		return nil, errors.Wrap(errors.ErrState, "invalid private key")
	}
	return ed25519.Sign(ed25519.PrivateKey(p), message), nil
}

// PublicKey returns the corresponding PublicKey
func (p PrivateKey) PublicKey() PublicKey {
	if len(p) != ed25519.PrivateKeySize {
		return nil
	}
	pub := ed25519.PrivateKey(p).Public().(ed25519.PublicKey)
	return PublicKey(pub)
}

// Seed returns the private key seed.
func (p PrivateKey) Seed() []byte {
	return ed25519.PrivateKey(p).Seed()
}

// GenPrivKeyEd25519 returns a random new private key
func GenPrivKeyEd25519() PrivateKey {
	_, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		panic(err)
	}
	return PrivateKey(priv)
}

// PrivKeyEd25519FromSeed will deterministically generate a private key from
// a given seed. Use if you have a strong source of external randomness,
// or for deterministic keys in test cases.
func PrivKeyEd25519FromSeed(seed []byte) PrivateKey {
	return PrivateKey(ed25519.NewKeyFromSeed(seed))
}
