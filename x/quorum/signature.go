package quorum

import (
	"github.com/iov-one/bridge/crypto"
	"github.com/iov-one/bridge/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// ValidatorSignature is a signature of a claim digest together with the
// public key that produced it. Neither field is trusted until verified.
type ValidatorSignature struct {
	PublicKey common.HexBytes `json:"public_key"`
	Signature common.HexBytes `json:"signature"`
}

// Sign returns the signature of the claim by signer.
func Sign(signer crypto.Signer, c Claim) (ValidatorSignature, error) {
	digest, err := c.SignBytes()
	if err != nil {
		return ValidatorSignature{}, errors.Wrap(err, "claim")
	}
	sig, err := signer.Sign(digest)
	if err != nil {
		return ValidatorSignature{}, errors.Wrap(err, "sign")
	}
	return ValidatorSignature{
		PublicKey: common.HexBytes(signer.PublicKey()),
		Signature: sig,
	}, nil
}
