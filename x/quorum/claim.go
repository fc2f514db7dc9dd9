package quorum

import (
	"crypto/sha512"
	"encoding/binary"
	"math"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
)

// SignCodeV1 is the current way to prefix the bytes we use to build
// a claim digest.
var SignCodeV1 = []byte{0, 0xB1, 0xD6, 1}

// Claim is the statement validators sign: amount was moved on source chain
// in transaction source tx hash and must be paid out to recipient. Nonce is
// unique per claim.
type Claim struct {
	SourceChain  string
	SourceTxHash string
	Amount       coin.Amount
	Nonce        uint64
	Recipient    bridge.Address
}

// Validate returns an error if the claim cannot be signed or released.
func (c Claim) Validate() error {
	var errs error
	switch n := len(c.SourceChain); {
	case n == 0:
		errs = errors.AppendField(errs, "SourceChain", errors.ErrEmpty)
	case n > math.MaxUint16:
		errs = errors.Append(errs, errors.Field("SourceChain", errors.ErrInput, "longer than %d bytes", math.MaxUint16))
	}
	switch n := len(c.SourceTxHash); {
	case n == 0:
		errs = errors.AppendField(errs, "SourceTxHash", errors.ErrEmpty)
	case n > math.MaxUint16:
		errs = errors.Append(errs, errors.Field("SourceTxHash", errors.ErrInput, "longer than %d bytes", math.MaxUint16))
	}
	if c.Amount.IsZero() {
		errs = errors.Append(errs, errors.Field("Amount", errors.ErrAmount, "must be greater than zero"))
	}
	errs = errors.AppendField(errs, "Recipient", c.Recipient.Validate())
	return errs
}

/*
SignBytes returns the digest validators sign for this claim.

We use the following format:

version | len(chain) | chain | len(txhash) | txhash | amount   | nonce     | len(rcpt) | rcpt
4bytes  | uint16 BE  | utf8  | uint16 BE   | utf8   | 32B BE   | uint64 BE | uint8     | bytes

This is then hashed with sha512, so that every field boundary is fixed and
two different claims never share a digest.
*/
func (c Claim) SignBytes() ([]byte, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if len(c.Recipient) > math.MaxUint8 {
		return nil, errors.Field("Recipient", errors.ErrInput, "longer than %d bytes", math.MaxUint8)
	}

	size := len(SignCodeV1) + 2 + len(c.SourceChain) + 2 + len(c.SourceTxHash) +
		coin.AmountSize + 8 + 1 + len(c.Recipient)
	output := make([]byte, 0, size)
	output = append(output, SignCodeV1...)
	output = appendUint16(output, uint16(len(c.SourceChain)))
	output = append(output, c.SourceChain...)
	output = appendUint16(output, uint16(len(c.SourceTxHash)))
	output = append(output, c.SourceTxHash...)
	output = append(output, c.Amount.Bytes()...)
	output = appendUint64(output, c.Nonce)
	output = append(output, uint8(len(c.Recipient)))
	output = append(output, c.Recipient...)

	hashed := sha512.Sum512(output)
	return hashed[:], nil
}

func appendUint16(b []byte, v uint16) []byte {
	var raw [2]byte
	binary.BigEndian.PutUint16(raw[:], v)
	return append(b, raw[:]...)
}

func appendUint64(b []byte, v uint64) []byte {
	var raw [8]byte
	binary.BigEndian.PutUint64(raw[:], v)
	return append(b, raw[:]...)
}
