package quorum

import (
	"fmt"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/crypto"
	"github.com/iov-one/bridge/errors"
	"github.com/tendermint/tendermint/libs/common"
)

// DefaultMaxSignatures bounds the number of signatures a proof may carry
// when no other limit is configured.
const DefaultMaxSignatures = 64

// Validators tells whether an identity may sign claims. The flag is read at
// verification time, so a validator removed before a release never counts.
type Validators interface {
	IsActive(db bridge.ReadOnlyKVStore, addr bridge.Address) (bool, error)
}

// StaticValidators is a fixed validator set that ignores the store. Use it
// to check proofs offline.
type StaticValidators []bridge.Address

var _ Validators = StaticValidators(nil)

func (s StaticValidators) IsActive(_ bridge.ReadOnlyKVStore, addr bridge.Address) (bool, error) {
	for _, a := range s {
		if a.Equals(addr) {
			return true, nil
		}
	}
	return false, nil
}

// SkipReason tells why a signature was not counted.
type SkipReason string

const (
	SkipMalformedKey       SkipReason = "malformed public key"
	SkipMalformedSignature SkipReason = "malformed signature"
	SkipInvalidSignature   SkipReason = "signature does not match"
	SkipNotValidator       SkipReason = "not an active validator"
	SkipDuplicate          SkipReason = "duplicate signer"
)

// Skipped is a signature that did not count.
type Skipped struct {
	Index     int             `json:"index"`
	PublicKey common.HexBytes `json:"public_key"`
	Reason    SkipReason      `json:"reason"`
}

func (s Skipped) String() string {
	return fmt.Sprintf("signature %d: %s", s.Index, s.Reason)
}

// Report is the outcome of a verification.
type Report struct {
	// Required is the threshold the signers were counted against.
	Required uint32 `json:"required"`
	// Signers are the distinct active validators with a valid signature,
	// in the order they were found.
	Signers []bridge.Address `json:"signers"`
	// Skipped lists every signature that did not count.
	Skipped []Skipped `json:"skipped"`
}

// Count returns the number of distinct valid signers.
func (r *Report) Count() int {
	return len(r.Signers)
}

// Reached returns true if the threshold is met.
func (r *Report) Reached() bool {
	return uint64(len(r.Signers)) >= uint64(r.Required)
}

// Err returns ErrInsufficientSignatures unless the threshold is met.
func (r *Report) Err() error {
	if r.Reached() {
		return nil
	}
	return errors.Wrapf(ErrInsufficientSignatures, "%d valid of %d required", len(r.Signers), r.Required)
}

// candidate is a signature travelling through the filters.
type candidate struct {
	index int
	raw   ValidatorSignature
	key   crypto.PublicKey
	addr  bridge.Address
}

// filter returns a non empty reason if the candidate must not count.
type filter func(c *candidate) (SkipReason, error)

// Verifier counts the signatures of active validators over a claim.
type Verifier struct {
	validators Validators
	max        int
}

// NewVerifier returns a verifier consulting given validator set. Proofs with
// more than maxSignatures entries are rejected before any signature is
// checked. A non positive value selects DefaultMaxSignatures.
func NewVerifier(validators Validators, maxSignatures int) *Verifier {
	if maxSignatures <= 0 {
		maxSignatures = DefaultMaxSignatures
	}
	return &Verifier{validators: validators, max: maxSignatures}
}

// Verify checks sigs against the claim digest and reports how many distinct
// active validators signed it. An error is returned only if the input is
// rejected as a whole or the validator set cannot be read. Use Report.Err to
// test the threshold.
func (v *Verifier) Verify(db bridge.ReadOnlyKVStore, c Claim, sigs []ValidatorSignature, required uint32) (*Report, error) {
	if uint64(len(sigs)) < uint64(required) {
		return nil, errors.Wrapf(ErrInsufficientSignatures, "%d signatures for a threshold of %d", len(sigs), required)
	}
	if len(sigs) > v.max {
		return nil, errors.Wrapf(errors.ErrInput, "%d signatures exceed the limit of %d", len(sigs), v.max)
	}
	digest, err := c.SignBytes()
	if err != nil {
		return nil, errors.Wrap(err, "claim")
	}

	seen := make(map[string]struct{}, len(sigs))
	filters := []filter{
		parse,
		authenticate(digest),
		resolve(db, v.validators),
		deduplicate(seen),
	}

	report := &Report{Required: required}
	for i, sig := range sigs {
		cand := &candidate{index: i, raw: sig}
		reason, err := apply(filters, cand)
		if err != nil {
			return nil, errors.Wrapf(err, "signature %d", i)
		}
		if reason != "" {
			report.Skipped = append(report.Skipped, Skipped{
				Index:     i,
				PublicKey: sig.PublicKey,
				Reason:    reason,
			})
			continue
		}
		report.Signers = append(report.Signers, cand.addr)
	}
	return report, nil
}

func apply(filters []filter, c *candidate) (SkipReason, error) {
	for _, f := range filters {
		reason, err := f(c)
		if err != nil || reason != "" {
			return reason, err
		}
	}
	return "", nil
}

// parse rejects keys that are not curve points and malformed signatures.
func parse(c *candidate) (SkipReason, error) {
	key, err := crypto.ParsePublicKey(c.raw.PublicKey)
	if err != nil {
		return SkipMalformedKey, nil
	}
	if err := crypto.CheckSignature(c.raw.Signature); err != nil {
		return SkipMalformedSignature, nil
	}
	c.key = key
	return "", nil
}

func authenticate(digest []byte) filter {
	return func(c *candidate) (SkipReason, error) {
		if !c.key.Verify(digest, c.raw.Signature) {
			return SkipInvalidSignature, nil
		}
		return "", nil
	}
}

// resolve maps the key to its identity and requires an active validator.
func resolve(db bridge.ReadOnlyKVStore, validators Validators) filter {
	return func(c *candidate) (SkipReason, error) {
		addr := c.key.Address()
		ok, err := validators.IsActive(db, addr)
		if err != nil {
			return "", err
		}
		if !ok {
			return SkipNotValidator, nil
		}
		c.addr = addr
		return "", nil
	}
}

func deduplicate(seen map[string]struct{}) filter {
	return func(c *candidate) (SkipReason, error) {
		k := string(c.addr)
		if _, ok := seen[k]; ok {
			return SkipDuplicate, nil
		}
		seen[k] = struct{}{}
		return "", nil
	}
}
