package coin

import (
	"encoding/json"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
	"github.com/iov-one/bridge/errors"
)

// AmountSize is the length of the fixed size big endian form of an amount.
const AmountSize = 32

// Amount is an unsigned 256 bit quantity of the native asset. The zero value
// is a valid zero amount. All arithmetic is checked and never wraps.
type Amount struct {
	v uint256.Int
}

// NewAmount returns an amount of given whole units.
func NewAmount(n uint64) Amount {
	var a Amount
	a.v.SetUint64(n)
	return a
}

// ParseAmount reads the decimal form of an amount.
func ParseAmount(s string) (Amount, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Amount{}, errors.Wrap(errors.ErrAmount, "empty")
	}
	v, err := uint256.FromDecimal(s)
	if err != nil {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "cannot parse %q: %s", s, err)
	}
	return Amount{v: *v}, nil
}

// AmountFromBytes reads a big endian unsigned integer of at most AmountSize
// bytes. An empty slice is a zero amount.
func AmountFromBytes(raw []byte) (Amount, error) {
	if len(raw) > AmountSize {
		return Amount{}, errors.Wrapf(errors.ErrAmount, "%d bytes exceed %d", len(raw), AmountSize)
	}
	var a Amount
	a.v.SetBytes(raw)
	return a, nil
}

// Bytes returns the AmountSize bytes big endian form.
func (a Amount) Bytes() []byte {
	b := a.v.Bytes32()
	return b[:]
}

// String returns the decimal form.
func (a Amount) String() string {
	return a.v.Dec()
}

// Float64 returns the closest float value, for reporting only.
func (a Amount) Float64() float64 {
	f, _ := new(big.Float).SetInt(a.v.ToBig()).Float64()
	return f
}

// IsZero returns true if this amount is zero.
func (a Amount) IsZero() bool {
	return a.v.IsZero()
}

// Cmp compares two amounts and returns -1, 0 or 1.
func (a Amount) Cmp(b Amount) int {
	return a.v.Cmp(&b.v)
}

// Equals returns true if both amounts are the same.
func (a Amount) Equals(b Amount) bool {
	return a.v.Eq(&b.v)
}

// LessThan returns true if a < b.
func (a Amount) LessThan(b Amount) bool {
	return a.v.Lt(&b.v)
}

// Add returns a + b. ErrOverflow is returned when the result does not fit
// in 256 bits.
func (a Amount) Add(b Amount) (Amount, error) {
	var res Amount
	if _, overflow := res.v.AddOverflow(&a.v, &b.v); overflow {
		return Amount{}, errors.Wrapf(errors.ErrOverflow, "%s + %s", a, b)
	}
	return res, nil
}

// Sub returns a - b. ErrInsufficientAmount is returned when b is greater
// than a.
func (a Amount) Sub(b Amount) (Amount, error) {
	var res Amount
	if _, underflow := res.v.SubOverflow(&a.v, &b.v); underflow {
		return Amount{}, errors.Wrapf(errors.ErrInsufficientAmount, "%s - %s", a, b)
	}
	return res, nil
}

// MarshalJSON encodes the amount as a decimal string, so that values above
// 2^53 survive JavaScript clients.
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// UnmarshalJSON accepts a decimal string or a JSON number.
func (a *Amount) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return errors.Wrap(errors.ErrAmount, "amount must be a decimal string or a number")
		}
		s = n.String()
	}
	v, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}
