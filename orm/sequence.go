package orm

import (
	"encoding/binary"
	"math"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// Sequence maintains a counter, and generates a
// series of keys. Each key is greater than the last,
// both NextInt() as well as bytes.Compare() on NextVal().
type Sequence struct {
	id []byte
}

// NewSequence returns a sequence counter stored under given key.
func NewSequence(key []byte) Sequence {
	return Sequence{id: key}
}

// NextVal increments the sequence and returns the value it held before
// the increment, as 8 bytes.
func (s Sequence) NextVal(db bridge.KVStore) ([]byte, error) {
	val, err := s.NextInt(db)
	if err != nil {
		return nil, err
	}
	return EncodeSequence(val), nil
}

// NextInt increments the sequence and returns the value it held before the
// increment. The first call returns zero. ErrOverflow is returned once the
// counter cannot be incremented anymore.
func (s Sequence) NextInt(db bridge.KVStore) (uint64, error) {
	val, err := s.Latest(db)
	if err != nil {
		return 0, err
	}
	if val == math.MaxUint64 {
		return 0, errors.Wrap(errors.ErrOverflow, "sequence exhausted")
	}
	if err := db.Set(s.id, EncodeSequence(val+1)); err != nil {
		return 0, errors.Wrap(err, "cannot store sequence")
	}
	return val, nil
}

// Latest returns the current value of the sequence. This method does not
// modify the sequence state.
func (s Sequence) Latest(db bridge.ReadOnlyKVStore) (uint64, error) {
	raw, err := db.Get(s.id)
	if err != nil {
		return 0, errors.Wrap(err, "cannot load sequence")
	}
	if raw == nil {
		return 0, nil
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrDatabase, "sequence %q is corrupted", s.id)
	}
	return binary.BigEndian.Uint64(raw), nil
}

// Set overwrites the sequence state.
func (s Sequence) Set(db bridge.KVStore, val uint64) error {
	if err := db.Set(s.id, EncodeSequence(val)); err != nil {
		return errors.Wrap(err, "cannot store sequence")
	}
	return nil
}

// EncodeSequence returns the 8 byte big endian representation of a
// sequence value.
func EncodeSequence(val uint64) []byte {
	bz := make([]byte, 8)
	binary.BigEndian.PutUint64(bz, val)
	return bz
}

// DecodeSequence parses an 8 byte big endian sequence value.
func DecodeSequence(bz []byte) (uint64, error) {
	if len(bz) != 8 {
		return 0, errors.Wrap(errors.ErrInput, "sequence must be 8 bytes")
	}
	return binary.BigEndian.Uint64(bz), nil
}
