package orm

import (
	"encoding/binary"
	"fmt"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// Vars is a group of named singleton entries sharing a prefix. Each entry is
// stored under "<prefix>:<name>".
type Vars struct {
	prefix string
}

// NewVars returns a group of named entries. Panics if the name is not valid.
func NewVars(prefix string) Vars {
	if !isBucketName(prefix) {
		panic(fmt.Sprintf("Illegal vars prefix: %s", prefix))
	}
	return Vars{prefix: prefix}
}

// Var returns the entry with given name.
func (v Vars) Var(name string) Var {
	return Var{key: []byte(v.prefix + ":" + name)}
}

// Var is a single named entry. Values are wrapped in a versioned envelope
// and protobuf encoded.
type Var struct {
	key []byte
}

// Key returns the full database key of this entry.
func (v Var) Key() []byte {
	return v.key
}

// envelope is how every entry value is persisted. Schema is always set, so
// the encoding of a zero value is never empty.
type envelope struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3"`
	Raw    []byte `protobuf:"bytes,2,opt,name=raw,proto3"`
}

func (e *envelope) Reset() { *e = envelope{} }
func (e *envelope) String() string { return proto.CompactTextString(e) }
func (*envelope) ProtoMessage() {}

// Bytes returns the raw value of this entry. ErrNotFound is returned if the
// entry was never set.
func (v Var) Bytes(db bridge.ReadOnlyKVStore) ([]byte, error) {
	raw, err := db.Get(v.key)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "entry %q", v.key)
	}
	var e envelope
	if err := Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	if e.Schema != 1 {
		return nil, errors.Wrapf(errors.ErrMetadata, "entry %q schema %d", v.key, e.Schema)
	}
	return e.Raw, nil
}

// SetBytes sets the raw value of this entry.
func (v Var) SetBytes(db bridge.KVStore, value []byte) error {
	raw, err := Marshal(&envelope{Schema: 1, Raw: value})
	if err != nil {
		return err
	}
	if err := db.Set(v.key, raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

// Exists returns true if the entry was ever set.
func (v Var) Exists(db bridge.ReadOnlyKVStore) (bool, error) {
	ok, err := db.Has(v.key)
	if err != nil {
		return false, errors.Wrap(err, "cannot query the database")
	}
	return ok, nil
}

// Uint64 returns the value of this entry as a number.
func (v Var) Uint64(db bridge.ReadOnlyKVStore) (uint64, error) {
	raw, err := v.Bytes(db)
	if err != nil {
		return 0, err
	}
	if len(raw) != 8 {
		return 0, errors.Wrapf(errors.ErrModel, "entry %q is not a number", v.key)
	}
	return binary.BigEndian.Uint64(raw), nil
}

// SetUint64 stores a number as the value of this entry.
func (v Var) SetUint64(db bridge.KVStore, n uint64) error {
	raw := make([]byte, 8)
	binary.BigEndian.PutUint64(raw, n)
	return v.SetBytes(db, raw)
}

// Bool returns the value of this entry as a flag.
func (v Var) Bool(db bridge.ReadOnlyKVStore) (bool, error) {
	raw, err := v.Bytes(db)
	if err != nil {
		return false, err
	}
	if len(raw) != 1 || raw[0] > 1 {
		return false, errors.Wrapf(errors.ErrModel, "entry %q is not a flag", v.key)
	}
	return raw[0] == 1, nil
}

// SetBool stores a flag as the value of this entry.
func (v Var) SetBool(db bridge.KVStore, flag bool) error {
	raw := []byte{0}
	if flag {
		raw[0] = 1
	}
	return v.SetBytes(db, raw)
}
