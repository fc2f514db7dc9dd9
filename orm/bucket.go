package orm

import (
	"fmt"
	"regexp"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

var isBucketName = regexp.MustCompile(`^[a-z_]{3,20}$`).MatchString

// ModelBucket is a prefixed subspace of the DB holding models of a single
// type. Lookup is done by the primary key only.
type ModelBucket interface {
	// One query the database for a single model instance. Lookup is done
	// by the primary key. Result is loaded into given destination
	// model.
	// This method returns ErrNotFound if the entity does not exist in the
	// database.
	// If given model type cannot be used to contain stored entity, ErrType
	// is returned.
	One(db bridge.ReadOnlyKVStore, key []byte, dest Model) error

	// Has returns nil if an entity with given key exists and ErrNotFound
	// otherwise.
	Has(db bridge.ReadOnlyKVStore, key []byte) error

	// Put saves given model in the database. The model is validated
	// before writing.
	Put(db bridge.KVStore, key []byte, m Model) error

	// Delete removes an entity with given primary key from the database.
	// It returns ErrNotFound if an entity with given key does not exist.
	Delete(db bridge.KVStore, key []byte) error

	// Iterate returns an iterator over all models of this bucket, in
	// ascending key order.
	Iterate(db bridge.ReadOnlyKVStore) (ModelIterator, error)

	// Register registers this bucket for key and prefix queries under
	// given path. If the name is empty, the bucket name is used.
	Register(name string, r bridge.QueryRouter)
}

type modelBucket struct {
	name   string
	prefix []byte
	proto  Model
}

var _ ModelBucket = (*modelBucket)(nil)

// NewModelBucket returns a ModelBucket that stores models of the proto type
// under "<name>:" prefixed keys. Panics if the name is not valid.
func NewModelBucket(name string, proto Model) ModelBucket {
	if !isBucketName(name) {
		panic(fmt.Sprintf("Illegal bucket: %s", name))
	}
	return &modelBucket{
		name:   name,
		prefix: append([]byte(name), ':'),
		proto:  proto,
	}
}

// dbKey is the full key we store in the db, including prefix.
// We copy into a new array rather than use append, as we don't
// want consecutive calls to overwrite the same byte array.
func (b *modelBucket) dbKey(key []byte) []byte {
	out := make([]byte, len(b.prefix)+len(key))
	copy(out, b.prefix)
	copy(out[len(b.prefix):], key)
	return out
}

func (b *modelBucket) One(db bridge.ReadOnlyKVStore, key []byte, dest Model) error {
	if err := sameType(b.proto, dest); err != nil {
		return err
	}
	raw, err := db.Get(b.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot load from the database")
	}
	if raw == nil {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return Unmarshal(raw, dest)
}

func (b *modelBucket) Has(db bridge.ReadOnlyKVStore, key []byte) error {
	ok, err := db.Has(b.dbKey(key))
	if err != nil {
		return errors.Wrap(err, "cannot query the database")
	}
	if !ok {
		return errors.Wrapf(errors.ErrNotFound, "%s %X", b.name, key)
	}
	return nil
}

func (b *modelBucket) Put(db bridge.KVStore, key []byte, m Model) error {
	if len(key) == 0 {
		return errors.Wrap(errors.ErrEmpty, "key")
	}
	if err := sameType(b.proto, m); err != nil {
		return err
	}
	if err := m.Validate(); err != nil {
		return errors.Wrap(err, "invalid model")
	}
	raw, err := Marshal(m)
	if err != nil {
		return err
	}
	if err := db.Set(b.dbKey(key), raw); err != nil {
		return errors.Wrap(err, "cannot store in the database")
	}
	return nil
}

func (b *modelBucket) Delete(db bridge.KVStore, key []byte) error {
	if err := b.Has(db, key); err != nil {
		return err
	}
	if err := db.Delete(b.dbKey(key)); err != nil {
		return errors.Wrap(err, "cannot delete from the database")
	}
	return nil
}

func (b *modelBucket) Iterate(db bridge.ReadOnlyKVStore) (ModelIterator, error) {
	it, err := db.Iterator(b.prefix, prefixEnd(b.prefix))
	if err != nil {
		return nil, errors.Wrap(err, "cannot create iterator")
	}
	return &modelIterator{iterator: it, prefix: b.prefix}, nil
}

func (b *modelBucket) Register(name string, r bridge.QueryRouter) {
	if name == "" {
		name = b.name
	}
	r.Register("/"+name, b)
}

// Query handles queries from the QueryRouter. Returned values are protobuf
// encoded models and keys are stripped of the bucket prefix.
func (b *modelBucket) Query(db bridge.ReadOnlyKVStore, mod string, data []byte) ([]bridge.Model, error) {
	switch mod {
	case bridge.KeyQueryMod:
		raw, err := db.Get(b.dbKey(data))
		if err != nil {
			return nil, err
		}
		// return nothing on miss
		if raw == nil {
			return nil, nil
		}
		return []bridge.Model{bridge.Pair(data, raw)}, nil
	case bridge.PrefixQueryMod:
		prefix := b.dbKey(data)
		it, err := db.Iterator(prefix, prefixEnd(prefix))
		if err != nil {
			return nil, err
		}
		defer it.Release()
		var res []bridge.Model
		for {
			key, value, err := it.Next()
			if errors.ErrIteratorDone.Is(err) {
				return res, nil
			}
			if err != nil {
				return nil, err
			}
			res = append(res, bridge.Pair(key[len(b.prefix):], value))
		}
	default:
		return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
	}
}

// prefixEnd returns the first key that does not start with given prefix, or
// nil if there is none.
func prefixEnd(prefix []byte) []byte {
	end := make([]byte, len(prefix))
	copy(end, prefix)
	for i := len(end) - 1; i >= 0; i-- {
		if end[i] < 0xFF {
			end[i]++
			return end[:i+1]
		}
	}
	return nil
}
