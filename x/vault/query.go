package vault

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
	"github.com/iov-one/bridge/x/access"
	"github.com/iov-one/bridge/x/replay"
)

// RegisterQuery registers the vault queries, together with the validator
// and processed proof buckets.
//
// Flags are returned as a single 0 or 1 byte, counters as 8 byte big endian
// numbers and amounts in their 32 byte big endian form.
func RegisterQuery(qr bridge.QueryRouter) {
	state := NewState()
	validators := access.NewRegistry()
	guard := replay.NewGuard()

	qr.Register("/vault/isValidator", keyQuery(func(db bridge.ReadOnlyKVStore, key []byte) ([]byte, error) {
		ok, err := validators.IsActive(db, key)
		return flag(ok), err
	}))
	qr.Register("/vault/isProofProcessed", keyQuery(func(db bridge.ReadOnlyKVStore, key []byte) ([]byte, error) {
		nonce, err := orm.DecodeSequence(key)
		if err != nil {
			return nil, err
		}
		ok, err := guard.IsProcessed(db, nonce)
		return flag(ok), err
	}))
	qr.Register("/vault/totalLocked", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		total, err := state.TotalLocked(db)
		return total.Bytes(), err
	}))
	qr.Register("/vault/minLockAmount", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		minimum, err := state.MinLockAmount(db)
		return minimum.Bytes(), err
	}))
	qr.Register("/vault/nonce", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		nonce, err := state.Nonce(db)
		return orm.EncodeSequence(nonce), err
	}))
	qr.Register("/vault/requiredSignatures", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		n, err := state.RequiredSignatures(db)
		return orm.EncodeSequence(uint64(n)), err
	}))
	qr.Register("/vault/owner", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		return state.Owner(db)
	}))
	qr.Register("/vault/paused", keyQuery(func(db bridge.ReadOnlyKVStore, _ []byte) ([]byte, error) {
		paused, err := state.Paused(db)
		return flag(paused), err
	}))

	access.RegisterQuery(qr)
	replay.RegisterQuery(qr)
}

// keyQuery adapts a single value lookup to a query handler. Only the key
// mod is supported.
func keyQuery(fn func(db bridge.ReadOnlyKVStore, key []byte) ([]byte, error)) bridge.QueryHandler {
	return bridge.QueryHandlerFunc(func(db bridge.ReadOnlyKVStore, mod string, data []byte) ([]bridge.Model, error) {
		if mod != bridge.KeyQueryMod {
			return nil, errors.Wrapf(errors.ErrInput, "unknown query mod %q", mod)
		}
		value, err := fn(db, data)
		if err != nil {
			return nil, err
		}
		return []bridge.Model{bridge.Pair(data, value)}, nil
	})
}

func flag(b bool) []byte {
	if b {
		return []byte{1}
	}
	return []byte{0}
}
