package app

import (
	"testing"

	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
)

func TestCommitStore(t *testing.T) {
	db, cleanup := bridgetest.CommitKVStore(t)
	defer cleanup()

	cs, err := NewCommitStore(db)
	assert.Nil(t, err)

	key, value := []byte("foo"), []byte("bar")
	assert.Nil(t, cs.DeliverStore().Set(key, value))

	// Check never sees pending deliveries.
	got, err := cs.CheckStore().Get(key)
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err := cs.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	got, err = cs.CheckStore().Get(key)
	assert.Nil(t, err)
	assert.Equal(t, value, got)

	info, err := cs.CommitInfo()
	assert.Nil(t, err)
	assert.Equal(t, id, info)
}

func TestChainID(t *testing.T) {
	db, cleanup := bridgetest.CommitKVStore(t)
	defer cleanup()
	cs, err := NewCommitStore(db)
	assert.Nil(t, err)
	kv := cs.DeliverStore()

	id, err := loadChainID(kv)
	assert.Nil(t, err)
	assert.Equal(t, "", id)

	assert.IsErr(t, errors.ErrInput, saveChainID(kv, "x"))
	assert.Nil(t, saveChainID(kv, "test-chain"))
	assert.IsErr(t, errors.ErrUnauthorized, saveChainID(kv, "other-chain"))

	id, err = loadChainID(kv)
	assert.Nil(t, err)
	assert.Equal(t, "test-chain", id)
}
