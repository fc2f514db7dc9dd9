package bridge_test

import (
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
)

func TestQueryRouter(t *testing.T) {
	echo := bridge.QueryHandlerFunc(func(db bridge.ReadOnlyKVStore, mod string, data []byte) ([]bridge.Model, error) {
		if mod != bridge.KeyQueryMod {
			return nil, errors.ErrInput
		}
		return []bridge.Model{bridge.Pair(data, []byte(mod+"ok"))}, nil
	})

	qr := bridge.NewQueryRouter()
	qr.RegisterAll(func(qr bridge.QueryRouter) {
		qr.Register("/echo", echo)
	})
	assert.Panics(t, func() { qr.Register("/echo", echo) })

	db := store.MemStore()
	res, err := qr.Query(db, "/echo", bridge.KeyQueryMod, []byte("key"))
	assert.Nil(t, err)
	assert.Equal(t, []bridge.Model{{Key: []byte("key"), Value: []byte("ok")}}, res)

	_, err = qr.Query(db, "/echo", bridge.PrefixQueryMod, nil)
	assert.IsErr(t, errors.ErrInput, err)

	_, err = qr.Query(db, "/missing", bridge.KeyQueryMod, nil)
	assert.IsErr(t, errors.ErrNotFound, err)
	assert.Nil(t, qr.Handler("/missing"))
}
