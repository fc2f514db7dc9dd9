package cash

import (
	"encoding/json"
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
)

func TestGenesis(t *testing.T) {
	const genesis = `{
		"cash": [
			{"address": "b1ca7e78f74423ae01da3b51e676934d9105f282", "amount": "1000"},
			{"address": "e28ae9a6eb94fc88b73eb7cbd6b87bf93eb9bef0", "amount": 250}
		]
	}`
	var opts bridge.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}

	db := store.MemStore()
	assert.Nil(t, Initializer{}.FromGenesis(opts, db))

	addr, err := bridge.ParseAddress("b1ca7e78f74423ae01da3b51e676934d9105f282")
	assert.Nil(t, err)
	got, err := Balance(db, addr)
	assert.Nil(t, err)
	assert.AmountEqual(t, 1000, got)

	qr := bridge.NewQueryRouter()
	RegisterQuery(qr)
	res, err := qr.Query(db, "/balances", bridge.PrefixQueryMod, nil)
	assert.Nil(t, err)
	assert.Equal(t, 2, len(res))
}

func TestGenesisInvalidAddress(t *testing.T) {
	const genesis = `{"cash": [{"address": "b1ca7e", "amount": "1000"}]}`
	var opts bridge.Options
	if err := json.Unmarshal([]byte(genesis), &opts); err != nil {
		t.Fatalf("cannot unmarshal genesis: %s", err)
	}
	err := Initializer{}.FromGenesis(opts, store.MemStore())
	assert.IsErr(t, errors.ErrInput, err)
}
