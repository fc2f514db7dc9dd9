package cash

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
)

const optKey = "cash"

// GenesisAccount is used to parse the json from genesis file
// use bridge.Address, so address in hex, not base64
type GenesisAccount struct {
	Address bridge.Address `json:"address"`
	Amount  coin.Amount    `json:"amount"`
}

// Initializer fulfils the bridge.Initializer interface to load data from
// the genesis file
type Initializer struct{}

var _ bridge.Initializer = Initializer{}

// FromGenesis will parse initial account info from genesis
// and save it to the database
func (Initializer) FromGenesis(opts bridge.Options, kv bridge.KVStore) error {
	var accts []GenesisAccount
	if err := opts.ReadOptions(optKey, &accts); err != nil {
		return err
	}
	for i, acct := range accts {
		if err := acct.Address.Validate(); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
		if err := IssueCoins(kv, acct.Address, acct.Amount); err != nil {
			return errors.Wrapf(err, "account %d", i)
		}
	}
	return nil
}

// RegisterQuery registers the balance bucket under /balances.
func RegisterQuery(qr bridge.QueryRouter) {
	NewBucket().Register("balances", qr)
}
