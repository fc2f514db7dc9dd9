package vault

import (
	"strconv"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/tendermint/tendermint/libs/common"
)

// AssetLocked is signaled for every lock. Nonce is the value the lock was
// assigned, before the vault nonce was incremented.
type AssetLocked struct {
	User               bridge.Address
	Amount             coin.Amount
	TokenType          string
	DestinationChain   string
	DestinationAddress string
	Nonce              uint64
}

func (AssetLocked) Kind() string { return "AssetLocked" }

func (e AssetLocked) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("user"), Value: []byte(e.User.String())},
		{Key: []byte("amount"), Value: []byte(e.Amount.String())},
		{Key: []byte("token_type"), Value: []byte(e.TokenType)},
		{Key: []byte("destination_chain"), Value: []byte(e.DestinationChain)},
		{Key: []byte("destination_address"), Value: []byte(e.DestinationAddress)},
		{Key: []byte("nonce"), Value: []byte(strconv.FormatUint(e.Nonce, 10))},
	}
}

// AssetReleased is signaled for every release. User is the recipient.
type AssetReleased struct {
	User        bridge.Address
	Amount      coin.Amount
	TokenType   string
	SourceChain string
	Nonce       uint64
}

func (AssetReleased) Kind() string { return "AssetReleased" }

func (e AssetReleased) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("user"), Value: []byte(e.User.String())},
		{Key: []byte("amount"), Value: []byte(e.Amount.String())},
		{Key: []byte("token_type"), Value: []byte(e.TokenType)},
		{Key: []byte("source_chain"), Value: []byte(e.SourceChain)},
		{Key: []byte("nonce"), Value: []byte(strconv.FormatUint(e.Nonce, 10))},
	}
}
