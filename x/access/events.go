package access

import (
	"strconv"

	"github.com/iov-one/bridge"
	"github.com/tendermint/tendermint/libs/common"
)

// ValidatorAdded is signaled when a validator is added, including the owner
// at initialization.
type ValidatorAdded struct {
	Validator bridge.Address
}

func (ValidatorAdded) Kind() string { return "ValidatorAdded" }

func (e ValidatorAdded) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("validator"), Value: []byte(e.Validator.String())},
	}
}

// ValidatorRemoved is signaled when a validator is removed.
type ValidatorRemoved struct {
	Validator bridge.Address
}

func (ValidatorRemoved) Kind() string { return "ValidatorRemoved" }

func (e ValidatorRemoved) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("validator"), Value: []byte(e.Validator.String())},
	}
}

// RequiredSignaturesChanged is signaled when the threshold changes.
type RequiredSignaturesChanged struct {
	Count uint32
}

func (RequiredSignaturesChanged) Kind() string { return "RequiredSignaturesChanged" }

func (e RequiredSignaturesChanged) Attributes() []common.KVPair {
	return []common.KVPair{
		{Key: []byte("count"), Value: []byte(strconv.FormatUint(uint64(e.Count), 10))},
	}
}

// VaultPaused is signaled when the vault is paused.
type VaultPaused struct{}

func (VaultPaused) Kind() string                { return "VaultPaused" }
func (VaultPaused) Attributes() []common.KVPair { return nil }

// VaultUnpaused is signaled when the vault is unpaused.
type VaultUnpaused struct{}

func (VaultUnpaused) Kind() string                { return "VaultUnpaused" }
func (VaultUnpaused) Attributes() []common.KVPair { return nil }
