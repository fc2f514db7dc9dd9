package app

import (
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x/access"
	"github.com/iov-one/bridge/x/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxEncoding(t *testing.T) {
	lock := &vault.LockMsg{
		Metadata:           &bridge.Metadata{Schema: 1},
		DestinationChain:   "eth",
		DestinationAddress: "0xabc",
	}
	bz, err := NewTx(lock, coin.NewAmount(5000)).Marshal()
	require.NoError(t, err)

	tx, err := DecodeTx(bz)
	require.NoError(t, err)
	msg, err := tx.GetMsg()
	require.NoError(t, err)
	assert.Equal(t, lock, msg)

	value, err := tx.(*Tx).GetAttachedValue()
	require.NoError(t, err)
	assert.True(t, coin.NewAmount(5000).Equals(value))

	add := &access.AddValidatorMsg{
		Metadata:  &bridge.Metadata{Schema: 1},
		Validator: bridgetest.NewCondition().Address(),
	}
	bz, err = NewTx(add, coin.Amount{}).Marshal()
	require.NoError(t, err)
	tx, err = DecodeTx(bz)
	require.NoError(t, err)
	assert.Equal(t, "access/add_validator", bridge.GetPath(tx))
	value, err = tx.(*Tx).GetAttachedValue()
	require.NoError(t, err)
	assert.True(t, value.IsZero())
}

func TestTxErrors(t *testing.T) {
	_, err := DecodeTx([]byte("not amino"))
	assert.True(t, errors.ErrInput.Is(err), "got %+v", err)

	_, err = (&Tx{}).GetMsg()
	assert.True(t, errors.ErrMsg.Is(err), "got %+v", err)

	_, err = (&Tx{Value: "lots"}).GetAttachedValue()
	assert.Error(t, err)
}
