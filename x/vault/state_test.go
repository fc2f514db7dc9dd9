package vault

import (
	"testing"

	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStateBeforeInitialize(t *testing.T) {
	db := store.MemStore()
	s := NewState()

	ok, err := s.Initialized(db)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.Owner(db)
	assert.True(t, errors.ErrState.Is(err))
	_, err = s.TotalLocked(db)
	assert.True(t, errors.ErrState.Is(err))
	_, err = s.Lock(db, coin.NewAmount(1))
	assert.True(t, errors.ErrState.Is(err))
	assert.True(t, errors.ErrState.Is(s.SetPaused(db, true)))
}

func TestStateLockAndDebit(t *testing.T) {
	db := store.MemStore()
	s := NewState()
	owner := bridgetest.NewCondition().Address()
	require.NoError(t, s.Initialize(db, owner, 2, coin.NewAmount(10)))

	n, err := s.RequiredSignatures(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), n)
	paused, err := s.Paused(db)
	require.NoError(t, err)
	assert.False(t, paused)

	for want := uint64(0); want < 3; want++ {
		nonce, err := s.Lock(db, coin.NewAmount(10))
		require.NoError(t, err)
		assert.Equal(t, want, nonce)
	}
	total, err := s.TotalLocked(db)
	require.NoError(t, err)
	assert.Equal(t, "30", total.String())

	_, err = s.Lock(db, coin.NewAmount(9))
	assert.True(t, ErrBelowMinimum.Is(err))

	require.NoError(t, s.Debit(db, coin.NewAmount(30)))
	err = s.Debit(db, coin.NewAmount(1))
	assert.True(t, ErrInsufficientEscrow.Is(err))

	nonce, err := s.Nonce(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(3), nonce)

	assert.True(t, errors.ErrInvalidConfiguration.Is(s.SetRequiredSignatures(db, 0)))
	require.NoError(t, s.SetRequiredSignatures(db, 9))
	n, err = s.RequiredSignatures(db)
	require.NoError(t, err)
	assert.Equal(t, uint32(9), n)

	err = s.Initialize(db, owner, 1, coin.Amount{})
	assert.True(t, ErrAlreadyInitialized.Is(err))
}

func TestStateLockOverflow(t *testing.T) {
	db := store.MemStore()
	s := NewState()
	require.NoError(t, s.Initialize(db, bridgetest.NewCondition().Address(), 1, coin.Amount{}))

	top, err := coin.ParseAmount("115792089237316195423570985008687907853269984665640564039457584007913129639935")
	require.NoError(t, err)
	_, err = s.Lock(db, top)
	require.NoError(t, err)

	_, err = s.Lock(db, coin.NewAmount(1))
	assert.True(t, errors.ErrOverflow.Is(err))
	nonce, err := s.Nonce(db)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), nonce)
}

func TestStateInitializeRejectsZeroThreshold(t *testing.T) {
	db := store.MemStore()
	err := NewState().Initialize(db, bridgetest.NewCondition().Address(), 0, coin.Amount{})
	assert.True(t, errors.ErrInvalidConfiguration.Is(err))
}
