package orm

import (
	"testing"

	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestVars(t *testing.T) {
	db := store.MemStore()
	vars := NewVars("vault")
	paused := vars.Var("paused")
	nonce := vars.Var("nonce")
	owner := vars.Var("owner")

	require.Equal(t, []byte("vault:paused"), paused.Key())

	ok, err := paused.Exists(db)
	require.NoError(t, err)
	require.False(t, ok)
	_, err = paused.Bool(db)
	require.True(t, errors.ErrNotFound.Is(err))

	// Zero values are still stored and found.
	require.NoError(t, paused.SetBool(db, false))
	ok, err = paused.Exists(db)
	require.NoError(t, err)
	require.True(t, ok)
	flag, err := paused.Bool(db)
	require.NoError(t, err)
	require.False(t, flag)

	require.NoError(t, paused.SetBool(db, true))
	flag, err = paused.Bool(db)
	require.NoError(t, err)
	require.True(t, flag)

	require.NoError(t, nonce.SetUint64(db, 0))
	n, err := nonce.Uint64(db)
	require.NoError(t, err)
	require.Equal(t, uint64(0), n)
	require.NoError(t, nonce.SetUint64(db, 1<<40))
	n, err = nonce.Uint64(db)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<40), n)

	require.NoError(t, owner.SetBytes(db, []byte("owner address")))
	raw, err := owner.Bytes(db)
	require.NoError(t, err)
	require.Equal(t, []byte("owner address"), raw)

	// A flag is not a number.
	_, err = paused.Uint64(db)
	require.True(t, errors.ErrModel.Is(err))
}

func TestVarsOnStoreZeroValue(t *testing.T) {
	db := store.MemStore()
	v := NewVars("vault").Var("owner")
	require.NoError(t, v.SetBytes(db, nil))

	raw, err := db.Get(v.Key())
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	got, err := v.Bytes(db)
	require.NoError(t, err)
	require.Empty(t, got)
}
