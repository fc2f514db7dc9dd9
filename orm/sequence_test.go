package orm

import (
	"math"
	"testing"

	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
	"github.com/stretchr/testify/require"
)

func TestSequence(t *testing.T) {
	db := store.MemStore()
	s := NewSequence([]byte("vault:nonce"))

	latest, err := s.Latest(db)
	require.NoError(t, err)
	require.Equal(t, uint64(0), latest)

	first, err := s.NextInt(db)
	require.NoError(t, err)
	require.Equal(t, uint64(0), first)

	second, err := s.NextVal(db)
	require.NoError(t, err)
	require.Equal(t, EncodeSequence(1), second)

	latest, err = s.Latest(db)
	require.NoError(t, err)
	require.Equal(t, uint64(2), latest)
}

func TestSequenceOverflow(t *testing.T) {
	db := store.MemStore()
	s := NewSequence([]byte("vault:nonce"))
	require.NoError(t, s.Set(db, math.MaxUint64))

	_, err := s.NextInt(db)
	require.True(t, errors.ErrOverflow.Is(err), "got %+v", err)

	latest, err := s.Latest(db)
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), latest)
}

func TestDecodeSequence(t *testing.T) {
	n, err := DecodeSequence(EncodeSequence(42))
	require.NoError(t, err)
	require.Equal(t, uint64(42), n)

	_, err = DecodeSequence([]byte{1, 2})
	require.True(t, errors.ErrInput.Is(err))
}
