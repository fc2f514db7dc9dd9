package store

import (
	"testing"

	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
)

// TestSliceIterator makes sure the basic slice iterator works.
func TestSliceIterator(t *testing.T) {
	const size = 10

	ks := randKeys(size, 8)
	vs := randKeys(size, 40)

	models := make([]Model, size)
	for i := 0; i < size; i++ {
		models[i].Key = ks[i]
		models[i].Value = vs[i]
	}

	iter := NewSliceIterator(models)
	for i := 0; i < size; i++ {
		key, value, err := iter.Next()
		assert.Nil(t, err)
		assert.Equal(t, ks[i], key)
		assert.Equal(t, vs[i], value)
	}
	if _, _, err := iter.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("want iterator done, got %+v", err)
	}

	it := NewSliceIterator(models)
	it.Release()
	if _, _, err := it.Next(); !errors.ErrIteratorDone.Is(err) {
		t.Fatalf("released iterator must be done, got %+v", err)
	}
}

func TestOpApply(t *testing.T) {
	db := MemStore()
	assert.Nil(t, SetOp([]byte("k"), []byte("v")).Apply(db))
	v, err := db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Equal(t, []byte("v"), v)

	assert.Nil(t, DelOp([]byte("k")).Apply(db))
	v, err = db.Get([]byte("k"))
	assert.Nil(t, err)
	assert.Nil(t, v)

	if err := (Op{}).Apply(db); !errors.ErrDatabase.Is(err) {
		t.Fatalf("want database error, got %+v", err)
	}
}
