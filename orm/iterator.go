package orm

import (
	"bytes"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// ModelIterator walks over the models of a bucket.
type ModelIterator interface {
	// LoadNext moves the iterator to the next model and loads it into the
	// passed destination. It returns the model key, stripped of the bucket
	// prefix. ErrIteratorDone is returned once all models were read.
	LoadNext(dest Model) ([]byte, error)

	// Release releases the Iterator.
	Release()
}

type modelIterator struct {
	iterator bridge.Iterator
	// prefix is stripped from each key
	prefix []byte
}

var _ ModelIterator = (*modelIterator)(nil)

func (i *modelIterator) LoadNext(dest Model) ([]byte, error) {
	key, value, err := i.iterator.Next()
	if err != nil {
		return nil, err
	}
	if !bytes.HasPrefix(key, i.prefix) {
		return nil, errors.Wrapf(errors.ErrDatabase, "key with unexpected prefix: %X", key)
	}
	if err := Unmarshal(value, dest); err != nil {
		return nil, err
	}
	return key[len(i.prefix):], nil
}

func (i *modelIterator) Release() {
	i.iterator.Release()
}
