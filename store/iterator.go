package store

import (
	"bytes"

	"github.com/iov-one/bridge/errors"
)

// cacheIterator combines the items pending in a cache-wrap with the
// results of the parent store iterator, taking into consideration
// overwrites and deletes.
type cacheIterator struct {
	// items are the cached items left to process, in iteration order
	items []keyer

	parent     Iterator
	parentKey  []byte
	parentVal  []byte
	parentDone bool

	reverse bool
}

var _ Iterator = (*cacheIterator)(nil)

func newCacheIterator(items []keyer, parent Iterator, reverse bool) (*cacheIterator, error) {
	it := &cacheIterator{
		items:   items,
		parent:  parent,
		reverse: reverse,
	}
	if err := it.advanceParent(); err != nil {
		parent.Release()
		return nil, err
	}
	return it, nil
}

// Next implements Iterator.
func (i *cacheIterator) Next() (key, value []byte, err error) {
	for {
		if len(i.items) == 0 {
			if i.parentDone {
				return nil, nil, errors.ErrIteratorDone
			}
			return i.popParent()
		}

		item := i.items[0]
		if !i.parentDone {
			if i.before(i.parentKey, item.Key()) {
				return i.popParent()
			}
			// Cached value shadows the parent entry.
			if bytes.Equal(i.parentKey, item.Key()) {
				if err := i.advanceParent(); err != nil {
					return nil, nil, err
				}
			}
		}

		i.items = i.items[1:]
		switch t := item.(type) {
		case setItem:
			return t.key, t.value, nil
		case deletedItem:
			continue
		default:
			return nil, nil, errors.Wrapf(errors.ErrDatabase, "unknown item in btree: %#v", item)
		}
	}
}

// Release implements Iterator.
func (i *cacheIterator) Release() {
	i.parent.Release()
	i.items = nil
	i.parentDone = true
}

func (i *cacheIterator) popParent() ([]byte, []byte, error) {
	key, value := i.parentKey, i.parentVal
	if err := i.advanceParent(); err != nil {
		return nil, nil, err
	}
	return key, value, nil
}

func (i *cacheIterator) advanceParent() error {
	key, value, err := i.parent.Next()
	switch {
	case err == nil:
		i.parentKey, i.parentVal = key, value
	case errors.ErrIteratorDone.Is(err):
		i.parentKey, i.parentVal = nil, nil
		i.parentDone = true
	default:
		return err
	}
	return nil
}

// before returns true if key a is returned before key b.
func (i *cacheIterator) before(a, b []byte) bool {
	cmp := bytes.Compare(a, b)
	if i.reverse {
		return cmp > 0
	}
	return cmp < 0
}
