package store

import "github.com/iov-one/bridge"

// Move references for all storage types into this package
// for shorter names everywhere

type (
	ReadOnlyKVStore  = bridge.ReadOnlyKVStore
	SetDeleter       = bridge.SetDeleter
	KVStore          = bridge.KVStore
	Batch            = bridge.Batch
	Iterator         = bridge.Iterator
	CacheableKVStore = bridge.CacheableKVStore
	KVCacheWrap      = bridge.KVCacheWrap
	CommitKVStore    = bridge.CommitKVStore
	CommitID         = bridge.CommitID
	Model            = bridge.Model
)

// Pair constructs a model from a key-value pair
var Pair = bridge.Pair
