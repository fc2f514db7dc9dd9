package iavl

import (
	"io/ioutil"
	"os"
	"testing"

	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/store"
)

func makeCommitStore(t testing.TB) (CommitStore, func()) {
	t.Helper()
	tmpDir, err := ioutil.TempDir("", "iavl-adapter-")
	if err != nil {
		t.Fatalf("cannot create temp dir: %s", err)
	}
	commit := NewCommitStore(tmpDir, "base")
	return commit, func() { os.RemoveAll(tmpDir) }
}

func TestAdapterSuite(t *testing.T) {
	suite := store.NewTestSuite(func() (store.CacheableKVStore, func()) {
		return MockCommitStore().Adapter(), func() {}
	})

	t.Run("get and set", suite.GetSet)
	t.Run("cache conflicts", suite.CacheConflicts)
	t.Run("fuzz iterator", suite.FuzzIterator)
	t.Run("iterator with conflicts", suite.IteratorWithConflicts)
	t.Run("nested savepoints", suite.NestedSavepoints)
	t.Run("prefix scan", suite.PrefixScan)
}

func TestCommitOnlyShowsSavedState(t *testing.T) {
	commit := MockCommitStore()
	k, v := []byte("nonce"), []byte{0, 0, 0, 7}

	cache := commit.CacheWrap()
	assert.Nil(t, cache.Set(k, v))
	assert.Nil(t, cache.Write())

	got, err := commit.Get(k)
	assert.Nil(t, err)
	assert.Nil(t, got)

	id, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, int64(1), id.Version)

	got, err = commit.Get(k)
	assert.Nil(t, err)
	assert.Equal(t, v, got)

	latest, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, id, latest)
}

func TestCommitStoreReload(t *testing.T) {
	commit, cleanup := makeCommitStore(t)
	defer cleanup()

	k, v := []byte("processed"), []byte{1}
	assert.Nil(t, commit.Adapter().Set(k, v))
	first, err := commit.Commit()
	assert.Nil(t, err)

	assert.Nil(t, commit.Adapter().Delete(k))
	second, err := commit.Commit()
	assert.Nil(t, err)
	assert.Equal(t, first.Version+1, second.Version)

	// The working tree may hold uncommitted data that is lost on reload.
	assert.Nil(t, commit.Adapter().Set(k, []byte{2}))
	assert.Nil(t, commit.LoadLatestVersion())

	latest, err := commit.LatestVersion()
	assert.Nil(t, err)
	assert.Equal(t, second, latest)
	has, err := commit.Adapter().Has(k)
	assert.Nil(t, err)
	assert.Equal(t, false, has)
}
