package orm

import (
	"testing"

	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
	"github.com/stretchr/testify/require"
)

type counter struct {
	Metadata *bridge.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3"`
	Count    uint64           `protobuf:"varint,2,opt,name=count,proto3"`
}

func (c *counter) Reset() { *c = counter{} }
func (c *counter) String() string { return proto.CompactTextString(c) }
func (*counter) ProtoMessage() {}

func (c *counter) Validate() error {
	if err := c.Metadata.Validate(); err != nil {
		return errors.Wrap(err, "metadata")
	}
	if c.Count == 0 {
		return errors.Wrap(errors.ErrEmpty, "count")
	}
	return nil
}

type other struct {
	Name string `protobuf:"bytes,1,opt,name=name,proto3"`
}

func (o *other) Reset() { *o = other{} }
func (o *other) String() string { return proto.CompactTextString(o) }
func (*other) ProtoMessage() {}

func (o *other) Validate() error { return nil }

func TestModelBucket(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})

	if err := b.Put(db, []byte("c1"), &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 1}); err != nil {
		t.Fatalf("cannot save counter instance: %s", err)
	}

	var c1 counter
	if err := b.One(db, []byte("c1"), &c1); err != nil {
		t.Fatalf("cannot get c1 counter: %s", err)
	}
	if c1.Count != 1 {
		t.Fatalf("unexpected counter state: %d", c1.Count)
	}
	assert.Nil(t, b.Has(db, []byte("c1")))

	if err := b.Delete(db, []byte("c1")); err != nil {
		t.Fatalf("cannot delete c1 counter: %s", err)
	}
	if err := b.Delete(db, []byte("unknown")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error when deleting unexisting instance: %s", err)
	}
	if err := b.One(db, []byte("c1"), &c1); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model get: %s", err)
	}
	if err := b.Has(db, []byte("c1")); !errors.ErrNotFound.Is(err) {
		t.Fatalf("unexpected error for an unknown model has: %s", err)
	}
}

func TestModelBucketPutValidation(t *testing.T) {
	cases := map[string]struct {
		Key     []byte
		Model   Model
		WantErr *errors.Error
	}{
		"valid": {
			Key:     []byte("a"),
			Model:   &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 7},
			WantErr: nil,
		},
		"missing metadata": {
			Key:     []byte("a"),
			Model:   &counter{Count: 7},
			WantErr: errors.ErrMetadata,
		},
		"invalid model": {
			Key:     []byte("a"),
			Model:   &counter{Metadata: &bridge.Metadata{Schema: 1}},
			WantErr: errors.ErrEmpty,
		},
		"empty key": {
			Key:     nil,
			Model:   &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 7},
			WantErr: errors.ErrEmpty,
		},
		"wrong type": {
			Key:     []byte("a"),
			Model:   &other{Name: "x"},
			WantErr: errors.ErrType,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			b := NewModelBucket("cnts", &counter{})
			err := b.Put(db, tc.Key, tc.Model)
			if tc.WantErr == nil {
				require.NoError(t, err)
				return
			}
			require.True(t, tc.WantErr.Is(err), "got %+v", err)
		})
	}
}

func TestModelBucketOneWrongDestination(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	require.NoError(t, b.Put(db, []byte("a"), &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 1}))

	var o other
	err := b.One(db, []byte("a"), &o)
	require.True(t, errors.ErrType.Is(err), "got %+v", err)
}

func TestModelBucketIterate(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	// A neighbour bucket sharing the first letters must not leak in.
	n := NewModelBucket("cntsx", &counter{})

	for i, key := range []string{"c", "a", "b"} {
		m := &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: uint64(i + 1)}
		require.NoError(t, b.Put(db, []byte(key), m))
	}
	require.NoError(t, n.Put(db, []byte("z"), &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 9}))

	it, err := b.Iterate(db)
	require.NoError(t, err)
	defer it.Release()

	var keys []string
	var counts []uint64
	for {
		var c counter
		key, err := it.LoadNext(&c)
		if errors.ErrIteratorDone.Is(err) {
			break
		}
		require.NoError(t, err)
		keys = append(keys, string(key))
		counts = append(counts, c.Count)
	}
	require.Equal(t, []string{"a", "b", "c"}, keys)
	require.Equal(t, []uint64{2, 3, 1}, counts)
}

func TestModelBucketQuery(t *testing.T) {
	db := store.MemStore()
	b := NewModelBucket("cnts", &counter{})
	qr := bridge.NewQueryRouter()
	b.Register("counters", qr)

	c := &counter{Metadata: &bridge.Metadata{Schema: 1}, Count: 5}
	require.NoError(t, b.Put(db, []byte("aa"), c))
	require.NoError(t, b.Put(db, []byte("ab"), c))
	require.NoError(t, b.Put(db, []byte("b"), c))

	res, err := qr.Query(db, "/counters", bridge.KeyQueryMod, []byte("aa"))
	require.NoError(t, err)
	require.Len(t, res, 1)
	require.Equal(t, []byte("aa"), res[0].Key)
	var got counter
	require.NoError(t, Unmarshal(res[0].Value, &got))
	require.Equal(t, c, &got)

	res, err = qr.Query(db, "/counters", bridge.KeyQueryMod, []byte("zz"))
	require.NoError(t, err)
	require.Len(t, res, 0)

	res, err = qr.Query(db, "/counters", bridge.PrefixQueryMod, []byte("a"))
	require.NoError(t, err)
	require.Len(t, res, 2)
	require.Equal(t, []byte("ab"), res[1].Key)

	_, err = qr.Query(db, "/counters", "range", nil)
	require.True(t, errors.ErrInput.Is(err))
}

func TestPrefixEnd(t *testing.T) {
	require.Equal(t, []byte("cnts;"), prefixEnd([]byte("cnts:")))
	require.Equal(t, []byte{0x02}, prefixEnd([]byte{0x01, 0xFF}))
	require.Nil(t, prefixEnd([]byte{0xFF, 0xFF}))
}

func TestIllegalBucketName(t *testing.T) {
	assert.Panics(t, func() { NewModelBucket("A!", &counter{}) })
	assert.Panics(t, func() { NewVars("x") })
}
