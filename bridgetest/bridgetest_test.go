package bridgetest

import (
	"context"
	"testing"

	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
)

func TestCtxAuth(t *testing.T) {
	a, b := NewCondition(), NewCondition()
	auth := &CtxAuth{Key: "auth"}

	ctx := context.Background()
	if auth.HasAddress(ctx, a.Address()) {
		t.Fatal("empty context must not authenticate")
	}
	ctx = auth.SetConditions(ctx, a)
	if !auth.HasAddress(ctx, a.Address()) {
		t.Fatal("condition not found")
	}
	if auth.HasAddress(ctx, b.Address()) {
		t.Fatal("unexpected condition")
	}
}

func TestSeedKey(t *testing.T) {
	if !SeedKey(1).PublicKey().Address().Equals(SeedKey(1).PublicKey().Address()) {
		t.Fatal("seed keys must be deterministic")
	}
	if SeedKey(1).PublicKey().Address().Equals(SeedKey(2).PublicKey().Address()) {
		t.Fatal("different seeds must give different keys")
	}
	if n := len(NewKeys(3)); n != 3 {
		t.Fatalf("want 3 keys, got %d", n)
	}
}

func TestHandlerWritesAndFails(t *testing.T) {
	db := store.MemStore()
	h := &Handler{
		WriteKey:   []byte("key"),
		WriteValue: []byte("value"),
		DeliverErr: errors.ErrState,
	}
	d := &Decorator{}

	_, err := Decorate(h, d).Deliver(context.Background(), db, &Tx{Msg: &Msg{RoutePath: "vault/lock"}})
	if !errors.ErrState.Is(err) {
		t.Fatalf("unexpected error: %+v", err)
	}
	got, err := db.Get([]byte("key"))
	if err != nil {
		t.Fatalf("cannot read: %s", err)
	}
	if string(got) != "value" {
		t.Fatalf("write not applied: %q", got)
	}
	if h.DeliverCallCount() != 1 || d.DeliverCallCount() != 1 {
		t.Fatal("each must be called once")
	}
}
