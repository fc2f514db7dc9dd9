package app

import (
	"context"
	"testing"

	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
)

func TestRouter(t *testing.T) {
	var (
		ctx = context.Background()
		db  = store.MemStore()
	)

	r := NewRouter()
	good := &bridgetest.Handler{}
	bad := &bridgetest.Handler{DeliverErr: errors.ErrAmount}
	r.Handle(&bridgetest.Msg{RoutePath: "vault/good"}, good)
	r.Handle(&bridgetest.Msg{RoutePath: "vault/bad"}, bad)

	assert.Panics(t, func() { r.Handle(&bridgetest.Msg{RoutePath: "vault/good"}, good) })
	assert.Panics(t, func() { r.Handle(&bridgetest.Msg{RoutePath: "l:7"}, good) })

	tx := &bridgetest.Tx{Msg: &bridgetest.Msg{RoutePath: "vault/good"}}
	_, err := r.Check(ctx, db, tx)
	assert.Nil(t, err)
	_, err = r.Deliver(ctx, db, tx)
	assert.Nil(t, err)
	assert.Equal(t, 2, good.CallCount())

	_, err = r.Deliver(ctx, db, &bridgetest.Tx{Msg: &bridgetest.Msg{RoutePath: "vault/bad"}})
	assert.IsErr(t, errors.ErrAmount, err)

	missing := &bridgetest.Tx{Msg: &bridgetest.Msg{RoutePath: "vault/missing"}}
	_, err = r.Check(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)
	_, err = r.Deliver(ctx, db, missing)
	assert.IsErr(t, errors.ErrNotFound, err)

	_, err = r.Deliver(ctx, db, &bridgetest.Tx{})
	assert.IsErr(t, errors.ErrMsg, err)
	_, err = r.Deliver(ctx, db, &bridgetest.Tx{Err: errors.ErrInput})
	assert.IsErr(t, errors.ErrInput, err)

	assert.Equal(t, 2, good.CallCount())
}
