package utils

import (
	"context"
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
	"github.com/stretchr/testify/assert"
)

func TestRecovery(t *testing.T) {
	h := &bridgetest.Handler{Panic: "handler panic"}
	r := NewRecovery()

	ctx := context.Background()
	s := store.MemStore()

	// Panic handler panics. Test the test tool.
	assert.Panics(t, func() { h.Check(ctx, s, nil) })
	assert.Panics(t, func() { h.Deliver(ctx, s, nil) })

	// Recovery wrapped handler returns an error.
	_, err := r.Check(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))

	_, err = r.Deliver(ctx, s, nil, h)
	assert.True(t, errors.ErrPanic.Is(err))
}

func TestRecoveryPassesResult(t *testing.T) {
	h := &bridgetest.Handler{DeliverResult: bridge.DeliverResult{Log: "done"}}
	res, err := NewRecovery().Deliver(context.Background(), store.MemStore(), nil, h)
	assert.NoError(t, err)
	assert.Equal(t, "done", res.Log)
}
