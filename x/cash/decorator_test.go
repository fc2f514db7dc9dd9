package cash

import (
	"context"
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/store"
)

type valueTx struct {
	bridgetest.Tx
	value coin.Amount
}

func (tx *valueTx) GetAttachedValue() (coin.Amount, error) {
	return tx.value, nil
}

// payableMsg accepts an attached value.
type payableMsg struct {
	bridgetest.Msg
}

func (payableMsg) Payable() {}

func payable(value uint64) *valueTx {
	return &valueTx{
		Tx:    bridgetest.Tx{Msg: &payableMsg{Msg: bridgetest.Msg{RoutePath: "test/pay"}}},
		value: coin.NewAmount(value),
	}
}

// attachedHandler records the attached value seen by the handler.
type attachedHandler struct {
	bridgetest.Handler
	seen coin.Amount
	ok   bool
}

func (h *attachedHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	h.seen, h.ok = bridge.GetAttachedValue(ctx)
	return h.Handler.Deliver(ctx, db, tx)
}

func TestAttachedValueDecorator(t *testing.T) {
	payer := bridgetest.NewCondition()
	collector := bridgetest.NewCondition().Address()

	cases := map[string]struct {
		signer        bridge.Condition
		tx            bridge.Tx
		wantErr       *errors.Error
		wantSeen      uint64
		wantPayer     uint64
		wantCollected uint64
	}{
		"value is collected": {
			signer:        payer,
			tx:            payable(400),
			wantSeen:      400,
			wantPayer:     600,
			wantCollected: 400,
		},
		"no value attached": {
			signer:        payer,
			tx:            &valueTx{},
			wantSeen:      0,
			wantPayer:     1000,
			wantCollected: 0,
		},
		"transaction without value support": {
			signer:        payer,
			tx:            &bridgetest.Tx{},
			wantSeen:      0,
			wantPayer:     1000,
			wantCollected: 0,
		},
		"not enough funds": {
			signer:        payer,
			tx:            payable(1001),
			wantErr:       errors.ErrInsufficientAmount,
			wantPayer:     1000,
			wantCollected: 0,
		},
		"no caller": {
			tx:            payable(1),
			wantErr:       errors.ErrUnauthorized,
			wantPayer:     1000,
			wantCollected: 0,
		},
		"message does not accept a value": {
			signer: payer,
			tx: &valueTx{
				Tx:    bridgetest.Tx{Msg: &bridgetest.Msg{RoutePath: "test/admin"}},
				value: coin.NewAmount(400),
			},
			wantErr:       errors.ErrMsg,
			wantPayer:     1000,
			wantCollected: 0,
		},
	}

	for testName, tc := range cases {
		t.Run(testName, func(t *testing.T) {
			db := store.MemStore()
			assert.Nil(t, IssueCoins(db, payer.Address(), coin.NewAmount(1000)))

			auth := &bridgetest.Auth{Signer: tc.signer}
			d := NewAttachedValueDecorator(auth, collector)
			h := &attachedHandler{}

			_, err := d.Deliver(context.Background(), db, tc.tx, h)
			assert.IsErr(t, tc.wantErr, err)
			if tc.wantErr == nil {
				assert.Equal(t, true, h.ok)
				assert.AmountEqual(t, tc.wantSeen, h.seen)
			} else {
				assert.Equal(t, 0, h.DeliverCallCount())
			}

			got, err := Balance(db, payer.Address())
			assert.Nil(t, err)
			assert.AmountEqual(t, tc.wantPayer, got)
			got, err = Balance(db, collector)
			assert.Nil(t, err)
			assert.AmountEqual(t, tc.wantCollected, got)
		})
	}
}
