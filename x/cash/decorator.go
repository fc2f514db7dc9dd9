package cash

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x"
)

// ValueTx is implemented by transactions that carry a value attached by the
// caller.
type ValueTx interface {
	GetAttachedValue() (coin.Amount, error)
}

// Payable is implemented by messages that accept a value attached to their
// transaction. Any other message carrying a value is rejected.
type Payable interface {
	bridge.Msg
	Payable()
}

// AttachedValueDecorator moves the value attached to a transaction from the
// caller to the collector account before calling down the stack. A value
// attached to a message that is not Payable is rejected. The moved
// amount is then available to handlers via bridge.GetAttachedValue.
//
// It must run inside a savepoint so that a failing handler also reverts the
// transfer.
type AttachedValueDecorator struct {
	auth      x.Authenticator
	collector bridge.Address
}

var _ bridge.Decorator = AttachedValueDecorator{}

// NewAttachedValueDecorator returns a decorator moving attached value to
// given collector.
func NewAttachedValueDecorator(auth x.Authenticator, collector bridge.Address) AttachedValueDecorator {
	return AttachedValueDecorator{
		auth:      auth,
		collector: collector,
	}
}

// Check moves the attached value before calling down the stack.
func (d AttachedValueDecorator) Check(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Checker) (*bridge.CheckResult, error) {
	ctx, err := d.collect(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Check(ctx, store, tx)
}

// Deliver moves the attached value before calling down the stack.
func (d AttachedValueDecorator) Deliver(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Deliverer) (*bridge.DeliverResult, error) {
	ctx, err := d.collect(ctx, store, tx)
	if err != nil {
		return nil, err
	}
	return next.Deliver(ctx, store, tx)
}

func (d AttachedValueDecorator) collect(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx) (bridge.Context, error) {
	vtx, ok := tx.(ValueTx)
	if !ok {
		return bridge.WithAttachedValue(ctx, coin.Amount{}), nil
	}
	amount, err := vtx.GetAttachedValue()
	if err != nil {
		return nil, errors.Wrap(err, "attached value")
	}
	if amount.IsZero() {
		return bridge.WithAttachedValue(ctx, amount), nil
	}
	msg, err := tx.GetMsg()
	if err != nil {
		return nil, errors.Wrap(err, "cannot get transaction message")
	}
	if _, ok := msg.(Payable); !ok {
		return nil, errors.Wrapf(errors.ErrMsg, "%s does not accept a value", bridge.GetPath(tx))
	}

	payer := x.MainSigner(ctx, d.auth)
	if payer == nil {
		return nil, errors.Wrap(errors.ErrUnauthorized, "value attached without a caller")
	}
	if err := MoveCoins(store, payer.Address(), d.collector, amount); err != nil {
		return nil, errors.Wrap(err, "cannot collect attached value")
	}
	return bridge.WithAttachedValue(ctx, amount), nil
}
