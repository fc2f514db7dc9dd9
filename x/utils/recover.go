package utils

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// Recovery is a decorator to recover from panics in transactions,
// so we can log them as errors
type Recovery struct{}

var _ bridge.Decorator = Recovery{}

// NewRecovery creates a Recovery decorator
func NewRecovery() Recovery {
	return Recovery{}
}

// Check turns panics into normal errors
func (r Recovery) Check(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Checker) (_ *bridge.CheckResult, err error) {
	defer errors.Recover(&err)
	return next.Check(ctx, store, tx)
}

// Deliver turns panics into normal errors
func (r Recovery) Deliver(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx, next bridge.Deliverer) (_ *bridge.DeliverResult, err error) {
	defer errors.Recover(&err)
	return next.Deliver(ctx, store, tx)
}
