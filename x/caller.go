package x

import (
	"context"

	"github.com/iov-one/bridge"
)

type contextKey int // local to this package

const (
	contextKeyCaller contextKey = iota
)

// WithCaller returns a context carrying the identity of the invoker, as
// established by the host. Only the host may call it, before dispatching an
// invocation.
func WithCaller(ctx bridge.Context, caller bridge.Condition) bridge.Context {
	return context.WithValue(ctx, contextKeyCaller, caller)
}

// GetCaller returns the caller set by the host, or nil.
func GetCaller(ctx bridge.Context) bridge.Condition {
	val, _ := ctx.Value(contextKeyCaller).(bridge.Condition)
	return val
}

// HostAuth authenticates the caller declared by the host.
type HostAuth struct{}

var _ Authenticator = HostAuth{}

// GetConditions returns the host caller, if any.
func (HostAuth) GetConditions(ctx bridge.Context) []bridge.Condition {
	caller := GetCaller(ctx)
	if caller == nil {
		return nil
	}
	return []bridge.Condition{caller}
}

// HasAddress returns true if addr is the host caller.
func (HostAuth) HasAddress(ctx bridge.Context, addr bridge.Address) bool {
	caller := GetCaller(ctx)
	return caller != nil && addr.Equals(caller.Address())
}
