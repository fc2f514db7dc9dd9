package x

import (
	"github.com/iov-one/bridge"
)

// Authenticator is an interface we can use to extract authentication info
// from the context. This should be passed into the constructor of
// handlers, so we can plug in another authentication system,
// rather than hard-coding the host caller for all extensions.
type Authenticator interface {
	// GetConditions reveals all Conditions fulfilled,
	// you may want MainSigner helper
	GetConditions(bridge.Context) []bridge.Condition
	// HasAddress checks if any condition matches this address
	HasAddress(bridge.Context, bridge.Address) bool
}

// MainSigner returns the first permission if any, otherwise nil
func MainSigner(ctx bridge.Context, auth Authenticator) bridge.Condition {
	signers := auth.GetConditions(ctx)
	if len(signers) == 0 {
		return nil
	}
	return signers[0]
}
