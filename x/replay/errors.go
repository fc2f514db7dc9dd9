package replay

import "github.com/iov-one/bridge/errors"

// ErrAlreadyProcessed is returned when a proof nonce was consumed before.
var ErrAlreadyProcessed = errors.Register(1200, "proof already processed")
