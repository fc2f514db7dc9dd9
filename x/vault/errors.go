package vault

import "github.com/iov-one/bridge/errors"

var (
	// ErrBelowMinimum is returned when a lock is smaller than the minimum
	// lock amount.
	ErrBelowMinimum = errors.Register(1000, "amount below minimum")

	// ErrInsufficientEscrow is returned when a release asks for more than
	// the vault holds.
	ErrInsufficientEscrow = errors.Register(1001, "insufficient escrow")

	// ErrAlreadyInitialized is returned by a second initialization.
	ErrAlreadyInitialized = errors.Register(1002, "vault already initialized")
)
