package access

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x"
)

// Controls is the part of the vault state that access control reads and
// changes.
type Controls interface {
	Owner(db bridge.ReadOnlyKVStore) (bridge.Address, error)
	Nonce(db bridge.ReadOnlyKVStore) (uint64, error)
	Paused(db bridge.ReadOnlyKVStore) (bool, error)
	SetPaused(db bridge.KVStore, paused bool) error
	SetRequiredSignatures(db bridge.KVStore, n uint32) error
}

// RequireOwner returns ErrUnauthorized unless the caller is the owner.
func RequireOwner(ctx bridge.Context, auth x.Authenticator, db bridge.ReadOnlyKVStore, ctrl Controls) error {
	owner, err := ctrl.Owner(db)
	if err != nil {
		return err
	}
	if !auth.HasAddress(ctx, owner) {
		return errors.Wrap(errors.ErrUnauthorized, "owner only")
	}
	return nil
}

// RequireNotPaused returns ErrPaused while the vault is paused.
func RequireNotPaused(db bridge.ReadOnlyKVStore, ctrl Controls) error {
	paused, err := ctrl.Paused(db)
	if err != nil {
		return err
	}
	if paused {
		return ErrPaused
	}
	return nil
}
