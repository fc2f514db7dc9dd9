package vault

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
	"github.com/iov-one/bridge/x/access"
)

// Address is the account holding all escrowed funds.
var Address = bridge.NewCondition("vault", "escrow", []byte("vault")).Address()

// State is the singleton vault. Every method works on the store passed in,
// the struct itself holds no data.
type State struct {
	owner    orm.Var
	required orm.Var
	locked   orm.Var
	paused   orm.Var
	minimum  orm.Var
	nonce    orm.Sequence
}

var _ access.Controls = (*State)(nil)

// NewState returns the vault stored under the "vault:" prefix.
func NewState() *State {
	vars := orm.NewVars(packageName)
	return &State{
		owner:    vars.Var("owner"),
		required: vars.Var("required_signatures"),
		locked:   vars.Var("total_locked"),
		paused:   vars.Var("paused"),
		minimum:  vars.Var("min_lock_amount"),
		nonce:    orm.NewSequence(vars.Var("nonce").Key()),
	}
}

// Initialized returns true once Initialize succeeded.
func (s *State) Initialized(db bridge.ReadOnlyKVStore) (bool, error) {
	return s.owner.Exists(db)
}

// Initialize sets up the vault. It can run only once.
func (s *State) Initialize(db bridge.KVStore, owner bridge.Address, required uint32, minimum coin.Amount) error {
	switch ok, err := s.Initialized(db); {
	case err != nil:
		return err
	case ok:
		return ErrAlreadyInitialized
	}
	if err := owner.Validate(); err != nil {
		return errors.Wrap(err, "owner")
	}
	if required == 0 {
		return errors.Wrap(errors.ErrInvalidConfiguration, "at least one signature is required")
	}

	if err := s.owner.SetBytes(db, owner); err != nil {
		return err
	}
	if err := s.required.SetUint64(db, uint64(required)); err != nil {
		return err
	}
	if err := s.locked.SetBytes(db, coin.Amount{}.Bytes()); err != nil {
		return err
	}
	if err := s.paused.SetBool(db, false); err != nil {
		return err
	}
	if err := s.minimum.SetBytes(db, minimum.Bytes()); err != nil {
		return err
	}
	return s.nonce.Set(db, 0)
}

// mustInit returns ErrState unless the vault was initialized.
func (s *State) mustInit(db bridge.ReadOnlyKVStore) error {
	ok, err := s.Initialized(db)
	if err != nil {
		return err
	}
	if !ok {
		return errors.Wrap(errors.ErrState, "vault not initialized")
	}
	return nil
}

// Owner returns the administrator.
func (s *State) Owner(db bridge.ReadOnlyKVStore) (bridge.Address, error) {
	if err := s.mustInit(db); err != nil {
		return nil, err
	}
	raw, err := s.owner.Bytes(db)
	if err != nil {
		return nil, err
	}
	return bridge.Address(raw), nil
}

// RequiredSignatures returns the release threshold.
func (s *State) RequiredSignatures(db bridge.ReadOnlyKVStore) (uint32, error) {
	if err := s.mustInit(db); err != nil {
		return 0, err
	}
	n, err := s.required.Uint64(db)
	if err != nil {
		return 0, err
	}
	return uint32(n), nil
}

// SetRequiredSignatures changes the release threshold.
func (s *State) SetRequiredSignatures(db bridge.KVStore, n uint32) error {
	if err := s.mustInit(db); err != nil {
		return err
	}
	if n == 0 {
		return errors.Wrap(errors.ErrInvalidConfiguration, "at least one signature is required")
	}
	return s.required.SetUint64(db, uint64(n))
}

// TotalLocked returns the escrowed amount.
func (s *State) TotalLocked(db bridge.ReadOnlyKVStore) (coin.Amount, error) {
	return s.amount(db, s.locked)
}

// MinLockAmount returns the smallest accepted lock.
func (s *State) MinLockAmount(db bridge.ReadOnlyKVStore) (coin.Amount, error) {
	return s.amount(db, s.minimum)
}

func (s *State) amount(db bridge.ReadOnlyKVStore, v orm.Var) (coin.Amount, error) {
	if err := s.mustInit(db); err != nil {
		return coin.Amount{}, err
	}
	raw, err := v.Bytes(db)
	if err != nil {
		return coin.Amount{}, err
	}
	return coin.AmountFromBytes(raw)
}

// Nonce returns the number of successful locks.
func (s *State) Nonce(db bridge.ReadOnlyKVStore) (uint64, error) {
	if err := s.mustInit(db); err != nil {
		return 0, err
	}
	return s.nonce.Latest(db)
}

// Paused returns true while value moving operations are stopped.
func (s *State) Paused(db bridge.ReadOnlyKVStore) (bool, error) {
	if err := s.mustInit(db); err != nil {
		return false, err
	}
	return s.paused.Bool(db)
}

// SetPaused sets the pause flag.
func (s *State) SetPaused(db bridge.KVStore, paused bool) error {
	if err := s.mustInit(db); err != nil {
		return err
	}
	return s.paused.SetBool(db, paused)
}

// Lock adds amount to the escrow and returns the nonce assigned to this
// lock. Amounts below the minimum fail with ErrBelowMinimum.
func (s *State) Lock(db bridge.KVStore, amount coin.Amount) (uint64, error) {
	minimum, err := s.MinLockAmount(db)
	if err != nil {
		return 0, err
	}
	if amount.LessThan(minimum) {
		return 0, errors.Wrapf(ErrBelowMinimum, "%s is less than %s", amount, minimum)
	}
	total, err := s.TotalLocked(db)
	if err != nil {
		return 0, err
	}
	total, err = total.Add(amount)
	if err != nil {
		return 0, errors.Wrap(err, "total locked")
	}
	nonce, err := s.nonce.NextInt(db)
	if err != nil {
		return 0, errors.Wrap(err, "nonce")
	}
	if err := s.locked.SetBytes(db, total.Bytes()); err != nil {
		return 0, err
	}
	return nonce, nil
}

// Debit removes amount from the escrow. It fails with
// ErrInsufficientEscrow if the vault holds less.
func (s *State) Debit(db bridge.KVStore, amount coin.Amount) error {
	total, err := s.TotalLocked(db)
	if err != nil {
		return err
	}
	left, err := total.Sub(amount)
	if err != nil {
		return errors.Wrapf(ErrInsufficientEscrow, "%s locked, %s requested", total, amount)
	}
	return s.locked.SetBytes(db, left.Bytes())
}
