package cash

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
)

// Balance returns the amount held by given address. An address that never
// received anything holds zero.
func Balance(db bridge.ReadOnlyKVStore, addr bridge.Address) (coin.Amount, error) {
	var w Wallet
	switch err := NewBucket().One(db, addr, &w); {
	case err == nil:
		return w.Value()
	case errors.ErrNotFound.Is(err):
		return coin.Amount{}, nil
	default:
		return coin.Amount{}, errors.Wrap(err, "cannot load balance")
	}
}

// MoveCoins moves the given amount from src to dest.
// If src doesn't have sufficient funds, it fails with
// ErrInsufficientAmount and nothing is written.
func MoveCoins(db bridge.KVStore, src, dest bridge.Address, amount coin.Amount) error {
	if err := src.Validate(); err != nil {
		return errors.Wrap(err, "source")
	}
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	if amount.IsZero() {
		return errors.Wrap(errors.ErrAmount, "non-positive transfer")
	}

	have, err := Balance(db, src)
	if err != nil {
		return err
	}
	left, err := have.Sub(amount)
	if err != nil {
		return errors.Wrapf(err, "account %s", src)
	}
	if src.Equals(dest) {
		return nil
	}
	got, err := Balance(db, dest)
	if err != nil {
		return err
	}
	total, err := got.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "account %s", dest)
	}

	bucket := NewBucket()
	if err := bucket.Put(db, src, NewWallet(left)); err != nil {
		return errors.Wrap(err, "cannot save sender")
	}
	if err := bucket.Put(db, dest, NewWallet(total)); err != nil {
		return errors.Wrap(err, "cannot save recipient")
	}
	return nil
}

// IssueCoins attempts to add the given amount of coins to
// the destination address. Fails if it overflows the wallet.
func IssueCoins(db bridge.KVStore, dest bridge.Address, amount coin.Amount) error {
	if err := dest.Validate(); err != nil {
		return errors.Wrap(err, "destination")
	}
	got, err := Balance(db, dest)
	if err != nil {
		return err
	}
	total, err := got.Add(amount)
	if err != nil {
		return errors.Wrapf(err, "account %s", dest)
	}
	return NewBucket().Put(db, dest, NewWallet(total))
}

// Bank is the asset transfer of the host. It satisfies the bank
// expected by the vault.
type Bank struct{}

// Transfer moves amount from one account to another.
func (Bank) Transfer(db bridge.KVStore, from, to bridge.Address, amount coin.Amount) error {
	return MoveCoins(db, from, to, amount)
}

// Balance returns the amount held by given address.
func (Bank) Balance(db bridge.ReadOnlyKVStore, addr bridge.Address) (coin.Amount, error) {
	return Balance(db, addr)
}
