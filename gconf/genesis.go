package gconf

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// Initializer stores the configuration of a single package at genesis.
// Values declared in the genesis file override the defaults returned by the
// constructor, so a genesis file may omit the configuration entirely.
type Initializer struct {
	pkg      string
	defaults func() Configuration
}

var _ bridge.Initializer = Initializer{}

// NewInitializer returns an initializer for the configuration of given
// package. defaults must return a new configuration instance on every call.
func NewInitializer(pkg string, defaults func() Configuration) Initializer {
	return Initializer{pkg: pkg, defaults: defaults}
}

// FromGenesis parses opts["conf"][pkg] on top of the defaults and saves the
// result.
func (i Initializer) FromGenesis(opts bridge.Options, db bridge.KVStore) error {
	conf := i.defaults()
	err := InitConfig(db, opts, i.pkg, conf)
	switch {
	case err == nil:
		return nil
	case errors.ErrNotFound.Is(err):
		return Save(db, i.pkg, conf)
	default:
		return err
	}
}
