package vault

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/gconf"
	"github.com/iov-one/bridge/x/access"
)

const optKey = "vault"

// Genesis is the optional "vault" section of the genesis file. When
// present, the vault is initialized at genesis instead of by an InitMsg.
type Genesis struct {
	Owner              bridge.Address   `json:"owner"`
	RequiredSignatures uint32           `json:"required_signatures"`
	MinLockAmount      string           `json:"min_lock_amount"`
	Validators         []bridge.Address `json:"validators"`
}

// Initializer fulfils the bridge.Initializer interface to load the package
// configuration and the vault from the genesis file.
type Initializer struct{}

var _ bridge.Initializer = Initializer{}

func (Initializer) FromGenesis(opts bridge.Options, db bridge.KVStore) error {
	conf := gconf.NewInitializer(packageName, func() gconf.Configuration {
		return DefaultConfiguration()
	})
	if err := conf.FromGenesis(opts, db); err != nil {
		return err
	}

	var gen *Genesis
	if err := opts.ReadOptions(optKey, &gen); err != nil {
		return err
	}
	if gen == nil {
		return nil
	}

	minimum, err := parseAmount(gen.MinLockAmount)
	if err != nil {
		return errors.Wrap(err, "min lock amount")
	}
	if err := NewState().Initialize(db, gen.Owner, gen.RequiredSignatures, minimum); err != nil {
		return errors.Wrap(err, "vault")
	}
	reg := access.NewRegistry()
	for i, v := range append([]bridge.Address{gen.Owner}, gen.Validators...) {
		if err := reg.Add(db, v, 0); err != nil {
			return errors.Wrapf(err, "validator %d", i)
		}
	}
	return nil
}
