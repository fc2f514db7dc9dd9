package access

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
	"github.com/iov-one/bridge/x/quorum"
)

// Registry is the validator set stored in the validators bucket.
type Registry struct {
	bucket orm.ModelBucket
}

var _ quorum.Validators = (*Registry)(nil)

// NewRegistry returns the validator set.
func NewRegistry() *Registry {
	return &Registry{bucket: NewBucket()}
}

// IsActive returns true if addr is a member of the set and was not removed.
func (r *Registry) IsActive(db bridge.ReadOnlyKVStore, addr bridge.Address) (bool, error) {
	rec, err := r.load(db, addr)
	if err != nil || rec == nil {
		return false, err
	}
	return rec.Active, nil
}

// Add activates addr. Adding an active validator changes nothing.
func (r *Registry) Add(db bridge.KVStore, addr bridge.Address, since uint64) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "validator")
	}
	rec, err := r.load(db, addr)
	if err != nil {
		return err
	}
	if rec != nil && rec.Active {
		return nil
	}
	rec = &ValidatorRecord{
		Metadata: &bridge.Metadata{Schema: 1},
		Active:   true,
		Since:    since,
	}
	if err := r.bucket.Put(db, addr, rec); err != nil {
		return errors.Wrap(err, "cannot store validator")
	}
	return nil
}

// Remove clears the active flag of addr. Removing an identity that is not
// an active validator changes nothing.
func (r *Registry) Remove(db bridge.KVStore, addr bridge.Address) error {
	if err := addr.Validate(); err != nil {
		return errors.Wrap(err, "validator")
	}
	rec, err := r.load(db, addr)
	if err != nil {
		return err
	}
	if rec == nil || !rec.Active {
		return nil
	}
	rec.Active = false
	if err := r.bucket.Put(db, addr, rec); err != nil {
		return errors.Wrap(err, "cannot store validator")
	}
	return nil
}

// List returns every known validator, active or not, ordered by address.
func (r *Registry) List(db bridge.ReadOnlyKVStore) ([]Validator, error) {
	it, err := r.bucket.Iterate(db)
	if err != nil {
		return nil, err
	}
	defer it.Release()

	var res []Validator
	for {
		var rec ValidatorRecord
		key, err := it.LoadNext(&rec)
		if errors.ErrIteratorDone.Is(err) {
			return res, nil
		}
		if err != nil {
			return nil, err
		}
		res = append(res, Validator{
			Address: append(bridge.Address{}, key...),
			Active:  rec.Active,
			Since:   rec.Since,
		})
	}
}

func (r *Registry) load(db bridge.ReadOnlyKVStore, addr bridge.Address) (*ValidatorRecord, error) {
	var rec ValidatorRecord
	switch err := r.bucket.One(db, addr, &rec); {
	case err == nil:
		return &rec, nil
	case errors.ErrNotFound.Is(err):
		return nil, nil
	default:
		return nil, errors.Wrap(err, "cannot load validator")
	}
}
