package replay

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
)

// Guard admits every proof nonce at most once.
type Guard struct {
	bucket orm.ModelBucket
}

// NewGuard returns a guard backed by the proofs bucket.
func NewGuard() *Guard {
	return &Guard{bucket: NewBucket()}
}

// IsProcessed returns true if the nonce was consumed.
func (g *Guard) IsProcessed(db bridge.ReadOnlyKVStore, nonce uint64) (bool, error) {
	switch err := g.bucket.Has(db, NonceKey(nonce)); {
	case err == nil:
		return true, nil
	case errors.ErrNotFound.Is(err):
		return false, nil
	default:
		return false, errors.Wrap(err, "cannot check nonce")
	}
}

// Check returns ErrAlreadyProcessed if the nonce was consumed. It never
// writes.
func (g *Guard) Check(db bridge.ReadOnlyKVStore, nonce uint64) error {
	done, err := g.IsProcessed(db, nonce)
	if err != nil {
		return err
	}
	if done {
		return errors.Wrapf(ErrAlreadyProcessed, "nonce %d", nonce)
	}
	return nil
}

// Consume marks the nonce as processed and stores the record. It fails
// with ErrAlreadyProcessed if the nonce was consumed before. The write is
// only permanent if the whole invocation commits.
func (g *Guard) Consume(db bridge.KVStore, nonce uint64, rec *ProcessedProof) error {
	if err := g.Check(db, nonce); err != nil {
		return err
	}
	if err := g.bucket.Put(db, NonceKey(nonce), rec); err != nil {
		return errors.Wrapf(err, "cannot store nonce %d", nonce)
	}
	return nil
}

// Record returns the record of a consumed nonce, or ErrNotFound.
func (g *Guard) Record(db bridge.ReadOnlyKVStore, nonce uint64) (*ProcessedProof, error) {
	var rec ProcessedProof
	if err := g.bucket.One(db, NonceKey(nonce), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// RegisterQuery registers the processed proof records under /proofs.
func RegisterQuery(qr bridge.QueryRouter) {
	NewBucket().Register(BucketName, qr)
}
