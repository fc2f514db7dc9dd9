package vault

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x"
	"github.com/iov-one/bridge/x/access"
	"github.com/iov-one/bridge/x/quorum"
	"github.com/iov-one/bridge/x/replay"
)

// Bank moves the native asset between accounts.
type Bank interface {
	Transfer(db bridge.KVStore, from, to bridge.Address, amount coin.Amount) error
}

// RegisterRoutes will instantiate and register all handlers in this
// package, including the access control of the vault.
func RegisterRoutes(r bridge.Registry, auth x.Authenticator, bank Bank) {
	state := NewState()
	validators := access.NewRegistry()

	r.Handle(&InitMsg{}, InitHandler{auth: auth, state: state, validators: validators})
	r.Handle(&LockMsg{}, LockHandler{auth: auth, state: state})
	r.Handle(&ReleaseMsg{}, ReleaseHandler{
		state:      state,
		validators: validators,
		guard:      replay.NewGuard(),
		bank:       bank,
	})
	access.RegisterRoutes(r, auth, state)
}

// InitHandler sets up the vault.
type InitHandler struct {
	auth       x.Authenticator
	state      *State
	validators *access.Registry
}

var _ bridge.Handler = InitHandler{}

func (h InitHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

func (h InitHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	minimum, err := parseAmount(msg.MinLockAmount)
	if err != nil {
		return nil, err
	}
	if err := h.state.Initialize(db, owner, msg.RequiredSignatures, minimum); err != nil {
		return nil, err
	}
	if err := h.validators.Add(db, owner, 0); err != nil {
		return nil, err
	}
	bridge.GetLogger(ctx).Info("vault initialized",
		"owner", owner,
		"required_signatures", msg.RequiredSignatures,
		"min_lock_amount", minimum)
	return &bridge.DeliverResult{
		Events: []bridge.Event{access.ValidatorAdded{Validator: owner}},
	}, nil
}

func (h InitHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*InitMsg, bridge.Address, error) {
	var msg InitMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}
	switch ok, err := h.state.Initialized(db); {
	case err != nil:
		return nil, nil, err
	case ok:
		return nil, nil, ErrAlreadyInitialized
	}
	caller := x.MainSigner(ctx, h.auth)
	if caller == nil {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	return &msg, caller.Address(), nil
}

// LockHandler escrows the value attached to the transaction.
type LockHandler struct {
	auth  x.Authenticator
	state *State
}

var _ bridge.Handler = LockHandler{}

func (h LockHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	_, _, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	minimum, err := h.state.MinLockAmount(db)
	if err != nil {
		return nil, err
	}
	if amount.LessThan(minimum) {
		return nil, errors.Wrapf(ErrBelowMinimum, "%s is less than %s", amount, minimum)
	}
	return &bridge.CheckResult{}, nil
}

func (h LockHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, user, amount, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	conf, err := loadConf(db)
	if err != nil {
		return nil, err
	}
	nonce, err := h.state.Lock(db, amount)
	if err != nil {
		return nil, err
	}
	bridge.GetLogger(ctx).Info("asset locked",
		"user", user,
		"amount", amount,
		"destination_chain", msg.DestinationChain,
		"nonce", nonce)
	return &bridge.DeliverResult{
		Data: replay.NonceKey(nonce),
		Events: []bridge.Event{AssetLocked{
			User:               user,
			Amount:             amount,
			TokenType:          conf.TokenType,
			DestinationChain:   msg.DestinationChain,
			DestinationAddress: msg.DestinationAddress,
			Nonce:              nonce,
		}},
	}, nil
}

func (h LockHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*LockMsg, bridge.Address, coin.Amount, error) {
	var msg LockMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, nil, coin.Amount{}, errors.Wrap(err, "load msg")
	}
	if err := access.RequireNotPaused(db, h.state); err != nil {
		return nil, nil, coin.Amount{}, err
	}
	caller := x.MainSigner(ctx, h.auth)
	if caller == nil {
		return nil, nil, coin.Amount{}, errors.Wrap(errors.ErrUnauthorized, "no caller")
	}
	amount, _ := bridge.GetAttachedValue(ctx)
	return &msg, caller.Address(), amount, nil
}

// ReleaseHandler pays out escrowed funds against a quorum signed proof.
type ReleaseHandler struct {
	state      *State
	validators *access.Registry
	guard      *replay.Guard
	bank       Bank
}

var _ bridge.Handler = ReleaseHandler{}

func (h ReleaseHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if _, _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

// Deliver consumes the nonce, debits the escrow and transfers the amount to
// the recipient, in this order. Any failure reverts all of it.
func (h ReleaseHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, claim, conf, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	rec := replay.NewProcessedProof(claim.SourceChain, claim.SourceTxHash, claim.Recipient, claim.Amount)
	if err := h.guard.Consume(db, claim.Nonce, rec); err != nil {
		return nil, err
	}
	if err := h.state.Debit(db, claim.Amount); err != nil {
		return nil, err
	}
	if err := h.bank.Transfer(db, Address, claim.Recipient, claim.Amount); err != nil {
		return nil, errors.Wrap(err, "transfer")
	}

	bridge.GetLogger(ctx).Info("asset released",
		"recipient", claim.Recipient,
		"amount", claim.Amount,
		"source_chain", claim.SourceChain,
		"nonce", claim.Nonce,
		"signatures", len(msg.Signatures))
	return &bridge.DeliverResult{
		Events: []bridge.Event{AssetReleased{
			User:        claim.Recipient,
			Amount:      claim.Amount,
			TokenType:   conf.TokenType,
			SourceChain: claim.SourceChain,
			Nonce:       claim.Nonce,
		}},
	}, nil
}

// validate runs every check of a release without writing anything.
func (h ReleaseHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*ReleaseMsg, quorum.Claim, *Configuration, error) {
	var msg ReleaseMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, quorum.Claim{}, nil, errors.Wrap(err, "load msg")
	}
	claim, err := msg.Claim()
	if err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	if err := access.RequireNotPaused(db, h.state); err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	if err := h.guard.Check(db, claim.Nonce); err != nil {
		return nil, quorum.Claim{}, nil, err
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	required, err := h.state.RequiredSignatures(db)
	if err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	report, err := quorum.NewVerifier(h.validators, int(conf.MaxSignatures)).
		Verify(db, claim, msg.Signatures, required)
	if err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	log := bridge.GetLogger(ctx)
	for _, s := range report.Skipped {
		log.Debug("signature skipped", "nonce", claim.Nonce, "index", s.Index, "reason", s.Reason)
	}
	if err := report.Err(); err != nil {
		return nil, quorum.Claim{}, nil, err
	}

	total, err := h.state.TotalLocked(db)
	if err != nil {
		return nil, quorum.Claim{}, nil, err
	}
	if total.LessThan(claim.Amount) {
		return nil, quorum.Claim{}, nil, errors.Wrapf(ErrInsufficientEscrow, "%s locked, %s requested", total, claim.Amount)
	}
	return &msg, claim, conf, nil
}
