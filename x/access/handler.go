package access

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x"
)

// RegisterRoutes will instantiate and register all handlers in this
// package.
func RegisterRoutes(r bridge.Registry, auth x.Authenticator, ctrl Controls) {
	reg := NewRegistry()
	r.Handle(&AddValidatorMsg{}, AddValidatorHandler{auth: auth, ctrl: ctrl, registry: reg})
	r.Handle(&RemoveValidatorMsg{}, RemoveValidatorHandler{auth: auth, ctrl: ctrl, registry: reg})
	r.Handle(&SetRequiredSignaturesMsg{}, SetRequiredSignaturesHandler{auth: auth, ctrl: ctrl})
	r.Handle(&PauseMsg{}, PauseHandler{auth: auth, ctrl: ctrl, pause: true})
	r.Handle(&UnpauseMsg{}, PauseHandler{auth: auth, ctrl: ctrl, pause: false})
}

// RegisterQuery will register the validator set as "/validators".
func RegisterQuery(qr bridge.QueryRouter) {
	NewBucket().Register(BucketName, qr)
}

// AddValidatorHandler activates a validator.
type AddValidatorHandler struct {
	auth     x.Authenticator
	ctrl     Controls
	registry *Registry
}

var _ bridge.Handler = AddValidatorHandler{}

func (h AddValidatorHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

func (h AddValidatorHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	since, err := h.ctrl.Nonce(db)
	if err != nil {
		return nil, err
	}
	if err := h.registry.Add(db, msg.Validator, since); err != nil {
		return nil, err
	}
	bridge.GetLogger(ctx).Info("validator added", "validator", msg.Validator)
	return &bridge.DeliverResult{
		Events: []bridge.Event{ValidatorAdded{Validator: msg.Validator}},
	}, nil
}

func (h AddValidatorHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*AddValidatorMsg, error) {
	var msg AddValidatorMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := RequireOwner(ctx, h.auth, db, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}

// RemoveValidatorHandler deactivates a validator.
type RemoveValidatorHandler struct {
	auth     x.Authenticator
	ctrl     Controls
	registry *Registry
}

var _ bridge.Handler = RemoveValidatorHandler{}

func (h RemoveValidatorHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

func (h RemoveValidatorHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.registry.Remove(db, msg.Validator); err != nil {
		return nil, err
	}
	bridge.GetLogger(ctx).Info("validator removed", "validator", msg.Validator)
	return &bridge.DeliverResult{
		Events: []bridge.Event{ValidatorRemoved{Validator: msg.Validator}},
	}, nil
}

func (h RemoveValidatorHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*RemoveValidatorMsg, error) {
	var msg RemoveValidatorMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := RequireOwner(ctx, h.auth, db, h.ctrl); err != nil {
		return nil, err
	}
	return &msg, nil
}

// SetRequiredSignaturesHandler changes the release threshold. The threshold
// may exceed the number of active validators, in which case no release can
// succeed until validators are added.
type SetRequiredSignaturesHandler struct {
	auth x.Authenticator
	ctrl Controls
}

var _ bridge.Handler = SetRequiredSignaturesHandler{}

func (h SetRequiredSignaturesHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

func (h SetRequiredSignaturesHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}
	if err := h.ctrl.SetRequiredSignatures(db, msg.Count); err != nil {
		return nil, err
	}
	bridge.GetLogger(ctx).Info("required signatures changed", "count", msg.Count)
	return &bridge.DeliverResult{
		Events: []bridge.Event{RequiredSignaturesChanged{Count: msg.Count}},
	}, nil
}

func (h SetRequiredSignaturesHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*SetRequiredSignaturesMsg, error) {
	var msg SetRequiredSignaturesMsg
	if err := bridge.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}
	if err := RequireOwner(ctx, h.auth, db, h.ctrl); err != nil {
		return nil, err
	}
	if msg.Count == 0 {
		return nil, errors.Wrap(errors.ErrInvalidConfiguration, "at least one signature is required")
	}
	return &msg, nil
}

// PauseHandler sets or clears the pause flag. Pausing a paused vault is
// accepted and signaled again.
type PauseHandler struct {
	auth  x.Authenticator
	ctrl  Controls
	pause bool
}

var _ bridge.Handler = PauseHandler{}

func (h PauseHandler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &bridge.CheckResult{}, nil
}

func (h PauseHandler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	if err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	if err := h.ctrl.SetPaused(db, h.pause); err != nil {
		return nil, err
	}
	var ev bridge.Event = VaultUnpaused{}
	if h.pause {
		ev = VaultPaused{}
	}
	bridge.GetLogger(ctx).Info("vault pause changed", "paused", h.pause)
	return &bridge.DeliverResult{Events: []bridge.Event{ev}}, nil
}

func (h PauseHandler) validate(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) error {
	if h.pause {
		if err := bridge.LoadMsg(tx, &PauseMsg{}); err != nil {
			return errors.Wrap(err, "load msg")
		}
	} else {
		if err := bridge.LoadMsg(tx, &UnpauseMsg{}); err != nil {
			return errors.Wrap(err, "load msg")
		}
	}
	return RequireOwner(ctx, h.auth, db, h.ctrl)
}
