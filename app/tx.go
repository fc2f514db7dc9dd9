package app

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x/access"
	"github.com/iov-one/bridge/x/cash"
	"github.com/iov-one/bridge/x/vault"
	amino "github.com/tendermint/go-amino"
)

var cdc = newCodec()

func newCodec() *amino.Codec {
	c := amino.NewCodec()
	c.RegisterInterface((*bridge.Msg)(nil), nil)
	c.RegisterConcrete(&vault.InitMsg{}, "bridge/vault/InitMsg", nil)
	c.RegisterConcrete(&vault.LockMsg{}, "bridge/vault/LockMsg", nil)
	c.RegisterConcrete(&vault.ReleaseMsg{}, "bridge/vault/ReleaseMsg", nil)
	c.RegisterConcrete(&access.AddValidatorMsg{}, "bridge/access/AddValidatorMsg", nil)
	c.RegisterConcrete(&access.RemoveValidatorMsg{}, "bridge/access/RemoveValidatorMsg", nil)
	c.RegisterConcrete(&access.SetRequiredSignaturesMsg{}, "bridge/access/SetRequiredSignaturesMsg", nil)
	c.RegisterConcrete(&access.PauseMsg{}, "bridge/access/PauseMsg", nil)
	c.RegisterConcrete(&access.UnpauseMsg{}, "bridge/access/UnpauseMsg", nil)
	c.Seal()
	return c
}

// Tx is the envelope of a single invocation. It carries one message and
// optionally a value attached by the caller, as a decimal string.
type Tx struct {
	Msg   bridge.Msg `json:"msg"`
	Value string     `json:"value"`
}

var _ bridge.Tx = (*Tx)(nil)
var _ cash.ValueTx = (*Tx)(nil)

// NewTx wraps a message with an optional attached value.
func NewTx(msg bridge.Msg, value coin.Amount) *Tx {
	tx := &Tx{Msg: msg}
	if !value.IsZero() {
		tx.Value = value.String()
	}
	return tx
}

// GetMsg returns the wrapped message.
func (tx *Tx) GetMsg() (bridge.Msg, error) {
	if tx.Msg == nil {
		return nil, errors.Wrap(errors.ErrMsg, "no message")
	}
	return tx.Msg, nil
}

// GetAttachedValue returns the attached value. No value is zero.
func (tx *Tx) GetAttachedValue() (coin.Amount, error) {
	if tx.Value == "" {
		return coin.Amount{}, nil
	}
	amount, err := coin.ParseAmount(tx.Value)
	if err != nil {
		return coin.Amount{}, errors.Wrap(err, "value")
	}
	return amount, nil
}

// Marshal serializes the transaction using the amino binary encoding.
func (tx *Tx) Marshal() ([]byte, error) {
	bz, err := cdc.MarshalBinaryBare(tx)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInput, err.Error())
	}
	return bz, nil
}

// Unmarshal loads an amino binary encoded transaction.
func (tx *Tx) Unmarshal(bz []byte) error {
	if err := cdc.UnmarshalBinaryBare(bz, tx); err != nil {
		return errors.Wrap(errors.ErrInput, err.Error())
	}
	return nil
}

// DecodeTx is the bridge.TxDecoder of the host.
func DecodeTx(bz []byte) (bridge.Tx, error) {
	var tx Tx
	if err := tx.Unmarshal(bz); err != nil {
		return nil, err
	}
	return &tx, nil
}

var _ bridge.TxDecoder = DecodeTx
