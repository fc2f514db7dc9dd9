package vault

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/x/quorum"
)

const (
	pathInit    = "vault/init"
	pathLock    = "vault/lock"
	pathRelease = "vault/release"
)

// InitMsg sets up the vault. The caller becomes the owner and the first
// validator. Amounts are decimal strings.
type InitMsg struct {
	Metadata           *bridge.Metadata `json:"metadata"`
	RequiredSignatures uint32           `json:"required_signatures"`
	MinLockAmount      string           `json:"min_lock_amount"`
}

var _ bridge.Msg = (*InitMsg)(nil)

func (InitMsg) Path() string {
	return pathInit
}

func (m *InitMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.RequiredSignatures == 0 {
		errs = errors.Append(errs, errors.Field("RequiredSignatures", errors.ErrInvalidConfiguration, "at least one signature is required"))
	}
	if _, err := parseAmount(m.MinLockAmount); err != nil {
		errs = errors.AppendField(errs, "MinLockAmount", err)
	}
	return errs
}

// LockMsg escrows the value attached to the transaction. The destination
// tells the relayer where to mint on the counterpart chain.
type LockMsg struct {
	Metadata           *bridge.Metadata `json:"metadata"`
	DestinationChain   string           `json:"destination_chain"`
	DestinationAddress string           `json:"destination_address"`
}

var _ bridge.Msg = (*LockMsg)(nil)

func (LockMsg) Path() string {
	return pathLock
}

// Payable marks the lock as the only vault message accepting a value.
func (LockMsg) Payable() {}

func (m *LockMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.DestinationChain == "" {
		errs = errors.AppendField(errs, "DestinationChain", errors.ErrEmpty)
	}
	if m.DestinationAddress == "" {
		errs = errors.AppendField(errs, "DestinationAddress", errors.ErrEmpty)
	}
	return errs
}

// ReleaseMsg pays out escrowed funds against a proof signed by a quorum of
// validators.
type ReleaseMsg struct {
	Metadata     *bridge.Metadata            `json:"metadata"`
	SourceChain  string                      `json:"source_chain"`
	SourceTxHash string                      `json:"source_tx_hash"`
	Amount       string                      `json:"amount"`
	Recipient    bridge.Address              `json:"recipient"`
	Nonce        uint64                      `json:"nonce"`
	Signatures   []quorum.ValidatorSignature `json:"signatures"`
}

var _ bridge.Msg = (*ReleaseMsg)(nil)

func (ReleaseMsg) Path() string {
	return pathRelease
}

func (m *ReleaseMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	amount, err := coin.ParseAmount(m.Amount)
	if err != nil {
		return errors.AppendField(errs, "Amount", err)
	}
	if m.Recipient.Equals(Address) {
		errs = errors.Append(errs, errors.Field("Recipient", errors.ErrInput, "the vault cannot receive a release"))
	}
	return errors.Append(errs, m.claim(amount).Validate())
}

// Claim returns the statement the signatures of this message are over.
func (m *ReleaseMsg) Claim() (quorum.Claim, error) {
	amount, err := coin.ParseAmount(m.Amount)
	if err != nil {
		return quorum.Claim{}, errors.Field("Amount", err, "")
	}
	return m.claim(amount), nil
}

func (m *ReleaseMsg) claim(amount coin.Amount) quorum.Claim {
	return quorum.Claim{
		SourceChain:  m.SourceChain,
		SourceTxHash: m.SourceTxHash,
		Amount:       amount,
		Nonce:        m.Nonce,
		Recipient:    m.Recipient,
	}
}

// parseAmount reads a decimal amount. An empty string is zero.
func parseAmount(s string) (coin.Amount, error) {
	if s == "" {
		return coin.Amount{}, nil
	}
	return coin.ParseAmount(s)
}
