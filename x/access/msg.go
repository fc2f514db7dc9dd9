package access

import (
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

const (
	pathAddValidator          = "access/add_validator"
	pathRemoveValidator       = "access/remove_validator"
	pathSetRequiredSignatures = "access/set_required_signatures"
	pathPause                 = "access/pause"
	pathUnpause               = "access/unpause"
)

// AddValidatorMsg activates a validator.
type AddValidatorMsg struct {
	Metadata  *bridge.Metadata `json:"metadata"`
	Validator bridge.Address   `json:"validator"`
}

var _ bridge.Msg = (*AddValidatorMsg)(nil)

func (AddValidatorMsg) Path() string {
	return pathAddValidator
}

func (m *AddValidatorMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Validator", m.Validator.Validate())
	return errs
}

// RemoveValidatorMsg deactivates a validator.
type RemoveValidatorMsg struct {
	Metadata  *bridge.Metadata `json:"metadata"`
	Validator bridge.Address   `json:"validator"`
}

var _ bridge.Msg = (*RemoveValidatorMsg)(nil)

func (RemoveValidatorMsg) Path() string {
	return pathRemoveValidator
}

func (m *RemoveValidatorMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Validator", m.Validator.Validate())
	return errs
}

// SetRequiredSignaturesMsg changes the release threshold.
type SetRequiredSignaturesMsg struct {
	Metadata *bridge.Metadata `json:"metadata"`
	Count    uint32           `json:"count"`
}

var _ bridge.Msg = (*SetRequiredSignaturesMsg)(nil)

func (SetRequiredSignaturesMsg) Path() string {
	return pathSetRequiredSignatures
}

// Validate does not check the count. A zero threshold is rejected by the
// handler once the caller is known to be the owner.
func (m *SetRequiredSignaturesMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

// PauseMsg stops all value moving operations.
type PauseMsg struct {
	Metadata *bridge.Metadata `json:"metadata"`
}

var _ bridge.Msg = (*PauseMsg)(nil)

func (PauseMsg) Path() string {
	return pathPause
}

func (m *PauseMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}

// UnpauseMsg resumes value moving operations.
type UnpauseMsg struct {
	Metadata *bridge.Metadata `json:"metadata"`
}

var _ bridge.Msg = (*UnpauseMsg)(nil)

func (UnpauseMsg) Path() string {
	return pathUnpause
}

func (m *UnpauseMsg) Validate() error {
	return errors.AppendField(nil, "Metadata", m.Metadata.Validate())
}
