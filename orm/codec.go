package orm

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge/errors"
)

// Marshal serializes given model using the protobuf binary encoding. Models
// are plain structs with protobuf field tags; no generated code is needed.
func Marshal(m proto.Message) ([]byte, error) {
	bz, err := proto.Marshal(m)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrModel, "cannot marshal %T: %s", m, err)
	}
	return bz, nil
}

// Unmarshal loads protobuf encoded data into given destination, which must
// be a pointer.
func Unmarshal(raw []byte, dest proto.Message) error {
	if err := proto.Unmarshal(raw, dest); err != nil {
		return errors.Wrapf(errors.ErrModel, "cannot unmarshal into %T: %s", dest, err)
	}
	return nil
}
