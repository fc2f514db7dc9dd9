package bridge

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge/errors"
)

// Metadata is embedded in every persisted record. Schema is the version of
// the record layout and always starts at 1, so an encoded record is never
// empty.
type Metadata struct {
	Schema uint32 `protobuf:"varint,1,opt,name=schema,proto3" json:"schema"`
}

func (m *Metadata) Reset() { *m = Metadata{} }
func (m *Metadata) String() string { return proto.CompactTextString(m) }
func (*Metadata) ProtoMessage() {}

// Validate returns an error if the metadata does not declare a schema.
func (m *Metadata) Validate() error {
	if m == nil {
		return errors.Wrap(errors.ErrMetadata, "missing metadata")
	}
	if m.Schema == 0 {
		return errors.Wrap(errors.ErrMetadata, "schema is required")
	}
	return nil
}

// Copy returns a copy of this object. This method is helpful when
// copying a record that embeds the header.
func (m *Metadata) Copy() *Metadata {
	cpy := *m
	return &cpy
}
