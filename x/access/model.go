package access

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
)

// BucketName is where we store the validator set.
const BucketName = "validators"

// ValidatorRecord is the membership of one identity in the validator set.
// Since is the lock nonce of the vault at the time it was last activated.
type ValidatorRecord struct {
	Metadata *bridge.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata"`
	Active   bool             `protobuf:"varint,2,opt,name=active,proto3" json:"active"`
	Since    uint64           `protobuf:"varint,3,opt,name=since,proto3" json:"since"`
}

var _ orm.Model = (*ValidatorRecord)(nil)

func (v *ValidatorRecord) Reset() { *v = ValidatorRecord{} }
func (v *ValidatorRecord) String() string { return proto.CompactTextString(v) }
func (*ValidatorRecord) ProtoMessage() {}

func (v *ValidatorRecord) Validate() error {
	return errors.AppendField(nil, "Metadata", v.Metadata.Validate())
}

// NewBucket returns the bucket of validator records keyed by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &ValidatorRecord{})
}

// Validator is an entry of the validator listing.
type Validator struct {
	Address bridge.Address `json:"address"`
	Active  bool           `json:"active"`
	Since   uint64         `json:"since"`
}
