package cash

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
)

// BucketName is where we store the balances
const BucketName = "cash"

// Wallet is the amount of the native asset held by an address. Amount is
// the 32 byte big endian form of a coin.Amount.
type Wallet struct {
	Metadata *bridge.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata"`
	Amount   []byte           `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount"`
}

var _ orm.Model = (*Wallet)(nil)

func (b *Wallet) Reset() { *b = Wallet{} }
func (b *Wallet) String() string { return proto.CompactTextString(b) }
func (*Wallet) ProtoMessage() {}

// NewWallet returns a wallet holding given amount.
func NewWallet(amount coin.Amount) *Wallet {
	return &Wallet{
		Metadata: &bridge.Metadata{Schema: 1},
		Amount:   amount.Bytes(),
	}
}

// Validate ensures the record is well formed.
func (b *Wallet) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", b.Metadata.Validate())
	if len(b.Amount) != coin.AmountSize {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "must be %d bytes", coin.AmountSize))
	}
	return errs
}

// Value returns the balance amount.
func (b *Wallet) Value() (coin.Amount, error) {
	return coin.AmountFromBytes(b.Amount)
}

// NewBucket returns the bucket holding balances keyed by address.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &Wallet{})
}
