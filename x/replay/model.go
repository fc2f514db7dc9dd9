package replay

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/coin"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/orm"
)

// BucketName is where we store consumed proofs.
const BucketName = "proofs"

// ProcessedProof is the record of a consumed nonce.
type ProcessedProof struct {
	Metadata     *bridge.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata"`
	SourceChain  string           `protobuf:"bytes,2,opt,name=source_chain,json=sourceChain,proto3" json:"source_chain"`
	SourceTxHash string           `protobuf:"bytes,3,opt,name=source_tx_hash,json=sourceTxHash,proto3" json:"source_tx_hash"`
	Recipient    bridge.Address   `protobuf:"bytes,4,opt,name=recipient,proto3,casttype=github.com/iov-one/bridge.Address" json:"recipient"`
	Amount       []byte           `protobuf:"bytes,5,opt,name=amount,proto3" json:"amount"`
}

var _ orm.Model = (*ProcessedProof)(nil)

func (p *ProcessedProof) Reset() { *p = ProcessedProof{} }
func (p *ProcessedProof) String() string { return proto.CompactTextString(p) }
func (*ProcessedProof) ProtoMessage() {}

// NewProcessedProof returns a record of a proof paying amount to recipient.
func NewProcessedProof(sourceChain, sourceTxHash string, recipient bridge.Address, amount coin.Amount) *ProcessedProof {
	return &ProcessedProof{
		Metadata:     &bridge.Metadata{Schema: 1},
		SourceChain:  sourceChain,
		SourceTxHash: sourceTxHash,
		Recipient:    recipient,
		Amount:       amount.Bytes(),
	}
}

func (p *ProcessedProof) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", p.Metadata.Validate())
	if p.SourceChain == "" {
		errs = errors.AppendField(errs, "SourceChain", errors.ErrEmpty)
	}
	if p.SourceTxHash == "" {
		errs = errors.AppendField(errs, "SourceTxHash", errors.ErrEmpty)
	}
	errs = errors.AppendField(errs, "Recipient", p.Recipient.Validate())
	if len(p.Amount) != coin.AmountSize {
		errs = errors.AppendField(errs, "Amount", errors.Wrapf(errors.ErrAmount, "must be %d bytes", coin.AmountSize))
	}
	return errs
}

// Value returns the released amount.
func (p *ProcessedProof) Value() (coin.Amount, error) {
	return coin.AmountFromBytes(p.Amount)
}

// NewBucket returns the bucket of consumed proofs keyed by NonceKey.
func NewBucket() orm.ModelBucket {
	return orm.NewModelBucket(BucketName, &ProcessedProof{})
}

// NonceKey returns the 8 byte big endian key of a nonce.
func NonceKey(nonce uint64) []byte {
	return orm.EncodeSequence(nonce)
}
