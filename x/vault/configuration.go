package vault

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
	"github.com/iov-one/bridge/gconf"
	"github.com/iov-one/bridge/x/quorum"
)

const packageName = "vault"

// Configuration of the vault package. It is set at genesis and never
// changes afterwards.
type Configuration struct {
	Metadata *bridge.Metadata `protobuf:"bytes,1,opt,name=metadata,proto3" json:"metadata"`
	// TokenType is the ticker of the escrowed asset, reported on every
	// lock and release record.
	TokenType string `protobuf:"bytes,2,opt,name=token_type,json=tokenType,proto3" json:"token_type"`
	// MaxSignatures bounds the number of signatures a release proof may
	// carry.
	MaxSignatures uint32 `protobuf:"varint,3,opt,name=max_signatures,json=maxSignatures,proto3" json:"max_signatures"`
}

var _ gconf.Configuration = (*Configuration)(nil)

func (c *Configuration) Reset() { *c = Configuration{} }
func (c *Configuration) String() string { return proto.CompactTextString(c) }
func (*Configuration) ProtoMessage() {}

// DefaultConfiguration returns the configuration used when genesis does
// not declare one.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Metadata:      &bridge.Metadata{Schema: 1},
		TokenType:     "CSPR",
		MaxSignatures: quorum.DefaultMaxSignatures,
	}
}

func (c *Configuration) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", c.Metadata.Validate())
	if c.TokenType == "" {
		errs = errors.AppendField(errs, "TokenType", errors.ErrEmpty)
	}
	if c.MaxSignatures == 0 {
		errs = errors.Append(errs, errors.Field("MaxSignatures", errors.ErrInvalidConfiguration, "must be positive"))
	}
	return errs
}

func loadConf(db gconf.ReadStore) (*Configuration, error) {
	var conf Configuration
	if err := gconf.Load(db, packageName, &conf); err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	return &conf, nil
}
