package bridge_test

import (
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/iov-one/bridge/errors"
)

func TestMetadata(t *testing.T) {
	var missing *bridge.Metadata
	assert.IsErr(t, errors.ErrMetadata, missing.Validate())
	assert.IsErr(t, errors.ErrMetadata, (&bridge.Metadata{}).Validate())

	m := &bridge.Metadata{Schema: 1}
	assert.Nil(t, m.Validate())

	cpy := m.Copy()
	cpy.Schema = 2
	assert.Equal(t, uint32(1), m.Schema)
}
