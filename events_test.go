package bridge_test

import (
	"context"
	"testing"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/bridgetest/assert"
	"github.com/tendermint/tendermint/libs/common"
)

type locked struct {
	nonce string
}

func (locked) Kind() string { return "AssetLocked" }

func (e locked) Attributes() []common.KVPair {
	return []common.KVPair{{Key: []byte("nonce"), Value: []byte(e.nonce)}}
}

func TestEventTags(t *testing.T) {
	tags := bridge.EventTags(locked{nonce: "7"})
	assert.Equal(t, []common.KVPair{
		{Key: []byte("kind"), Value: []byte("AssetLocked")},
		{Key: []byte("AssetLocked.nonce"), Value: []byte("7")},
	}, tags)

	res := &bridge.DeliverResult{Events: []bridge.Event{locked{nonce: "1"}, locked{nonce: "2"}}}
	assert.Equal(t, 4, len(res.Tags()))

	var empty *bridge.DeliverResult
	assert.Nil(t, empty.Tags())
}

func TestObservers(t *testing.T) {
	var seen []string
	obs := bridge.Observers{
		bridge.ObserverFunc(func(ctx bridge.Context, ev bridge.Event) { seen = append(seen, "first:"+ev.Kind()) }),
		bridge.ObserverFunc(func(ctx bridge.Context, ev bridge.Event) { seen = append(seen, "second:"+ev.Kind()) }),
	}
	obs.Observe(context.Background(), locked{})
	assert.Equal(t, []string{"first:AssetLocked", "second:AssetLocked"}, seen)
}
