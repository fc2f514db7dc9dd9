package bridge

import (
	"github.com/tendermint/tendermint/libs/common"
)

// Event is a record signaled by a handler. It is observable by off-chain
// relayers and indexers.
type Event interface {
	// Kind is the record name, for example AssetLocked.
	Kind() string
	// Attributes returns the record fields as key/value pairs. Values are
	// rendered in their human readable form.
	Attributes() []common.KVPair
}

// EventTags renders an event as index tags. Every attribute key is
// prefixed with the event kind, and a "kind" tag is prepended.
func EventTags(ev Event) []common.KVPair {
	kind := ev.Kind()
	attrs := ev.Attributes()
	tags := make([]common.KVPair, 0, len(attrs)+1)
	tags = append(tags, common.KVPair{Key: []byte("kind"), Value: []byte(kind)})
	for _, a := range attrs {
		key := make([]byte, 0, len(kind)+1+len(a.Key))
		key = append(append(append(key, kind...), '.'), a.Key...)
		tags = append(tags, common.KVPair{Key: key, Value: a.Value})
	}
	return tags
}

// Observer receives committed events. Observers are called after the
// state change that produced the event is written, in emission order.
type Observer interface {
	Observe(ctx Context, ev Event)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx Context, ev Event)

func (fn ObserverFunc) Observe(ctx Context, ev Event) {
	fn(ctx, ev)
}

// Observers fans out every event to all given observers in order.
type Observers []Observer

func (obs Observers) Observe(ctx Context, ev Event) {
	for _, o := range obs {
		o.Observe(ctx, ev)
	}
}
