package bridgetest

import "github.com/iov-one/bridge"

// Handler is a mock implementation of the bridge.Handler interface.
//
// If WriteKey is set, the handler writes WriteValue under that key before
// returning, whatever the configured error. This is useful to test that
// failed invocations are rolled back.
// If Panic is set, both methods panic with its value instead of returning.
type Handler struct {
	checkCall   int
	CheckResult bridge.CheckResult
	CheckErr    error

	deliverCall   int
	DeliverResult bridge.DeliverResult
	DeliverErr    error

	WriteKey   []byte
	WriteValue []byte

	Panic interface{}
}

var _ bridge.Handler = (*Handler)(nil)

func (h *Handler) Check(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	h.checkCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.CheckErr != nil {
		return nil, h.CheckErr
	}
	res := h.CheckResult
	return &res, nil
}

func (h *Handler) Deliver(ctx bridge.Context, db bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	h.deliverCall++
	if err := h.write(db); err != nil {
		return nil, err
	}
	if h.DeliverErr != nil {
		return nil, h.DeliverErr
	}
	res := h.DeliverResult
	return &res, nil
}

func (h *Handler) write(db bridge.KVStore) error {
	if h.WriteKey != nil {
		if err := db.Set(h.WriteKey, h.WriteValue); err != nil {
			return err
		}
	}
	if h.Panic != nil {
		panic(h.Panic)
	}
	return nil
}

func (h *Handler) CheckCallCount() int {
	return h.checkCall
}

func (h *Handler) DeliverCallCount() int {
	return h.deliverCall
}

func (h *Handler) CallCount() int {
	return h.checkCall + h.deliverCall
}
