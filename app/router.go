package app

import (
	"fmt"
	"regexp"

	"github.com/iov-one/bridge"
	"github.com/iov-one/bridge/errors"
)

// isPath is the RegExp to ensure the routes make sense
var isPath = regexp.MustCompile(`^[a-zA-Z0-9_\-/]+$`).MatchString

// Router allows us to register many handlers with different
// paths and then direct each message to the proper handler.
//
// Minimal interface modeled after net/http.ServeMux
type Router struct {
	routes map[string]bridge.Handler
}

var _ bridge.Registry = (*Router)(nil)
var _ bridge.Handler = (*Router)(nil)

// NewRouter returns a new empty router instance.
func NewRouter() *Router {
	return &Router{
		routes: make(map[string]bridge.Handler, 10),
	}
}

// Handle adds a new Handler for the path of given message.
// panics if another Handler was already registered
func (r *Router) Handle(msg bridge.Msg, h bridge.Handler) {
	path := msg.Path()
	if !isPath(path) {
		panic(fmt.Sprintf("invalid path: %s", path))
	}
	if _, ok := r.routes[path]; ok {
		panic(fmt.Sprintf("re-registering route: %s", path))
	}
	r.routes[path] = h
}

// handler returns the registered Handler for the message of this
// transaction, or a handler that always fails with ErrNotFound.
func (r *Router) handler(tx bridge.Tx) bridge.Handler {
	msg, err := tx.GetMsg()
	if err != nil {
		return errorHandler{errors.Wrap(err, "cannot load message")}
	}
	if msg == nil {
		return errorHandler{errors.Wrap(errors.ErrMsg, "no message")}
	}
	if h, ok := r.routes[msg.Path()]; ok {
		return h
	}
	return errorHandler{errors.Wrapf(errors.ErrNotFound, "no handler for message path %q", msg.Path())}
}

// Check dispatches to the proper handler based on path
func (r *Router) Check(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx) (*bridge.CheckResult, error) {
	return r.handler(tx).Check(ctx, store, tx)
}

// Deliver dispatches to the proper handler based on path
func (r *Router) Deliver(ctx bridge.Context, store bridge.KVStore, tx bridge.Tx) (*bridge.DeliverResult, error) {
	return r.handler(tx).Deliver(ctx, store, tx)
}

type errorHandler struct {
	err error
}

func (h errorHandler) Check(bridge.Context, bridge.KVStore, bridge.Tx) (*bridge.CheckResult, error) {
	return nil, h.err
}

func (h errorHandler) Deliver(bridge.Context, bridge.KVStore, bridge.Tx) (*bridge.DeliverResult, error) {
	return nil, h.err
}
