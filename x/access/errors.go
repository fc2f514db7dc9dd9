package access

import "github.com/iov-one/bridge/errors"

// ErrPaused is returned by value moving operations while the vault is
// paused.
var ErrPaused = errors.Register(1100, "vault is paused")
