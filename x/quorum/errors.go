package quorum

import "github.com/iov-one/bridge/errors"

// ErrInsufficientSignatures is returned when a proof does not carry enough
// valid signatures of distinct active validators.
var ErrInsufficientSignatures = errors.Register(1300, "insufficient signatures")
