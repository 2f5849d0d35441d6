package sentinel

import "errors"

// Sentinel errors for infrastructure facts. The cache and upstream layers
// return these (optionally wrapped) so services can decide how to degrade.
//
// - ErrNotFound: key absent or expired in the cache
// - ErrUnavailable: backing service unreachable or timed out
var (
	ErrNotFound    = errors.New("not found")
	ErrUnavailable = errors.New("unavailable")
)
