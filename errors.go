package accountcache

import "errors"

// ErrInvalidCapacity is returned by New when the capacity is below 1.
var ErrInvalidCapacity = errors.New("accountcache: capacity must be at least 1")
