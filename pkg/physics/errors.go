package physics

import "errors"

// Body construction errors.
var (
	ErrInvalidMass   = errors.New("dynamic body requires mass > 0")
	ErrInvalidSize   = errors.New("body width and height must be > 0")
	ErrNonFinite     = errors.New("body state contains NaN or Inf")
	ErrInvalidBounce = errors.New("bounce must be within [0, 1]")
)
