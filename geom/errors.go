package geom

import "errors"

var (
	// ErrNonFinite signals box or vector input with NaN or Inf coordinates.
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)
