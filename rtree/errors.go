package rtree

import "errors"

var (
	// ErrInvalidStructure signals a violated structural tree invariant,
	// reported by Check.
	ErrInvalidStructure = errors.New("rtree: invalid tree structure")
	// ErrStaleBoundCache signals a clean bound cache that disagrees with a
	// recomputation, reported by Check.
	ErrStaleBoundCache = errors.New("rtree: stale bound cache")
)
