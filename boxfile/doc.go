/*
Package boxfile provides API helpers to load box records from text files
into a boxtree index.

Records are whitespace-separated lines of an optional label followed by six
coordinates (min corner, then max corner). Parsing runs on a pipeline
goroutine while insertion stays on the caller's goroutine, so the index
itself is never touched concurrently. Interested observers can subscribe to load
progress through a broadcast channel.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package boxfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boxtree'
func tracer() tracing.Trace {
	return tracing.Select("boxtree")
}
