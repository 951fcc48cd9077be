/*
Package boxtree offers a spatial index for items bounded by axis-aligned
boxes.

Boxtree

A boxtree organizes bounded items in a balanced tree structure (an R-tree).
Inner nodes cache the bounding box of their whole subtree, which lets
queries discard complete subtrees whose box cannot harbor a match. This
speeds up frequent containment and overlap queries, especially over many
items: instead of testing every item's box, a query touches O(log n) nodes
when boxes are reasonably spread out.

The index supports four query relations against a search box (items lying
within it, items covering it, items overlapping it, and items with exactly
equal bounds) as well as full enumeration. Queries produce lazy iterator
sequences; every range over a sequence starts a fresh traversal.

The index is an in-process data structure: no persistence, no wire format
and no concurrent-access support. Mutating the index while consuming a
query sequence is undefined and must be avoided by the caller.

Clients bring their own item types; anything able to report its bounding
box can be indexed. Item identity is Go interface equality, so items should
be pointer-shaped. Distinct items may share equal boxes.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package boxtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'boxtree'
func tracer() tracing.Trace {
	return tracing.Select("boxtree")
}
