/*
Package rtree implements the self-balancing bounded-tree engine behind
package boxtree.

The tree is an R-tree over axis-aligned bounding boxes: leaves wrap exactly
one indexed item, branch nodes hold an ordered list of 4 to 7 children, and
every node caches the union of its subtree's boxes. Bound caches are
maintained lazily through per-node dirty flags: structural changes mark the
path to the root dirty, and a cached box is recomputed only when read.

Insertion descends by least volume-growth ratio and resolves overflow with a
seed-pick/greedy-distribute split; removal condenses underflowing nodes
upward and reinserts their orphaned subtrees at their former height. Four
search relations (contained-within, contains, overlaps, exact-match) prune
subtrees through the cached boxes and yield lazy, restartable iterators.

The tree is not safe for concurrent use, and iterator behavior is undefined
if the tree is mutated while a traversal is being consumed.

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package rtree

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
