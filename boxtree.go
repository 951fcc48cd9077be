package boxtree

/*
BSD 3-Clause License

Copyright (c) Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"iter"

	"github.com/npillmayer/boxtree/geom"
	"github.com/npillmayer/boxtree/rtree"
)

// Item is the capability indexed items have to provide. Bounds must report
// a non-empty box and stay stable while the item is indexed.
type Item = rtree.Item

// Index is a spatial index over items with axis-aligned bounding boxes.
//
// An index created by
//
//	Index{}
//
// is a valid object and behaves like an empty index. Indexes are not safe
// for concurrent use.
//
// Operations have the performance characteristics of a balanced tree:
//
//	Operation     |   Index         |  Linear scan
//	--------------+-----------------+-------------
//	Insert        |   O(log n)      |   O(1)
//	Remove        |   O(log n)      |   O(n)
//	Query         |   O(log n)·     |   O(n)
//	Enumerate     |   O(n)          |   O(n)
//
// (· assuming effective pruning; degenerate box distributions degrade
// queries to O(n).)
type Index struct {
	tree rtree.Tree
}

// New creates an empty index.
func New() *Index {
	return &Index{}
}

// Insert adds an item to the index. The item must be non-nil and report a
// non-empty box.
func (idx *Index) Insert(item Item) {
	idx.tree.Insert(item)
	tracer().Debugf("inserted item with bounds %v, index now holds %d", item.Bounds(), idx.tree.Count())
}

// Remove deletes an item from the index, reporting whether it was found.
// Removing an absent item is a safe no-op.
func (idx *Index) Remove(item Item) bool {
	found := idx.tree.Remove(item)
	tracer().Debugf("removal found=%v, index now holds %d", found, idx.tree.Count())
	return found
}

// IsEmpty reports whether the index holds no items.
func (idx *Index) IsEmpty() bool {
	return idx.tree.IsEmpty()
}

// Count returns the number of indexed items.
func (idx *Index) Count() int {
	return idx.tree.Count()
}

// Height returns the tree height, where 0 means empty and 1 means a single
// item.
func (idx *Index) Height() int {
	return idx.tree.Height()
}

// Bounds returns the smallest box containing every indexed item, or the
// empty box for an empty index.
func (idx *Index) Bounds() geom.Box {
	return idx.tree.Bounds()
}

// Clear removes all items.
func (idx *Index) Clear() {
	idx.tree.Clear()
}

// Within returns all items whose box lies completely inside the query box.
func (idx *Index) Within(query geom.Box) iter.Seq[Item] {
	return idx.tree.Search(query, rtree.ContainedWithin)
}

// Covering returns all items whose box completely contains the query box.
func (idx *Index) Covering(query geom.Box) iter.Seq[Item] {
	return idx.tree.Search(query, rtree.Contains)
}

// Overlapping returns all items whose box shares at least one point with
// the query box.
func (idx *Index) Overlapping(query geom.Box) iter.Seq[Item] {
	return idx.tree.Search(query, rtree.Overlaps)
}

// Exact returns all items whose box equals the query box. Items sharing a
// box are all reported; callers filter by identity if they look for one.
func (idx *Index) Exact(query geom.Box) iter.Seq[Item] {
	return idx.tree.Search(query, rtree.ExactMatch)
}

// Items returns an iterator over every indexed item in depth-first order.
func (idx *Index) Items() iter.Seq[Item] {
	return idx.tree.Items()
}

// EachItem visits every indexed item together with its box.
//
// Iteration stops at the first callback error and returns that error to the
// caller.
func (idx *Index) EachItem(f func(item Item, box geom.Box) error) error {
	var err error
	idx.tree.ForEachItem(func(item Item) bool {
		err = f(item, item.Bounds())
		return err == nil
	})
	return err
}

// WalkNodes visits every tree node depth-first, parents before children.
// This is a diagnostic surface for structure rendering.
func (idx *Index) WalkNodes(visit func(rtree.NodeInfo) bool) {
	idx.tree.WalkNodes(visit)
}

// Check validates the index's structural invariants. A nil return means the
// index is valid. Check is meant for tests and diagnostics, not for
// production call paths.
func (idx *Index) Check() error {
	return idx.tree.Check()
}
