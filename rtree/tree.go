package rtree

import "github.com/npillmayer/boxtree/geom"

// Tree is a self-balancing spatial index over items with axis-aligned
// bounding boxes.
//
// A tree created by
//
//	Tree{}
//
// is a valid object and behaves like an empty index. Trees are not safe for
// concurrent use.
type Tree struct {
	root  *node
	count int
}

// New creates an empty tree.
func New() *Tree {
	return &Tree{}
}

// IsEmpty reports whether the tree holds no items.
func (t *Tree) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Count returns the number of indexed items.
func (t *Tree) Count() int {
	if t == nil {
		return 0
	}
	return t.count
}

// Height returns the tree height, where 0 means empty and 1 means a single
// leaf root.
func (t *Tree) Height() int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.level + 1
}

// Bounds returns the smallest box containing every indexed item, or the
// empty box for an empty tree.
func (t *Tree) Bounds() geom.Box {
	if t == nil || t.root == nil {
		return geom.Empty()
	}
	return t.root.bounds()
}

// Clear removes all items.
func (t *Tree) Clear() {
	if t == nil {
		return
	}
	t.root = nil
	t.count = 0
}
