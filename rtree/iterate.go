package rtree

import (
	"iter"

	"github.com/npillmayer/boxtree/geom"
)

// ForEachItem visits every indexed item depth-first.
//
// Iteration stops early if the callback returns false.
func (t *Tree) ForEachItem(fn func(Item) bool) {
	if t == nil || t.root == nil || fn == nil {
		return
	}
	forEachItemNode(t.root, fn)
}

func forEachItemNode(n *node, fn func(Item) bool) bool {
	if n.kind == leafKind {
		return fn(n.item)
	}
	for _, child := range n.children {
		if !forEachItemNode(child, fn) {
			return false
		}
	}
	return true
}

// Items returns an iterator over every indexed item in depth-first order.
//
// Like Search results, the sequence is restartable and holds no snapshot.
func (t *Tree) Items() iter.Seq[Item] {
	return func(yield func(Item) bool) {
		t.ForEachItem(yield)
	}
}

// NodeInfo describes one node during a structural walk.
type NodeInfo struct {
	// ID and ParentID identify nodes within a single walk; IDs are assigned
	// in depth-first order starting at 1, and the root's ParentID is 0.
	ID       int
	ParentID int
	// Level is the node's height above the leaves, Depth its distance from
	// the root.
	Level int
	Depth int
	// ChildCount is 0 for leaves.
	ChildCount int
	// Box is the node's bounding box; reading it refreshes stale caches.
	Box geom.Box
	// Leaf flags leaf nodes; Item is set for leaves only.
	Leaf bool
	Item Item
}

// WalkNodes visits every node depth-first, parents before children. It is a
// diagnostic surface for structure rendering and must not be used to mutate
// the tree.
//
// The walk stops early if visit returns false.
func (t *Tree) WalkNodes(visit func(NodeInfo) bool) {
	if t == nil || t.root == nil || visit == nil {
		return
	}
	nextID := 1
	var walk func(n *node, parentID, depth int) bool
	walk = func(n *node, parentID, depth int) bool {
		info := NodeInfo{
			ID:         nextID,
			ParentID:   parentID,
			Level:      n.level,
			Depth:      depth,
			ChildCount: len(n.children),
			Box:        n.bounds(),
			Leaf:       n.kind == leafKind,
			Item:       n.item,
		}
		nextID++
		if !visit(info) {
			return false
		}
		for _, child := range n.children {
			if !walk(child, info.ID, depth+1) {
				return false
			}
		}
		return true
	}
	walk(t.root, 0, 0)
}
