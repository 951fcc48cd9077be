package rtree

import "github.com/npillmayer/boxtree/geom"

// Insert adds an item to the tree.
//
// The item must be non-nil and must report a non-empty box; violating either
// is a programming fault and panics. Two inserts of the same item create two
// independent index entries.
func (t *Tree) Insert(item Item) {
	assert(item != nil, "Insert called with nil item")
	assert(!item.Bounds().IsEmpty(), "Insert called with empty-box item")
	leaf := newLeaf(item)
	t.count++
	if t.root == nil {
		t.root = leaf
		return
	}
	if t.root.kind == leafKind {
		// A one-item tree grows a branch root over the old and new leaf.
		t.root = newBranch(1, t.root, leaf)
		return
	}
	t.insertNode(leaf)
}

// insertNode hangs n below the root at level n.level+1. When split
// propagation reaches the root, a new root over the old root and the
// split-off sibling grows the tree by one level.
func (t *Tree) insertNode(n *node) {
	assert(t.root != nil && t.root.kind == branchKind, "insertNode needs a branch root")
	if sibling := insertInto(t.root, n); sibling != nil {
		t.root = newBranch(t.root.level+1, t.root, sibling)
	}
}

// insertInto places n in the subtree under host, which must live above n's
// target level. It returns a split-off sibling of host to be placed one
// level up, or nil when host absorbed the insertion.
func insertInto(host, n *node) *node {
	assert(host.kind == branchKind, "insertInto descended into a leaf")
	assert(host.level > n.level, "insertInto overshot the target level")
	if host.level == n.level+1 {
		if len(host.children) < MaxChildren {
			host.addChild(n)
			return nil
		}
		return host.split(n)
	}
	sibling := insertInto(chooseSubtree(host, n.bounds()), n)
	if sibling == nil {
		return nil
	}
	if len(host.children) < MaxChildren {
		host.addChild(sibling)
		return nil
	}
	return host.split(sibling)
}

// chooseSubtree picks the child whose box would grow by the smallest volume
// ratio when absorbing box. Both volumes are offset by 1 so that flat and
// empty boxes still compare sanely; ties break toward the smaller absorbed
// volume, then toward the earlier child.
func chooseSubtree(host *node, box geom.Box) *node {
	assert(len(host.children) > 0, "chooseSubtree on node without children")
	var best *node
	var bestRatio, bestVolume float64
	for _, child := range host.children {
		before := child.bounds().Volume() + 1
		after := child.bounds().Union(box).Volume() + 1
		ratio := after / before
		if best == nil || ratio < bestRatio || (ratio == bestRatio && after < bestVolume) {
			best = child
			bestRatio = ratio
			bestVolume = after
		}
	}
	return best
}
