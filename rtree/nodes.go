package rtree

import "github.com/npillmayer/boxtree/geom"

const (
	// MinChildren is the lower occupancy bound for non-root branch nodes.
	MinChildren = 4
	// MaxChildren is the upper occupancy bound for branch nodes.
	MaxChildren = 2*MinChildren - 1
)

// Item is the capability indexed items have to provide.
//
// Bounds must be stable between mutations of the owning item: the tree caches
// values derived from it and will not revalidate on its own. Items must
// report a non-empty box (degenerate zero-volume boxes are fine). Item
// identity is Go interface equality, so clients will usually index
// pointer-shaped items; two distinct items may report equal boxes.
type Item interface {
	Bounds() geom.Box
}

type nodeKind uint8

const (
	leafKind nodeKind = iota
	branchKind
)

// node is a tagged tree-node variant: a leaf wraps exactly one item at
// level 0, a branch holds an ordered child list one level below itself.
// All node operations switch exhaustively over the kind tag.
//
// The parent pointer is a non-owning navigation aid for dirty propagation
// and upward rebalancing; nodes are owned solely through child lists and the
// tree root.
type node struct {
	kind     nodeKind
	parent   *node
	level    int
	item     Item    // leaf only
	children []*node // branch only

	// box caches the union of the subtree's boxes (the item box for a
	// leaf) and is valid only while dirty is unset.
	box   geom.Box
	dirty bool
}

func newLeaf(item Item) *node {
	return &node{
		kind:  leafKind,
		item:  item,
		dirty: true,
	}
}

func newBranch(level int, children ...*node) *node {
	assert(level > 0, "branch nodes live above level 0")
	n := &node{
		kind:  branchKind,
		level: level,
		dirty: true,
	}
	n.setChildren(children)
	return n
}

// bounds returns the node's box, recomputing it lazily if the cache is
// stale. This is the only place a bound cache is ever refreshed.
func (n *node) bounds() geom.Box {
	if !n.dirty {
		return n.box
	}
	switch n.kind {
	case leafKind:
		n.box = n.item.Bounds()
	case branchKind:
		box := geom.Empty()
		for _, child := range n.children {
			box = box.Union(child.bounds())
		}
		n.box = box
	default:
		assert(false, "bounds called on node of unknown kind")
	}
	n.dirty = false
	return n.box
}

// markDirty invalidates the bound caches from n up to the root, stopping at
// the first ancestor that is already dirty. Dirtiness is monotonic, so the
// short-circuit keeps repeated structural changes O(1) amortized.
func (n *node) markDirty() {
	for cur := n; cur != nil && !cur.dirty; cur = cur.parent {
		cur.dirty = true
	}
}

// setChildren replaces the child list, re-parents each child and marks the
// node dirty.
func (n *node) setChildren(children []*node) {
	assert(n.kind == branchKind, "only branch nodes hold children")
	n.children = children
	for _, child := range children {
		assert(child.level == n.level-1, "child level must be one below parent")
		child.parent = n
	}
	n.markDirty()
}

func (n *node) addChild(child *node) {
	assert(n.kind == branchKind, "only branch nodes hold children")
	assert(len(n.children) < MaxChildren, "addChild on full node")
	assert(child.level == n.level-1, "child level must be one below parent")
	child.parent = n
	n.children = append(n.children, child)
	n.markDirty()
}

// removeChild unlinks child from n's child list. It reports false when the
// child is not present.
func (n *node) removeChild(child *node) bool {
	assert(n.kind == branchKind, "only branch nodes hold children")
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			n.markDirty()
			return true
		}
	}
	return false
}
