package rtree

import (
	"iter"

	"github.com/npillmayer/boxtree/geom"
)

// Mode selects the containment relation a search matches items against.
type Mode uint8

const (
	// ContainedWithin matches items whose box lies completely inside the
	// query box.
	ContainedWithin Mode = iota
	// Contains matches items whose box completely contains the query box.
	Contains
	// Overlaps matches items whose box shares at least one point with the
	// query box.
	Overlaps
	// ExactMatch matches items whose box equals the query box.
	ExactMatch
)

func (m Mode) String() string {
	switch m {
	case ContainedWithin:
		return "contained-within"
	case Contains:
		return "contains"
	case Overlaps:
		return "overlaps"
	case ExactMatch:
		return "exact-match"
	}
	return "unknown"
}

// matchesLeaf applies the mode's relation to a leaf box.
func (m Mode) matchesLeaf(leafBox, query geom.Box) bool {
	switch m {
	case ContainedWithin:
		return query.Contains(leafBox)
	case Contains:
		return leafBox.Contains(query)
	case Overlaps:
		return leafBox.Overlaps(query)
	case ExactMatch:
		return leafBox.Equal(query)
	}
	assert(false, "search with unknown mode")
	return false
}

// descends decides whether a subtree with the given cached box can harbor a
// match and is worth entering.
//
// For contained-within and overlaps (and, conservatively, contains), any
// qualifying leaf sits inside a subtree overlapping the query. For
// exact-match, an ancestor box is a superset of every leaf box, so only
// subtrees containing the query can hold an equal leaf.
func (m Mode) descends(nodeBox, query geom.Box) bool {
	switch m {
	case ContainedWithin, Contains, Overlaps:
		return nodeBox.Overlaps(query)
	case ExactMatch:
		return nodeBox.Contains(query)
	}
	assert(false, "search with unknown mode")
	return false
}

// Search returns all items related to the query box under the given mode.
//
// The sequence is lazy and restartable: every range over it starts a fresh
// depth-first traversal, and no state is shared between traversals. The
// sequence holds no snapshot; mutating the tree while a traversal is being
// consumed is undefined and the caller's responsibility to avoid.
func (t *Tree) Search(query geom.Box, mode Mode) iter.Seq[Item] {
	return func(yield func(Item) bool) {
		if t == nil || t.root == nil {
			return
		}
		searchNode(t.root, query, mode, yield)
	}
}

func searchNode(n *node, query geom.Box, mode Mode, yield func(Item) bool) bool {
	if n.kind == leafKind {
		if mode.matchesLeaf(n.bounds(), query) {
			return yield(n.item)
		}
		return true
	}
	if !mode.descends(n.bounds(), query) {
		return true
	}
	for _, child := range n.children {
		if !searchNode(child, query, mode, yield) {
			return false
		}
	}
	return true
}
