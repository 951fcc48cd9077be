package rtree

// Remove deletes an item from the tree. It reports whether the item was
// found; removing an absent item is a safe no-op.
//
// The owning leaf is located by exact-bounds descent filtered to item
// identity, since distinct items may share a box.
func (t *Tree) Remove(item Item) bool {
	if t == nil || t.root == nil || item == nil {
		return false
	}
	leaf := findLeaf(t.root, item)
	if leaf == nil {
		return false
	}
	t.count--
	if leaf == t.root {
		// Single-item tree: clear to the empty state.
		t.root = nil
		return true
	}
	t.removeFrom(leaf.parent, leaf)
	return true
}

// findLeaf locates the leaf wrapping item, pruning subtrees whose box does
// not contain the item's box.
func findLeaf(n *node, item Item) *node {
	target := item.Bounds()
	var locate func(n *node) *node
	locate = func(n *node) *node {
		if n.kind == leafKind {
			if n.item == item && n.bounds().Equal(target) {
				return n
			}
			return nil
		}
		if !n.bounds().Contains(target) {
			return nil
		}
		for _, child := range n.children {
			if leaf := locate(child); leaf != nil {
				return leaf
			}
		}
		return nil
	}
	return locate(n)
}

// removeFrom unlinks child from parent and condenses underflowing nodes:
// a non-root parent dropping below MinChildren is itself removed and its
// remaining children are reinserted at the height they came from, possibly
// splitting nodes on their way back in. A root left with a single child
// collapses, shrinking the tree by one level.
func (t *Tree) removeFrom(parent, child *node) {
	found := parent.removeChild(child)
	assert(found, "removeFrom: child is not under parent")
	child.parent = nil

	if parent == t.root {
		if len(parent.children) == 1 {
			t.root = parent.children[0]
			t.root.parent = nil
		}
		return
	}
	if len(parent.children) < MinChildren {
		orphans := append([]*node(nil), parent.children...)
		t.removeFrom(parent.parent, parent)
		for _, orphan := range orphans {
			orphan.parent = nil
			t.insertNode(orphan)
		}
	}
}
