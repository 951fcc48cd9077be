package rtree

import "fmt"

// Check validates structural tree invariants.
//
// It walks every node and verifies item/children exclusivity, parent and
// root linkage, level arithmetic, child-count bounds and bound-cache
// correctness. Checking never refreshes caches: a clean node is compared
// against a recomputation from its children's cached boxes, which must
// themselves be clean.
//
// Check is a diagnostic for tests and fuzzing, not a production call path.
// A nil return means the tree is valid.
func (t *Tree) Check() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrInvalidStructure)
	}
	if t.root == nil {
		if t.count != 0 {
			return fmt.Errorf("%w: empty tree reports %d items", ErrInvalidStructure, t.count)
		}
		return nil
	}
	if t.root.parent != nil {
		return fmt.Errorf("%w: root has a parent", ErrInvalidStructure)
	}
	items, err := checkNode(t.root, true)
	if err != nil {
		return err
	}
	if items != t.count {
		return fmt.Errorf("%w: item count mismatch (%d != %d)", ErrInvalidStructure, items, t.count)
	}
	return nil
}

func checkNode(n *node, isRoot bool) (items int, err error) {
	switch n.kind {
	case leafKind:
		if n.item == nil {
			return 0, fmt.Errorf("%w: leaf without item", ErrInvalidStructure)
		}
		if len(n.children) != 0 {
			return 0, fmt.Errorf("%w: leaf with %d children", ErrInvalidStructure, len(n.children))
		}
		if n.level != 0 {
			return 0, fmt.Errorf("%w: leaf at level %d", ErrInvalidStructure, n.level)
		}
		if err := checkBoundCache(n); err != nil {
			return 0, err
		}
		return 1, nil

	case branchKind:
		if n.item != nil {
			return 0, fmt.Errorf("%w: branch node holds an item", ErrInvalidStructure)
		}
		if len(n.children) == 0 {
			return 0, fmt.Errorf("%w: branch node has no children", ErrInvalidStructure)
		}
		if !isRoot && len(n.children) < MinChildren {
			return 0, fmt.Errorf("%w: child count %d below minimum %d",
				ErrInvalidStructure, len(n.children), MinChildren)
		}
		if len(n.children) > MaxChildren {
			return 0, fmt.Errorf("%w: child count %d exceeds maximum %d",
				ErrInvalidStructure, len(n.children), MaxChildren)
		}
		if n.level < 1 {
			return 0, fmt.Errorf("%w: branch node at level %d", ErrInvalidStructure, n.level)
		}
		total := 0
		for i, child := range n.children {
			if child == nil {
				return 0, fmt.Errorf("%w: nil child at index %d", ErrInvalidStructure, i)
			}
			if child.parent != n {
				return 0, fmt.Errorf("%w: child at index %d has broken parent link", ErrInvalidStructure, i)
			}
			if child.level != n.level-1 {
				return 0, fmt.Errorf("%w: child level %d under level %d",
					ErrInvalidStructure, child.level, n.level)
			}
			childItems, err := checkNode(child, false)
			if err != nil {
				return 0, err
			}
			total += childItems
		}
		if err := checkBoundCache(n); err != nil {
			return 0, err
		}
		return total, nil
	}
	return 0, fmt.Errorf("%w: node of unknown kind", ErrInvalidStructure)
}

// checkBoundCache verifies a clean node's cached box against a shallow
// recomputation. Dirty propagation is monotonic upward, so a clean node must
// not sit above a dirty child.
func checkBoundCache(n *node) error {
	if n.dirty {
		return nil
	}
	if n.kind == leafKind {
		if !n.box.Equal(n.item.Bounds()) {
			return fmt.Errorf("%w: leaf cache differs from item box", ErrStaleBoundCache)
		}
		return nil
	}
	for _, child := range n.children {
		if child.dirty {
			return fmt.Errorf("%w: clean node above dirty child", ErrStaleBoundCache)
		}
	}
	recomputed := n.children[0].box
	for _, child := range n.children[1:] {
		recomputed = recomputed.Union(child.box)
	}
	if !n.box.Equal(recomputed) {
		return fmt.Errorf("%w: branch cache differs from child union", ErrStaleBoundCache)
	}
	return nil
}
