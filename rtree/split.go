package rtree

import "github.com/npillmayer/boxtree/geom"

// split distributes n's children plus one extra child into two groups of
// MinChildren each. n keeps the first seed's group; the second group moves
// into a fresh sibling at the same level, which is returned for insertion
// one level up.
func (n *node) split(extra *node) *node {
	assert(n.kind == branchKind, "split on a leaf node")
	assert(len(n.children) == MaxChildren, "split on a node that is not full")
	assert(extra.level == n.level-1, "split extra child at wrong level")

	all := make([]*node, 0, MaxChildren+1)
	all = append(all, n.children...)
	all = append(all, extra)

	seed1, seed2 := pickSeeds(all)
	group1 := []*node{all[seed1]}
	group2 := []*node{all[seed2]}
	box1 := all[seed1].bounds()
	box2 := all[seed2].bounds()

	rest := make([]*node, 0, len(all)-2)
	for i, child := range all {
		if i != seed1 && i != seed2 {
			rest = append(rest, child)
		}
	}
	for i, child := range rest {
		remaining := len(rest) - i
		// Once a group is filled to MinChildren, the remainder must go to
		// the other group to keep both within occupancy bounds.
		if len(group1) >= MinChildren && len(group2)+remaining <= MaxChildren {
			group2 = append(group2, child)
			box2 = box2.Union(child.bounds())
			continue
		}
		if len(group2) >= MinChildren && len(group1)+remaining <= MaxChildren {
			group1 = append(group1, child)
			box1 = box1.Union(child.bounds())
			continue
		}
		grown1 := box1.Union(child.bounds()).Volume()
		grown2 := box2.Union(child.bounds()).Volume()
		sum1 := grown1 + box2.Volume() // total volume if child joins group 1
		sum2 := box1.Volume() + grown2 // total volume if child joins group 2
		toFirst := true
		switch {
		case sum1 < sum2:
		case sum2 < sum1:
			toFirst = false
		case grown2 < grown1:
			toFirst = false
		}
		// A full tie stays with the first group, keeping splits deterministic.
		if toFirst {
			group1 = append(group1, child)
			box1 = box1.Union(child.bounds())
		} else {
			group2 = append(group2, child)
			box2 = box2.Union(child.bounds())
		}
	}

	n.setChildren(group1)
	return newBranch(n.level, group2...)
}

// pickSeeds selects the two most separated children as split seeds: per
// axis, the child with the greatest minimum corner against the child with
// the least maximum corner, taking the axis with the widest resulting
// separation. When the extremes coincide on the winning axis (e.g. all boxes
// identical), the first two children serve as seeds.
func pickSeeds(all []*node) (int, int) {
	assert(len(all) >= 2, "pickSeeds needs at least two children")
	bestHi, bestLo := 0, 0
	bestSep := 0.0
	haveAxis := false
	for axis := 0; axis < geom.Axes; axis++ {
		hi, lo := 0, 0
		for i, child := range all {
			box := child.bounds()
			if box.Min().At(axis) > all[hi].bounds().Min().At(axis) {
				hi = i
			}
			if box.Max().At(axis) < all[lo].bounds().Max().At(axis) {
				lo = i
			}
		}
		sep := all[hi].bounds().Min().At(axis) - all[lo].bounds().Max().At(axis)
		if !haveAxis || sep > bestSep {
			haveAxis = true
			bestSep = sep
			bestHi, bestLo = hi, lo
		}
	}
	if bestHi == bestLo {
		return 0, 1
	}
	if bestHi > bestLo {
		bestHi, bestLo = bestLo, bestHi
	}
	return bestHi, bestLo
}
