package rtree

import (
	"fmt"
	"testing"

	"github.com/npillmayer/boxtree/geom"
)

// block is the stock test item: a named box with pointer identity.
type block struct {
	name string
	box  geom.Box
}

func (b *block) Bounds() geom.Box {
	return b.box
}

func mkblock(t *testing.T, name string, min, max geom.Vector) *block {
	t.Helper()
	box, err := geom.New(min, max)
	if err != nil {
		t.Fatalf("cannot create box for %q: %v", name, err)
	}
	if box.IsEmpty() {
		t.Fatalf("test box for %q is empty", name)
	}
	return &block{name: name, box: box}
}

// unitblock creates a unit box block at offset (3i, 0, 0), keeping blocks
// pairwise disjoint.
func unitblock(t *testing.T, i int) *block {
	t.Helper()
	x := float64(3 * i)
	return mkblock(t, fmt.Sprintf("unit-%d", i), geom.V(x, 0, 0), geom.V(x+1, 1, 1))
}

func collect(t *testing.T, tr *Tree, query geom.Box, mode Mode) map[Item]int {
	t.Helper()
	found := make(map[Item]int)
	for item := range tr.Search(query, mode) {
		found[item]++
	}
	return found
}

func checkValid(t *testing.T, tr *Tree) {
	t.Helper()
	if err := tr.Check(); err != nil {
		t.Fatalf("tree invariant violated: %v", err)
	}
}

func expectPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected a panic, got none")
		}
	}()
	f()
}

func TestZeroValueTree(t *testing.T) {
	var tr Tree
	if !tr.IsEmpty() || tr.Count() != 0 || tr.Height() != 0 {
		t.Errorf("zero-value tree is not empty")
	}
	if !tr.Bounds().IsEmpty() {
		t.Errorf("zero-value tree has non-empty bounds")
	}
	if tr.Remove(unitblock(t, 0)) {
		t.Errorf("Remove on empty tree reported a find")
	}
	checkValid(t, &tr)
}

func TestInsertSingleItem(t *testing.T) {
	tr := New()
	b := unitblock(t, 0)
	tr.Insert(b)
	if tr.Count() != 1 || tr.Height() != 1 {
		t.Errorf("count/height = %d/%d, want 1/1", tr.Count(), tr.Height())
	}
	if !tr.Bounds().Equal(b.Bounds()) {
		t.Errorf("tree bounds differ from single item box")
	}
	items := 0
	for item := range tr.Items() {
		if item != Item(b) {
			t.Errorf("enumeration yields a foreign item")
		}
		items++
	}
	if items != 1 {
		t.Errorf("enumeration yields %d items, want 1", items)
	}
	checkValid(t, tr)
}

func TestInsertRejectsBadItems(t *testing.T) {
	tr := New()
	expectPanic(t, func() { tr.Insert(nil) })
	expectPanic(t, func() { tr.Insert(&block{name: "void"}) })
}

func TestInsertManyDisjoint(t *testing.T) {
	tr := New()
	blocks := make([]*block, 10)
	union := geom.Empty()
	for i := range blocks {
		blocks[i] = unitblock(t, i)
		union = union.Union(blocks[i].Bounds())
		tr.Insert(blocks[i])
		checkValid(t, tr)
	}
	if tr.Count() != len(blocks) {
		t.Fatalf("count = %d, want %d", tr.Count(), len(blocks))
	}
	if tr.Height() < 2 {
		t.Errorf("height = %d, want at least 2 after %d inserts", tr.Height(), len(blocks))
	}
	if !tr.Bounds().Equal(union) {
		t.Errorf("tree bounds differ from union of item boxes")
	}
	found := collect(t, tr, tr.Bounds(), Overlaps)
	if len(found) != len(blocks) {
		t.Fatalf("overlap search over full bounds found %d items, want %d", len(found), len(blocks))
	}
	for _, b := range blocks {
		if found[b] != 1 {
			t.Errorf("item %s at %v reported %d times, want once", b.name, b.box, found[b])
		}
	}
}

func TestInsertSameItemTwice(t *testing.T) {
	tr := New()
	b := unitblock(t, 0)
	tr.Insert(b)
	tr.Insert(b)
	checkValid(t, tr)
	if tr.Count() != 2 {
		t.Fatalf("count = %d, want 2 independent entries", tr.Count())
	}
	if !tr.Remove(b) || tr.Count() != 1 {
		t.Fatalf("first removal failed")
	}
	checkValid(t, tr)
	if !tr.Remove(b) || !tr.IsEmpty() {
		t.Fatalf("second removal failed")
	}
}

func TestRootSplitAndCollapse(t *testing.T) {
	tr := New()
	blocks := make([]*block, 8)
	for i := range blocks {
		blocks[i] = unitblock(t, i)
		tr.Insert(blocks[i])
	}
	checkValid(t, tr)
	// The eighth insert overflows the level-1 root and grows the tree.
	if tr.Height() != 3 {
		t.Fatalf("height = %d after 8 inserts, want 3", tr.Height())
	}
	if !tr.Remove(blocks[0]) {
		t.Fatalf("removal of present item failed")
	}
	checkValid(t, tr)
	// Condensation empties one side of the root, which collapses again.
	if tr.Height() != 2 {
		t.Errorf("height = %d after condensation, want 2", tr.Height())
	}
	if tr.Count() != 7 {
		t.Errorf("count = %d, want 7", tr.Count())
	}
}

func TestRemoveToEmpty(t *testing.T) {
	tr := New()
	blocks := make([]*block, 8)
	for i := range blocks {
		blocks[i] = unitblock(t, i)
		tr.Insert(blocks[i])
	}
	for i, b := range blocks {
		if !tr.Remove(b) {
			t.Fatalf("removal %d failed", i)
		}
		checkValid(t, tr)
		if tr.Count() != len(blocks)-i-1 {
			t.Fatalf("count = %d after removal %d", tr.Count(), i)
		}
	}
	if !tr.IsEmpty() || tr.Height() != 0 || !tr.Bounds().IsEmpty() {
		t.Errorf("tree not empty after removing every item")
	}
}

func TestRemoveAbsentItem(t *testing.T) {
	tr := New()
	tr.Insert(unitblock(t, 0))
	stranger := unitblock(t, 0) // same box, different identity
	if tr.Remove(stranger) {
		t.Errorf("removal of never-inserted item reported a find")
	}
	if tr.Count() != 1 {
		t.Errorf("no-op removal changed the count")
	}
	checkValid(t, tr)
}

func TestRemoveSharedBox(t *testing.T) {
	tr := New()
	a := unitblock(t, 0)
	b := unitblock(t, 0) // equal box, distinct item
	tr.Insert(a)
	tr.Insert(b)
	if !tr.Remove(a) {
		t.Fatalf("removal of first twin failed")
	}
	checkValid(t, tr)
	found := collect(t, tr, b.Bounds(), ExactMatch)
	if len(found) != 1 || found[b] != 1 {
		t.Errorf("surviving twin not found by exact match")
	}
}

func TestClear(t *testing.T) {
	tr := New()
	for i := 0; i < 12; i++ {
		tr.Insert(unitblock(t, i))
	}
	tr.Clear()
	if !tr.IsEmpty() || tr.Count() != 0 {
		t.Errorf("tree not empty after Clear")
	}
	checkValid(t, tr)
	tr.Insert(unitblock(t, 0))
	if tr.Count() != 1 {
		t.Errorf("cleared tree does not accept inserts")
	}
}
