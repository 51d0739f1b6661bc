package mask

import "testing"

// fakeLattice is a tiny star graph: site 0 is the hub, sites 1..4 are
// its neighbors, sites 5..8 are one further hop out (each attached to
// exactly one of 1..4). Good enough to exercise a 2-hop walk.
type fakeLattice struct {
	neighbors [][]int
	coord     []int
}

func newFakeLattice() *fakeLattice {
	return &fakeLattice{
		neighbors: [][]int{
			{1, 2, 3, 4},
			{0, 5},
			{0, 6},
			{0, 7},
			{0, 8},
			{1},
			{2},
			{3},
			{4},
		},
		coord: make([]int, 9),
	}
}

func (f *fakeLattice) NumNeighOf(site int) int          { return len(f.neighbors[site]) }
func (f *fakeLattice) NeighborAt(site, idx int) int      { return f.neighbors[site][idx] }
func (f *fakeLattice) SiteOf(site int) int               { return site }
func (f *fakeLattice) AddCoord(site int, delta int)      { f.coord[site] += delta }

func uniformTwoHop(delta int) Template {
	return Template{
		Root: RootSelf,
		Hops: []HopRule{
			{Mark: true, Delta: delta},
			{Mark: true, Delta: delta},
		},
	}
}

func TestWalkerApplyAndInverse(t *testing.T) {
	f := newFakeLattice()
	w := NewWalker(f, f, 9)

	put := uniformTwoHop(-10)
	w.Apply(0, -1, -1, put)

	for _, s := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		if f.coord[s] != -10 {
			t.Fatalf("coord[%d] = %d, want -10 after put_mask", s, f.coord[s])
		}
	}
	if f.coord[0] != 0 {
		t.Fatalf("root coord mutated: %d", f.coord[0])
	}
	for slot := range f.coord {
		if w.echeck[slot] != 0 {
			t.Fatalf("echeck[%d] left set after Apply", slot)
		}
	}

	remove := uniformTwoHop(10)
	w.Apply(0, -1, -1, remove)
	for _, s := range []int{1, 2, 3, 4, 5, 6, 7, 8} {
		if f.coord[s] != 0 {
			t.Fatalf("coord[%d] = %d, want 0 after exact inverse", s, f.coord[s])
		}
	}
}

func TestWalkerPivotOnlyHopLeavesDeltaZero(t *testing.T) {
	f := newFakeLattice()
	w := NewWalker(f, f, 9)

	tmpl := Template{
		Root: RootSelf,
		Hops: []HopRule{
			{Mark: false, Delta: 0}, // hop1 pivot-only, like HfO2's large-precursor hop1
			{Mark: true, Delta: -10},
		},
	}
	w.Apply(0, -1, -1, tmpl)

	// hop1 sites (1-4) untouched; hop2 sites (5-8) marked.
	for _, s := range []int{1, 2, 3, 4} {
		if f.coord[s] != 0 {
			t.Fatalf("pivot-only hop mutated coord[%d] = %d", s, f.coord[s])
		}
	}
	for _, s := range []int{5, 6, 7, 8} {
		if f.coord[s] != -10 {
			t.Fatalf("coord[%d] = %d, want -10", s, f.coord[s])
		}
	}
}

func TestWalkerSkipSiteExcludedFromFrontier(t *testing.T) {
	f := newFakeLattice()
	w := NewWalker(f, f, 9)

	tmpl := Template{
		Root: RootSelf,
		Hops: []HopRule{
			{Mark: true, Delta: -10},
			{Mark: true, Delta: -10},
		},
	}
	w.Apply(0, -1, 1 /* skip neighbor 1 and its descendants */, tmpl)

	if f.coord[1] != 0 {
		t.Fatalf("skipSite itself should never be marked, got %d", f.coord[1])
	}
	if f.coord[5] != 0 {
		t.Fatalf("descendant of skipSite should not be reached, got %d", f.coord[5])
	}
	if f.coord[2] != -10 || f.coord[6] != -10 {
		t.Fatalf("non-skipped branch should still be walked: coord[2]=%d coord[6]=%d", f.coord[2], f.coord[6])
	}
}
