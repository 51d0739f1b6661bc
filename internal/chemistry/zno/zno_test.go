package zno

import (
	"testing"

	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/internal/mask"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// starLattice mirrors hfo2's four-layer comb fixture: 0 is the hub,
// 1-4/5-8/9-12/13-16 are successive hop shells.
type starLattice struct {
	species []kmctypes.Species
	coord   []int
	neigh   [][]int
}

func newStarLattice() *starLattice {
	return &starLattice{
		species: make([]kmctypes.Species, 17),
		coord:   make([]int, 17),
		neigh: [][]int{
			{1, 2, 3, 4},
			{0, 5}, {0, 6}, {0, 7}, {0, 8},
			{1, 9}, {2, 10}, {3, 11}, {4, 12},
			{5, 13}, {6, 14}, {7, 15}, {8, 16},
			{9}, {10}, {11}, {12},
		},
	}
}

func (s *starLattice) NumNeighOf(i int) int             { return len(s.neigh[i]) }
func (s *starLattice) NeighborAt(i, idx int) int        { return s.neigh[i][idx] }
func (s *starLattice) SiteOf(i int) int                 { return i }
func (s *starLattice) AddCoord(i, delta int)            { s.coord[i] += delta }
func (s *starLattice) SpeciesAt(i int) kmctypes.Species { return s.species[i] }
func (s *starLattice) SetCoord(i, v int)                { s.coord[i] = v }
func (s *starLattice) CoordAt(i int) int                { return s.coord[i] }

func TestUpdateCoordAdsorptionBiasesFirstNeighborMoreThanDeeperHops(t *testing.T) {
	l := newStarLattice()
	for i := range l.species {
		l.species[i] = O
	}
	l.species[0] = ZnX2O

	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)
	c.UpdateCoord(chemistry.Mutation{ElCoord: O, I: 0, J: -1, SpeciesI: ZnX2O, Walker: w, Lattice: l})

	if l.coord[0] != 1 {
		t.Fatalf("coord[0] = %d, want 1", l.coord[0])
	}
	for _, hop1 := range []int{1, 2, 3, 4} {
		if l.coord[hop1] != -20 {
			t.Fatalf("coord[%d] = %d, want -20 (first-neighbor Zn bias)", hop1, l.coord[hop1])
		}
	}
	for _, hop2 := range []int{5, 6, 7, 8} {
		if l.coord[hop2] != -10 {
			t.Fatalf("coord[%d] = %d, want -10", hop2, l.coord[hop2])
		}
	}
	for _, hop4 := range []int{13, 14, 15, 16} {
		if l.coord[hop4] != -10 {
			t.Fatalf("coord[%d] = %d, want -10", hop4, l.coord[hop4])
		}
	}
}

func TestUpdateCoordDesorptionIsExactInverseOfAdsorption(t *testing.T) {
	l := newStarLattice()
	for i := range l.species {
		l.species[i] = O
	}
	l.species[0] = ZnX2O
	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)

	c.UpdateCoord(chemistry.Mutation{ElCoord: O, I: 0, J: -1, SpeciesI: ZnX2O, Walker: w, Lattice: l})
	l.species[0] = O
	c.UpdateCoord(chemistry.Mutation{ElCoord: ZnX2O, I: 0, J: -1, SpeciesI: O, Walker: w, Lattice: l})

	for i, v := range l.coord {
		if v != 0 {
			t.Fatalf("coord[%d] = %d after adsorption+desorption round trip, want 0", i, v)
		}
	}
}

func TestRemoveFromPartnerTemplateRootsAtThePartnerNotThePivot(t *testing.T) {
	l := newStarLattice()
	for i := range l.species {
		l.species[i] = VACANCY
	}
	l.species[5] = O

	w := mask.NewWalker(l, l, 17)
	// i=1 is the ZnX pivot passed in for dispatch only; the walk roots at
	// partner=5, its own oxygen neighborhood, not at the pivot's.
	w.Apply(1, 5, -1, removeFromPartnerTemplate)

	// Root's own first hop (site 1, the pivot) gets +10 once, same as any
	// other first-neighbor site of the root.
	if l.coord[1] != 10 {
		t.Fatalf("coord[1] = %d, want +10 (pivot reached as root's first-hop neighbor)", l.coord[1])
	}
	if l.coord[9] != 10 {
		t.Fatalf("coord[9] = %d, want +10 (root's other first-hop neighbor)", l.coord[9])
	}
	if l.coord[0] != 10 || l.coord[13] != 10 {
		t.Fatalf("coord[0]=%d coord[13]=%d, want +10 each (second-hop sites from the root)", l.coord[0], l.coord[13])
	}
	touched := map[int]bool{1: true, 9: true, 0: true, 13: true, 2: true, 3: true, 4: true, 6: true, 7: true, 8: true}
	for i := 0; i < 17; i++ {
		want := 0
		if touched[i] {
			want = 10
		}
		if l.coord[i] != want {
			t.Fatalf("coord[%d] = %d, want %d", i, l.coord[i], want)
		}
	}
}

func TestCountCoordODecrementsInsteadOfClamping(t *testing.T) {
	l := newStarLattice()
	for _, s := range []int{5, 6, 7, 8} {
		l.species[s] = O
	}
	countCoordO(l, 0)
	if l.coord[0] != -20 {
		t.Fatalf("coord[0] = %d, want -20 (ZnO decrements rather than clamping to a fixed value)", l.coord[0])
	}

	// A second call with coord already at -20 must not push past it.
	for i := 0; i < 4; i++ {
		countCoordO(l, 0)
	}
	if l.coord[0] != -20 {
		t.Fatalf("coord[0] = %d, want -20 (floored, repeated triggers don't keep decrementing)", l.coord[0])
	}
}

func TestSpeciesByNameResolvesKnownSpecies(t *testing.T) {
	c := &Chemistry{}
	got, ok := c.SpeciesByName("ZnX2OH2", chemistry.SlotUnaryIn)
	if !ok || got != ZnX2OH2 {
		t.Fatalf("SpeciesByName(\"ZnX2OH2\") = %v, %v", got, ok)
	}
}
