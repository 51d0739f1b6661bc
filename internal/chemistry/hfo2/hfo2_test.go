package hfo2

import (
	"testing"

	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/internal/mask"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// starLattice is a four-layer comb rooted at site 0: layer1 = {1,2,3,4},
// layer2 = {5,6,7,8} (one child each of layer1), layer3 = {9,10,11,12}
// (one child each of layer2), layer4 = {13,14,15,16} (one child each of
// layer3). Four distinct depths let a test tell hop1 apart from hop3 and
// hop2 apart from hop4 unambiguously. It satisfies chemistry.CoordAccess
// for exercising UpdateCoord/mask walks without pulling in the full
// lattice package.
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

func (s *starLattice) NumNeighOf(i int) int      { return len(s.neigh[i]) }
func (s *starLattice) NeighborAt(i, idx int) int { return s.neigh[i][idx] }
func (s *starLattice) SiteOf(i int) int          { return i }
func (s *starLattice) AddCoord(i, delta int)     { s.coord[i] += delta }
func (s *starLattice) SpeciesAt(i int) kmctypes.Species { return s.species[i] }
func (s *starLattice) SetCoord(i, v int)                { s.coord[i] = v }
func (s *starLattice) CoordAt(i int) int                { return s.coord[i] }

func TestUpdateCoordAdsorptionMasksFourHopShell(t *testing.T) {
	l := newStarLattice()
	for i := range l.species {
		l.species[i] = O
	}
	l.species[0] = HfX4O

	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)
	c.UpdateCoord(chemistry.Mutation{
		ElCoord:  O,
		I:        0,
		J:        -1,
		SpeciesI: HfX4O,
		Walker:   w,
		Lattice:  l,
	})

	if l.coord[0] != 1 {
		t.Fatalf("coord[0] = %d, want 1 (adsorption increments the pivot)", l.coord[0])
	}
	for _, hop1 := range []int{1, 2, 3, 4} {
		if l.coord[hop1] != 0 {
			t.Fatalf("coord[%d] = %d, want 0 (hop1 is a pure traversal pivot)", hop1, l.coord[hop1])
		}
	}
	for _, hop2 := range []int{5, 6, 7, 8} {
		if l.coord[hop2] != -10 {
			t.Fatalf("coord[%d] = %d, want -10 (hop2 of the 4-hop mask)", hop2, l.coord[hop2])
		}
	}
	for _, hop3 := range []int{9, 10, 11, 12} {
		if l.coord[hop3] != 0 {
			t.Fatalf("coord[%d] = %d, want 0 (hop3 is a pure traversal pivot)", hop3, l.coord[hop3])
		}
	}
	for _, hop4 := range []int{13, 14, 15, 16} {
		if l.coord[hop4] != -10 {
			t.Fatalf("coord[%d] = %d, want -10 (hop4 of the 4-hop mask)", hop4, l.coord[hop4])
		}
	}
}

func TestUpdateCoordDesorptionIsExactInverseOfAdsorption(t *testing.T) {
	l := newStarLattice()
	for i := range l.species {
		l.species[i] = O
	}
	l.species[0] = HfX4O
	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)

	c.UpdateCoord(chemistry.Mutation{ElCoord: O, I: 0, J: -1, SpeciesI: HfX4O, Walker: w, Lattice: l})

	l.species[0] = O
	c.UpdateCoord(chemistry.Mutation{ElCoord: HfX4O, I: 0, J: -1, SpeciesI: O, Walker: w, Lattice: l})

	for i, v := range l.coord {
		if v != 0 {
			t.Fatalf("coord[%d] = %d after adsorption+desorption round trip, want 0", i, v)
		}
	}
}

func TestUpdateCoordLigandLossDecrementsCoordAndMasksThreeHop(t *testing.T) {
	l := newStarLattice()
	l.species[0] = HfX
	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)

	c.UpdateCoord(chemistry.Mutation{ElCoord: HfX2, I: 0, J: -1, SpeciesI: HfX, Walker: w, Lattice: l})

	if l.coord[0] != -1 {
		t.Fatalf("coord[0] = %d, want -1 for non-Hf ligand loss", l.coord[0])
	}
	for _, hop1 := range []int{1, 2, 3, 4} {
		if l.coord[hop1] != 10 {
			t.Fatalf("coord[%d] = %d, want +10 (remove_mask hop1)", hop1, l.coord[hop1])
		}
	}
	for _, hop2 := range []int{5, 6, 7, 8} {
		if l.coord[hop2] != 0 {
			t.Fatalf("coord[%d] = %d, want 0 (hop2 of the asymmetric template carries no delta)", hop2, l.coord[hop2])
		}
	}
	for _, hop3 := range []int{9, 10, 11, 12} {
		if l.coord[hop3] != 10 {
			t.Fatalf("coord[%d] = %d, want +10 (remove_mask hop3)", hop3, l.coord[hop3])
		}
	}
}

func TestUpdateCoordLigandLossToHfDecrementsCoordTwice(t *testing.T) {
	l := newStarLattice()
	l.species[0] = Hf
	c := &Chemistry{}
	w := mask.NewWalker(l, l, 17)

	c.UpdateCoord(chemistry.Mutation{ElCoord: HfHX2, I: 0, J: -1, SpeciesI: Hf, Walker: w, Lattice: l})

	if l.coord[0] != -2 {
		t.Fatalf("coord[0] = %d, want -2 when the ligand-losing species becomes bare Hf", l.coord[0])
	}
}

func TestSpeciesByNameAliasesHfH2X2OHOnlyForBinaryAndTernaryOutputSlot0(t *testing.T) {
	c := &Chemistry{}
	aliased := []chemistry.Slot{chemistry.SlotBinaryIn0, chemistry.SlotBinaryOut0, chemistry.SlotTernaryOut0}
	for _, slot := range aliased {
		got, ok := c.SpeciesByName("HfH2X2OH", slot)
		if !ok || got != HfHX2OH {
			t.Fatalf("SpeciesByName(\"HfH2X2OH\", %v) = %v, %v, want %v, true", slot, got, ok, HfHX2OH)
		}
	}

	distinct := []chemistry.Slot{
		chemistry.SlotUnaryIn, chemistry.SlotUnaryOut,
		chemistry.SlotTernaryIn0, chemistry.SlotTernaryIn1, chemistry.SlotTernaryOut1,
		chemistry.SlotBinaryIn1, chemistry.SlotBinaryOut1,
	}
	for _, slot := range distinct {
		got, ok := c.SpeciesByName("HfH2X2OH", slot)
		if !ok || got != HfH2X2OH {
			t.Fatalf("SpeciesByName(\"HfH2X2OH\", %v) = %v, %v, want %v, true", slot, got, ok, HfH2X2OH)
		}
	}
}

func TestCountCoordOSetsFullyCoordinatedAboveEightyPercentOxygen(t *testing.T) {
	l := newStarLattice()
	// Hub's 2-hop shell (sites 5-8, reached via 1-4) is all oxygen.
	for _, s := range []int{5, 6, 7, 8} {
		l.species[s] = O
	}
	countCoordO(l, 0)
	if l.coord[0] != 2 {
		t.Fatalf("coord[0] = %d, want 2 when the 2-hop shell is fully oxygen", l.coord[0])
	}
}

func TestCountCoordOLeavesCoordUnchangedBelowThreshold(t *testing.T) {
	l := newStarLattice()
	l.species[5] = O
	for _, s := range []int{6, 7, 8} {
		l.species[s] = VACANCY
	}
	countCoordO(l, 0)
	if l.coord[0] != 0 {
		t.Fatalf("coord[0] = %d, want 0 when oxygen occupancy is below 80%%", l.coord[0])
	}
}
