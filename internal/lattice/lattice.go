// Package lattice holds the fixed-size per-site arrays (species,
// coordination number) and the immutable neighbor graph the engine
// walks during propensity and mask computations. Graph construction is
// an external collaborator: Lattice only validates and serves what it is
// given.
package lattice

import (
	"fmt"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

const (
	minCoord = -1
	maxCoord = 8
)

// Lattice is the site table described in SPEC_FULL.md §3/§4.2. All slices
// are indexed by lattice site id; Neighbor[i] lists the ids of i's
// neighbors in order, length NumNeigh[i].
type Lattice struct {
	Species  []kmctypes.Species
	Coord    []int
	NumNeigh []int
	Neighbor [][]int
	NLocal   int
	MaxNeigh int
	I2Site   []int // maps lattice id -> sampler slot, -1 for ghosts/excluded
}

// New validates the inputs and returns an initialized Lattice. numSpecies
// is the size of the calling chemistry's closed species set; every
// species value must lie in [0, numSpecies).
func New(species []kmctypes.Species, coord []int, numNeigh []int, neighbor [][]int, nlocal int, i2site []int, numSpecies int) (*Lattice, error) {
	n := len(species)
	if len(coord) != n || len(numNeigh) != n || len(neighbor) != n || len(i2site) != n {
		return nil, fmt.Errorf("lattice: mismatched array lengths (species=%d coord=%d numneigh=%d neighbor=%d i2site=%d)",
			n, len(coord), len(numNeigh), len(neighbor), len(i2site))
	}
	if nlocal < 0 || nlocal > n {
		return nil, fmt.Errorf("lattice: invalid nlocal %d for %d sites", nlocal, n)
	}

	maxNeigh := 0
	for i := 0; i < n; i++ {
		if int(species[i]) < 0 || int(species[i]) >= numSpecies {
			return nil, fmt.Errorf("lattice: site %d has species %d outside closed set [0,%d)", i, species[i], numSpecies)
		}
		if coord[i] < minCoord || coord[i] > maxCoord {
			return nil, fmt.Errorf("lattice: site %d has coord %d outside [%d,%d]", i, coord[i], minCoord, maxCoord)
		}
		if len(neighbor[i]) != numNeigh[i] {
			return nil, fmt.Errorf("lattice: site %d numneigh=%d but neighbor slice has %d entries", i, numNeigh[i], len(neighbor[i]))
		}
		for _, nb := range neighbor[i] {
			if nb == i {
				return nil, fmt.Errorf("lattice: site %d lists itself as a neighbor", i)
			}
		}
		if numNeigh[i] > maxNeigh {
			maxNeigh = numNeigh[i]
		}
	}

	return &Lattice{
		Species:  species,
		Coord:    coord,
		NumNeigh: numNeigh,
		Neighbor: neighbor,
		NLocal:   nlocal,
		MaxNeigh: maxNeigh,
		I2Site:   i2site,
	}, nil
}

// NumSites returns the total number of lattice ids, owned plus ghost.
func (l *Lattice) NumSites() int {
	return len(l.Species)
}

// IsOwned reports whether i is a local (non-ghost) site eligible to be
// the subject of a propensity computation.
func (l *Lattice) IsOwned(i int) bool {
	return i < l.NLocal
}

// Neighbors returns the neighbor list of site i.
func (l *Lattice) Neighbors(i int) []int {
	return l.Neighbor[i]
}

// AddCoord applies a signed delta to coord[i]. This is the only mutation
// path mask.Walker needs; it satisfies mask.CoordSetter.
func (l *Lattice) AddCoord(i int, delta int) {
	l.Coord[i] += delta
}

// NumNeighOf and NeighborAt satisfy mask.NeighborLister without exposing
// the backing slices directly.
func (l *Lattice) NumNeighOf(i int) int {
	return l.NumNeigh[i]
}

func (l *Lattice) NeighborAt(i, idx int) int {
	return l.Neighbor[i][idx]
}

func (l *Lattice) SiteOf(i int) int {
	return l.I2Site[i]
}

// SpeciesAt, SetCoord, and CoordAt satisfy chemistry.CoordAccess — the
// read/write surface update_coord and count_coord need on top of the
// mask walk's neighbor/coord primitives.
func (l *Lattice) SpeciesAt(i int) kmctypes.Species {
	return l.Species[i]
}

func (l *Lattice) SetCoord(i int, v int) {
	l.Coord[i] = v
}

func (l *Lattice) CoordAt(i int) int {
	return l.Coord[i]
}
