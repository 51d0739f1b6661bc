package main

import (
	"github.com/openlattice/ald-kmc/internal/lattice"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// buildDemoLattice constructs a periodic simple-cubic lattice of side n,
// all sites starting as VACANCY with coordination 0. Real lattice graph
// construction is an external collaborator per SPEC_FULL.md §1; this is
// host-side demo plumbing only, scaled up from the same fixture shape
// internal/engine's tests use for diamondLattice.
func buildDemoLattice(n int, numSpecies int) (*lattice.Lattice, error) {
	total := n * n * n
	species := make([]kmctypes.Species, total)
	coord := make([]int, total)
	numNeigh := make([]int, total)
	neighbor := make([][]int, total)
	i2site := make([]int, total)

	idx := func(x, y, z int) int {
		return ((x%n+n)%n)*n*n + ((y%n+n)%n)*n + (z%n+n)%n
	}

	for x := 0; x < n; x++ {
		for y := 0; y < n; y++ {
			for z := 0; z < n; z++ {
				i := idx(x, y, z)
				neighbor[i] = []int{
					idx(x+1, y, z), idx(x-1, y, z),
					idx(x, y+1, z), idx(x, y-1, z),
					idx(x, y, z+1), idx(x, y, z-1),
				}
				numNeigh[i] = len(neighbor[i])
				i2site[i] = i
			}
		}
	}

	return lattice.New(species, coord, numNeigh, neighbor, total, i2site, numSpecies)
}
