package hfo2

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// UpdateCoord dispatches update_coord's ~15-branch if-else chain. m.ElCoord
// is the species i held before the reaction mutated it in place; m.SpeciesI/
// J are what i/j hold now. At most one branch fires per call, mirroring the
// source's single linear if-else-if chain; when none matches, coord is left
// unchanged.
func (c *Chemistry) UpdateCoord(m chemistry.Mutation) {
	l := m.Lattice
	i, j := m.I, m.J

	switch {
	case (m.ElCoord == O || m.ElCoord == OH) && (m.SpeciesI == HfX4O || m.SpeciesI == HfX4OH):
		l.AddCoord(i, 1)
		m.Walker.Apply(i, -1, -1, largePrecursorTemplate)

	case (m.ElCoord == HfX4O || m.ElCoord == HfX4OH) && (m.SpeciesI == O || m.SpeciesI == OH):
		l.AddCoord(i, -1)
		m.Walker.Apply(i, -1, -1, removeLargePrecursorTemplate)

	case (m.ElCoord == HfX2 || m.ElCoord == HfHX2 || m.ElCoord == HfH2X2) &&
		(m.SpeciesI == HfX || m.SpeciesI == HfHX || m.SpeciesI == Hf):
		m.Walker.Apply(i, -1, -1, removeLigandResidueTemplate)
		l.AddCoord(i, -1)
		if m.SpeciesI == Hf {
			l.AddCoord(i, -1)
		}

	case (m.ElCoord == HfX || m.ElCoord == HfHX) &&
		(m.SpeciesI == HfHX2 || m.SpeciesI == HfX2 || m.SpeciesI == HfH2X2):
		l.AddCoord(i, 1)
		m.Walker.Apply(i, -1, -1, ligandResidueTemplate)

	case m.ElCoord == HfX2O && m.SpeciesI == O && m.SpeciesJ == HfX2,
		m.ElCoord == HfHX2O && m.SpeciesI == O && m.SpeciesJ == HfHX2,
		m.ElCoord == HfX2OH && m.SpeciesI == OH && m.SpeciesJ == HfX2,
		m.ElCoord == HfHX2OH && m.SpeciesI == OH && m.SpeciesJ == HfHX2,
		m.ElCoord == HfH2X2O && m.SpeciesI == O && m.SpeciesJ == HfH2X2,
		m.ElCoord == HfH2X2OH && m.SpeciesI == OH && m.SpeciesJ == HfH2X2,
		m.ElCoord == HfH4X4O && m.SpeciesI == O && m.SpeciesJ == HfH2X2,
		m.ElCoord == HfH4X4OH && m.SpeciesI == OH && m.SpeciesJ == HfH2X2:
		m.Walker.Apply(i, -1, -1, removeLargePrecursorTemplate)
		countCoord(l, i, j)
		m.Walker.Apply(j, -1, -1, ligandResidueTemplate)

	case (m.ElCoord >= HfX2 && m.ElCoord <= HfH2X2) && m.SpeciesI == VACANCY &&
		(m.SpeciesJ >= HfX2O && m.SpeciesJ <= HfH2X2OH):
		m.Walker.Apply(i, -1, -1, removeLigandResidueTemplate)
		countCoord(l, i, j)
		m.Walker.Apply(j, -1, -1, largePrecursorTemplate)

	case m.ElCoord == HfHX && m.SpeciesI == Hf:
		l.AddCoord(i, -1)

	case m.ElCoord == Hf && m.SpeciesI == HfHX:
		l.AddCoord(i, 1)

	case (m.ElCoord == OH2HfHX || m.ElCoord == OH2HfX) && m.SpeciesI == OH2Hf:
		l.AddCoord(i, -1)

	// densification of the water molecule
	case (m.ElCoord >= OH2HfX && m.ElCoord <= OHHfHX) &&
		(m.SpeciesI >= HfHX && m.SpeciesI <= Hf) && j >= 0 && m.SpeciesJ == OH2:
		if (m.ElCoord == OH2HfX || m.ElCoord == OH2HfHX) && m.SpeciesI == Hf && m.SpeciesJ == OH2 {
			l.AddCoord(i, -1)
		}
		countCoord(l, i, j)

	// the reverse of water densification
	case m.ElCoord == OH2 && m.SpeciesI == VACANCY && j >= 0 &&
		(m.SpeciesJ >= OH2HfX && m.SpeciesJ <= OH2Hf):
		countCoord(l, i, j)

	case (m.SpeciesI == OH || m.SpeciesI == O) && l.CoordAt(i) == 1 && m.Mode == kmctypes.PulseMetal:
		countCoordO(l, i)
	}
}

// countCoord mirrors count_coord(i,j)'s four densification branches,
// dispatched on the species i/j hold after the mutation.
func countCoord(l chemistry.CoordAccess, i, j int) {
	si, sj := l.SpeciesAt(i), l.SpeciesAt(j)

	switch {
	case (si == O || si == OH) && sj >= HfX2 && sj <= HfH2X2:
		l.AddCoord(j, 2)
		for s := 0; s < l.NumNeighOf(j); s++ {
			nn := l.NeighborAt(j, s)
			ns := l.SpeciesAt(nn)
			if ns == O || ns == OH || ns == OH2 {
				l.AddCoord(j, 1)
				if i != nn {
					l.AddCoord(nn, 1)
				}
			}
		}

	case si >= HfHX && si <= Hf && sj == OH2:
		for s := 0; s < l.NumNeighOf(j); s++ {
			nn := l.NeighborAt(j, s)
			ns := l.SpeciesAt(nn)
			if ns >= HfX2 && ns <= OHHfHX {
				l.AddCoord(j, 1)
				l.AddCoord(nn, 1)
			}
		}

	case sj >= OH2HfX && sj <= OH2Hf && si == VACANCY:
		for s := 0; s < l.NumNeighOf(i); s++ {
			nn := l.NeighborAt(i, s)
			ns := l.SpeciesAt(nn)
			if ns >= HfX2 && ns <= OHHfHX {
				l.AddCoord(i, -1)
				l.AddCoord(nn, -1)
			}
		}

	case si == VACANCY && sj >= HfX2O && sj <= HfH2X2OH:
		l.AddCoord(i, -3)
		for s := 0; s < l.NumNeighOf(i); s++ {
			nn := l.NeighborAt(i, s)
			ns := l.SpeciesAt(nn)
			if ns == O || ns == OH || ns == OH2 {
				l.AddCoord(i, -1)
				if j != nn {
					l.AddCoord(nn, -1)
				}
			}
		}
	}
}

// countCoordO mirrors count_coordO: a 2-hop shell walk counting
// oxygen-bearing neighbors (fullO) against vacant ones (emptyO); if
// oxygen occupancy exceeds 80%, the site is marked fully coordinated
// (coord=2) ahead of an adsorption attempt, preventing a spurious
// adsorption event on a low-coordination sublayer oxygen. Uses its own
// visited set rather than the shared Walker scratch buffers since this
// walk counts species, not coord deltas.
func countCoordO(l chemistry.CoordAccess, i int) {
	visited := make(map[int]bool)
	var fullO, emptyO int

	for m := 0; m < l.NumNeighOf(i); m++ {
		mm := l.NeighborAt(i, m)
		for s := 0; s < l.NumNeighOf(mm); s++ {
			ss := l.NeighborAt(mm, s)
			if ss == i || visited[ss] {
				continue
			}
			visited[ss] = true
			switch l.SpeciesAt(ss) {
			case O, OH, OH2:
				fullO++
			case VACANCY:
				emptyO++
			}
		}
	}

	total := fullO + emptyO
	if total > 0 && float64(fullO) > 4*float64(total)/5 {
		l.SetCoord(i, 2)
	}
}
