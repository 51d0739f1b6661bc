package zno

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
)

// UpdateCoord dispatches update_coord's if-else chain for the DEZ/H2O
// chemistry. Unlike HfO2, several branches take a third partner site k
// (water ligands arriving/leaving during dissociation) in addition to i
// and j.
func (c *Chemistry) UpdateCoord(m chemistry.Mutation) {
	l := m.Lattice
	i, j := m.I, m.J

	switch {
	// Adsorption of DEZ, event I
	case (m.ElCoord == O || m.ElCoord == OH || m.ElCoord == OH2) &&
		(m.SpeciesI == ZnX2O || m.SpeciesI == ZnX2OH || m.SpeciesI == ZnX2OH2) && j == -1:
		l.AddCoord(i, 1)
		m.Walker.Apply(i, -1, -1, firstNeighborTemplate)

	// Desorption of DEZ, event I
	case (m.ElCoord == ZnX2O || m.ElCoord == ZnX2OH || m.ElCoord == ZnX2OH2) &&
		(m.SpeciesI == O || m.SpeciesI == OH || m.SpeciesI == OH2) && j == -1:
		l.AddCoord(i, -1)
		m.Walker.Apply(i, -1, -1, removeFirstNeighborTemplate)

	// DEZ with H2O, event II
	case (m.ElCoord == ZnX2O || m.ElCoord == ZnX2OH || m.ElCoord == ZnX2OH2) &&
		(m.SpeciesI == ZnXO || m.SpeciesI == ZnXOH) &&
		(m.SpeciesK == OH2 || m.SpeciesK == OH || m.SpeciesK == O) && j == -1:
		m.Walker.Apply(i, -1, -1, removeFirstNeighborTemplate)
		m.Walker.Apply(i, -1, -1, uniformTemplate)

	// DEZ dissociation, event III
	case (m.ElCoord == ZnX2O || m.ElCoord == ZnX2OH || m.ElCoord == ZnX2OH2) &&
		(m.SpeciesI == ZnXO || m.SpeciesI == ZnXOH) && m.SpeciesJ == ZnX:
		m.Walker.Apply(i, -1, -1, removeFirstNeighborTemplate)
		m.Walker.Apply(i, -1, -1, uniformTemplate)
		l.AddCoord(j, 1)
		m.Walker.Apply(j, -1, -1, uniformTemplate)

	// MEZ with H2O, event I
	case (m.ElCoord == OH2ZnX || m.ElCoord == OHZnX) &&
		(m.SpeciesI == OH2Zn || m.SpeciesI == OHZn || m.SpeciesI == OZn) && j == -1:
		m.Walker.Apply(i, -1, -1, removeUniformTemplate)
		l.AddCoord(i, -1)

	// MEZ with OH
	case (m.ElCoord == OH || m.ElCoord == OH2) && (m.SpeciesI == OH || m.SpeciesI == O) && m.SpeciesJ == Zn:
		m.Walker.Apply(j, -1, -1, removeUniformTemplate)
		l.AddCoord(j, -1)

	// Zn densification
	case m.ElCoord == VACANCY && (m.SpeciesI == ZnX || m.SpeciesI == Zn) &&
		(m.SpeciesJ == O || m.SpeciesJ == OH || m.SpeciesJ == OH2):
		if m.SpeciesI == ZnX {
			m.Walker.Apply(i, j, -1, removeFromPartnerTemplate)
		}
		countCoord(l, j, i)
		if m.SpeciesI == ZnX {
			m.Walker.Apply(i, -1, -1, uniformTemplate)
		}

	// ZnX reverse densification
	case m.ElCoord == ZnX && m.SpeciesI == VACANCY && (m.SpeciesJ == ZnXOH || m.SpeciesJ == ZnXO):
		m.Walker.Apply(i, -1, -1, removeUniformTemplate)
		countCoord(l, i, j)
		m.Walker.Apply(j, -1, -1, uniformTemplate)

	// Zn reverse densification
	case m.ElCoord == Zn && m.SpeciesI == VACANCY && (m.SpeciesJ == ZnOH || m.SpeciesJ == ZnO):
		countCoord(l, j, i)

	// Oxygen densification
	case (m.ElCoord == OH2Zn || m.ElCoord == OHZn || m.ElCoord == OZn) && m.SpeciesI == Zn &&
		(m.SpeciesJ == O || m.SpeciesJ == OH || m.SpeciesJ == OH2):
		countCoord(l, i, j)
		countCoordO(l, j)

	// Oxygen densification (no water ligand in flight)
	case (m.ElCoord == OH2ZnX || m.ElCoord == OHZnX) && m.SpeciesI == ZnX &&
		(m.SpeciesJ == OH || m.SpeciesJ == OH2) && m.K == -1:
		countCoord(l, i, j)

	// Adsorption of H2O
	case (m.ElCoord == Zn || m.ElCoord == ZnX) && (m.SpeciesI == OH2Zn || m.SpeciesI == OH2ZnX) && j == -1:
		l.AddCoord(i, 1)

	// Desorption of H2O
	case (m.ElCoord == OH2Zn || m.ElCoord == OH2ZnX) && (m.SpeciesI == Zn || m.SpeciesI == ZnX) && j == -1:
		l.AddCoord(i, -1)

	case m.ElCoord == ZnX && m.SpeciesI == ZnX && m.SpeciesJ == VACANCY:
		countCoord(l, j, i)

	case m.ElCoord == OH2 && m.SpeciesI == VACANCY && j == -1:
		countCoord(l, i, j)

	// Oxygen reverse densification
	case (m.ElCoord == O || m.ElCoord == OH || m.ElCoord == OH2) && m.SpeciesI == VACANCY &&
		(m.SpeciesJ == OH2ZnX || m.SpeciesJ == OHZnX || m.SpeciesJ == OH2Zn || m.SpeciesJ == OHZn || m.SpeciesJ == OZn):
		countCoord(l, i, j)
		l.AddCoord(j, 1)
	}
}

// countCoord mirrors count_coord(i,j), whose parameter convention (i the
// oxygen-bearing site, j the zinc-bearing site) is not always honored by
// callers — several update_coord branches swap the arguments and say so
// inline ("Reversed from normal ordering"); this package's UpdateCoord
// keeps the same swapped calls rather than normalizing the order.
func countCoord(l chemistry.CoordAccess, i, j int) {
	si, sj := l.SpeciesAt(i), l.SpeciesAt(j)

	switch {
	// densification of ZnXOH, ZnXO -> ZnX
	case (si == O || si == OH || si == OH2) && sj == ZnX:
		l.AddCoord(j, 1)
		for s := 0; s < l.NumNeighOf(j); s++ {
			nn := l.NeighborAt(j, s)
			ns := l.SpeciesAt(nn)
			if ns >= O && ns <= ZnOH {
				l.AddCoord(j, 1)
				if i != nn {
					l.AddCoord(nn, 1)
				}
			}
		}

	// densification of ZnOH, ZnO -> Zn
	case (si == O || si == OH || si == OH2) && sj == Zn:
		for s := 0; s < l.NumNeighOf(j); s++ {
			nn := l.NeighborAt(j, s)
			ns := l.SpeciesAt(nn)
			if ns >= O && ns <= ZnOH {
				l.AddCoord(j, 1)
				if i != nn {
					l.AddCoord(nn, 1)
				}
			}
		}

	// densification of oxygen species
	case (si == ZnX || si == Zn) && (sj == O || sj == OH || sj == OH2):
		for s := 0; s < l.NumNeighOf(j); s++ {
			nn := l.NeighborAt(j, s)
			ns := l.SpeciesAt(nn)
			if ns >= Zn && ns <= OZn {
				l.AddCoord(j, 1)
				if i != nn {
					l.AddCoord(nn, 1)
				}
			}
		}

	// reverse densification on ZnX
	case si == VACANCY && sj >= ZnXO && sj <= ZnOH:
		if sj == ZnXO || sj == ZnXOH {
			l.AddCoord(i, -1)
		}
		for s := 0; s < l.NumNeighOf(i); s++ {
			nn := l.NeighborAt(i, s)
			ns := l.SpeciesAt(nn)
			if ns >= O && ns <= ZnOH {
				l.AddCoord(i, -1)
				if j != nn {
					l.AddCoord(nn, -1)
				}
			}
		}

	// desorption of OH2
	case si == VACANCY && (j == -1 || sj == ZnX):
		for s := 0; s < l.NumNeighOf(i); s++ {
			nn := l.NeighborAt(i, s)
			ns := l.SpeciesAt(nn)
			if ns >= Zn && ns <= OZn {
				l.AddCoord(i, -1)
				if i != nn {
					l.AddCoord(nn, -1)
				}
			}
		}

	// reverse densification of OH2/OH/O
	case si == VACANCY && (sj == OH2ZnX || sj == OH2Zn || sj == OHZnX || sj == OHZn || sj == OZn):
		for s := 0; s < l.NumNeighOf(i); s++ {
			nn := l.NeighborAt(i, s)
			ns := l.SpeciesAt(nn)
			if ns >= Zn && ns <= OZn {
				l.AddCoord(i, -1)
				if i != nn {
					l.AddCoord(nn, -1)
				}
			}
		}
	}
}

// countCoordO mirrors count_coordO: the same 2-hop occupancy-counting
// shell walk as HfO2's, but where HfO2 sets coord=2 outright above the
// 80% oxygen-occupancy threshold, ZnO instead decrements coord by 20 (a
// deactivating bias, applied only while coord is above -20, so a site
// already at or below -20 is not decremented again) — a divergence
// preserved rather than unified, flagged in DESIGN.md.
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
			sp := l.SpeciesAt(ss)
			switch {
			case sp >= O && sp <= ZnOH:
				fullO++
			case sp == VACANCY:
				emptyO++
			}
		}
	}

	total := fullO + emptyO
	if total > 0 && float64(fullO) > 4*float64(total)/5 && l.CoordAt(i) > -20 {
		l.AddCoord(i, -20)
	}
}
