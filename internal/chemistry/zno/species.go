// Package zno implements the DEZ/H2O ALD chemistry: diethylzinc
// adsorption/dissociation/densification and the water co-reactant pulse,
// mirroring internal/chemistry/hfo2's shape for the divergent ZnO rules.
package zno

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// Species constants preserve the original enum's order; several
// count_coord/count_coordO checks rely on contiguous ranges (e.g.
// O <= s <= ZnOH for "oxygen-bearing", Zn <= s <= OZn for "zinc-bearing").
const (
	VACANCY kmctypes.Species = iota
	O
	OH

	OH2
	ZnX2O
	ZnX2OH
	ZnX2OH2

	ZnXO
	ZnXOH
	ZnO
	ZnOH
	Zn
	ZnX

	OH2Zn
	OH2ZnX
	OHZn
	OHZnX
	OZn

	numSpecies
)

var names = map[string]kmctypes.Species{
	"VACANCY": VACANCY,
	"O":       O,
	"OH":      OH,

	"OH2":     OH2,
	"ZnX2O":   ZnX2O,
	"ZnX2OH":  ZnX2OH,
	"ZnX2OH2": ZnX2OH2,

	"ZnXO":  ZnXO,
	"ZnXOH": ZnXOH,
	"ZnO":   ZnO,
	"ZnOH":  ZnOH,
	"Zn":    Zn,
	"ZnX":   ZnX,

	"OH2Zn":  OH2Zn,
	"OH2ZnX": OH2ZnX,
	"OHZn":   OHZn,
	"OHZnX":  OHZnX,
	"OZn":    OZn,
}

// SpeciesByName resolves name unconditionally; ZnO has no slot-dependent
// transcription quirk, so slot is unused.
func (c *Chemistry) SpeciesByName(name string, slot chemistry.Slot) (kmctypes.Species, bool) {
	s, ok := names[name]
	return s, ok
}

func (c *Chemistry) NumSpecies() int {
	return int(numSpecies)
}
