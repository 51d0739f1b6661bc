// Package hfo2 implements the HfO2 ALD chemistry: the TDMAH/H2O
// precursor pair, its closed species set, and the coordination/mask
// rules SPEC_FULL.md §4.6 describes as update_coord/count_coord.
package hfo2

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// Species constants preserve the original enum's order exactly, since
// several update_coord/count_coord branches rely on contiguous ranges
// (e.g. HfX2 <= s <= HfH2X2) rather than individual values.
const (
	VACANCY kmctypes.Species = iota
	O
	OH

	HfX4O
	HfX4OH
	HfHX4O
	HfHX4OH
	HfH2X4O
	HfH2X4OH
	HfH3X4O
	HfH3X4OH
	HfH4X4O
	HfH4X4OH

	HfX3O
	HfX3OH
	HfHX3O
	HfHX3OH
	HfH2X3O
	HfH2X3OH
	HfH3X3O
	HfH3X3OH

	HfX2O
	HfX2OH
	HfHX2O
	HfHX2OH
	HfH2X2O
	HfH2X2OH

	HfX2
	HfHX2
	HfH2X2

	HfHX
	HfX
	Hf

	OH2HfX
	OH2HfHX
	OH2Hf
	OHHfHX
	OH2
	Si

	numSpecies
)

// names is built once and used for both SpeciesByName and logging.
var names = map[string]kmctypes.Species{
	"VACANCY": VACANCY,
	"O":       O,
	"OH":      OH,

	"HfX4O":    HfX4O,
	"HfX4OH":   HfX4OH,
	"HfHX4O":   HfHX4O,
	"HfHX4OH":  HfHX4OH,
	"HfH2X4O":  HfH2X4O,
	"HfH2X4OH": HfH2X4OH,
	"HfH3X4O":  HfH3X4O,
	"HfH3X4OH": HfH3X4OH,
	"HfH4X4O":  HfH4X4O,
	"HfH4X4OH": HfH4X4OH,

	"HfX3O":    HfX3O,
	"HfX3OH":   HfX3OH,
	"HfHX3O":   HfHX3O,
	"HfHX3OH":  HfHX3OH,
	"HfH2X3O":  HfH2X3O,
	"HfH2X3OH": HfH2X3OH,
	"HfH3X3O":  HfH3X3O,
	"HfH3X3OH": HfH3X3OH,

	"HfX2O":   HfX2O,
	"HfX2OH":  HfX2OH,
	"HfHX2O":  HfHX2O,
	"HfHX2OH": HfHX2OH,
	"HfH2X2O": HfH2X2O,

	"HfX2":   HfX2,
	"HfHX2":  HfHX2,
	"HfH2X2": HfH2X2,

	"HfHX": HfHX,
	"HfX":  HfX,
	"Hf":   Hf,

	"OH2HfX":  OH2HfX,
	"OH2HfHX": OH2HfHX,
	"OH2Hf":   OH2Hf,
	"OHHfHX":  OHHfHX,
	"OH2":     OH2,
	"Si":      Si,

	"HfH2X2OH": HfH2X2OH,
}

// aliasedSlots is the transcription bug's actual footprint: the input
// parser transcribes "HfH2X2OH" to HfHX2OH only for these three
// dispatch-table positions (dinput[ntwo][0], doutput[ntwo][0],
// voutput[nthree][0]); every other slot — unary in/out, ternary in0, and
// ternary out1 — resolves it to its own distinct constant.
var aliasedSlots = map[chemistry.Slot]bool{
	chemistry.SlotBinaryIn0:   true,
	chemistry.SlotBinaryOut0:  true,
	chemistry.SlotTernaryOut0: true,
}

// SpeciesByName resolves name for the given dispatch slot. "HfH2X2OH" is
// the one species name whose resolution depends on slot; everything
// else is slot-independent.
func (c *Chemistry) SpeciesByName(name string, slot chemistry.Slot) (kmctypes.Species, bool) {
	if name == "HfH2X2OH" && aliasedSlots[slot] {
		return HfHX2OH, true
	}
	s, ok := names[name]
	return s, ok
}

func (c *Chemistry) NumSpecies() int {
	return int(numSpecies)
}
