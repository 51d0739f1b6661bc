// Package chemistry abstracts the per-chemistry behavior SPEC_FULL.md
// §9's "Polymorphism over chemistries" design note calls for: the
// species set, the coordination update rules, and the mask templates
// differ between HfO2 and ZnO while the engine skeleton around them does
// not. Concrete chemistries register themselves from an init() function,
// the same way the standard library's image and database/sql packages
// let format/driver implementations register without the core package
// importing them directly.
package chemistry

import (
	"fmt"

	"github.com/openlattice/ald-kmc/internal/mask"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// Mutation describes the post-mutation state update_coord needs to pick
// the right branch: the pre-mutation species at i (elcoord, the
// historical name), the post-mutation species at i, j, and k, the fired
// reaction's arity/which, and a mask.Walker bound to the calling
// engine's lattice.
type Mutation struct {
	ElCoord  kmctypes.Species // species[i] before the mutation
	I, J, K  int              // -1 for J/K when unused
	SpeciesI kmctypes.Species // species[i] after the mutation
	SpeciesJ kmctypes.Species // species[j] after the mutation, if j >= 0
	SpeciesK kmctypes.Species // species[k] after the mutation, if k >= 0
	Style    int
	Which    int
	Mode     kmctypes.PulseMode // current pulse mode, for the pressureOn-gated count_coordO trigger
	Walker   *mask.Walker
	Lattice  CoordAccess
}

// CoordAccess is the minimal lattice surface update_coord/count_coord
// need beyond what mask.Walker already covers.
type CoordAccess interface {
	mask.NeighborLister
	mask.CoordSetter
	SpeciesAt(site int) kmctypes.Species
	SetCoord(site int, v int)
	CoordAt(site int) int
}

// Slot identifies which dispatch-table position internal/config is
// resolving a species name for. HfO2's name table transcribes
// "HfH2X2OH" to HfHX2OH for only three of these slots; see
// hfo2.Chemistry.SpeciesByName.
type Slot int

const (
	SlotUnaryIn Slot = iota
	SlotUnaryOut
	SlotBinaryIn0
	SlotBinaryOut0
	SlotBinaryIn1
	SlotBinaryOut1
	SlotTernaryIn0
	SlotTernaryOut0
	SlotTernaryIn1
	SlotTernaryOut1
)

// Chemistry is the strategy interface selected at Engine construction.
type Chemistry interface {
	// Name identifies the chemistry for logging and the registry.
	Name() string
	// SpeciesByName resolves a closed-set species name for the given
	// dispatch slot, used by internal/config when parsing `event`
	// commands. Most chemistries ignore slot; hfo2 does not.
	SpeciesByName(name string, slot Slot) (kmctypes.Species, bool)
	// NumSpecies returns the size of the closed species set, used by
	// lattice.New's range validation.
	NumSpecies() int
	// UpdateCoord dispatches the chemistry-specific coordination/mask
	// mutation after a reaction has already mutated species in place.
	// At most one of SPEC_FULL.md §4.6's update_coord branches fires.
	UpdateCoord(m Mutation)
	// ExtendsRepropensification reports whether firing this mutation
	// extends re-propensification past the standard 1-/2-hop shell to
	// 3-/4-hop neighbors, and if so from which root. HfO2 extends for
	// its large-precursor transitions; ZnO never extends past 2-hop
	// even though its own mask templates reach 4 hops — see
	// DESIGN.md's open-question ledger.
	ExtendsRepropensification(m Mutation) (root int, extend bool)
}

var registry = map[string]Chemistry{}

// Register adds a chemistry to the registry under its Name(). Intended
// to be called from each concrete chemistry package's init().
func Register(c Chemistry) {
	name := c.Name()
	if _, exists := registry[name]; exists {
		panic(fmt.Sprintf("chemistry: duplicate registration for %q", name))
	}
	registry[name] = c
}

// Lookup returns the chemistry registered under name.
func Lookup(name string) (Chemistry, error) {
	c, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("chemistry: unknown chemistry %q", name)
	}
	return c, nil
}
