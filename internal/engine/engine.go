// Package engine wires the lattice, event pool, reaction catalog,
// chemistry strategy, pulse scheduler, sampler, and rng source together
// into the propensity/executor loop described in SPEC_FULL.md §4.4 and
// §4.8. One Engine drives one simulated domain; SPEC_FULL.md §5 forbids
// sharing engine-internal state across goroutines, so every method here
// assumes single-threaded use.
package engine

import (
	"sync"

	"github.com/openlattice/ald-kmc/internal/catalog"
	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/internal/eventpool"
	"github.com/openlattice/ald-kmc/internal/lattice"
	"github.com/openlattice/ald-kmc/internal/mask"
	"github.com/openlattice/ald-kmc/internal/pulse"
	"github.com/openlattice/ald-kmc/internal/rng"
	"github.com/openlattice/ald-kmc/internal/sampler"
)

// Engine owns exactly the resources SPEC_FULL.md §5 calls worker-local:
// the lattice, the event pool, and the scratch buffers used for
// re-propensification. The catalog, chemistry, pulse scheduler, sampler,
// and rng source are supplied by the caller and may be shared read-only
// (catalog, chemistry) or are themselves external collaborators
// (sampler, rng).
type Engine struct {
	Lat    *lattice.Lattice
	Pool   *eventpool.Pool
	Cat    *catalog.Catalog
	Chem   chemistry.Chemistry
	Sched  *pulse.Scheduler
	Samp   sampler.Sampler
	Src    rng.Source
	Walker *mask.Walker

	// Mu guards Lat/Pool/Samp against concurrent reads from the host
	// API's observability endpoints. The engine's own run loop must
	// hold it for the duration of SitePropensity/SiteEvent; it is not
	// taken internally so the core stays callable without any host
	// layer at all, per SPEC_FULL.md §5.
	Mu sync.Mutex

	echeck []int

	UnaryCount   []int
	BinaryCount  []int
	TernaryCount []int
}

// New builds an Engine. numSlots is the size of the sampler-slot range
// (the range of lattice.I2Site), shared by the mask walker's scratch
// buffers and the engine's own re-propensification echeck array — two
// distinct buffers per package, never simultaneously in use within one
// call, matching SPEC_FULL.md §5's scratch-buffer discipline.
func New(lat *lattice.Lattice, pool *eventpool.Pool, cat *catalog.Catalog, chem chemistry.Chemistry, sched *pulse.Scheduler, samp sampler.Sampler, src rng.Source, numSlots int) *Engine {
	return &Engine{
		Lat:          lat,
		Pool:         pool,
		Cat:          cat,
		Chem:         chem,
		Sched:        sched,
		Samp:         samp,
		Src:          src,
		Walker:       mask.NewWalker(lat, lat, numSlots),
		echeck:       make([]int, numSlots),
		UnaryCount:   make([]int, len(cat.Unary)),
		BinaryCount:  make([]int, len(cat.Binary)),
		TernaryCount: make([]int, len(cat.Ternary)),
	}
}
