package engine

import (
	"fmt"

	"github.com/openlattice/ald-kmc/internal/chemistry"
	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// SiteEvent implements site_event(i, rng) from SPEC_FULL.md §4.8. time is
// the sim clock value after this event's waiting time has already been
// applied by the external sampler/solver loop — the same way the
// source's site_event reads its own `time` member, already advanced by
// the surrounding SPPARKS solver before the call.
func (e *Engine) SiteEvent(i int, time float64) error {
	elcoord := e.Lat.Species[i]
	isite := e.Lat.SiteOf(i)
	threshold := e.Src.Uniform() * e.Samp.Propensity(isite)

	idx := e.Pool.FirstEvent(i)
	if idx < 0 {
		return fmt.Errorf("engine: site %d has no pending events to choose from", i)
	}
	var cum float64
	var ev kmctypes.Event
	for {
		ev = e.Pool.At(idx)
		cum += ev.Propensity
		if cum >= threshold {
			break
		}
		next := ev.Next
		if next < 0 {
			break // floating-point edge case: fall through to the last event
		}
		idx = next
	}

	j, k := ev.JPartner, ev.KPartner
	switch {
	case ev.Style == 1 && j == -1 && k == -1:
		rec := e.Cat.Unary[ev.Which]
		e.Lat.Species[i] = rec.Output[0]
		e.UnaryCount[ev.Which]++
	case ev.Style == 2 && j == -1:
		rec := e.Cat.Binary[ev.Which]
		e.Lat.Species[i] = rec.Output[0]
		e.Lat.Species[k] = rec.Output[1]
		e.BinaryCount[ev.Which]++
	case ev.Style == 3 && k == -1:
		rec := e.Cat.Ternary[ev.Which]
		e.Lat.Species[i] = rec.Output[0]
		e.Lat.Species[j] = rec.Output[1]
		e.TernaryCount[ev.Which]++
	default:
		panic(fmt.Errorf("engine: illegal execution event at site %d (style=%d j=%d k=%d)", i, ev.Style, j, k))
	}

	var speciesJ, speciesK kmctypes.Species
	if j >= 0 {
		speciesJ = e.Lat.Species[j]
	}
	if k >= 0 {
		speciesK = e.Lat.Species[k]
	}

	mutation := chemistry.Mutation{
		ElCoord:  elcoord,
		I:        i,
		J:        j,
		K:        k,
		SpeciesI: e.Lat.Species[i],
		SpeciesJ: speciesJ,
		SpeciesK: speciesK,
		Style:    ev.Style,
		Which:    ev.Which,
		Mode:     e.Sched.Mode,
		Walker:   e.Walker,
		Lattice:  e.Lat,
	}
	e.Chem.UpdateCoord(mutation)

	e.Sched.Advance(time)

	return e.repropensify(i, j, k, mutation)
}

// repropensify recomputes site_propensity for every site whose event
// list may have changed (SPEC_FULL.md §4.8 step 7) and pushes the whole
// batch to the sampler in one call (step 8). echeck suppresses repeat
// visits within this one call and is fully cleared before returning.
func (e *Engine) repropensify(i, j, k int, m chemistry.Mutation) error {
	var touched []int
	mark := func(site int) bool {
		slot := e.Lat.SiteOf(site)
		if slot < 0 || e.echeck[slot] != 0 {
			return false
		}
		e.echeck[slot] = 1
		touched = append(touched, site)
		return true
	}

	bfs := func(root int, depth int) {
		mark(root)
		frontier := []int{root}
		for h := 0; h < depth; h++ {
			var next []int
			for _, s := range frontier {
				for n := 0; n < e.Lat.NumNeighOf(s); n++ {
					nb := e.Lat.NeighborAt(s, n)
					next = append(next, nb)
					mark(nb)
				}
			}
			frontier = next
		}
	}

	bfs(i, 2)
	if j >= 0 {
		bfs(j, 2)
	}
	if k >= 0 {
		bfs(k, 2)
	}
	if root, extend := e.Chem.ExtendsRepropensification(m); extend {
		bfs(root, 4)
	}

	siteIDs := make([]int, 0, len(touched))
	props := make([]float64, 0, len(touched))
	for _, s := range touched {
		if e.Lat.IsOwned(s) {
			p, err := e.SitePropensity(s)
			if err != nil {
				for _, t := range touched {
					if slot := e.Lat.SiteOf(t); slot >= 0 {
						e.echeck[slot] = 0
					}
				}
				return err
			}
			siteIDs = append(siteIDs, e.Lat.SiteOf(s))
			props = append(props, p)
		}
	}
	e.Samp.Update(siteIDs, props)

	for _, s := range touched {
		if slot := e.Lat.SiteOf(s); slot >= 0 {
			e.echeck[slot] = 0
		}
	}
	return nil
}
