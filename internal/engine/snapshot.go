package engine

import "github.com/openlattice/ald-kmc/pkg/kmctypes"

// Snapshot returns every owned site's current species, coord, and
// last-known sampler propensity. It is read-only plumbing for the host
// API's observability endpoints (SPEC_FULL.md §6) — nothing in the
// engine core calls it. Callers sharing an Engine across goroutines
// must hold Mu for the duration of the call.
func (e *Engine) Snapshot() []kmctypes.SiteSnapshot {
	out := make([]kmctypes.SiteSnapshot, 0, e.Lat.NLocal)
	for i := 0; i < e.Lat.NLocal; i++ {
		out = append(out, e.siteSnapshot(i))
	}
	return out
}

// SiteState returns a single owned site's snapshot, or false if i is not
// a valid owned site id.
func (e *Engine) SiteState(i int) (kmctypes.SiteSnapshot, bool) {
	if i < 0 || i >= e.Lat.NLocal {
		return kmctypes.SiteSnapshot{}, false
	}
	return e.siteSnapshot(i), true
}

func (e *Engine) siteSnapshot(i int) kmctypes.SiteSnapshot {
	var p float64
	if slot := e.Lat.SiteOf(i); slot >= 0 {
		p = e.Samp.Propensity(slot)
	}
	return kmctypes.SiteSnapshot{
		Site:       i,
		Species:    e.Lat.Species[i],
		Coord:      e.Lat.Coord[i],
		Propensity: p,
	}
}
