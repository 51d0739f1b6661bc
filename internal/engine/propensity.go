package engine

// SitePropensity implements site_propensity(i) from SPEC_FULL.md §4.4:
// clears i's prior events, then considers every unary, binary, and
// ternary reaction in turn, emitting a pool event for each that matches
// species, required coord, and the current pulse gate. Returns the
// summed propensity across all emitted events. A reaction whose
// precomputed rate is exactly zero reaching the pool is a programming
// invariant violation and panics inside eventpool.Add rather than
// returning an error here.
func (e *Engine) SitePropensity(i int) (float64, error) {
	e.Pool.Clear(i)
	var proball float64
	mode := e.Sched.Mode
	species := e.Lat.Species
	coord := e.Lat.Coord[i]

	for m, rec := range e.Cat.Unary {
		if species[i] != rec.Input[0] {
			continue
		}
		if rec.RequiredCoord != 0 && coord != rec.RequiredCoord {
			continue
		}
		if rec.PulseGate != 0 && rec.PulseGate != mode {
			continue
		}
		e.Pool.Add(i, 1, m, rec.Propensity, -1, -1)
		proball += rec.Propensity
	}

	// Binary: site i paired with a distinct second-neighbor k, reached
	// through every first-neighbor j. A (k, propensity) pair already
	// emitted this call is skipped — this suppresses double-counting
	// when k is reachable through more than one j, but deliberately
	// allows two distinct reactions with different propensities against
	// the same k.
	type seenPair struct {
		k int
		p float64
	}
	var seen []seenPair
	for jj := 0; jj < e.Lat.NumNeighOf(i); jj++ {
		j := e.Lat.NeighborAt(i, jj)
		for kk := 0; kk < e.Lat.NumNeighOf(j); kk++ {
			k := e.Lat.NeighborAt(j, kk)
			if k == i {
				continue
			}
			for m, rec := range e.Cat.Binary {
				if species[i] != rec.Input[0] || species[k] != rec.Input[1] {
					continue
				}
				if rec.RequiredCoord != 0 && coord != rec.RequiredCoord {
					continue
				}
				if rec.PulseGate != 0 && rec.PulseGate != mode {
					continue
				}
				dup := false
				for _, sp := range seen {
					if sp.k == k && sp.p == rec.Propensity {
						dup = true
						break
					}
				}
				if dup {
					continue
				}
				seen = append(seen, seenPair{k, rec.Propensity})
				e.Pool.Add(i, 2, m, rec.Propensity, -1, k)
				proball += rec.Propensity
			}
		}
	}

	// Ternary: site i paired with a first-neighbor j, no de-duplication
	// — a site pairs with each neighbor independently. ZnO compares coord
	// strictly here: a RequiredCoord of 0 matches coord 0 only, not any.
	strictTernary := e.Chem.Name() == "zno"
	for jj := 0; jj < e.Lat.NumNeighOf(i); jj++ {
		j := e.Lat.NeighborAt(i, jj)
		for m, rec := range e.Cat.Ternary {
			if species[i] != rec.Input[0] || species[j] != rec.Input[1] {
				continue
			}
			if (strictTernary || rec.RequiredCoord != 0) && coord != rec.RequiredCoord {
				continue
			}
			if rec.PulseGate != 0 && rec.PulseGate != mode {
				continue
			}
			e.Pool.Add(i, 3, m, rec.Propensity, j, -1)
			proball += rec.Propensity
		}
	}

	return proball, nil
}
