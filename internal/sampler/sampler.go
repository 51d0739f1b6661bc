// Package sampler defines the external KMC solver contract consumed by
// the engine (SPEC_FULL.md §6) and a minimal reference implementation
// used by tests and the standalone host binary. The solver's own
// site-selection algorithm is explicitly out of scope — this package
// never implements anything resembling sectoring, rejection-free
// selection trees, or parallel domain decomposition.
package sampler

import "fmt"

// Sampler is the interface the engine calls into after recomputing a
// batch of site propensities. Select is never called from inside the
// engine — only the host's main loop calls it, per SPEC_FULL.md §6.
type Sampler interface {
	Update(siteIDs []int, propensities []float64)
	Select() (int, error)
	Propensity(siteID int) float64
}

// Cumulative is a minimal linear-scan cumulative-array sampler. It is
// correct but not the production solver; adequate for driving
// engine tests and a standalone demo run.
type Cumulative struct {
	prop map[int]float64
	rng  func() float64
}

// New returns a Cumulative sampler drawing its selection threshold from
// uniform. Passing math/rand's Float64 (or any other Uniform source) is
// typical; tests can inject a deterministic function.
func New(uniform func() float64) *Cumulative {
	return &Cumulative{prop: make(map[int]float64), rng: uniform}
}

func (c *Cumulative) Update(siteIDs []int, propensities []float64) {
	for idx, site := range siteIDs {
		c.prop[site] = propensities[idx]
	}
}

func (c *Cumulative) Propensity(siteID int) float64 {
	return c.prop[siteID]
}

// Select draws a site proportional to its current propensity. Returns
// an error if the total propensity across all known sites is zero (the
// simulation has run out of eligible events).
func (c *Cumulative) Select() (int, error) {
	var total float64
	for _, p := range c.prop {
		total += p
	}
	if total <= 0 {
		return -1, fmt.Errorf("sampler: total propensity is zero, no eligible site")
	}

	threshold := c.rng() * total
	var cum float64
	for site, p := range c.prop {
		cum += p
		if cum >= threshold {
			return site, nil
		}
	}
	// Floating point edge case: fall back to an arbitrary registered site.
	for site := range c.prop {
		return site, nil
	}
	return -1, fmt.Errorf("sampler: no sites registered")
}
