package engine

import "fmt"

// Bootstrap computes every owned site's initial propensity and pushes
// the full batch to the sampler in one call, mirroring app_ald.cpp's
// setup_app precompute pass before the solver's own run loop starts
// drawing events. Callers run this exactly once, after all event/pulse
// configuration commands have been parsed and the catalog precomputed.
func (e *Engine) Bootstrap() error {
	siteIDs := make([]int, 0, e.Lat.NLocal)
	props := make([]float64, 0, e.Lat.NLocal)

	for i := 0; i < e.Lat.NLocal; i++ {
		if !e.Lat.IsOwned(i) {
			continue
		}
		p, err := e.SitePropensity(i)
		if err != nil {
			return fmt.Errorf("engine: bootstrap failed at site %d: %w", i, err)
		}
		if slot := e.Lat.SiteOf(i); slot >= 0 {
			siteIDs = append(siteIDs, slot)
			props = append(props, p)
		}
	}

	e.Samp.Update(siteIDs, props)
	return nil
}
