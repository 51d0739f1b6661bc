package main

import (
	"encoding/json"
	"fmt"
	"log"
	"math"

	"github.com/openlattice/ald-kmc/internal/api"
	"github.com/openlattice/ald-kmc/internal/engine"
	"github.com/openlattice/ald-kmc/internal/rng"
)

// eventMessage is the payload broadcast over an engine's websocket
// stream after each fired event.
type eventMessage struct {
	Engine string  `json:"engine"`
	Site   int     `json:"site"`
	Time   float64 `json:"time"`
}

// alertMessage is the payload broadcast once, in place of an eventMessage,
// when a run loop recovers from a panic and is about to exit.
type alertMessage struct {
	Engine string `json:"engine"`
	Alert  string `json:"alert"`
}

// runLoop repeatedly draws a site from the sampler and fires it,
// advancing a host-local clock. The sampler's own site-selection
// algorithm and the production solver's time-increment formula remain
// external collaborators per SPEC_FULL.md §1; this loop only needs a
// monotonically increasing clock to exercise SiteEvent and the pulse
// scheduler, so it draws a unit-rate exponential step rather than
// weighting by the sampler's total propensity, which Sampler does not
// expose.
//
// A panic out of SiteEvent (eventpool.ErrZeroPropensity, or an
// inconsistent style/j/k at the executor's default case) is a
// programming invariant violation, not a condition to run through: the
// lock held at panic time is always released first, then the panic is
// turned into one last hub alert before the process exits.
func runLoop(engineID string, e *engine.Engine, hub *api.Hub, clockSrc rng.Source) {
	defer func() {
		if r := recover(); r != nil {
			e.Mu.Unlock()
			alertEngineFailure(engineID, hub, r)
			log.Fatalf("run: engine %q halted on invariant violation: %v", engineID, r)
		}
	}()

	simTime := 0.0
	for {
		e.Mu.Lock()
		site, err := e.Samp.Select()
		if err != nil {
			e.Mu.Unlock()
			log.Printf("run: engine %q has no eligible sites, stopping: %v", engineID, err)
			return
		}

		simTime += -math.Log(clockSrc.Uniform())
		if err := e.SiteEvent(site, simTime); err != nil {
			e.Mu.Unlock()
			log.Printf("run: engine %q site %d event failed: %v", engineID, site, err)
			return
		}
		e.Mu.Unlock()

		if hub != nil {
			if payload, err := json.Marshal(eventMessage{Engine: engineID, Site: site, Time: simTime}); err == nil {
				hub.Broadcast(payload)
			}
		}
	}
}

// alertEngineFailure flushes one alertMessage through hub before the
// process exits, so any connected observer sees why the stream stopped
// rather than just going silent. Swallows its own marshal/broadcast
// failures — there is nothing left to do about them on the way out.
func alertEngineFailure(engineID string, hub *api.Hub, cause interface{}) {
	if hub == nil {
		return
	}
	payload, err := json.Marshal(alertMessage{Engine: engineID, Alert: fmt.Sprint(cause)})
	if err != nil {
		return
	}
	hub.Broadcast(payload)
}
