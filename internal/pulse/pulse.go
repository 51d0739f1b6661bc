// Package pulse implements the ALD pulse/purge cycle scheduler from
// SPEC_FULL.md §4.7: a time-keyed global mode selector cycling through
// metal pulse, purge, co-reactant pulse, purge.
package pulse

import "github.com/openlattice/ald-kmc/pkg/kmctypes"

// Scheduler holds the four phase durations and the engine-wide cycle
// base and current mode as explicit fields, per the design note against
// ambient globals in SPEC_FULL.md §9.
type Scheduler struct {
	T1, T2, T3, T4 float64
	Cycle          float64
	Mode           kmctypes.PulseMode
}

// New returns a scheduler starting in metal-pulse mode at cycle 0,
// matching the source's pressureOn=1, cycle=0 initialization.
func New(t1, t2, t3, t4 float64) *Scheduler {
	return &Scheduler{T1: t1, T2: t2, T3: t3, T4: t4, Cycle: 0, Mode: kmctypes.PulseMetal}
}

// Advance recomputes Mode from the current sim time, advancing Cycle by
// one full period when time has run past the end of the current cycle.
// Exactly the five-branch mapping in SPEC_FULL.md §4.7.
func (s *Scheduler) Advance(time float64) {
	switch {
	case s.Cycle+s.T1 > time:
		s.Mode = kmctypes.PulseMetal
	case time < s.Cycle+s.T1+s.T2:
		s.Mode = kmctypes.PulsePurge
	case time < s.Cycle+s.T1+s.T2+s.T3:
		s.Mode = kmctypes.PulseCoReactant
	case time < s.Cycle+s.T1+s.T2+s.T3+s.T4:
		s.Mode = kmctypes.PulsePurge
	default:
		s.Cycle += s.T1 + s.T2 + s.T3 + s.T4
		s.Advance(time)
	}
}
