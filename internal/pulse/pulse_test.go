package pulse

import (
	"testing"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

func TestPulseCycling(t *testing.T) {
	s := New(1, 1, 1, 1)

	cases := []struct {
		time float64
		want kmctypes.PulseMode
	}{
		{0.5, kmctypes.PulseMetal},
		{1.5, kmctypes.PulsePurge},
		{2.5, kmctypes.PulseCoReactant},
		{3.5, kmctypes.PulsePurge},
		{4.5, kmctypes.PulseMetal},
	}

	for _, c := range cases {
		s.Advance(c.time)
		if s.Mode != c.want {
			t.Fatalf("at t=%g: Mode = %d, want %d (cycle=%g)", c.time, s.Mode, c.want, s.Cycle)
		}
	}
	if s.Cycle != 4 {
		t.Fatalf("Cycle = %g, want 4 after one full wraparound", s.Cycle)
	}
}

func TestPulseHandlesMultiCycleJump(t *testing.T) {
	s := New(1, 1, 1, 1)
	s.Advance(20.5)
	if s.Mode != kmctypes.PulseMetal {
		t.Fatalf("Mode = %d, want PulseMetal after large jump", s.Mode)
	}
	if s.Cycle != 20 {
		t.Fatalf("Cycle = %g, want 20", s.Cycle)
	}
}
