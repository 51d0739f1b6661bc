package catalog

import (
	"math"
	"testing"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

func TestPrecomputeComputesArrheniusPropensity(t *testing.T) {
	c := New()
	idx := c.AddUnary(1, 2, 1.0, 0.0, 0.0, 2, 0)

	if err := c.Precompute(1.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := c.Unary[idx].Propensity
	if math.Abs(got-1.0) > 1e-12 {
		t.Fatalf("propensity = %g, want 1.0", got)
	}
}

func TestPrecomputeRejectsZeroTemperature(t *testing.T) {
	c := New()
	c.AddUnary(1, 2, 1.0, 0.0, 0.0, 2, 0)
	if err := c.Precompute(0); err == nil {
		t.Fatalf("expected error for zero temperature")
	}
}

func TestPrecomputeWithActivationEnergy(t *testing.T) {
	c := New()
	idx := c.AddBinary(1, 2, 3, 4, 2.0, 0.0, 1.0, 0, kmctypes.PulseMetal)

	if err := c.Precompute(2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 2.0 * math.Exp(-0.5)
	got := c.Binary[idx].Propensity
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("propensity = %g, want %g", got, want)
	}
}
