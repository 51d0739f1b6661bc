// Package catalog holds the three arity-indexed reaction tables (unary,
// binary, ternary) described in SPEC_FULL.md §4.1, and the Arrhenius
// rate precompute that runs once setup fixes the temperature.
package catalog

import (
	"fmt"
	"log"
	"math"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// Catalog is an append-only set of reaction tables. Records are
// immutable once appended; growth is amortized by Go's slice append,
// replacing the source's explicit grow_reactions realloc calls.
type Catalog struct {
	Unary   []kmctypes.ReactionRecord
	Binary  []kmctypes.ReactionRecord
	Ternary []kmctypes.ReactionRecord

	temperature float64
	precomputed bool
}

func New() *Catalog {
	return &Catalog{}
}

// AddUnary registers a unary (self) reaction and returns its index.
func (c *Catalog) AddUnary(in, out kmctypes.Species, a, n, et float64, requiredCoord int, gate kmctypes.PulseMode) int {
	c.Unary = append(c.Unary, kmctypes.ReactionRecord{
		Arity:         1,
		Input:         [2]kmctypes.Species{in},
		Output:        [2]kmctypes.Species{out},
		A:             a,
		N:             n,
		ET:            et,
		RequiredCoord: requiredCoord,
		PulseGate:     gate,
	})
	return len(c.Unary) - 1
}

// AddBinary registers a binary (site + 2-hop partner) reaction.
func (c *Catalog) AddBinary(in0, out0, in1, out1 kmctypes.Species, a, n, et float64, requiredCoord int, gate kmctypes.PulseMode) int {
	c.Binary = append(c.Binary, kmctypes.ReactionRecord{
		Arity:         2,
		Input:         [2]kmctypes.Species{in0, in1},
		Output:        [2]kmctypes.Species{out0, out1},
		A:             a,
		N:             n,
		ET:            et,
		RequiredCoord: requiredCoord,
		PulseGate:     gate,
	})
	return len(c.Binary) - 1
}

// AddTernary registers a ternary (site + 1-hop partner) reaction.
func (c *Catalog) AddTernary(in0, out0, in1, out1 kmctypes.Species, a, n, et float64, requiredCoord int, gate kmctypes.PulseMode) int {
	c.Ternary = append(c.Ternary, kmctypes.ReactionRecord{
		Arity:         3,
		Input:         [2]kmctypes.Species{in0, in1},
		Output:        [2]kmctypes.Species{out0, out1},
		A:             a,
		N:             n,
		ET:            et,
		RequiredCoord: requiredCoord,
		PulseGate:     gate,
	})
	return len(c.Ternary) - 1
}

// Precompute fixes the temperature and computes each reaction's constant
// propensity p = A * T^N * exp(-ET/T). A zero temperature is fatal at
// setup per SPEC_FULL.md §7; a zero resulting propensity is permitted
// but logged as a warning, since such reactions contribute nothing to
// selection.
func (c *Catalog) Precompute(t float64) error {
	if t == 0 {
		return fmt.Errorf("catalog: temperature is zero, cannot precompute propensities")
	}
	c.temperature = t
	for arity, table := range [][]kmctypes.ReactionRecord{c.Unary, c.Binary, c.Ternary} {
		for i := range table {
			rec := &table[i]
			rec.Propensity = rec.A * math.Pow(t, rec.N) * math.Exp(-rec.ET/t)
			if rec.Propensity == 0 {
				log.Printf("catalog: reaction arity=%d index=%d has zero propensity (A=%g N=%g E/T=%g T=%g)",
					arity+1, i, rec.A, rec.N, rec.ET, t)
			}
		}
	}
	c.precomputed = true
	return nil
}

func (c *Catalog) Precomputed() bool {
	return c.precomputed
}

func (c *Catalog) Temperature() float64 {
	return c.temperature
}
