package eventpool

import (
	"testing"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

func TestAddAndClear(t *testing.T) {
	p := New(3)
	p.Add(0, 1, 0, 1.5, -1, -1)
	p.Add(0, 3, 1, 0.5, 2, -1)
	if p.NEvents() != 2 {
		t.Fatalf("NEvents() = %d, want 2", p.NEvents())
	}
	if p.ListLen(0) != 2 {
		t.Fatalf("ListLen(0) = %d, want 2", p.ListLen(0))
	}

	p.Clear(0)
	if p.NEvents() != 0 {
		t.Fatalf("NEvents() after Clear = %d, want 0", p.NEvents())
	}
	if p.FirstEvent(0) != -1 {
		t.Fatalf("FirstEvent(0) after Clear = %d, want -1", p.FirstEvent(0))
	}
}

func TestAddPanicsOnZeroPropensity(t *testing.T) {
	p := New(1)
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic for zero propensity")
		}
		if _, ok := r.(ErrZeroPropensity); !ok {
			t.Fatalf("recovered %v (%T), want ErrZeroPropensity", r, r)
		}
	}()
	p.Add(0, 1, 0, 0, -1, -1)
}

func TestGrowthAcrossDeltaEventPreservesContents(t *testing.T) {
	p := New(1)
	// Force growth by adding more than one chunk's worth of events.
	total := DeltaEvent + 5
	for n := 0; n < total; n++ {
		p.Add(0, 1, n, 1.0, -1, -1)
	}
	if p.NEvents() != total {
		t.Fatalf("NEvents() = %d, want %d", p.NEvents(), total)
	}
	if p.ListLen(0) != total {
		t.Fatalf("ListLen(0) = %d, want %d", p.ListLen(0), total)
	}
	seen := make(map[int]bool)
	p.ForEach(0, func(_ int, ev kmctypes.Event) bool {
		seen[ev.Which] = true
		return true
	})
	if len(seen) != total {
		t.Fatalf("distinct Which values after growth = %d, want %d", len(seen), total)
	}
}
