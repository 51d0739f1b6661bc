// Package eventpool implements the intrusive singly-linked free list of
// pending reaction events described in SPEC_FULL.md §4.3. It is a
// vector-of-structs with an integer Next field, not a pointer graph —
// see DESIGN.md for the grounding.
package eventpool

import (
	"fmt"

	"github.com/openlattice/ald-kmc/pkg/kmctypes"
)

// ErrZeroPropensity is the panic value Add raises when asked to push a
// reaction whose rate precomputed to exactly zero. It implements error
// so a recovering caller can type-assert the recovered value to get at
// the offending site/style/which.
type ErrZeroPropensity struct {
	Site, Style, Which int
}

func (e ErrZeroPropensity) Error() string {
	return fmt.Sprintf("eventpool: zero propensity added for site %d (style=%d which=%d)", e.Site, e.Style, e.Which)
}

// DeltaEvent is the fixed growth chunk size for the event slice.
const DeltaEvent = 100_000

// Pool owns the dense event array, the per-site in-use list heads, and
// the free-list head. All indices are positions into the events slice;
// -1 terminates a list.
type Pool struct {
	events     []kmctypes.Event
	firstEvent []int
	freeEvent  int
	nEvents    int
	maxEvent   int
}

// New allocates a pool with no events and one in-use-list head per site.
func New(nsites int) *Pool {
	p := &Pool{
		firstEvent: make([]int, nsites),
		freeEvent:  -1,
	}
	for i := range p.firstEvent {
		p.firstEvent[i] = -1
	}
	return p
}

// NEvents returns the number of events currently allocated to a site list
// (i.e. not in the free list).
func (p *Pool) NEvents() int {
	return p.nEvents
}

// MaxEvent returns the pool's current capacity.
func (p *Pool) MaxEvent() int {
	return p.maxEvent
}

// Clear walks the in-use list at site i, prepending every node to the
// free list, and resets firstEvent[i] to -1.
func (p *Pool) Clear(i int) {
	index := p.firstEvent[i]
	for index >= 0 {
		next := p.events[index].Next
		p.events[index].Next = p.freeEvent
		p.freeEvent = index
		p.nEvents--
		index = next
	}
	p.firstEvent[i] = -1
}

// grow extends the events slice by DeltaEvent slots and rechains the new
// tail onto the free list, mirroring add_event's realloc-on-exhaustion
// behavior.
func (p *Pool) grow() {
	oldLen := len(p.events)
	newLen := oldLen + DeltaEvent
	grown := make([]kmctypes.Event, newLen)
	copy(grown, p.events)
	p.events = grown
	for m := oldLen; m < newLen; m++ {
		p.events[m].Next = m + 1
	}
	p.events[newLen-1].Next = -1
	p.freeEvent = oldLen
	p.maxEvent = newLen
}

// Add pushes a new event onto site i's in-use list, growing the pool if
// the free list is exhausted. A zero propensity is a fatal programming
// invariant violation — reactions with zero rate must never reach the
// pool — so Add panics rather than returning an error the caller could
// paper over.
func (p *Pool) Add(i, style, which int, propensity float64, j, k int) {
	if propensity == 0 {
		panic(ErrZeroPropensity{Site: i, Style: style, Which: which})
	}
	if p.nEvents == p.maxEvent {
		p.grow()
	}

	slot := p.freeEvent
	next := p.events[slot].Next

	p.events[slot] = kmctypes.Event{
		Style:      style,
		Which:      which,
		JPartner:   j,
		KPartner:   k,
		Propensity: propensity,
		Next:       p.firstEvent[i],
	}
	p.firstEvent[i] = slot
	p.freeEvent = next
	p.nEvents++
}

// ForEach walks the in-use list at site i, calling fn with the pool
// index and a copy of the event. Stops early if fn returns false.
func (p *Pool) ForEach(i int, fn func(idx int, ev kmctypes.Event) bool) {
	index := p.firstEvent[i]
	for index >= 0 {
		if !fn(index, p.events[index]) {
			return
		}
		index = p.events[index].Next
	}
}

// FirstEvent exposes the in-use list head for site i, used by the
// executor's threshold draw.
func (p *Pool) FirstEvent(i int) int {
	return p.firstEvent[i]
}

// At returns the event stored at pool index idx.
func (p *Pool) At(idx int) kmctypes.Event {
	return p.events[idx]
}

// ListLen counts the in-use events at site i — used by property tests
// that check nEvents == Σ len(event_list[i]).
func (p *Pool) ListLen(i int) int {
	n := 0
	p.ForEach(i, func(int, kmctypes.Event) bool { n++; return true })
	return n
}
