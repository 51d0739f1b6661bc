// Package mask implements the additive coord-bias masking system from
// SPEC_FULL.md §4.5: a shared multi-hop shell walk that both chemistries'
// put_mask/remove_mask routines drive with their own per-hop templates.
//
// The two chemistries' original mask walks share one shape — breadth
// expansion hop by hop from a pivot site, with the shared echeck scratch
// array suppressing repeat visits — but disagree on which hops mutate
// coord and by how much. Walker.Apply factors out the shape; each chemistry
// supplies the disagreement as a Template.
package mask

// HopRule describes what happens to a site discovered at a given hop
// distance from the walk's root. Mark controls whether the site is
// recorded in echeck (and therefore can't be revisited later in the same
// walk); Delta is the signed coord adjustment applied when Mark is true.
// A hop that is Mark=false, Delta=0 is a pure traversal pivot — it is
// walked through but never recorded or mutated, exactly like HfO2's
// hop1/hop3 in the large-precursor template.
type HopRule struct {
	Mark  bool
	Delta int
}

// Template is an ordered list of hop rules, root-relative. len(Hops) is
// the walk's depth (4 for the large-precursor/uniform-ZnO templates, 3
// for HfO2's asymmetric ligand-residue template).
type Template struct {
	// Root selects which site the walk starts from: RootSelf is the
	// mutation-site i itself; RootPartner is the partner site supplied
	// by the caller (ZnO's j-rooted remove_mask variant).
	Root RootKind
	Hops []HopRule
	// SkipRootEcheck clears the root's echeck entry once the walk is
	// done. Apply clears every entry it set before returning in any
	// case, so the flag does not change which sites are marked or
	// mutated; no template in this module sets it.
	SkipRootEcheck bool
}

type RootKind int

const (
	RootSelf RootKind = iota
	RootPartner
)

// NeighborLister is the read side of the lattice contract Walker.Apply
// needs: neighbor counts/entries and the lattice-id -> sampler-slot map.
type NeighborLister interface {
	NumNeighOf(site int) int
	NeighborAt(site, idx int) int
	SiteOf(site int) int
}

// CoordSetter is the single mutation path Walker.Apply uses — coord changes
// never happen any other way per SPEC_FULL.md §4.6.
type CoordSetter interface {
	AddCoord(site int, delta int)
}

// Walker owns the echeck/esites scratch buffers, sized once at
// construction and scoped to one Apply call at a time, per the
// never-simultaneously-in-use discipline in SPEC_FULL.md §5.
type Walker struct {
	lister NeighborLister
	coord  CoordSetter
	echeck []int
	esites []int
}

// NewWalker allocates scratch buffers sized by the number of sampler
// slots (i.e. the range of SiteOf).
func NewWalker(lister NeighborLister, coord CoordSetter, numSlots int) *Walker {
	return &Walker{
		lister: lister,
		coord:  coord,
		echeck: make([]int, numSlots),
	}
}

// Apply runs tmpl rooted at i (or at partner, if tmpl.Root is
// RootPartner). skipSite, if >= 0, is a site the walk excludes
// entirely: it is never marked or mutated, and the walk does not pass
// through it to reach sites beyond it. The chemistry packages pass -1.
//
// Apply leaves echeck fully cleared before returning, regardless of how
// many hops were visited — violating that discipline is a silent
// correctness bug per SPEC_FULL.md §4.5.
func (w *Walker) Apply(i, partner, skipSite int, tmpl Template) {
	root := i
	if tmpl.Root == RootPartner {
		root = partner
	}

	nsites := 0
	rootSlot := w.lister.SiteOf(root)
	w.esites = append(w.esites[:0], rootSlot)
	w.echeck[rootSlot] = 1
	nsites++

	frontier := []int{root}
	for hop, rule := range tmpl.Hops {
		next := make([]int, 0, len(frontier)*4)
		for _, site := range frontier {
			for n := 0; n < w.lister.NumNeighOf(site); n++ {
				nb := w.lister.NeighborAt(site, n)
				if nb == skipSite {
					continue
				}
				next = append(next, nb)
				slot := w.lister.SiteOf(nb)
				if slot < 0 || w.echeck[slot] != 0 {
					continue
				}
				if rule.Mark {
					if rule.Delta != 0 {
						w.coord.AddCoord(nb, rule.Delta)
					}
					w.esites = append(w.esites, slot)
					w.echeck[slot] = 1
					nsites++
				}
			}
		}
		frontier = next
		_ = hop
	}

	if tmpl.SkipRootEcheck {
		w.echeck[rootSlot] = 0
	}

	for _, slot := range w.esites {
		w.echeck[slot] = 0
	}
}
