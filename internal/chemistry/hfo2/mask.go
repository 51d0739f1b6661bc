package hfo2

import "github.com/openlattice/ald-kmc/internal/mask"

// HfO2's put_mask has exactly two hop shapes, each reused across several
// species triggers: a 4-hop walk whose odd hops are pure pivots and
// whose even hops carry the -10 bias (used for the HfX4O/HfX4OH large
// precursor and, identically shaped, for the six HfX2O-family oxide
// species), and a 3-hop walk whose middle hop is marked but carries no
// delta — an asymmetry preserved from the source rather than
// normalized away, flagged in DESIGN.md.
var largePrecursorTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: false, Delta: 0},
		{Mark: true, Delta: -10},
		{Mark: false, Delta: 0},
		{Mark: true, Delta: -10},
	},
}

var ligandResidueTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: -10},
		{Mark: true, Delta: 0},
		{Mark: true, Delta: -10},
	},
}

var removeLargePrecursorTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: false, Delta: 0},
		{Mark: true, Delta: 10},
		{Mark: false, Delta: 0},
		{Mark: true, Delta: 10},
	},
}

var removeLigandResidueTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 0},
		{Mark: true, Delta: 10},
	},
}
