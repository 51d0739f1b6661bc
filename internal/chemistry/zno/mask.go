package zno

import "github.com/openlattice/ald-kmc/internal/mask"

// ZnO's put_mask has two hop shapes, both rooted at the mutated site and
// all four hops marked (unlike HfO2's pivot-only odd hops): a
// first-neighbor-weighted template for the DEZ precursor itself (the
// immediate Zn neighbor is biased by -20, deeper hops by -10), and a
// uniform -10 template reused by both the ZnXO/ZnXOH densified-ligand
// species and bare ZnX.
var firstNeighborTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: -20},
		{Mark: true, Delta: -10},
		{Mark: true, Delta: -10},
		{Mark: true, Delta: -10},
	},
}

var uniformTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: -10},
		{Mark: true, Delta: -10},
		{Mark: true, Delta: -10},
		{Mark: true, Delta: -10},
	},
}

var removeFirstNeighborTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: 20},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
	},
}

var removeUniformTemplate = mask.Template{
	Root: mask.RootSelf,
	Hops: []mask.HopRule{
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
	},
}

// removeFromPartnerTemplate is remove_mask's Zn-densification special
// case: the walk roots at the oxygen partner rather than the ZnX site
// itself, since it is the partner's original adsorption mask (cast over
// its own Zn neighborhood) being undone, not a mask the ZnX site ever
// carried on its own. The source guards against re-touching the partner
// at hop2 via an explicit kk != j check; here that guard is redundant —
// the shared echeck discipline already skips the root once marked — so
// it is dropped rather than threaded through as a skipSite.
var removeFromPartnerTemplate = mask.Template{
	Root: mask.RootPartner,
	Hops: []mask.HopRule{
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
		{Mark: true, Delta: 10},
	},
}
