package zno

import (
	"github.com/openlattice/ald-kmc/internal/chemistry"
)

// Chemistry implements chemistry.Chemistry for the DEZ/H2O ZnO process.
// Like hfo2.Chemistry it is stateless and safe to share across engines.
type Chemistry struct{}

func init() {
	chemistry.Register(&Chemistry{})
}

func (c *Chemistry) Name() string {
	return "zno"
}

// ExtendsRepropensification always reports no extension. Unlike HfO2,
// this chemistry's re-propensification walk never reaches past the
// standard 2-hop shell for any reaction style — even though its own
// put_mask/remove_mask templates bias coord out to 4 hops. A site
// sitting beyond the 2-hop shell but inside a 4-hop mask region can
// therefore have its propensity fall stale until some other nearby
// event's walk happens to cover it. This is preserved as a faithful
// asymmetry rather than "fixed" to extend symmetrically with HfO2.
func (c *Chemistry) ExtendsRepropensification(m chemistry.Mutation) (int, bool) {
	return -1, false
}
