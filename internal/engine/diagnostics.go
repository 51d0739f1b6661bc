package engine

// ReactionCounts is the per-arity fired-event tally SPEC_FULL.md §10
// calls for as a supplemented diagnostic: the source's scount/dcount/
// vcount arrays, minus the richer per-species DiagAld/DiagAldZno report
// that remains the excluded external diagnostic layer.
type ReactionCounts struct {
	Unary   []int
	Binary  []int
	Ternary []int
}

// Counts returns a copy of the current per-reaction fired-event tallies.
func (e *Engine) Counts() ReactionCounts {
	return ReactionCounts{
		Unary:   append([]int(nil), e.UnaryCount...),
		Binary:  append([]int(nil), e.BinaryCount...),
		Ternary: append([]int(nil), e.TernaryCount...),
	}
}
