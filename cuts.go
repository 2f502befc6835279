package binarypuzzle

// CutSet collects the assignments excluded so far during one enumeration
// run. It is append-only, owned by a single run, and not safe for concurrent
// use.
type CutSet struct {
	sols []*Solution
}

// NewCutSet returns an empty cut set.
func NewCutSet() *CutSet {
	return &CutSet{}
}

// Reject excludes s from future oracle calls. It reports whether s was not
// already excluded.
func (cs *CutSet) Reject(s *Solution) bool {
	for _, seen := range cs.sols {
		if seen.Equal(s) {
			return false
		}
	}
	cs.sols = append(cs.sols, s)
	return true
}

// Cuts returns the excluded assignments in rejection order. The returned
// slice is shared; callers must not modify it.
func (cs *CutSet) Cuts() []*Solution {
	return cs.sols
}

// Len returns the number of excluded assignments.
func (cs *CutSet) Len() int {
	return len(cs.sols)
}
