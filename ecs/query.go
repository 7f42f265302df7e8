package ecs

// intersect returns a set holding the entities present in both a and b.
func intersect(a, b *SparseSet) *SparseSet {
	out := &SparseSet{}
	if a == nil || b == nil {
		return out
	}
	// iterate smaller set
	if a.Len() > b.Len() {
		a, b = b, a
	}
	for _, e := range a.Entities() {
		if b.Has(e) {
			out.Set(e, struct{}{})
		}
	}
	return out
}
