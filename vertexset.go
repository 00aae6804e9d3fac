package treewidth

import "sort"

// VertexSet is a set of input-graph vertex IDs. Cliques and decomposition
// bags are VertexSets. The zero value is not usable; construct with
// NewVertexSet or make.
type VertexSet map[string]struct{}

// NewVertexSet returns a VertexSet containing the given IDs.
func NewVertexSet(ids ...string) VertexSet {
	s := make(VertexSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}

	return s
}

// Add inserts id into the set.
func (s VertexSet) Add(id string) { s[id] = struct{}{} }

// Has reports whether id is in the set.
func (s VertexSet) Has(id string) bool {
	_, ok := s[id]

	return ok
}

// Len returns the cardinality of the set.
func (s VertexSet) Len() int { return len(s) }

// Clone returns an independent copy of the set.
func (s VertexSet) Clone() VertexSet {
	out := make(VertexSet, len(s))
	for id := range s {
		out[id] = struct{}{}
	}

	return out
}

// Sorted returns the members in ascending order. Used wherever iteration
// order must be deterministic.
func (s VertexSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Intersection returns s ∩ t. Iterates the smaller operand.
func (s VertexSet) Intersection(t VertexSet) VertexSet {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(VertexSet)
	for id := range small {
		if large.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// Intersects reports whether s ∩ t is non-empty without materializing it.
func (s VertexSet) Intersects(t VertexSet) bool {
	small, large := s, t
	if len(large) < len(small) {
		small, large = large, small
	}
	for id := range small {
		if large.Has(id) {
			return true
		}
	}

	return false
}

// Union returns s ∪ t.
func (s VertexSet) Union(t VertexSet) VertexSet {
	out := make(VertexSet, len(s)+len(t))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range t {
		out[id] = struct{}{}
	}

	return out
}

// Difference returns s ∖ t.
func (s VertexSet) Difference(t VertexSet) VertexSet {
	out := make(VertexSet)
	for id := range s {
		if !t.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// SymmetricDifference returns (s ∖ t) ∪ (t ∖ s).
func (s VertexSet) SymmetricDifference(t VertexSet) VertexSet {
	out := make(VertexSet)
	for id := range s {
		if !t.Has(id) {
			out[id] = struct{}{}
		}
	}
	for id := range t {
		if !s.Has(id) {
			out[id] = struct{}{}
		}
	}

	return out
}

// ContainsAll reports whether t ⊆ s.
func (s VertexSet) ContainsAll(t VertexSet) bool {
	for id := range t {
		if !s.Has(id) {
			return false
		}
	}

	return true
}
