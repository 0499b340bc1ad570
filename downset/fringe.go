package downset

import "sort"

// Fringes computes the inner and outer fringe of state against idx, the
// membership index of every enumerated state, and universe, the full
// item set: the inner fringe is every member whose removal still yields
// a known state; the outer fringe is every non-member whose addition
// yields a known state. Both results are sorted ascending and the work
// is O(|state| + |universe \ state|) membership queries.
func Fringes(state State, idx *Index, universe []string) (inner, outer []string) {
	stateSet := state.ItemSet()

	for _, b := range state.Items {
		candidate := removeSorted(state.Items, b)
		if idx.Contains(candidate) {
			inner = append(inner, b)
		}
	}

	sortedUniverse := append([]string(nil), universe...)
	sort.Strings(sortedUniverse)
	for _, b := range sortedUniverse {
		if _, in := stateSet[b]; in {
			continue
		}
		candidate := insertedSorted(state.Items, b)
		if idx.Contains(candidate) {
			outer = append(outer, b)
		}
	}

	return inner, outer
}

// removeSorted returns a new sorted slice with the first occurrence of
// id removed.
func removeSorted(sorted []string, id string) []string {
	out := make([]string, 0, len(sorted))
	removed := false
	for _, v := range sorted {
		if !removed && v == id {
			removed = true
			continue
		}
		out = append(out, v)
	}
	return out
}
