package downset

import (
	"fmt"
	"sort"
	"strings"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/relalg"
)

// DefaultMaxStates is the complexity-guard ceiling on enumeration: a
// dense domain's downset can grow exponentially in item count, so
// Enumerate stops and reports truncation rather than running unbounded.
const DefaultMaxStates = 10000

// State is one feasible knowledge state: a downward-closed subset of
// items, identified by its position in the canonical enumeration order.
type State struct {
	ID    string
	Items []string // sorted ascending
}

// ItemSet returns the state's members as an O(1) membership set.
func (s State) ItemSet() map[string]struct{} {
	set := make(map[string]struct{}, len(s.Items))
	for _, it := range s.Items {
		set[it] = struct{}{}
	}
	return set
}

// Contains reports whether item is a member of the state.
func (s State) Contains(item string) bool {
	i := sort.SearchStrings(s.Items, item)
	return i < len(s.Items) && s.Items[i] == item
}

// Result is the output of Enumerate: the canonical sequence of states
// plus whether the complexity ceiling truncated the enumeration.
type Result struct {
	States    []State
	Truncated bool
}

// signature is the canonical dedup/ordering key for a sorted item slice.
func signature(items []string) string {
	return strings.Join(items, ",")
}

// Enumerate produces the set of all knowledge states of g: starting from
// the empty set, repeatedly extending any known state by a single item
// whose prerequisites are already satisfied, until no new state is
// discovered or maxStates states have been accumulated. A maxStates <= 0
// selects DefaultMaxStates.
//
// On a cyclic graph, members of a cycle through two or more items never
// satisfy prereqs(b) ⊆ K for any reachable K, so Enumerate does not
// refuse to run — it simply yields the partial downset induced by the
// acyclic remainder of the graph. A self-loop alone does not block its
// item: Projections.PrereqSet leaves it out.
func Enumerate(g *core.Graph, proj *relalg.Projections, maxStates int) Result {
	if maxStates <= 0 {
		maxStates = DefaultMaxStates
	}

	itemIDs := append([]string(nil), g.ItemIDs()...)
	sort.Strings(itemIDs)

	discovered := map[string][]string{"": {}}
	queue := [][]string{{}}
	truncated := false

	for len(queue) > 0 {
		if len(discovered) >= maxStates {
			truncated = true
			break
		}
		current := queue[0]
		queue = queue[1:]
		currentSet := make(map[string]struct{}, len(current))
		for _, it := range current {
			currentSet[it] = struct{}{}
		}

		for _, id := range itemIDs {
			if _, in := currentSet[id]; in {
				continue
			}
			if !subsetOf(proj.PrereqSet(id), currentSet) {
				continue
			}
			next := insertedSorted(current, id)
			key := signature(next)
			if _, seen := discovered[key]; seen {
				continue
			}
			discovered[key] = next
			queue = append(queue, next)
		}
	}

	states := make([]State, 0, len(discovered))
	for _, items := range discovered {
		states = append(states, State{Items: items})
	}
	sort.Slice(states, func(i, j int) bool {
		if len(states[i].Items) != len(states[j].Items) {
			return len(states[i].Items) < len(states[j].Items)
		}
		return signature(states[i].Items) < signature(states[j].Items)
	})
	for i := range states {
		states[i].ID = fmt.Sprintf("state-%04d", i)
	}

	return Result{States: states, Truncated: truncated}
}

// subsetOf reports whether every element of need is present in have.
// need may be nil (an item with no prerequisites), which is vacuously
// a subset of anything.
func subsetOf(need map[string]struct{}, have map[string]struct{}) bool {
	for k := range need {
		if _, ok := have[k]; !ok {
			return false
		}
	}
	return true
}

// insertedSorted returns a new sorted slice with id inserted into sorted.
func insertedSorted(sorted []string, id string) []string {
	idx := -1
	for i, v := range sorted {
		if v > id {
			idx = i
			break
		}
	}
	out := make([]string, 0, len(sorted)+1)
	if idx == -1 {
		out = append(out, sorted...)
		out = append(out, id)
		return out
	}
	out = append(out, sorted[:idx]...)
	out = append(out, id)
	out = append(out, sorted[idx:]...)
	return out
}

// Index gives O(1) membership queries against a Result's state set,
// used by Fringes and the path synthesizer.
type Index struct {
	signatures map[string]struct{}
}

// NewIndex builds a membership index over states.
func NewIndex(states []State) *Index {
	idx := &Index{signatures: make(map[string]struct{}, len(states))}
	for _, s := range states {
		idx.signatures[signature(s.Items)] = struct{}{}
	}
	return idx
}

// Contains reports whether the sorted item slice names a known state.
func (idx *Index) Contains(items []string) bool {
	_, ok := idx.signatures[signature(items)]
	return ok
}
