package relalg

import (
	"sort"

	"github.com/surmisekit/kst/core"
)

// Projections is a materialized view of a graph's surmise relations as
// two total adjacency functions. Building it once and querying it
// repeatedly keeps downset enumeration's per-state work O(|items|)
// instead of re-scanning every edge.
type Projections struct {
	prereqs    map[string]map[string]struct{}
	successors map[string]map[string]struct{}
}

// BuildProjections computes prereqs(item) and successors(item) for every
// edge in g. Unknown or source/sink items resolve to the empty set by
// construction of the zero-value map lookup in the accessors below.
func BuildProjections(g *core.Graph) *Projections {
	p := &Projections{
		prereqs:    make(map[string]map[string]struct{}),
		successors: make(map[string]map[string]struct{}),
	}
	for _, e := range g.Edges() {
		if p.prereqs[e.Target] == nil {
			p.prereqs[e.Target] = make(map[string]struct{})
		}
		p.prereqs[e.Target][e.Prerequisite] = struct{}{}

		if p.successors[e.Prerequisite] == nil {
			p.successors[e.Prerequisite] = make(map[string]struct{})
		}
		p.successors[e.Prerequisite][e.Target] = struct{}{}
	}
	return p
}

// PrereqSet returns the prerequisite set of item as a membership set
// (nil, which reads as empty, for an item with no prerequisites). A
// self-loop is left out, so enumeration and path synthesis treat a
// self-looped item as if the loop were absent; Prereqs still lists it.
func (p *Projections) PrereqSet(item string) map[string]struct{} {
	set := p.prereqs[item]
	if _, self := set[item]; !self {
		return set
	}
	out := make(map[string]struct{}, len(set)-1)
	for k := range set {
		if k != item {
			out[k] = struct{}{}
		}
	}
	return out
}

// SuccessorSet returns the successor set of item as a membership set.
func (p *Projections) SuccessorSet(item string) map[string]struct{} {
	return p.successors[item]
}

// Prereqs returns the sorted prerequisite list of item.
func (p *Projections) Prereqs(item string) []string {
	return sortedKeys(p.prereqs[item])
}

// Successors returns the sorted successor list of item.
func (p *Projections) Successors(item string) []string {
	return sortedKeys(p.successors[item])
}

func sortedKeys(m map[string]struct{}) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
