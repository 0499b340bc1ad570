package pathsyn

import (
	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/downset"
	"github.com/surmisekit/kst/relalg"
)

// Context bundles the per-invocation derivations a Scorer needs. Nothing
// here is package-level global state: every caller builds its own
// Context from its own graph.
type Context struct {
	Graph       *core.Graph
	Projections *relalg.Projections
	Index       *downset.Index
	Universe    []string // every item ID, unsorted is fine; scorers don't rely on order
	itemsByID   map[string]core.Item
}

// NewContext derives a Context from a graph, its adjacency projections,
// and the state-membership index produced by downset.Enumerate.
func NewContext(g *core.Graph, proj *relalg.Projections, idx *downset.Index) *Context {
	items := g.Items()
	byID := make(map[string]core.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}
	return &Context{
		Graph:       g,
		Projections: proj,
		Index:       idx,
		Universe:    g.ItemIDs(),
		itemsByID:   byID,
	}
}

// Tags returns the item's tag set, or nil if the item is unknown or has
// none.
func (c *Context) Tags(item string) []string {
	return c.itemsByID[item].Tags
}

// addable returns every item outside state (given as a membership set)
// whose prerequisites are already satisfied by state.
func (c *Context) addable(state map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{})
	for _, id := range c.Universe {
		if _, in := state[id]; in {
			continue
		}
		if subsetOf(c.Projections.PrereqSet(id), state) {
			out[id] = struct{}{}
		}
	}
	return out
}

func subsetOf(need map[string]struct{}, have map[string]struct{}) bool {
	for k := range need {
		if _, ok := have[k]; !ok {
			return false
		}
	}
	return true
}
