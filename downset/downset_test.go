package downset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/downset"
	"github.com/surmisekit/kst/relalg"
)

func mustGraph(t *testing.T, items []string, edges [][2]string) *core.Graph {
	t.Helper()
	doc := core.Document{Metadata: map[string]interface{}{}}
	for _, id := range items {
		doc.Items = append(doc.Items, core.Item{ID: id})
	}
	for _, e := range edges {
		doc.SurmiseRelations = append(doc.SurmiseRelations, core.SurmiseRelation{Prerequisite: e[0], Target: e[1]})
	}
	g, err := core.FromDocument(doc)
	require.NoError(t, err)
	return g
}

func stateItemSets(t *testing.T, res downset.Result) [][]string {
	t.Helper()
	out := make([][]string, len(res.States))
	for i, s := range res.States {
		out[i] = s.Items
	}
	return out
}

func TestEnumerate_ChainGraph(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 0)

	assert.False(t, res.Truncated)
	assert.Equal(t, [][]string{
		{},
		{"A"},
		{"A", "B"},
		{"A", "B", "C"},
	}, stateItemSets(t, res))
	assert.Equal(t, "state-0000", res.States[0].ID)
	assert.Equal(t, "state-0003", res.States[3].ID)
}

func TestEnumerate_DiamondGraph(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 0)

	assert.False(t, res.Truncated)
	assert.Equal(t, [][]string{
		{},
		{"A"},
		{"A", "B"},
		{"A", "C"},
		{"A", "B", "C"},
		{"A", "B", "C", "D"},
	}, stateItemSets(t, res))
}

func TestEnumerate_RespectsMaxStates(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 2)
	assert.True(t, res.Truncated)
	assert.Len(t, res.States, 2)
}

func TestEnumerate_AlwaysIncludesEmptySet(t *testing.T) {
	g := mustGraph(t, []string{"A", "B"}, [][2]string{{"A", "B"}})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 0)
	assert.Empty(t, res.States[0].Items)
}

func TestFringes_ChainGraph(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 0)
	idx := downset.NewIndex(res.States)
	universe := g.ItemIDs()

	cases := []struct {
		state               []string
		wantInner, wantOuter []string
	}{
		{[]string{}, nil, []string{"A"}},
		{[]string{"A"}, []string{"A"}, []string{"B"}},
		{[]string{"A", "B"}, []string{"B"}, []string{"C"}},
		{[]string{"A", "B", "C"}, []string{"C"}, nil},
	}
	for _, c := range cases {
		var s downset.State
		for _, st := range res.States {
			if equalItems(st.Items, c.state) {
				s = st
			}
		}
		inner, outer := downset.Fringes(s, idx, universe)
		assert.Equal(t, c.wantInner, inner, "inner fringe of %v", c.state)
		assert.Equal(t, c.wantOuter, outer, "outer fringe of %v", c.state)
	}
}

func TestFringes_Duality(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	})
	proj := relalg.BuildProjections(g)
	res := downset.Enumerate(g, proj, 0)
	idx := downset.NewIndex(res.States)
	universe := g.ItemIDs()

	for _, s := range res.States {
		inner, outer := downset.Fringes(s, idx, universe)
		for _, b := range inner {
			assert.True(t, idx.Contains(removeItem(s.Items, b)))
		}
		for _, b := range outer {
			assert.True(t, idx.Contains(insertItem(s.Items, b)))
		}
	}
}

func equalItems(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func removeItem(items []string, b string) []string {
	var out []string
	for _, it := range items {
		if it != b {
			out = append(out, it)
		}
	}
	return out
}

func insertItem(items []string, b string) []string {
	out := append([]string{}, items...)
	out = append(out, b)
	// keep sorted for signature comparison
	for i := len(out) - 1; i > 0 && out[i] < out[i-1]; i-- {
		out[i], out[i-1] = out[i-1], out[i]
	}
	return out
}
