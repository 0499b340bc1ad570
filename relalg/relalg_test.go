package relalg_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surmisekit/kst/core"
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

func chainGraph(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"A", "B", "C"}, [][2]string{{"A", "B"}, {"B", "C"}})
}

func diamondGraph(t *testing.T) *core.Graph {
	return mustGraph(t, []string{"A", "B", "C", "D"}, [][2]string{
		{"A", "B"}, {"A", "C"}, {"B", "D"}, {"C", "D"},
	})
}

func TestProjections_ChainGraph(t *testing.T) {
	g := chainGraph(t)
	proj := relalg.BuildProjections(g)
	assert.Equal(t, []string{"A"}, proj.Prereqs("B"))
	assert.Equal(t, []string{"B"}, proj.Prereqs("C"))
	assert.Empty(t, proj.Prereqs("A"))
	assert.Empty(t, proj.Prereqs("unknown"))
	assert.Equal(t, []string{"B"}, proj.Successors("A"))
	assert.Empty(t, proj.Successors("C"))
}

func TestTransitiveClosure_Chain(t *testing.T) {
	g := chainGraph(t)
	added, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "A", added[0].Prerequisite)
	assert.Equal(t, "C", added[0].Target)
	assert.Equal(t, 1.0, *added[0].Confidence)
}

func TestTransitiveClosure_Diamond(t *testing.T) {
	g := diamondGraph(t)
	added, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	require.Len(t, added, 1)
	assert.Equal(t, "A", added[0].Prerequisite)
	assert.Equal(t, "D", added[0].Target)
}

func TestTransitiveClosure_Idempotent(t *testing.T) {
	g := chainGraph(t)
	first, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	require.NoError(t, g.AddEdges(first...))

	second, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	assert.Empty(t, second, "applying closure twice must add nothing new")
}

func TestTransitiveClosure_Deterministic(t *testing.T) {
	g := mustGraph(t, []string{"A", "B", "C", "D", "E"}, [][2]string{
		{"A", "B"}, {"B", "C"}, {"A", "D"}, {"D", "C"}, {"C", "E"},
	})
	first, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	second, err := relalg.TransitiveClosure(g)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectCycles_NoCycle(t *testing.T) {
	g := chainGraph(t)
	assert.Empty(t, relalg.DetectCycles(g))
}

func TestDetectCycles_SimpleCycle(t *testing.T) {
	g := mustGraph(t, []string{"X", "Y"}, [][2]string{{"X", "Y"}, {"Y", "X"}})
	cycles := relalg.DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"X", "Y", "X"}, cycles[0])
}

func TestDetectCycles_SelfLoopIsACycle(t *testing.T) {
	g := mustGraph(t, []string{"A"}, [][2]string{{"A", "A"}})
	cycles := relalg.DetectCycles(g)
	require.Len(t, cycles, 1)
	assert.Equal(t, []string{"A", "A"}, cycles[0])
}
