package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/relalg"
	"github.com/surmisekit/kst/validate"
)

func mustGraph(t *testing.T, items []core.Item, edges [][2]string) *core.Graph {
	t.Helper()
	doc := core.Document{Metadata: map[string]interface{}{}, Items: items}
	for _, e := range edges {
		doc.SurmiseRelations = append(doc.SurmiseRelations, core.SurmiseRelation{Prerequisite: e[0], Target: e[1]})
	}
	g, err := core.FromDocument(doc)
	require.NoError(t, err)
	return g
}

func findCheck(msgs []validate.Message, check string) (validate.Message, bool) {
	for _, m := range msgs {
		if m.Check == check {
			return m, true
		}
	}
	return validate.Message{}, false
}

func TestValidate_CleanChainPassesStructuralChecks(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}, {ID: "B"}, {ID: "C"}}, [][2]string{{"A", "B"}, {"B", "C"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	assert.False(t, result.Failed())
	_, hasAcyclicPass := findCheck(result.Pass, "acyclicity")
	assert.True(t, hasAcyclicPass)
	// A -> C is implied but not explicit, so transitivity warns.
	_, hasTransitivityWarn := findCheck(result.Warn, "transitive-closure-completeness")
	assert.True(t, hasTransitivityWarn)
}

func TestValidate_DuplicateRelationFails(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}, {ID: "B"}}, [][2]string{{"A", "B"}, {"A", "B"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	assert.True(t, result.Failed())
	msg, failed := findCheck(result.Fail, "duplicate-relations")
	assert.True(t, failed)
	assert.Contains(t, msg.Text, "1 duplicate")
	// Every other check still ran and reported its own finding.
	_, hasAcyclicPass := findCheck(result.Pass, "acyclicity")
	assert.True(t, hasAcyclicPass)
}

func TestValidate_CycleFails(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "X"}, {ID: "Y"}}, [][2]string{{"X", "Y"}, {"Y", "X"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	assert.True(t, result.Failed())
	_, hasAcyclicFail := findCheck(result.Fail, "acyclicity")
	assert.True(t, hasAcyclicFail)
}

func TestValidate_SelfLoopWarnsNotFails(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}}, [][2]string{{"A", "A"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	_, warned := findCheck(result.Warn, "self-loops")
	assert.True(t, warned)
	assert.False(t, result.Failed())
}

func TestValidate_OrphanItemWarns(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}, {ID: "B"}, {ID: "Z"}}, [][2]string{{"A", "B"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	msg, warned := findCheck(result.Warn, "orphan-items")
	assert.True(t, warned)
	assert.Contains(t, msg.Text, "Z")
}

func TestValidate_BloomInversionWarns(t *testing.T) {
	items := []core.Item{
		{ID: "A", BloomLevel: core.BloomCreate},
		{ID: "B", BloomLevel: core.BloomRemember},
	}
	g := mustGraph(t, items, [][2]string{{"A", "B"}})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	_, warned := findCheck(result.Warn, "bloom-inversions")
	assert.True(t, warned)
}

func TestValidate_PrerequisiteLoadWarnsAboveSeven(t *testing.T) {
	items := []core.Item{{ID: "target"}}
	edges := [][2]string{}
	for i := 0; i < 8; i++ {
		id := string(rune('A' + i))
		items = append(items, core.Item{ID: id})
		edges = append(edges, [2]string{id, "target"})
	}
	g := mustGraph(t, items, edges)
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	msg, warned := findCheck(result.Warn, "prerequisite-load")
	assert.True(t, warned)
	assert.Contains(t, msg.Text, "target")
}

func TestValidate_KnowledgeStateUnionClosure(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}, {ID: "B"}, {ID: "C"}}, [][2]string{{"A", "B"}, {"A", "C"}})
	// {A} and {A,B} union to {A,B} (present); but {A,B,C} is left out,
	// so the union of {A,B} and {A,C} fails.
	g.AttachKnowledgeStates([]core.KnowledgeStateDoc{
		{ID: "s0", Items: []string{}},
		{ID: "s1", Items: []string{"A"}},
		{ID: "s2", Items: []string{"A", "B"}},
		{ID: "s3", Items: []string{"A", "C"}},
	})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	assert.True(t, result.Failed())
	_, failed := findCheck(result.Fail, "union-closure")
	assert.True(t, failed)
	_, warnedFull := findCheck(result.Warn, "knowledge-states-full")
	assert.True(t, warnedFull)
}

func TestValidate_KnowledgeStateEmptyAndFullPresent(t *testing.T) {
	g := mustGraph(t, []core.Item{{ID: "A"}, {ID: "B"}}, [][2]string{{"A", "B"}})
	g.AttachKnowledgeStates([]core.KnowledgeStateDoc{
		{ID: "s0", Items: []string{}},
		{ID: "s1", Items: []string{"A"}},
		{ID: "s2", Items: []string{"A", "B"}},
	})
	proj := relalg.BuildProjections(g)
	result := validate.Validate(g, proj)

	_, warnedEmpty := findCheck(result.Warn, "knowledge-states-empty")
	assert.False(t, warnedEmpty)
	_, warnedFull := findCheck(result.Warn, "knowledge-states-full")
	assert.False(t, warnedFull)
	_, passedUnion := findCheck(result.Pass, "union-closure")
	assert.True(t, passedUnion)
}
