package validate

import (
	"fmt"
	"sort"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/relalg"
)

// MaxUnionClosureSample bounds the O(n²) union-closure check: skipped
// above this many attached knowledge states.
const MaxUnionClosureSample = 500

// exampleLimit caps the offending-tuple examples embedded in messages.
const exampleLimit = 5

// Message is one validator finding.
type Message struct {
	Check string
	Text  string
}

// Result buckets validator findings into hard failures, warnings worth
// an operator's attention, and checks that passed outright.
type Result struct {
	Fail []Message
	Warn []Message
	Pass []Message
}

// Failed reports whether any fail-bucket message was recorded; the
// `validate` CLI command uses this to decide its exit code.
func (r Result) Failed() bool {
	return len(r.Fail) > 0
}

func (r *Result) fail(check, text string) { r.Fail = append(r.Fail, Message{check, text}) }
func (r *Result) warn(check, text string) { r.Warn = append(r.Warn, Message{check, text}) }
func (r *Result) pass(check, text string) { r.Pass = append(r.Pass, Message{check, text}) }

var bloomOrder = map[core.BloomLevel]int{
	core.BloomRemember:   0,
	core.BloomUnderstand: 1,
	core.BloomApply:      2,
	core.BloomAnalyze:    3,
	core.BloomEvaluate:   4,
	core.BloomCreate:     5,
}

// Validate runs every structural and pedagogical check against g, using
// proj (built once by the caller via relalg.BuildProjections) for the
// direct-prerequisite-count and orphan checks. Every check contributes a
// result regardless of whether earlier checks failed.
func Validate(g *core.Graph, proj *relalg.Projections) Result {
	var r Result

	itemIDs := make(map[string]struct{}, len(g.Items()))
	for _, it := range g.Items() {
		itemIDs[it.ID] = struct{}{}
	}

	referentialIntegrity(g, itemIDs, &r)
	duplicateRelations(g, &r)
	acyclicity(g, &r)
	transitiveClosureCompleteness(g, &r)
	selfLoops(g, &r)
	uniqueItemIDs(g, &r)
	prerequisiteLoad(g, proj, &r)
	orphanItems(g, proj, &r)
	bloomInversions(g, &r)
	knowledgeStateChecks(g, &r)

	return r
}

func referentialIntegrity(g *core.Graph, itemIDs map[string]struct{}, r *Result) {
	var bad []string
	for _, rel := range g.Edges() {
		if _, ok := itemIDs[rel.Prerequisite]; !ok {
			bad = append(bad, rel.Prerequisite)
		}
		if _, ok := itemIDs[rel.Target]; !ok {
			bad = append(bad, rel.Target)
		}
	}
	if len(bad) > 0 {
		r.fail("referential-integrity", fmt.Sprintf(
			"%d relation(s) reference non-existent items: %v", len(bad), truncate(bad, exampleLimit)))
		return
	}
	r.pass("referential-integrity", "all relation endpoints resolve to known items")
}

// duplicateRelations counts (prerequisite, target) pairs repeated in the
// document's relation list. core.FromDocument loads such pairs without
// rejecting them, so this is the only place a duplicate is surfaced.
func duplicateRelations(g *core.Graph, r *Result) {
	seen := make(map[[2]string]struct{})
	dupes := 0
	for _, rel := range g.Edges() {
		pair := rel.Pair()
		if _, exists := seen[pair]; exists {
			dupes++
			continue
		}
		seen[pair] = struct{}{}
	}
	if dupes > 0 {
		r.fail("duplicate-relations", fmt.Sprintf("%d duplicate relation(s) found", dupes))
		return
	}
	r.pass("duplicate-relations", "no duplicate relations")
}

func acyclicity(g *core.Graph, r *Result) {
	var cycles [][]string
	for _, c := range relalg.DetectCycles(g) {
		// A self-loop comes back as [X, X]; selfLoops reports it as a
		// warning, so it does not fail acyclicity.
		if len(c) > 2 {
			cycles = append(cycles, c)
		}
	}
	if len(cycles) > 0 {
		examples := make([]string, 0, exampleLimit)
		for i, c := range cycles {
			if i >= 3 {
				break
			}
			examples = append(examples, fmt.Sprintf("%v", c))
		}
		r.fail("acyclicity", fmt.Sprintf("%d cycle(s) detected: %v", len(cycles), examples))
		return
	}
	r.pass("acyclicity", "no cycles detected")
}

func transitiveClosureCompleteness(g *core.Graph, r *Result) {
	missing, err := relalg.TransitiveClosure(g)
	if err != nil {
		// TransitiveClosure runs on cyclic input too and returns no
		// error in practice; this branch has nothing to report.
		return
	}
	if len(missing) > 0 {
		r.warn("transitive-closure-completeness", fmt.Sprintf(
			"%d implied relation(s) missing from explicit surmise relations", len(missing)))
		return
	}
	r.pass("transitive-closure-completeness", "relation is transitively closed")
}

func selfLoops(g *core.Graph, r *Result) {
	var loops []string
	for _, rel := range g.Edges() {
		if rel.Prerequisite == rel.Target {
			loops = append(loops, rel.Prerequisite)
		}
	}
	if len(loops) > 0 {
		r.warn("self-loops", fmt.Sprintf(
			"%d explicit self-loop(s) found (reflexivity should be implicit): %v",
			len(loops), truncate(loops, exampleLimit)))
		return
	}
	r.pass("self-loops", "no explicit self-loops")
}

func uniqueItemIDs(g *core.Graph, r *Result) {
	seen := make(map[string]struct{})
	dup := false
	for _, it := range g.Items() {
		if _, exists := seen[it.ID]; exists {
			dup = true
			break
		}
		seen[it.ID] = struct{}{}
	}
	if dup {
		r.fail("item-id-uniqueness", "duplicate item IDs found")
		return
	}
	r.pass("item-id-uniqueness", "item IDs are unique")
}

func prerequisiteLoad(g *core.Graph, proj *relalg.Projections, r *Result) {
	ids := g.ItemIDs()
	sort.Strings(ids)
	for _, id := range ids {
		n := len(proj.Prereqs(id))
		if n > 7 {
			r.warn("prerequisite-load", fmt.Sprintf(
				"%q has %d direct prerequisites (>7, cognitive load concern)", id, n))
		}
	}
}

func orphanItems(g *core.Graph, proj *relalg.Projections, r *Result) {
	items := g.Items()
	if len(items) <= 1 {
		return
	}
	var orphans []string
	for _, it := range items {
		if len(proj.Prereqs(it.ID)) == 0 && len(proj.Successors(it.ID)) == 0 {
			orphans = append(orphans, it.ID)
		}
	}
	if len(orphans) > 0 {
		sort.Strings(orphans)
		r.warn("orphan-items", fmt.Sprintf(
			"%d item(s) with no prerequisite relationships: %v", len(orphans), truncate(orphans, exampleLimit)))
	}
}

func bloomInversions(g *core.Graph, r *Result) {
	itemsByID := make(map[string]core.Item, len(g.Items()))
	for _, it := range g.Items() {
		itemsByID[it.ID] = it
	}
	var inversions []string
	for _, rel := range g.Edges() {
		prereq, ok1 := itemsByID[rel.Prerequisite]
		target, ok2 := itemsByID[rel.Target]
		if !ok1 || !ok2 {
			continue
		}
		pLevel, pDefined := bloomOrder[prereq.BloomLevel]
		tLevel, tDefined := bloomOrder[target.BloomLevel]
		if pDefined && tDefined && pLevel > tLevel {
			inversions = append(inversions, fmt.Sprintf("%s->%s", rel.Prerequisite, rel.Target))
		}
	}
	if len(inversions) > 0 {
		r.warn("bloom-inversions", fmt.Sprintf(
			"%d case(s) where prerequisite has higher Bloom's level than target: %v",
			len(inversions), truncate(inversions, 3)))
	}
}

func knowledgeStateChecks(g *core.Graph, r *Result) {
	states := g.KnowledgeStates()
	if len(states) == 0 {
		return
	}

	itemIDs := g.ItemIDs()
	sort.Strings(itemIDs)
	fullSignature := signature(itemIDs)

	signatures := make(map[string]struct{}, len(states))
	hasEmpty := false
	hasFull := false
	for _, s := range states {
		sig := signature(sortedCopy(s.Items))
		signatures[sig] = struct{}{}
		if len(s.Items) == 0 {
			hasEmpty = true
		}
		if sig == fullSignature {
			hasFull = true
		}
	}

	if !hasEmpty {
		r.warn("knowledge-states-empty", "empty set (novice state) not present")
	}
	if !hasFull {
		r.warn("knowledge-states-full", "full domain (expert state) not present")
	}

	if len(states) <= MaxUnionClosureSample {
		failures := 0
		for i := 0; i < len(states) && failures < 3; i++ {
			for j := i + 1; j < len(states) && failures < 3; j++ {
				union := unionSorted(states[i].Items, states[j].Items)
				if _, ok := signatures[signature(union)]; !ok {
					failures++
				}
			}
		}
		if failures > 0 {
			r.fail("union-closure", fmt.Sprintf("%d+ pair(s) whose union is not a valid state", failures))
		} else {
			r.pass("union-closure", "verified")
		}
	}
}

func signature(sortedItems []string) string {
	out := ""
	for i, it := range sortedItems {
		if i > 0 {
			out += ","
		}
		out += it
	}
	return out
}

func sortedCopy(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)
	return out
}

func unionSorted(a, b []string) []string {
	set := make(map[string]struct{}, len(a)+len(b))
	for _, x := range a {
		set[x] = struct{}{}
	}
	for _, x := range b {
		set[x] = struct{}{}
	}
	out := make([]string, 0, len(set))
	for x := range set {
		out = append(out, x)
	}
	sort.Strings(out)
	return out
}

func truncate(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
