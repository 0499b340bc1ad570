package pathsyn

import "sort"

// DefaultMaxPaths is the default ceiling on synthesized paths.
const DefaultMaxPaths = 5

// Path is one synthesized learning path: a₁,…,aₘ such that every prefix
// is a knowledge state. Complete is false when the
// synthesizer could not extend the path to the full item set — Q is not
// a reachable state (the structure is disconnected or the enumeration
// was truncated) — in which case Items holds the longest prefix built.
type Path struct {
	Strategy string
	Items    []string
	Complete bool
}

// Synthesize builds up to maxPaths paths, one per scorer, in the order
// scorers is given. A maxPaths <= 0 selects DefaultMaxPaths.
func Synthesize(ctx *Context, scorers []Scorer, maxPaths int) []Path {
	if maxPaths <= 0 {
		maxPaths = DefaultMaxPaths
	}
	if len(scorers) > maxPaths {
		scorers = scorers[:maxPaths]
	}

	out := make([]Path, 0, len(scorers))
	for _, sc := range scorers {
		out = append(out, buildPath(ctx, sc))
	}
	return out
}

// buildPath grows a single path under scorer sc until the full item set
// is reached or no candidate remains.
func buildPath(ctx *Context, sc Scorer) Path {
	current := make(map[string]struct{})
	var path []string

	for len(current) < len(ctx.Universe) {
		candidates := sortedOuterFringe(ctx, current)
		if len(candidates) == 0 {
			return Path{Strategy: sc.Name(), Items: path, Complete: false}
		}

		best := candidates[0]
		bestScore := sc.Score(best, current, path, ctx)
		for _, cand := range candidates[1:] {
			score := sc.Score(cand, current, path, ctx)
			if score > bestScore {
				best, bestScore = cand, score
			}
			// Equal scores: candidates is already ascending-ID sorted,
			// so the first (smallest ID) encountered at the max score
			// wins automatically — no explicit tie-break needed here.
		}

		path = append(path, best)
		current[best] = struct{}{}
	}

	return Path{Strategy: sc.Name(), Items: path, Complete: true}
}

// sortedOuterFringe returns, in ascending item-ID order, every item
// outside current whose prerequisites current already satisfies and
// whose addition is itself a known knowledge state.
func sortedOuterFringe(ctx *Context, current map[string]struct{}) []string {
	var candidates []string
	for _, id := range ctx.Universe {
		if _, in := current[id]; in {
			continue
		}
		if !subsetOf(ctx.Projections.PrereqSet(id), current) {
			continue
		}
		next := make([]string, 0, len(current)+1)
		for k := range current {
			next = append(next, k)
		}
		next = append(next, id)
		sort.Strings(next)
		if ctx.Index.Contains(next) {
			candidates = append(candidates, id)
		}
	}
	sort.Strings(candidates)
	return candidates
}
