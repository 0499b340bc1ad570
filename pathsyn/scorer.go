package pathsyn

// Scorer imposes a total order over outer-fringe candidates at one step
// of path synthesis: score(item, state, path_prefix). The highest-
// scoring candidate is appended to the path; ties are broken
// by ascending item identifier by the caller (Synthesize), not here.
type Scorer interface {
	// Name identifies the strategy, e.g. for the "strategy" field of a
	// persisted LearningPathDoc.
	Name() string
	// Score rates item as the next step given the current state (as a
	// membership set) and the path built so far.
	Score(item string, currentState map[string]struct{}, prefix []string, ctx *Context) float64
}

// MaxUnlockScorer favors the item that unlocks the most additional
// candidates: |addable(K ∪ {item})| minus the count of those candidates
// that were already addable to K.
type MaxUnlockScorer struct{}

// Name implements Scorer.
func (MaxUnlockScorer) Name() string { return "max-unlock" }

// Score implements Scorer.
func (MaxUnlockScorer) Score(item string, currentState map[string]struct{}, _ []string, ctx *Context) float64 {
	before := ctx.addable(currentState)
	after := make(map[string]struct{}, len(currentState)+1)
	for k := range currentState {
		after[k] = struct{}{}
	}
	after[item] = struct{}{}

	newlyAddable := ctx.addable(after)
	count := 0
	for cand := range newlyAddable {
		if _, wasAddable := before[cand]; !wasAddable {
			count++
		}
	}
	return float64(count)
}

// DepthFirstScorer favors continuing the current topic: the size of the
// tag intersection between item and the most recently added item. Zero
// if the prefix is empty.
type DepthFirstScorer struct{}

// Name implements Scorer.
func (DepthFirstScorer) Name() string { return "depth-first" }

// Score implements Scorer.
func (DepthFirstScorer) Score(item string, _ map[string]struct{}, prefix []string, ctx *Context) float64 {
	if len(prefix) == 0 {
		return 0
	}
	last := prefix[len(prefix)-1]
	lastTags := toSet(ctx.Tags(last))
	itemTags := ctx.Tags(item)
	count := 0
	for _, t := range itemTags {
		if _, ok := lastTags[t]; ok {
			count++
		}
	}
	return float64(count)
}

// BreadthFirstScorer favors under-represented topics: the negative mean
// frequency, across the path prefix, of item's tags. Zero if item is
// untagged.
type BreadthFirstScorer struct{}

// Name implements Scorer.
func (BreadthFirstScorer) Name() string { return "breadth-first" }

// Score implements Scorer.
func (BreadthFirstScorer) Score(item string, _ map[string]struct{}, prefix []string, ctx *Context) float64 {
	itemTags := ctx.Tags(item)
	if len(itemTags) == 0 {
		return 0
	}
	tagCounts := make(map[string]int)
	for _, p := range prefix {
		for _, t := range ctx.Tags(p) {
			tagCounts[t]++
		}
	}
	sum := 0
	for _, t := range itemTags {
		sum += tagCounts[t]
	}
	return -float64(sum) / float64(len(itemTags))
}

func toSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, it := range items {
		set[it] = struct{}{}
	}
	return set
}

// DefaultScorers returns the three built-in strategies in the order the
// CLI's `paths` command reports them: breadth-first, depth-first,
// max-unlock.
func DefaultScorers() []Scorer {
	return []Scorer{BreadthFirstScorer{}, DepthFirstScorer{}, MaxUnlockScorer{}}
}

// ScorerByName looks up a built-in Scorer by its Name(). ok is false for
// an unrecognized name.
func ScorerByName(name string) (sc Scorer, ok bool) {
	for _, candidate := range DefaultScorers() {
		if candidate.Name() == name {
			return candidate, true
		}
	}
	return nil, false
}

// ScorersByNames resolves order to a Scorer slice, preserving order and
// silently dropping names ScorerByName doesn't recognize.
func ScorersByNames(order []string) []Scorer {
	out := make([]Scorer, 0, len(order))
	for _, name := range order {
		if sc, ok := ScorerByName(name); ok {
			out = append(out, sc)
		}
	}
	return out
}
