package relalg

import (
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/surmisekit/kst/core"
)

// synthesizedConfidence is the fixed confidence assigned to every
// transitive edge TransitiveClosure synthesizes. A more faithful
// calculus would aggregate confidence along the witnessing path (e.g.
// product of edge confidences); that is left for a future revision.
const synthesizedConfidence = 1.0

// synthesizedRelationType and synthesizedSource mark a synthesized edge's
// provenance so callers (and the validator) can distinguish it from an
// edge the document author wrote explicitly.
const (
	synthesizedRelationType = "prerequisite-of"
	synthesizedSource       = "transitive-closure"
)

// TransitiveClosure computes, for n = |items(g)|, every pair (a, b) with
// a != b reachable by a directed path a -> ... -> b, and returns the
// subset of those pairs not already present as an explicit edge —
// exactly the relations a `closure --apply` CLI invocation would append.
//
// The Warshall reachability matrix is computed one k-iteration at a time;
// within a fixed k, the row updates for i != k are mutually independent
// (row i reads only row i and row k, writes only row i), so they are
// fanned out across an errgroup-bounded worker pool. Row k itself is
// skipped: when item k has a self-loop, row i == k aliases the very row
// (k) every other goroutine in the batch is reading, and ORing it into
// itself changes nothing anyway. The boolean-OR accumulation is
// commutative, so parallel execution changes nothing about the
// resulting matrix — only wall-clock. The final relation list is always
// emitted in (prerequisite, target) lexicographic order.
func TransitiveClosure(g *core.Graph) ([]core.SurmiseRelation, error) {
	ids := g.ItemIDs()
	n := len(ids)
	idx := make(map[string]int, n)
	for i, id := range ids {
		idx[id] = i
	}

	reach := make([][]bool, n)
	for i := range reach {
		reach[i] = make([]bool, n)
	}

	existing := make(map[[2]string]struct{}, len(g.Edges()))
	for _, e := range g.Edges() {
		pi, piok := idx[e.Prerequisite]
		ti, tiok := idx[e.Target]
		if piok && tiok {
			reach[pi][ti] = true
		}
		existing[e.Pair()] = struct{}{}
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers < 1 {
		workers = 1
	}

	for k := 0; k < n; k++ {
		krow := reach[k]
		group := new(errgroup.Group)
		chunk := (n + workers - 1) / workers
		for start := 0; start < n; start += chunk {
			end := start + chunk
			if end > n {
				end = n
			}
			start, end := start, end
			group.Go(func() error {
				for i := start; i < end; i++ {
					if i == k {
						// row i aliases krow when i == k (a self-loop at
						// k); ORing krow into itself is a no-op, and
						// touching it here would race against every
						// other goroutine in this batch reading krow.
						continue
					}
					if !reach[i][k] {
						continue
					}
					row := reach[i]
					for j := 0; j < n; j++ {
						if krow[j] {
							row[j] = true
						}
					}
				}
				return nil
			})
		}
		_ = group.Wait() // no goroutine in this loop can return an error
	}

	var added []core.SurmiseRelation
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || !reach[i][j] {
				continue
			}
			pair := [2]string{ids[i], ids[j]}
			if _, ok := existing[pair]; ok {
				continue
			}
			confidence := synthesizedConfidence
			added = append(added, core.SurmiseRelation{
				Prerequisite: pair[0],
				Target:       pair[1],
				Confidence:   &confidence,
				RelationType: synthesizedRelationType,
				Source:       synthesizedSource,
			})
		}
	}

	sort.Slice(added, func(i, j int) bool {
		if added[i].Prerequisite != added[j].Prerequisite {
			return added[i].Prerequisite < added[j].Prerequisite
		}
		return added[i].Target < added[j].Target
	})
	return added, nil
}
