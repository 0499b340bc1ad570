package analytics

import (
	"sort"

	"github.com/surmisekit/kst/core"
	"github.com/surmisekit/kst/relalg"
)

// ClusterThreshold is the minimum Jaccard similarity of mastery sets for
// two students to land in the same cluster.
const ClusterThreshold = 0.6

// Report holds the class-wide analytics. HasData is false when the graph
// carries no student snapshots — a structured "no data" result, not an
// error.
type Report struct {
	HasData         bool
	NStudents       int
	MasteryRates    map[string]float64
	OuterFringeFreq map[string]int
	Leverage        map[string]int
	TargetScores    map[string]float64
	Clusters        [][]string
}

// Compute builds a Report from g's items and attached student snapshots.
// proj supplies successors(item) for the leverage term.
//
// core.Graph stores student snapshots keyed by ID in a map, so original
// JSON-document insertion order is already lost by the time Compute runs
// (see core.Document's schema: student_states is a JSON object, not an
// array). Clustering therefore scans students in ascending ID order
// rather than document order — still fully deterministic, just a
// different deterministic order than the original's dict-iteration
// order would give on a document sharing an item's insertion history.
func Compute(g *core.Graph, proj *relalg.Projections) Report {
	students := g.StudentSnapshots()
	n := len(students)
	if n == 0 {
		return Report{HasData: false}
	}

	itemIDs := g.ItemIDs()
	sort.Strings(itemIDs)

	masteryCounts := make(map[string]int, len(itemIDs))
	fringeCounts := make(map[string]int, len(itemIDs))
	for _, snap := range students {
		for _, iid := range snap.CurrentState {
			masteryCounts[iid]++
		}
		for _, iid := range snap.OuterFringe {
			fringeCounts[iid]++
		}
	}

	masteryRates := make(map[string]float64, len(itemIDs))
	leverage := make(map[string]int, len(itemIDs))
	for _, iid := range itemIDs {
		masteryRates[iid] = float64(masteryCounts[iid]) / float64(n)
		leverage[iid] = len(proj.Successors(iid))
	}

	domainSize := len(itemIDs)
	targetScores := make(map[string]float64, len(itemIDs))
	for _, iid := range itemIDs {
		fringeFreq := float64(fringeCounts[iid]) / float64(n)
		lev := 0.0
		if domainSize > 0 {
			lev = float64(leverage[iid]) / float64(domainSize)
		}
		need := 1 - masteryRates[iid]
		targetScores[iid] = fringeFreq * (1 + lev) * need
	}

	return Report{
		HasData:         true,
		NStudents:       n,
		MasteryRates:    masteryRates,
		OuterFringeFreq: fringeCounts,
		Leverage:        leverage,
		TargetScores:    targetScores,
		Clusters:        clusterStudents(students),
	}
}

// clusterStudents greedily partitions students in a single pass:
// scanned in ascending-ID order, each unassigned student founds
// a cluster and absorbs every later unassigned student whose mastery-set
// Jaccard similarity against the founder meets ClusterThreshold.
func clusterStudents(students map[string]core.StudentSnapshot) [][]string {
	ids := make([]string, 0, len(students))
	sets := make(map[string]map[string]struct{}, len(students))
	for id, snap := range students {
		ids = append(ids, id)
		set := make(map[string]struct{}, len(snap.CurrentState))
		for _, iid := range snap.CurrentState {
			set[iid] = struct{}{}
		}
		sets[id] = set
	}
	sort.Strings(ids)

	assigned := make(map[string]struct{}, len(ids))
	var clusters [][]string
	for _, id := range ids {
		if _, done := assigned[id]; done {
			continue
		}
		cluster := []string{id}
		assigned[id] = struct{}{}
		for _, other := range ids {
			if _, done := assigned[other]; done {
				continue
			}
			if jaccard(sets[id], sets[other]) >= ClusterThreshold {
				cluster = append(cluster, other)
				assigned[other] = struct{}{}
			}
		}
		clusters = append(clusters, cluster)
	}
	return clusters
}

// jaccard returns |a ∩ b| / |a ∪ b|, defined as 1.0 when both sets are
// empty: two students with no recorded mastery give no evidence of
// difference, so they're treated as maximally similar rather than
// incomparable.
func jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1.0
	}
	intersection := 0
	for k := range a {
		if _, ok := b[k]; ok {
			intersection++
		}
	}
	union := len(a) + len(b) - intersection
	return float64(intersection) / float64(union)
}

// TopTargets returns the n highest target_score items, descending, with
// ascending-ID tie-break — the `analytics` CLI command's "top-10" view.
func TopTargets(r Report, n int) []string {
	ids := make([]string, 0, len(r.TargetScores))
	for id := range r.TargetScores {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		si, sj := r.TargetScores[ids[i]], r.TargetScores[ids[j]]
		if si != sj {
			return si > sj
		}
		return ids[i] < ids[j]
	})
	if n >= 0 && len(ids) > n {
		ids = ids[:n]
	}
	return ids
}
