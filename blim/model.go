package blim

import (
	"errors"
	"math"
	"sort"

	"github.com/surmisekit/kst/downset"
)

// Sentinel errors for the BLIM kernel.
var (
	// ErrInvalidParam indicates g or s fell outside [0, 1].
	ErrInvalidParam = errors.New("blim: parameter out of range")

	// ErrUnknownState indicates a distribution references a state ID
	// not present in the state set the kernel was built over.
	ErrUnknownState = errors.New("blim: unknown state ID")
)

// DefaultGuess and DefaultSlip are the default lucky-guess and
// careless-error rates.
const (
	DefaultGuess = 0.1
	DefaultSlip  = 0.1
)

// Params holds the two BLIM scalars: G is P(correct | item not mastered)
// and S is P(incorrect | item mastered). Both must lie in [0, 1];
// meaningful models keep them in (0, 0.5).
type Params struct {
	G float64
	S float64
}

// DefaultParams returns {G: 0.1, S: 0.1}.
func DefaultParams() Params {
	return Params{G: DefaultGuess, S: DefaultSlip}
}

// Validate rejects parameters outside [0, 1].
func (p Params) Validate() error {
	if p.G < 0 || p.G > 1 {
		return ErrInvalidParam
	}
	if p.S < 0 || p.S > 1 {
		return ErrInvalidParam
	}
	return nil
}

// Distribution maps state ID to probability mass.
type Distribution map[string]float64

// Clone returns an independent copy of the distribution.
func (d Distribution) Clone() Distribution {
	out := make(Distribution, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Uniform returns the uniform distribution over states.
func Uniform(states []downset.State) Distribution {
	dist := make(Distribution, len(states))
	if len(states) == 0 {
		return dist
	}
	p := 1.0 / float64(len(states))
	for _, s := range states {
		dist[s.ID] = p
	}
	return dist
}

// StateMembership precomputes, for every state, an O(1) membership set,
// so Update and SelectNext never re-parse a state's item list.
type StateMembership struct {
	byState map[string]map[string]struct{}
}

// NewStateMembership builds a StateMembership over states.
func NewStateMembership(states []downset.State) *StateMembership {
	m := &StateMembership{byState: make(map[string]map[string]struct{}, len(states))}
	for _, s := range states {
		m.byState[s.ID] = s.ItemSet()
	}
	return m
}

// Contains reports whether item is a member of stateID.
func (m *StateMembership) Contains(stateID, item string) bool {
	set, ok := m.byState[stateID]
	if !ok {
		return false
	}
	_, in := set[item]
	return in
}

// Update applies Bayes' rule to dist given a response to item, using
// likelihood's guess/slip table, and renormalizes. If the normalizer is zero
// (every state assigns the observation zero likelihood — a pathological,
// zero-prior-mass observation), the prior is returned unchanged and
// degenerate is true.
func Update(dist Distribution, membership *StateMembership, item string, correct bool, params Params) (updated Distribution, degenerate bool) {
	updated = make(Distribution, len(dist))
	var total float64
	for stateID, prior := range dist {
		mastered := membership.Contains(stateID, item)
		likelihood := likelihood(mastered, correct, params)
		mass := prior * likelihood
		updated[stateID] = mass
		total += mass
	}

	if total <= 0 {
		return dist.Clone(), true
	}
	for stateID := range updated {
		updated[stateID] /= total
	}
	return updated, false
}

// likelihood is P(response | item mastership) under the guess/slip model.
func likelihood(mastered, correct bool, params Params) float64 {
	switch {
	case correct && mastered:
		return 1 - params.S
	case correct && !mastered:
		return params.G
	case !correct && mastered:
		return params.S
	default: // incorrect, not mastered
		return 1 - params.G
	}
}

// MarginalMastered returns P(item mastered) = Σ_{K ∋ item} π(K).
func MarginalMastered(dist Distribution, membership *StateMembership, item string) float64 {
	var sum float64
	for stateID, p := range dist {
		if membership.Contains(stateID, item) {
			sum += p
		}
	}
	return sum
}

// SelectNext chooses, among universe minus assessed, the item minimizing
// |P(item mastered) - 0.5|, breaking ties by ascending item identifier.
// Returns ok=false ("no item") when nothing is unassessed.
func SelectNext(dist Distribution, membership *StateMembership, assessed map[string]struct{}, universe []string) (item string, ok bool) {
	candidates := make([]string, 0, len(universe))
	for _, id := range universe {
		if _, done := assessed[id]; !done {
			candidates = append(candidates, id)
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Strings(candidates)

	best := candidates[0]
	bestScore := math.Abs(MarginalMastered(dist, membership, best) - 0.5)
	for _, cand := range candidates[1:] {
		score := math.Abs(MarginalMastered(dist, membership, cand) - 0.5)
		if score < bestScore {
			best, bestScore = cand, score
		}
	}
	return best, true
}

// Entropy returns the Shannon entropy, in bits, of dist: -Σ p log2 p over
// states with p > 0.
func Entropy(dist Distribution) float64 {
	var h float64
	for _, p := range dist {
		if p > 0 {
			h -= p * math.Log2(p)
		}
	}
	return h
}
