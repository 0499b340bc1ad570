package blim

import (
	"github.com/google/uuid"

	"github.com/surmisekit/kst/downset"
)

// Session drives one adaptive assessment: initial uniform (or supplied)
// prior and empty assessed set, a Respond step per observation, and a
// caller-defined stopping rule. ID
// is a synthesized assessment-session identifier — no document field
// names a session, so sessions are purely a runtime/in-memory concept;
// the UUID only disambiguates concurrent sessions in caller-side logs.
type Session struct {
	ID         string
	states     []downset.State
	membership *StateMembership
	dist       Distribution
	assessed   map[string]struct{}
	params     Params
}

// NewSession starts a session over states with the given prior (nil
// selects the uniform distribution) and BLIM parameters.
func NewSession(states []downset.State, prior Distribution, params Params) (*Session, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	dist := prior
	if dist == nil {
		dist = Uniform(states)
	} else {
		dist = dist.Clone()
	}
	return &Session{
		ID:         uuid.NewString(),
		states:     states,
		membership: NewStateMembership(states),
		dist:       dist,
		assessed:   make(map[string]struct{}),
		params:     params,
	}, nil
}

// Respond records a response to item and applies the BLIM update,
// reporting degeneracy as a return value instead of raising an error.
func (s *Session) Respond(item string, correct bool) (degenerate bool) {
	updated, degenerate := Update(s.dist, s.membership, item, correct, s.params)
	s.dist = updated
	s.assessed[item] = struct{}{}
	return degenerate
}

// NextItem selects the next item to assess via SelectNext.
func (s *Session) NextItem(universe []string) (item string, ok bool) {
	return SelectNext(s.dist, s.membership, s.assessed, universe)
}

// Distribution returns the current posterior.
func (s *Session) Distribution() Distribution {
	return s.dist.Clone()
}

// Assessed returns the set of item IDs responded to so far.
func (s *Session) Assessed() []string {
	out := make([]string, 0, len(s.assessed))
	for id := range s.assessed {
		out = append(out, id)
	}
	return out
}

// Entropy returns the entropy of the current posterior.
func (s *Session) Entropy() float64 {
	return Entropy(s.dist)
}

// MarginalMastered returns P(item mastered) under the current posterior.
func (s *Session) MarginalMastered(item string) float64 {
	return MarginalMastered(s.dist, s.membership, item)
}
