// Package downset is the knowledge-state engine: it enumerates every
// downward-closed subset (knowledge state) of a graph's item set and
// computes inner/outer fringes over that enumeration.
//
// State identifiers ("state-NNNN") are assigned by the position in the
// canonical (|K| ascending, then lexicographic) ordering — they are an
// output of Enumerate, never an input.
package downset
