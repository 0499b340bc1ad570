// Package pathsyn synthesizes learning paths — maximal chains of
// knowledge states from the empty set toward the full item set — under
// pluggable scoring strategies.
//
// The Scorer interface is the single plug-in point: additional
// strategies can be added without touching Synthesize.
package pathsyn
