// Package relalg is the surmise-relation algebra: pure functions over a
// core.Graph computing adjacency projections, the transitive closure,
// and cycle detection. Nothing here mutates its input graph.
//
// Determinism is a contract: two calls on byte-identical graphs produce
// byte-identical output, including the order of synthesized edges and
// reported cycles.
package relalg
