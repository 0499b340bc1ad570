// Package analytics implements class-wide aggregation over student
// snapshots attached to a graph: mastery rates, outer-fringe frequency,
// leverage, a composite instruction-targeting score, and greedy
// Jaccard-similarity student clustering.
package analytics
