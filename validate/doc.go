// Package validate implements the structural and pedagogical invariant
// checks a knowledge graph must satisfy: referential integrity,
// acyclicity, transitive closure completeness, Bloom's-level inversions,
// orphaned items, and knowledge-state union closure, bucketed into
// fail/warn/pass.
package validate
