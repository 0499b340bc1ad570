// Package core defines the central Document, Item, SurmiseRelation and
// StudentSnapshot types of the Knowledge Space Theory engine, plus the
// Graph in-memory substrate every other package reads.
//
// Graph owns items and edges; derived artifacts (adjacency projections,
// enumerated states, fringes) are computed on demand by relalg, downset,
// pathsyn, blim and validate, and are logically owned by whoever called
// the operation that produced them. Graph itself performs no semantic
// validation beyond parseability — acyclicity, referential integrity and
// the other structural invariants live entirely in package validate.
//
// Unknown JSON fields on Document and Item are preserved verbatim across
// FromDocument/ToDocument round-trips via an Extra map of raw messages.
package core
