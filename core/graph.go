package core

import (
	"encoding/json"
	"fmt"
)

// Graph is the in-memory substrate shared by every other package: items,
// surmise relations, and whatever else a document carried. It performs no
// semantic validation beyond parseability — acyclicity, referential
// integrity, and the rest of the domain's invariants are the validate
// package's job, not Graph's.
//
// Graph is not safe for concurrent mutation. The engine is
// single-threaded and synchronous by design: every top-level operation
// takes a Graph by (conceptually) shared read access, and the few
// mutating operations — AddEdges, AttachKnowledgeStates,
// AttachLearningPaths — change the Graph in place with no locking.
type Graph struct {
	items       []Item
	itemIndex   map[string]int // item ID -> index into items, for O(1) lookup
	edges       []SurmiseRelation
	edgeSet     map[[2]string]struct{}
	states      []KnowledgeStateDoc
	students    map[string]StudentSnapshot
	metadata    map[string]interface{}
	competences []json.RawMessage
	paths       []LearningPathDoc
	extra       map[string]json.RawMessage
}

// NewGraph returns an empty Graph with no items or edges.
func NewGraph() *Graph {
	return &Graph{
		itemIndex: make(map[string]int),
		edgeSet:   make(map[[2]string]struct{}),
		students:  make(map[string]StudentSnapshot),
		metadata:  make(map[string]interface{}),
	}
}

// FromDocument constructs a Graph from a parsed Document.
//
// Duplicate item IDs are rejected outright: a document's item list is
// meant to be a set, and a collision can only be malformed input with no
// sensible recovery. Duplicate surmise relations are loaded as-is,
// uncounted and unrejected — Graph defers that judgment entirely to
// package validate, so a document with a repeated edge still produces a
// Graph that every other check (acyclicity, referential integrity, the
// rest) can run against, rather than aborting the load before any
// diagnostic has a chance to print. AddEdges, by contrast, stays strict:
// callers appending edges after the fact (e.g. applying a computed
// transitive closure) want an atomic reject on collision, not a silent
// multiset.
func FromDocument(doc Document) (*Graph, error) {
	g := NewGraph()
	g.metadata = doc.Metadata
	if g.metadata == nil {
		g.metadata = make(map[string]interface{})
	}
	g.competences = doc.Competences
	g.paths = doc.LearningPaths
	g.extra = doc.Extra
	g.states = doc.KnowledgeStates
	if doc.StudentStates != nil {
		g.students = doc.StudentStates
	}

	for _, it := range doc.Items {
		if it.ID == "" {
			return nil, ErrEmptyItemID
		}
		if _, exists := g.itemIndex[it.ID]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateItemID, it.ID)
		}
		g.itemIndex[it.ID] = len(g.items)
		g.items = append(g.items, it)
	}

	for _, r := range doc.SurmiseRelations {
		g.edgeSet[r.Pair()] = struct{}{}
		g.edges = append(g.edges, r)
	}
	return g, nil
}

// Items returns every item, in document order.
func (g *Graph) Items() []Item {
	out := make([]Item, len(g.items))
	copy(out, g.items)
	return out
}

// ItemIDs returns every item ID, in document order.
func (g *Graph) ItemIDs() []string {
	ids := make([]string, len(g.items))
	for i, it := range g.items {
		ids[i] = it.ID
	}
	return ids
}

// Item looks up a single item by ID.
func (g *Graph) Item(id string) (Item, bool) {
	idx, ok := g.itemIndex[id]
	if !ok {
		return Item{}, false
	}
	return g.items[idx], true
}

// HasItem reports whether id names an existing item.
func (g *Graph) HasItem(id string) bool {
	_, ok := g.itemIndex[id]
	return ok
}

// Edges returns every surmise relation, in the order added.
func (g *Graph) Edges() []SurmiseRelation {
	out := make([]SurmiseRelation, len(g.edges))
	copy(out, g.edges)
	return out
}

// AddEdges appends relations to the graph. It is atomic: if any relation
// in rels duplicates one already present (or another entry in rels), no
// relation from the batch is added and ErrDuplicateEdge is returned.
//
// Edges added this way are assumed to be freshly computed, not
// user-authored, so a collision signals a caller bug (e.g. re-applying an
// already-applied closure) rather than a document-quality issue worth
// reporting alongside other diagnostics — it is surfaced immediately
// instead of being absorbed silently. See DESIGN.md.
func (g *Graph) AddEdges(rels ...SurmiseRelation) error {
	seenInBatch := make(map[[2]string]struct{}, len(rels))
	for _, r := range rels {
		pair := r.Pair()
		if _, exists := g.edgeSet[pair]; exists {
			return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, r.Prerequisite, r.Target)
		}
		if _, exists := seenInBatch[pair]; exists {
			return fmt.Errorf("%w: %s -> %s", ErrDuplicateEdge, r.Prerequisite, r.Target)
		}
		seenInBatch[pair] = struct{}{}
	}
	for _, r := range rels {
		g.edgeSet[r.Pair()] = struct{}{}
		g.edges = append(g.edges, r)
	}
	return nil
}

// AttachKnowledgeStates replaces the graph's persisted knowledge-state
// list, as produced by downset.Enumerate + downset.Fringes.
func (g *Graph) AttachKnowledgeStates(states []KnowledgeStateDoc) {
	g.states = states
}

// KnowledgeStates returns the currently attached knowledge-state list,
// which may be empty if none has been attached or loaded.
func (g *Graph) KnowledgeStates() []KnowledgeStateDoc {
	out := make([]KnowledgeStateDoc, len(g.states))
	copy(out, g.states)
	return out
}

// AttachLearningPaths replaces the graph's persisted learning-path list.
func (g *Graph) AttachLearningPaths(paths []LearningPathDoc) {
	g.paths = paths
}

// LearningPaths returns the currently attached learning-path list.
func (g *Graph) LearningPaths() []LearningPathDoc {
	out := make([]LearningPathDoc, len(g.paths))
	copy(out, g.paths)
	return out
}

// StudentSnapshots returns the student-state map. The core treats it as
// read-only except when AttachKnowledgeStates-style derivation (here,
// analytics aggregation) reads it to build class-wide statistics.
func (g *Graph) StudentSnapshots() map[string]StudentSnapshot {
	out := make(map[string]StudentSnapshot, len(g.students))
	for k, v := range g.students {
		out[k] = v
	}
	return out
}

// Metadata returns the document's metadata map.
func (g *Graph) Metadata() map[string]interface{} {
	return g.metadata
}

// ToDocument serializes the graph back into its document form, preserving
// unknown fields captured at FromDocument time.
func (g *Graph) ToDocument() Document {
	return Document{
		Metadata:         g.metadata,
		Items:            g.Items(),
		SurmiseRelations: g.Edges(),
		KnowledgeStates:  g.KnowledgeStates(),
		StudentStates:    g.StudentSnapshots(),
		Competences:      g.competences,
		LearningPaths:    g.LearningPaths(),
		Extra:            g.extra,
	}
}
