package core

import (
	"encoding/json"
	"errors"
)

// Sentinel errors for the graph model. Callers branch with errors.Is.
var (
	// ErrEmptyItemID indicates an Item with an empty ID was appended.
	ErrEmptyItemID = errors.New("core: item ID is empty")

	// ErrDuplicateItemID indicates two items share an ID.
	ErrDuplicateItemID = errors.New("core: duplicate item ID")

	// ErrUnknownEndpoint indicates an edge references an item not present
	// in the graph at the time it was appended.
	ErrUnknownEndpoint = errors.New("core: edge endpoint not found")

	// ErrDuplicateEdge indicates an edge with the same (prerequisite,
	// target) pair was already present when AddEdges was called.
	ErrDuplicateEdge = errors.New("core: duplicate surmise relation")

	// ErrMalformedDocument indicates the JSON document failed to parse
	// into the expected schema.
	ErrMalformedDocument = errors.New("core: malformed document")
)

// BloomLevel is one rung of the six-level Bloom's taxonomy used for
// pedagogical sanity checks. The zero value BloomUnset means "no level
// recorded" and must never participate in ordering comparisons.
type BloomLevel int

// Ordered Bloom's taxonomy levels, lowest cognitive complexity first.
const (
	BloomUnset BloomLevel = iota
	BloomRemember
	BloomUnderstand
	BloomApply
	BloomAnalyze
	BloomEvaluate
	BloomCreate
)

// bloomNames maps the canonical lowercase document string to its level.
var bloomNames = map[string]BloomLevel{
	"remember":   BloomRemember,
	"understand": BloomUnderstand,
	"apply":      BloomApply,
	"analyze":    BloomAnalyze,
	"evaluate":   BloomEvaluate,
	"create":     BloomCreate,
}

var bloomStrings = map[BloomLevel]string{
	BloomRemember:   "remember",
	BloomUnderstand: "understand",
	BloomApply:      "apply",
	BloomAnalyze:    "analyze",
	BloomEvaluate:   "evaluate",
	BloomCreate:     "create",
}

// ParseBloomLevel resolves a document bloom_level string to a BloomLevel.
// An empty or unrecognized string resolves to BloomUnset with ok=false.
func ParseBloomLevel(s string) (level BloomLevel, ok bool) {
	level, ok = bloomNames[s]
	return level, ok
}

// String renders the BloomLevel back to its document form, or "" for
// BloomUnset / an out-of-range value.
func (b BloomLevel) String() string {
	return bloomStrings[b]
}

// Item is a single learnable vertex of the surmise relation graph.
//
// ID is the stable textual identifier, unique across the graph. Tags is
// an unordered set of short topical labels (order is insignificant for
// set semantics; the document form is kept as a slice for round-trip
// fidelity). BloomLevel is optional — BloomUnset means not recorded.
// Extra preserves any other document attributes verbatim; the core never
// interprets them.
type Item struct {
	ID         string
	Tags       []string
	BloomLevel BloomLevel
	Extra      map[string]json.RawMessage
}

// itemDoc is the wire shape of Item.
type itemDoc struct {
	ID         string   `json:"id"`
	Tags       []string `json:"tags,omitempty"`
	BloomLevel string   `json:"bloom_level,omitempty"`
}

// MarshalJSON merges the known Item fields with any preserved Extra keys.
func (it Item) MarshalJSON() ([]byte, error) {
	return mergeExtra(itemDoc{
		ID:         it.ID,
		Tags:       it.Tags,
		BloomLevel: it.BloomLevel.String(),
	}, it.Extra)
}

// UnmarshalJSON populates the known Item fields and stashes every other
// key present in the object into Extra.
func (it *Item) UnmarshalJSON(data []byte) error {
	var doc itemDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	it.ID = doc.ID
	it.Tags = doc.Tags
	if lvl, ok := ParseBloomLevel(doc.BloomLevel); ok {
		it.BloomLevel = lvl
	}
	extra, err := splitExtra(data, "id", "tags", "bloom_level")
	if err != nil {
		return err
	}
	it.Extra = extra
	return nil
}

// SurmiseRelation is a directed edge: mastery of Target presupposes
// mastery of Prerequisite. Confidence, Rationale, RelationType and Source
// are optional provenance fields carried through unchanged.
type SurmiseRelation struct {
	Prerequisite string
	Target       string
	Confidence   *float64
	Rationale    string
	RelationType string
	Source       string
	Extra        map[string]json.RawMessage
}

type surmiseRelationDoc struct {
	Prerequisite string   `json:"prerequisite"`
	Target       string   `json:"target"`
	Confidence   *float64 `json:"confidence,omitempty"`
	Rationale    string   `json:"rationale,omitempty"`
	RelationType string   `json:"relation_type,omitempty"`
	Source       string   `json:"source,omitempty"`
}

// MarshalJSON merges the known SurmiseRelation fields with Extra.
func (r SurmiseRelation) MarshalJSON() ([]byte, error) {
	return mergeExtra(surmiseRelationDoc{
		Prerequisite: r.Prerequisite,
		Target:       r.Target,
		Confidence:   r.Confidence,
		Rationale:    r.Rationale,
		RelationType: r.RelationType,
		Source:       r.Source,
	}, r.Extra)
}

// UnmarshalJSON populates known SurmiseRelation fields and stashes the rest.
func (r *SurmiseRelation) UnmarshalJSON(data []byte) error {
	var doc surmiseRelationDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	r.Prerequisite = doc.Prerequisite
	r.Target = doc.Target
	r.Confidence = doc.Confidence
	r.Rationale = doc.Rationale
	r.RelationType = doc.RelationType
	r.Source = doc.Source
	extra, err := splitExtra(data, "prerequisite", "target", "confidence", "rationale", "relation_type", "source")
	if err != nil {
		return err
	}
	r.Extra = extra
	return nil
}

// Pair returns the (prerequisite, target) identity used for duplicate
// detection and set semantics.
func (r SurmiseRelation) Pair() [2]string {
	return [2]string{r.Prerequisite, r.Target}
}

// KnowledgeStateDoc is the persisted form of one enumerated knowledge
// state, as written by `enumerate --save`.
type KnowledgeStateDoc struct {
	ID          string   `json:"id"`
	Items       []string `json:"items"`
	InnerFringe []string `json:"inner_fringe,omitempty"`
	OuterFringe []string `json:"outer_fringe,omitempty"`
}

// StudentSnapshot is the read-only (to the core) record of one student's
// current mastery, keyed externally by student identifier.
type StudentSnapshot struct {
	CurrentState []string `json:"current_state"`
	OuterFringe  []string `json:"outer_fringe,omitempty"`
}

// LearningPathDoc is the optional persisted form of one synthesized path.
type LearningPathDoc struct {
	Strategy string   `json:"strategy"`
	Items    []string `json:"items"`
}
