package core

import "encoding/json"

// Document is the on-disk JSON shape of a knowledge graph: metadata,
// items, surmise relations, and three optional sections (knowledge
// states, student states, competences) plus an additive learning_paths
// section. Unknown top-level keys round-trip via Extra.
type Document struct {
	Metadata         map[string]interface{}     `json:"metadata"`
	Items            []Item                     `json:"items"`
	SurmiseRelations []SurmiseRelation          `json:"surmise_relations"`
	KnowledgeStates  []KnowledgeStateDoc        `json:"knowledge_states,omitempty"`
	StudentStates    map[string]StudentSnapshot `json:"student_states,omitempty"`
	Competences      []json.RawMessage          `json:"competences,omitempty"`
	LearningPaths    []LearningPathDoc          `json:"learning_paths,omitempty"`
	Extra            map[string]json.RawMessage `json:"-"`
}

var documentKnownKeys = []string{
	"metadata", "items", "surmise_relations", "knowledge_states",
	"student_states", "competences", "learning_paths",
}

// docAlias avoids infinite recursion in Document's custom (Un)MarshalJSON.
type docAlias Document

// MarshalJSON merges the known Document fields with any preserved Extra
// top-level keys, so a document round-tripped through the engine keeps
// fields the core does not interpret.
func (d Document) MarshalJSON() ([]byte, error) {
	return mergeExtra(docAlias(d), d.Extra)
}

// UnmarshalJSON populates the known Document fields and stashes every
// other top-level key into Extra.
func (d *Document) UnmarshalJSON(data []byte) error {
	var alias docAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return ErrMalformedDocument
	}
	*d = Document(alias)
	extra, err := splitExtra(data, documentKnownKeys...)
	if err != nil {
		return ErrMalformedDocument
	}
	d.Extra = extra
	return nil
}

// DomainName returns metadata.domain_name, or "" if absent or not a string.
func (d Document) DomainName() string {
	return stringField(d.Metadata, "domain_name")
}

// Version returns metadata.version, or "" if absent or not a string.
func (d Document) Version() string {
	return stringField(d.Metadata, "version")
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
