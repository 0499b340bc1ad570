package core

import "encoding/json"

// mergeExtra marshals known into a JSON object and merges in every key of
// extra that known does not already produce, preserving round-trip
// fidelity for attributes the core does not interpret.
func mergeExtra(known interface{}, extra map[string]json.RawMessage) ([]byte, error) {
	base, err := json.Marshal(known)
	if err != nil {
		return nil, err
	}
	if len(extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err = json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for k, v := range extra {
		if _, exists := merged[k]; !exists {
			merged[k] = v
		}
	}
	return json.Marshal(merged)
}

// splitExtra parses data as a JSON object and returns every key not in
// known, so callers can stash opaque document attributes without
// interpreting them.
func splitExtra(data []byte, known ...string) (map[string]json.RawMessage, error) {
	var all map[string]json.RawMessage
	if err := json.Unmarshal(data, &all); err != nil {
		return nil, err
	}
	skip := make(map[string]struct{}, len(known))
	for _, k := range known {
		skip[k] = struct{}{}
	}
	extra := make(map[string]json.RawMessage)
	for k, v := range all {
		if _, ok := skip[k]; !ok {
			extra[k] = v
		}
	}
	if len(extra) == 0 {
		return nil, nil
	}
	return extra, nil
}
