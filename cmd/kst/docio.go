package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/surmisekit/kst/core"
)

// loadGraph reads and parses a KST document from path into a Graph.
func loadGraph(path string) (*core.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	g, err := core.FromDocument(doc)
	if err != nil {
		return nil, fmt.Errorf("build graph from %s: %w", path, err)
	}
	return g, nil
}

// saveGraph serializes g back to path. The document is written to a
// sibling temp file and renamed into place, so a crash mid-write never
// leaves a truncated document at path.
func saveGraph(g *core.Graph, path string) error {
	data, err := json.MarshalIndent(g.ToDocument(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".kst-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("rename into place: %w", err)
	}
	return nil
}
