// Package json persists converted documents as versioned JSON envelopes.
package json

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fwojciec/marky"
)

// envelope is the v1 wire format for a persisted document.
type envelope struct {
	Version int         `json:"version"`
	Nodes   []nodeDTO   `json:"nodes"`
	Tables  []layoutDTO `json:"tables"`
}

// MarshalDocument serializes a Document to JSON in v1 envelope format.
func MarshalDocument(d marky.Document) ([]byte, error) {
	env := envelope{
		Version: 1,
		Nodes:   make([]nodeDTO, len(d.Nodes)),
		Tables:  make([]layoutDTO, len(d.Tables)),
	}
	for i, n := range d.Nodes {
		dto, err := marshalNode(n)
		if err != nil {
			return nil, fmt.Errorf("node %d: %w", i, err)
		}
		env.Nodes[i] = dto
	}
	for i, l := range d.Tables {
		env.Tables[i] = marshalLayout(l)
	}
	return json.MarshalIndent(env, "", "  ")
}

// UnmarshalDocument deserializes a Document from JSON in v1 envelope format.
// Unknown versions and node types wrap marky.ErrUnsupportedFormat.
func UnmarshalDocument(data []byte) (marky.Document, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return marky.Document{}, fmt.Errorf("unmarshal envelope: %w", err)
	}
	if env.Version != 1 {
		return marky.Document{}, fmt.Errorf("envelope version %d: %w", env.Version, marky.ErrUnsupportedFormat)
	}
	var doc marky.Document
	if len(env.Nodes) > 0 {
		doc.Nodes = make([]marky.Composable, len(env.Nodes))
	}
	for i, dto := range env.Nodes {
		n, err := unmarshalNode(dto)
		if err != nil {
			return marky.Document{}, fmt.Errorf("node %d: %w", i, err)
		}
		doc.Nodes[i] = n
	}
	if len(env.Tables) > 0 {
		doc.Tables = make([]marky.TableLayout, len(env.Tables))
	}
	for i, dto := range env.Tables {
		l, err := unmarshalLayout(dto)
		if err != nil {
			return marky.Document{}, fmt.Errorf("table %d: %w", i, err)
		}
		doc.Tables[i] = l
	}
	return doc, nil
}

// Save writes a Document to a JSON file, creating parent directories as
// needed. The file is replaced atomically.
func Save(path string, d marky.Document) error {
	data, err := MarshalDocument(d)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create directories: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

// Load reads a Document from a JSON file.
func Load(path string) (marky.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return marky.Document{}, fmt.Errorf("read file: %w", err)
	}
	return UnmarshalDocument(data)
}
