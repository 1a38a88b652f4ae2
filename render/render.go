// Package render serializes a spec.Document to JSON or YAML text. Key
// order in the output equals declaration order; the document model's
// ordered maps guarantee it, render only drives the encoders.
package render

import (
	"bytes"
	"io"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/reoring/openapi3/spec"
)

// JSON renders the document as compact JSON.
func JSON(doc *spec.Document) ([]byte, error) {
	return json.Marshal(doc)
}

// JSONIndent renders the document as two-space indented JSON.
func JSONIndent(doc *spec.Document) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// YAML renders the document as YAML with two-space indentation.
func YAML(doc *spec.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteJSON writes the indented JSON form to w.
func WriteJSON(w io.Writer, doc *spec.Document) error {
	b, err := JSONIndent(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}

// WriteYAML writes the YAML form to w.
func WriteYAML(w io.Writer, doc *spec.Document) error {
	b, err := YAML(doc)
	if err != nil {
		return err
	}
	_, err = w.Write(b)
	return err
}
