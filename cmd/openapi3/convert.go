package main

import (
	"bytes"
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Convert re-encodes a document (JSON or YAML input; YAML is a JSON
// superset, so one decoder covers both) into the requested format. The
// yaml.Node round-trip keeps mapping keys in their original order.
func Convert(data []byte, to string) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("parse input: %w", err)
	}
	root := &node
	if root.Kind == yaml.DocumentNode && len(root.Content) == 1 {
		root = root.Content[0]
	}
	switch to {
	case "yaml":
		// JSON input leaves flow style on every node; clear it so the
		// encoder produces block YAML.
		blockStyle(root)
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(root); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	case "json":
		var buf bytes.Buffer
		if err := nodeJSON(&buf, root, 0); err != nil {
			return nil, err
		}
		buf.WriteByte('\n')
		return buf.Bytes(), nil
	}
	return nil, fmt.Errorf("unknown output format %q", to)
}

// blockStyle resets the style of every node in the tree. Scalars keep
// their quoting only where the value needs it (the encoder re-quotes
// ambiguous strings on its own).
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}

// nodeJSON writes a yaml.Node as indented JSON, preserving mapping order.
func nodeJSON(buf *bytes.Buffer, n *yaml.Node, depth int) error {
	switch n.Kind {
	case yaml.MappingNode:
		if len(n.Content) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i := 0; i+1 < len(n.Content); i += 2 {
			if i > 0 {
				buf.WriteString(",\n")
			}
			indent(buf, depth+1)
			kb, err := json.Marshal(n.Content[i].Value)
			if err != nil {
				return err
			}
			buf.Write(kb)
			buf.WriteString(": ")
			if err := nodeJSON(buf, n.Content[i+1], depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		indent(buf, depth)
		buf.WriteByte('}')
	case yaml.SequenceNode:
		if len(n.Content) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, c := range n.Content {
			if i > 0 {
				buf.WriteString(",\n")
			}
			indent(buf, depth+1)
			if err := nodeJSON(buf, c, depth+1); err != nil {
				return err
			}
		}
		buf.WriteByte('\n')
		indent(buf, depth)
		buf.WriteByte(']')
	case yaml.ScalarNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return err
		}
		b, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(b)
	case yaml.AliasNode:
		return nodeJSON(buf, n.Alias, depth)
	default:
		return fmt.Errorf("unsupported node kind %d", n.Kind)
	}
	return nil
}

func indent(buf *bytes.Buffer, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteString("  ")
	}
}
