package spec

import (
	"bytes"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Map is a string-keyed map that remembers insertion order. Document maps
// (paths, properties, responses, components) serialize their keys in
// declaration order; a plain Go map would shuffle them.
//
// Setting an existing key replaces the value but keeps the original
// position.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// NewMap returns an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{vals: map[string]V{}}
}

// Set inserts or replaces the value for key and returns the map for
// chaining.
func (m *Map[V]) Set(key string, v V) *Map[V] {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = v
	return m
}

// Get returns the value for key.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.vals[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m.vals[key]
	return ok
}

// Len returns the number of entries.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MarshalJSON writes the entries as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML emits a mapping node with keys in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	if m == nil {
		return node, nil
	}
	for _, k := range m.keys {
		kn := &yaml.Node{}
		kn.SetString(k)
		vn := &yaml.Node{}
		if err := vn.Encode(m.vals[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, kn, vn)
	}
	return node, nil
}
